package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RayBDev/devconnector/internal/auth"
	"github.com/RayBDev/devconnector/internal/utils"
)

// JWTAuth validates the bearer token and stores the claims on the
// request context. Expired, malformed, and badly-signed tokens all get
// the same generic response.
func JWTAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing token"))
			c.Abort()
			return
		}

		claims, err := issuer.Validate(auth.StripBearer(header))
		if err != nil {
			utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "invalid token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("name", claims.Name)
		c.Set("avatar", claims.Avatar)
		c.Next()
	}
}
