package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/RayBDev/devconnector/internal/auth"
	"github.com/RayBDev/devconnector/internal/config"
	"github.com/RayBDev/devconnector/internal/http/handlers"
	"github.com/RayBDev/devconnector/internal/http/middleware"
	"github.com/RayBDev/devconnector/internal/services"
)

type Dependencies struct {
	Config         *config.Config
	TokenIssuer    *auth.TokenIssuer
	AuthService    *services.AuthService
	ProfileService *services.ProfileService
	PostService    *services.PostService
	Logger         *slog.Logger
	RateLimiter    *middleware.RateLimiter
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	userHandler := handlers.NewUserHandler(deps.AuthService)
	profileHandler := handlers.NewProfileHandler(deps.ProfileService)
	postHandler := handlers.NewPostHandler(deps.PostService)

	requireToken := middleware.JWTAuth(deps.TokenIssuer)

	router.GET("/healthz", handlers.Health)

	users := router.Group("/api/users")
	{
		public := users.Group("")
		if deps.RateLimiter != nil {
			public.Use(deps.RateLimiter.Middleware())
		}
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/forgetpw", userHandler.ForgotPassword)

		users.GET("/current", requireToken, userHandler.Current)
		// The source router and its clients disagreed on the verb.
		users.PATCH("/resetpw", requireToken, userHandler.ResetPassword)
		users.POST("/resetpw", requireToken, userHandler.ResetPassword)
	}

	profile := router.Group("/api/profile")
	{
		profile.GET("", requireToken, profileHandler.GetCurrent)
		profile.POST("", requireToken, profileHandler.Upsert)
		profile.GET("/all", profileHandler.List)
		profile.GET("/handle/:handle", profileHandler.GetByHandle)
		profile.POST("/experience", requireToken, profileHandler.AddExperience)
		profile.POST("/education", requireToken, profileHandler.AddEducation)
	}

	posts := router.Group("/api/posts")
	{
		posts.GET("", postHandler.List)
		posts.GET("/:id", postHandler.GetByID)
		posts.POST("", requireToken, postHandler.Create)
		posts.DELETE("/:id", requireToken, postHandler.Delete)
		posts.POST("/like/:id", requireToken, postHandler.Like)
		posts.POST("/unlike/:id", requireToken, postHandler.Unlike)
		posts.POST("/comment/:id", requireToken, postHandler.AddComment)
		posts.DELETE("/comment/:id/:comment_id", requireToken, postHandler.DeleteComment)
	}

	return router
}
