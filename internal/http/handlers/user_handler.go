package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RayBDev/devconnector/internal/services"
	"github.com/RayBDev/devconnector/internal/utils"
)

type UserHandler struct {
	auth *services.AuthService
}

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func NewUserHandler(auth *services.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Password2)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, user)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, result)
}

// Current returns the identity subset for the validated session token.
func (h *UserHandler) Current(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"_id":   user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}

// ForgotPassword responds with the same success shape whether or not the
// email belongs to an account.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"result": "Email sent"})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), c.GetString("user_id"), req.Password, req.Password2); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{"success": true})
}
