package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RayBDev/devconnector/internal/services"
	"github.com/RayBDev/devconnector/internal/utils"
)

type PostHandler struct {
	posts *services.PostService
}

type PostRequest struct {
	Text string `json:"text"`
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, posts)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, post)
}

// Create makes a post under the caller's identity, denormalizing the
// display name and avatar from the session claims.
func (h *PostHandler) Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	post, err := h.posts.Create(c.Request.Context(), c.GetString("user_id"), req.Text, c.GetString("name"), c.GetString("avatar"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, gin.H{"success": true})
}

func (h *PostHandler) Like(c *gin.Context) {
	post, err := h.posts.Like(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, post)
}

func (h *PostHandler) Unlike(c *gin.Context) {
	post, err := h.posts.Unlike(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, post)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	post, err := h.posts.AddComment(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req.Text, c.GetString("name"), c.GetString("avatar"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, post)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	post, err := h.posts.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("comment_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, post)
}
