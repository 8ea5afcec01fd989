package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RayBDev/devconnector/internal/models"
	"github.com/RayBDev/devconnector/internal/services"
	"github.com/RayBDev/devconnector/internal/utils"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

type ProfileRequest struct {
	Handle         string   `json:"handle"`
	Status         string   `json:"status"`
	Skills         []string `json:"skills"`
	Company        string   `json:"company"`
	Website        string   `json:"website"`
	Location       string   `json:"location"`
	Bio            string   `json:"bio"`
	GithubUsername string   `json:"githubusername"`
}

type ExperienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

type EducationRequest struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) GetCurrent(c *gin.Context) {
	profile, err := h.profiles.GetCurrent(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, profile)
}

func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profiles.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, profiles)
}

func (h *ProfileHandler) GetByHandle(c *gin.Context) {
	profile, err := h.profiles.GetByHandle(c.Request.Context(), c.Param("handle"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, profile)
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	profile, err := h.profiles.Upsert(c.Request.Context(), c.GetString("user_id"), &models.Profile{
		Handle:         req.Handle,
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, profile)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	profile, err := h.profiles.AddExperience(c.Request.Context(), c.GetString("user_id"), models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, profile)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "BAD_REQUEST", "invalid request body"))
		return
	}

	profile, err := h.profiles.AddEducation(c.Request.Context(), c.GetString("user_id"), models.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, profile)
}
