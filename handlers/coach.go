package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	coachRepo "courtbook/database/repository/coach"
	"courtbook/models"
	"courtbook/utils"
)

// CoachHandler exposes the coach catalog endpoints.
type CoachHandler struct {
	Repo   coachRepo.CoachRepository
	Logger *zap.Logger
}

func NewCoachHandler(repo coachRepo.CoachRepository, logger *zap.Logger) *CoachHandler {
	return &CoachHandler{Repo: repo, Logger: logger}
}

// ListCoachesHandler handles GET /api/coaches.
func (h *CoachHandler) ListCoachesHandler(c *gin.Context) {
	coaches, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list coaches", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, coaches)
}

// AddCoachHandler handles POST /api/coaches/admin.
func (h *CoachHandler) AddCoachHandler(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Sport       string `json:"sport"`
		IsAvailable *bool  `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}
	coach := &models.Coach{Name: input.Name, Sport: input.Sport, IsAvailable: available}
	if err := h.Repo.Create(c.Request.Context(), coach); err != nil {
		h.Logger.Error("failed to create coach", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusCreated, coach)
}

// ToggleCoachHandler handles PATCH /api/coaches/admin/:id/toggle.
func (h *CoachHandler) ToggleCoachHandler(c *gin.Context) {
	coach, err := h.Repo.ToggleAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "Coach not found", "")
			return
		}
		h.Logger.Error("failed to toggle coach", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, coach)
}
