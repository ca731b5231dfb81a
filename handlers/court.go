package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	courtRepo "courtbook/database/repository/court"
	"courtbook/models"
	"courtbook/utils"
)

// CourtHandler exposes the court catalog endpoints.
type CourtHandler struct {
	Repo   courtRepo.CourtRepository
	Logger *zap.Logger
}

func NewCourtHandler(repo courtRepo.CourtRepository, logger *zap.Logger) *CourtHandler {
	return &CourtHandler{Repo: repo, Logger: logger}
}

// ListCourtsHandler handles GET /api/courts.
func (h *CourtHandler) ListCourtsHandler(c *gin.Context) {
	courts, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list courts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, courts)
}

// AddCourtHandler handles POST /api/courts/admin.
func (h *CourtHandler) AddCourtHandler(c *gin.Context) {
	var input struct {
		Name      string  `json:"name" binding:"required"`
		Type      string  `json:"type" binding:"omitempty,oneof=indoor outdoor"`
		BasePrice float64 `json:"basePrice" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Type == "" {
		input.Type = models.CourtIndoor
	}

	court := &models.Court{Name: input.Name, Type: input.Type, BasePrice: input.BasePrice}
	if err := h.Repo.Create(c.Request.Context(), court); err != nil {
		h.Logger.Error("failed to create court", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusCreated, court)
}
