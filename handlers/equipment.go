package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	equipmentRepo "courtbook/database/repository/equipment"
	"courtbook/models"
	"courtbook/utils"
)

// EquipmentHandler exposes the equipment catalog endpoints.
type EquipmentHandler struct {
	Repo   equipmentRepo.EquipmentRepository
	Logger *zap.Logger
}

func NewEquipmentHandler(repo equipmentRepo.EquipmentRepository, logger *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{Repo: repo, Logger: logger}
}

// ListEquipmentHandler handles GET /api/equipment.
func (h *EquipmentHandler) ListEquipmentHandler(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list equipment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddEquipmentHandler handles POST /api/equipment/admin.
func (h *EquipmentHandler) AddEquipmentHandler(c *gin.Context) {
	var input struct {
		Name       string `json:"name" binding:"required"`
		TotalStock int    `json:"totalStock" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	item := &models.Equipment{Name: input.Name, TotalStock: input.TotalStock}
	if err := h.Repo.Create(c.Request.Context(), item); err != nil {
		h.Logger.Error("failed to create equipment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusCreated, item)
}
