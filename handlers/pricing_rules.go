package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	rulesRepo "courtbook/database/repository/rules"
	"courtbook/models"
	"courtbook/services/booking"
	"courtbook/utils"
)

// PricingRuleHandler exposes the pricing rule endpoints.
type PricingRuleHandler struct {
	Repo   rulesRepo.PricingRuleRepository
	Cache  *booking.RedisRuleCache
	Logger *zap.Logger
}

func NewPricingRuleHandler(repo rulesRepo.PricingRuleRepository, cache *booking.RedisRuleCache, logger *zap.Logger) *PricingRuleHandler {
	return &PricingRuleHandler{Repo: repo, Cache: cache, Logger: logger}
}

// ListPricingRulesHandler handles GET /api/pricing-rules. Returns the
// active rule set only, as the booking UI consumes it.
func (h *PricingRuleHandler) ListPricingRulesHandler(c *gin.Context) {
	rules, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list pricing rules", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, rules)
}

// AddPricingRuleHandler handles POST /api/pricing-rules/admin.
func (h *PricingRuleHandler) AddPricingRuleHandler(c *gin.Context) {
	var rule models.PricingRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if rule.Name == "" || rule.Type == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and type are required")
		return
	}
	if _, ok := rule.Variant(); !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "unknown rule type: "+string(rule.Type))
		return
	}

	rule.ID = ""
	if err := h.Repo.Create(c.Request.Context(), &rule); err != nil {
		h.Logger.Error("failed to create pricing rule", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if h.Cache != nil {
		h.Cache.Invalidate(c.Request.Context())
	}
	c.JSON(http.StatusCreated, rule)
}
