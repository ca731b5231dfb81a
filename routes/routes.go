package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courtbook/handlers"
	"courtbook/utils"
)

// RegisterBookingRoutes registers the booking engine endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListBookingsHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
		api.POST("/preview-price", hb.Booking.PreviewPriceHandler)
	}
}

// RegisterCatalogRoutes registers the court/coach/equipment/pricing
// reference-data endpoints, including their admin create operations.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	courts := r.Group("/api/courts")
	{
		courts.GET("", hb.Court.ListCourtsHandler)
		courts.POST("/admin", hb.Court.AddCourtHandler)
	}

	coaches := r.Group("/api/coaches")
	{
		coaches.GET("", hb.Coach.ListCoachesHandler)
		coaches.POST("/admin", hb.Coach.AddCoachHandler)
		coaches.PATCH("/admin/:id/toggle", hb.Coach.ToggleCoachHandler)
	}

	equipment := r.Group("/api/equipment")
	{
		equipment.GET("", hb.Equipment.ListEquipmentHandler)
		equipment.POST("/admin", hb.Equipment.AddEquipmentHandler)
	}

	rules := r.Group("/api/pricing-rules")
	{
		rules.GET("", hb.PricingRule.ListPricingRulesHandler)
		rules.POST("/admin", hb.PricingRule.AddPricingRuleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes wires every route group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
}
