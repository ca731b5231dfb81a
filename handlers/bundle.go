package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Booking     *BookingHandler
	Court       *CourtHandler
	Coach       *CoachHandler
	Equipment   *EquipmentHandler
	PricingRule *PricingRuleHandler
}
