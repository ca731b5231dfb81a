package booking

import (
	"time"

	"courtbook/models"
)

// Fixed per-unit equipment prices.
const (
	racketUnitPrice = 5.0
	shoeUnitPrice   = 3.0
)

// PriceOptions are the booking attributes that pricing rules match on.
type PriceOptions struct {
	CourtType   string
	RacketCount int
	ShoeCount   int
}

// CalculatePrice computes the itemized price for a booking starting at
// startTime. Pure function: same inputs always yield the same breakdown.
// Day-of-week and hour-of-day are derived in loc, the facility time
// zone.
//
// Rules are evaluated in input order and are not mutually exclusive.
// Weekend and courtType surcharges accumulate flat fees; fixed
// surcharges fold into the courtTypeFee bucket (kept for compatibility
// with stored breakdowns). Peak rules multiply the running price, so
// multiple peak rules compound in order, and the delta lands in
// peakHourFee. Inactive rules are skipped; unknown rule types are
// ignored.
func CalculatePrice(basePrice float64, rules []models.PricingRule, startTime time.Time, loc *time.Location, opts PriceOptions) models.PriceBreakdown {
	price := basePrice
	var weekendFee, peakHourFee, courtTypeFee float64

	local := startTime.In(loc)
	day := local.Weekday()
	hour := local.Hour()

	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		variant, ok := rule.Variant()
		if !ok {
			continue
		}
		switch v := variant.(type) {
		case models.WeekendRule:
			if day == time.Saturday || day == time.Sunday {
				weekendFee += v.Surcharge
			}
		case models.PeakRule:
			if hour >= v.StartHour && hour < v.EndHour {
				before := price
				price *= v.Multiplier
				peakHourFee += price - before
			}
		case models.CourtTypeRule:
			if opts.CourtType != "" && v.CourtType == opts.CourtType {
				courtTypeFee += v.Surcharge
			}
		case models.FixedRule:
			courtTypeFee += v.Surcharge
		}
	}

	price += weekendFee + courtTypeFee

	equipmentFee := float64(opts.RacketCount)*racketUnitPrice + float64(opts.ShoeCount)*shoeUnitPrice
	price += equipmentFee

	return models.PriceBreakdown{
		BasePrice:    basePrice,
		WeekendFee:   weekendFee,
		PeakHourFee:  peakHourFee,
		CourtTypeFee: courtTypeFee,
		EquipmentFee: equipmentFee,
		Total:        price,
	}
}
