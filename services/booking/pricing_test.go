package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtbook/models"
)

// 2025-06-14 is a Saturday, 2025-06-16 a Monday.
var (
	saturdayMorning = time.Date(2025, 6, 14, 10, 0, 0, 0, time.UTC)
	mondayMorning   = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	mondayEvening   = time.Date(2025, 6, 16, 19, 0, 0, 0, time.UTC)
	saturdayEvening = time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
)

func weekendRule(surcharge float64) models.PricingRule {
	return models.PricingRule{ID: "w", Name: "Weekend", Type: models.RuleWeekend, IsActive: true, WeekendSurcharge: surcharge}
}

func peakRule(start, end int, mult float64) models.PricingRule {
	return models.PricingRule{ID: "p", Name: "Peak", Type: models.RulePeak, IsActive: true, StartHour: start, EndHour: end, Multiplier: mult}
}

func TestCalculatePriceNoRules(t *testing.T) {
	breakdown := CalculatePrice(400, nil, mondayMorning, time.UTC, PriceOptions{CourtType: models.CourtIndoor})
	assert.Equal(t, 400.0, breakdown.BasePrice)
	assert.Equal(t, 400.0, breakdown.Total)
}

func TestCalculatePriceWeekend(t *testing.T) {
	rules := []models.PricingRule{weekendRule(100)}

	t.Run("saturday pays the surcharge", func(t *testing.T) {
		breakdown := CalculatePrice(400, rules, saturdayMorning, time.UTC, PriceOptions{})
		assert.Equal(t, 100.0, breakdown.WeekendFee)
		assert.Equal(t, 500.0, breakdown.Total)
	})

	t.Run("monday does not", func(t *testing.T) {
		breakdown := CalculatePrice(400, rules, mondayMorning, time.UTC, PriceOptions{})
		assert.Equal(t, 0.0, breakdown.WeekendFee)
		assert.Equal(t, 400.0, breakdown.Total)
	})
}

func TestCalculatePricePeak(t *testing.T) {
	rules := []models.PricingRule{peakRule(18, 21, 1.5)}

	t.Run("inside the window", func(t *testing.T) {
		breakdown := CalculatePrice(400, rules, mondayEvening, time.UTC, PriceOptions{})
		assert.Equal(t, 200.0, breakdown.PeakHourFee)
		assert.Equal(t, 600.0, breakdown.Total)
	})

	t.Run("end hour is exclusive", func(t *testing.T) {
		ninePM := time.Date(2025, 6, 16, 21, 0, 0, 0, time.UTC)
		breakdown := CalculatePrice(400, rules, ninePM, time.UTC, PriceOptions{})
		assert.Equal(t, 0.0, breakdown.PeakHourFee)
	})

	t.Run("two peak rules compound in order", func(t *testing.T) {
		stacked := []models.PricingRule{peakRule(18, 21, 1.5), peakRule(18, 21, 2)}
		breakdown := CalculatePrice(400, stacked, mondayEvening, time.UTC, PriceOptions{})
		// 400 -> 600 -> 1200; the second rule multiplies the inflated price.
		assert.Equal(t, 800.0, breakdown.PeakHourFee)
		assert.Equal(t, 1200.0, breakdown.Total)
	})

	t.Run("zero multiplier reads as one", func(t *testing.T) {
		breakdown := CalculatePrice(400, []models.PricingRule{peakRule(18, 21, 0)}, mondayEvening, time.UTC, PriceOptions{})
		assert.Equal(t, 0.0, breakdown.PeakHourFee)
		assert.Equal(t, 400.0, breakdown.Total)
	})
}

func TestCalculatePriceWeekendAndPeak(t *testing.T) {
	rules := []models.PricingRule{weekendRule(100), peakRule(18, 21, 1.5)}
	breakdown := CalculatePrice(400, rules, saturdayEvening, time.UTC, PriceOptions{})
	// Peak multiplies the running price before flat fees are added.
	assert.Equal(t, 200.0, breakdown.PeakHourFee)
	assert.Equal(t, 100.0, breakdown.WeekendFee)
	assert.Equal(t, 700.0, breakdown.Total)
}

func TestCalculatePriceCourtTypeAndFixed(t *testing.T) {
	rules := []models.PricingRule{
		{ID: "c", Name: "Indoor premium", Type: models.RuleCourtType, IsActive: true, CourtType: models.CourtIndoor, CourtTypeSurcharge: 50},
		{ID: "f", Name: "Holiday fee", Type: models.RuleFixed, IsActive: true, FixedSurcharge: 25},
	}

	t.Run("matching court type, fixed folds into same bucket", func(t *testing.T) {
		breakdown := CalculatePrice(400, rules, mondayMorning, time.UTC, PriceOptions{CourtType: models.CourtIndoor})
		assert.Equal(t, 75.0, breakdown.CourtTypeFee)
		assert.Equal(t, 475.0, breakdown.Total)
	})

	t.Run("non-matching court type keeps only the fixed fee", func(t *testing.T) {
		breakdown := CalculatePrice(400, rules, mondayMorning, time.UTC, PriceOptions{CourtType: models.CourtOutdoor})
		assert.Equal(t, 25.0, breakdown.CourtTypeFee)
		assert.Equal(t, 425.0, breakdown.Total)
	})
}

func TestCalculatePriceEquipmentFee(t *testing.T) {
	breakdown := CalculatePrice(400, nil, mondayMorning, time.UTC, PriceOptions{RacketCount: 2, ShoeCount: 1})
	assert.Equal(t, 13.0, breakdown.EquipmentFee)
	assert.Equal(t, 413.0, breakdown.Total)
}

func TestCalculatePriceSkipsInactiveAndUnknownRules(t *testing.T) {
	rules := []models.PricingRule{
		{ID: "w", Type: models.RuleWeekend, WeekendSurcharge: 100, IsActive: false},
		{ID: "x", Type: "happyHour", IsActive: true},
	}
	breakdown := CalculatePrice(400, rules, saturdayMorning, time.UTC, PriceOptions{})
	assert.Equal(t, 0.0, breakdown.WeekendFee)
	assert.Equal(t, 400.0, breakdown.Total)
}

func TestCalculatePriceUsesFacilityTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// Friday 23:30 UTC is already Saturday morning in Tokyo.
	fridayLateUTC := time.Date(2025, 6, 13, 23, 30, 0, 0, time.UTC)
	rules := []models.PricingRule{weekendRule(100)}

	utcView := CalculatePrice(400, rules, fridayLateUTC, time.UTC, PriceOptions{})
	assert.Equal(t, 0.0, utcView.WeekendFee)

	tokyoView := CalculatePrice(400, rules, fridayLateUTC, tokyo, PriceOptions{})
	assert.Equal(t, 100.0, tokyoView.WeekendFee)
}

func TestCalculatePriceIsPure(t *testing.T) {
	rules := []models.PricingRule{weekendRule(100), peakRule(18, 21, 1.5)}
	opts := PriceOptions{CourtType: models.CourtIndoor, RacketCount: 1, ShoeCount: 2}

	first := CalculatePrice(400, rules, saturdayEvening, time.UTC, opts)
	second := CalculatePrice(400, rules, saturdayEvening, time.UTC, opts)
	assert.Equal(t, first, second)

	// Fee components sum to the total per the documented formula.
	sum := first.BasePrice + first.PeakHourFee + first.WeekendFee + first.CourtTypeFee + first.EquipmentFee
	assert.Equal(t, first.Total, sum)
}
