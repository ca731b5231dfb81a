package models

// RuleType discriminates pricing rule variants.
type RuleType string

const (
	RuleWeekend   RuleType = "weekend"
	RulePeak      RuleType = "peak"
	RuleCourtType RuleType = "courtType"
	RuleFixed     RuleType = "fixed"
)

// PricingRule is the stored shape of a pricing rule. It carries the
// union of all variant fields; absent numeric fields decode to zero.
// Only active rules participate in price calculation. Multiple rules of
// the same type may coexist and all apply.
type PricingRule struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Type     RuleType `bson:"type" json:"type"`
	IsActive bool     `bson:"isActive" json:"isActive"`

	WeekendSurcharge float64 `bson:"weekendSurcharge,omitempty" json:"weekendSurcharge,omitempty"`

	StartHour  int     `bson:"startHour,omitempty" json:"startHour,omitempty"`
	EndHour    int     `bson:"endHour,omitempty" json:"endHour,omitempty"`
	Multiplier float64 `bson:"multiplier,omitempty" json:"multiplier,omitempty"`

	CourtType          string  `bson:"courtType,omitempty" json:"courtType,omitempty"`
	CourtTypeSurcharge float64 `bson:"courtTypeSurcharge,omitempty" json:"courtTypeSurcharge,omitempty"`

	FixedSurcharge float64 `bson:"fixedSurcharge,omitempty" json:"fixedSurcharge,omitempty"`
}

// RuleVariant is the tagged view of a PricingRule, carrying only the
// fields relevant to its type.
type RuleVariant interface {
	ruleVariant()
}

type WeekendRule struct {
	Surcharge float64
}

type PeakRule struct {
	StartHour  int
	EndHour    int
	Multiplier float64
}

type CourtTypeRule struct {
	CourtType string
	Surcharge float64
}

type FixedRule struct {
	Surcharge float64
}

func (WeekendRule) ruleVariant()   {}
func (PeakRule) ruleVariant()      {}
func (CourtTypeRule) ruleVariant() {}
func (FixedRule) ruleVariant()     {}

// Variant converts the stored rule into its typed variant. A zero peak
// multiplier is read as 1 so a half-written rule cannot zero out the
// price. Returns false for unknown rule types.
func (r PricingRule) Variant() (RuleVariant, bool) {
	switch r.Type {
	case RuleWeekend:
		return WeekendRule{Surcharge: r.WeekendSurcharge}, true
	case RulePeak:
		mult := r.Multiplier
		if mult == 0 {
			mult = 1
		}
		return PeakRule{StartHour: r.StartHour, EndHour: r.EndHour, Multiplier: mult}, true
	case RuleCourtType:
		return CourtTypeRule{CourtType: r.CourtType, Surcharge: r.CourtTypeSurcharge}, true
	case RuleFixed:
		return FixedRule{Surcharge: r.FixedSurcharge}, true
	}
	return nil, false
}
