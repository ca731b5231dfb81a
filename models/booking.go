package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingResources holds the extra resources attached to a booking.
type BookingResources struct {
	RacketCount int    `bson:"racketCount" json:"racketCount"`
	ShoeCount   int    `bson:"shoeCount" json:"shoeCount"`
	CoachID     string `bson:"coachId,omitempty" json:"coachId,omitempty"`
}

// PriceBreakdown is the itemized result of a price calculation. It is
// snapshotted onto the booking at creation time and never recomputed,
// even if pricing rules change afterwards.
type PriceBreakdown struct {
	BasePrice    float64 `bson:"basePrice" json:"basePrice"`
	WeekendFee   float64 `bson:"weekendFee" json:"weekendFee"`
	PeakHourFee  float64 `bson:"peakHourFee" json:"peakHourFee"`
	CourtTypeFee float64 `bson:"courtTypeFee" json:"courtTypeFee"`
	EquipmentFee float64 `bson:"equipmentFee" json:"equipmentFee"`
	Total        float64 `bson:"total" json:"total"`
}

// Booking represents a court reservation record.
// Only confirmed bookings participate in conflict detection.
type Booking struct {
	ID               string           `bson:"id" json:"id"`
	UserName         string           `bson:"userName" json:"userName"`
	CourtID          string           `bson:"courtId" json:"courtId"`
	StartTime        time.Time        `bson:"startTime" json:"startTime"`
	EndTime          time.Time        `bson:"endTime" json:"endTime"`
	Resources        BookingResources `bson:"resources" json:"resources"`
	Status           BookingStatus    `bson:"status" json:"status"`
	PricingBreakdown PriceBreakdown   `bson:"pricingBreakdown" json:"pricingBreakdown"`
	CreatedAt        time.Time        `bson:"createdAt" json:"createdAt"`
}

// BookingDetail is a booking with its referenced court and coach populated,
// as returned by the listing endpoint.
type BookingDetail struct {
	Booking
	Court *Court `json:"court,omitempty"`
	Coach *Coach `json:"coach,omitempty"`
}
