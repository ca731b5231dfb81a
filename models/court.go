package models

// Court types.
const (
	CourtIndoor  = "indoor"
	CourtOutdoor = "outdoor"
)

// Court is a bookable court. Reference data, read-only during booking.
type Court struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Type      string  `bson:"type" json:"type"`
	BasePrice float64 `bson:"basePrice" json:"basePrice"`
}
