package models

// Coach is a bookable coach. IsAvailable is an administrative flag,
// independent of the time-based conflict check.
type Coach struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Sport       string `bson:"sport" json:"sport"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}
