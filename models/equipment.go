package models

import "strings"

// EquipmentCategory is the typed key for the shared equipment pool.
// Catalog rows are matched to categories by name at the repository
// boundary so the availability check never compares strings.
type EquipmentCategory string

const (
	CategoryRacket EquipmentCategory = "racket"
	CategoryShoes  EquipmentCategory = "shoes"
)

// Equipment is a catalog entry acting as a shared capacity pool.
// Stock is not time-partitioned; instantaneous availability is derived
// by summing demand from overlapping confirmed bookings.
type Equipment struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	TotalStock int    `bson:"totalStock" json:"totalStock"`
}

// CategoryForName resolves a catalog row name to its category key.
func CategoryForName(name string) (EquipmentCategory, bool) {
	switch EquipmentCategory(strings.ToLower(name)) {
	case CategoryRacket:
		return CategoryRacket, true
	case CategoryShoes:
		return CategoryShoes, true
	}
	return "", false
}
