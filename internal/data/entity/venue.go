package entity

import (
	"github.com/google/uuid"
)

// Venue is an immutable catalog record. The catalog is seeded at startup
// and never mutated afterwards.
type Venue struct {
	ID             uuid.UUID
	Name           string
	Location       string
	Rating         float64
	PricePerPerson float64
	Description    string
	ImageURL       string
	Category       string
	Featured       bool
	ManagerID      uuid.UUID
}
