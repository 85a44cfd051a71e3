package entity

import "time"

// Estados de una baia.
const (
	StallFree        = "free"
	StallOccupied    = "occupied"
	StallMaintenance = "maintenance"
)

// Stall representa una baia: unidad física que aloja a un caballo.
// HorseID es nil salvo cuando Status es occupied.
type Stall struct {
	ID        string
	HarasID   string
	Number    string
	Status    string // free, occupied, maintenance
	HorseID   *string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
