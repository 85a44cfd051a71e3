package entity

import "time"

// Horse representa un caballo del haras.
type Horse struct {
	ID        string
	HarasID   string
	Name      string
	Breed     string
	Sex       string // macho, hembra
	BirthDate *time.Time
	PhotoURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
