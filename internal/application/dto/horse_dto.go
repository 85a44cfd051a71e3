package dto

import "time"

// CreateHorseRequest body para POST /api/horses.
type CreateHorseRequest struct {
	Name      string     `json:"name" validate:"required,min=1,max=200"`
	Breed     string     `json:"breed,omitempty"`
	Sex       string     `json:"sex" validate:"required,oneof=macho hembra"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
}

// UpdateHorseRequest body para PUT /api/horses/:id.
type UpdateHorseRequest struct {
	Name      string     `json:"name"`
	Breed     string     `json:"breed,omitempty"`
	Sex       string     `json:"sex,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
}

// HorseResponse salida de un caballo.
type HorseResponse struct {
	ID        string     `json:"id"`
	HarasID   string     `json:"haras_id"`
	Name      string     `json:"name"`
	Breed     string     `json:"breed,omitempty"`
	Sex       string     `json:"sex"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	PhotoURL  string     `json:"photo_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
