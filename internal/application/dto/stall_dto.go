package dto

import "time"

// CreateStallRequest body para POST /api/stalls.
type CreateStallRequest struct {
	Number string `json:"number" validate:"required,min=1,max=20"`
	Notes  string `json:"notes,omitempty"`
}

// OccupyStallRequest body para PUT /api/stalls/:id/occupy.
type OccupyStallRequest struct {
	HorseID string `json:"horse_id" validate:"required,uuid"`
}

// StallResponse salida de una baia.
type StallResponse struct {
	ID        string    `json:"id"`
	HarasID   string    `json:"haras_id"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	HorseID   *string   `json:"horse_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
