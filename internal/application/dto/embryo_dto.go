package dto

import "time"

// CreateEmbryoTransferRequest body para POST /api/embryos.
type CreateEmbryoTransferRequest struct {
	DonorMareID     string     `json:"donor_mare_id" validate:"required,uuid"`
	StallionName    string     `json:"stallion_name" validate:"required,min=1,max=200"`
	RecipientMareID *string    `json:"recipient_mare_id,omitempty"`
	VetID           *string    `json:"vet_id,omitempty"`
	TransferDate    *time.Time `json:"transfer_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// UpdateEmbryoStatusRequest body para PUT /api/embryos/:id/status.
type UpdateEmbryoStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=transferred confirmed failed"`
	Notes  string `json:"notes,omitempty"`
}

// EmbryoTransferResponse salida de una transferencia embrionaria.
type EmbryoTransferResponse struct {
	ID              string     `json:"id"`
	HarasID         string     `json:"haras_id"`
	DonorMareID     string     `json:"donor_mare_id"`
	StallionName    string     `json:"stallion_name"`
	RecipientMareID *string    `json:"recipient_mare_id,omitempty"`
	VetID           *string    `json:"vet_id,omitempty"`
	TransferDate    *time.Time `json:"transfer_date,omitempty"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
