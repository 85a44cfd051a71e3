package entity

import "time"

// Estados de una transferencia de embrión.
const (
	EmbryoPlanned     = "planned"
	EmbryoTransferred = "transferred"
	EmbryoConfirmed   = "confirmed"
	EmbryoFailed      = "failed"
)

// EmbryoTransfer representa el registro de una transferencia embrionaria:
// yegua donante, padrillo y yegua receptora, con su estado clínico.
type EmbryoTransfer struct {
	ID              string
	HarasID         string
	DonorMareID     string
	StallionName    string
	RecipientMareID *string
	VetID           *string
	TransferDate    *time.Time
	Status          string // planned, transferred, confirmed, failed
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NextEmbryoStatuses transiciones válidas desde cada estado.
func NextEmbryoStatuses(from string) []string {
	switch from {
	case EmbryoPlanned:
		return []string{EmbryoTransferred, EmbryoFailed}
	case EmbryoTransferred:
		return []string{EmbryoConfirmed, EmbryoFailed}
	default:
		return nil
	}
}
