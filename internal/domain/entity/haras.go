package entity

import "time"

// Haras representa la unidad organizacional (criadero/establecimiento ecuestre)
// a la que pertenecen usuarios, baias, caballos y stock.
type Haras struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
