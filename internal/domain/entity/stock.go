package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de stock (alimentos y medicamentos).
const (
	CategoryHay         = "hay"
	CategoryGrain       = "grain"
	CategorySupplement  = "supplement"
	CategoryConcentrate = "concentrate"
	CategoryPellets     = "pellets"
	CategoryMedicine    = "medicine"
	CategoryOther       = "other"
)

// ValidCategory indica si la categoría es una de las soportadas.
func ValidCategory(c string) bool {
	switch c {
	case CategoryHay, CategoryGrain, CategorySupplement, CategoryConcentrate,
		CategoryPellets, CategoryMedicine, CategoryOther:
		return true
	}
	return false
}

// Stock representa una línea de inventario consumible del haras
// (alimento, suplemento o medicamento). Quantity solo se muta vía
// movimientos, nunca directamente.
type Stock struct {
	ID             string
	HarasID        string
	Name           string
	Category       string
	UnitMeasure    string          // kg, litro, dosis, fardo...
	Quantity       decimal.Decimal // invariante: >= 0
	MinThreshold   decimal.Decimal
	MaxCapacity    decimal.Decimal
	UnitCost       decimal.Decimal
	ExpirationDate *time.Time
	Location       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLow indica si el stock está en o por debajo de su umbral mínimo.
func (s *Stock) IsLow() bool {
	return s.Quantity.LessThanOrEqual(s.MinThreshold)
}
