package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockRequest body para POST /api/feed-stocks.
type CreateStockRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Category       string          `json:"category" validate:"required"`
	UnitMeasure    string          `json:"unit_measure" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	MaxCapacity    decimal.Decimal `json:"max_capacity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Location       string          `json:"location,omitempty"`
}

// UpdateStockRequest body para PUT /api/feed-stocks/:id.
// La cantidad no se actualiza por aquí: solo vía movimientos.
type UpdateStockRequest struct {
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitMeasure    string          `json:"unit_measure"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	MaxCapacity    decimal.Decimal `json:"max_capacity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Location       string          `json:"location,omitempty"`
}

// StockResponse salida de una línea de stock con su estado calculado.
type StockResponse struct {
	ID             string          `json:"id"`
	HarasID        string          `json:"haras_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	UnitMeasure    string          `json:"unit_measure"`
	Quantity       decimal.Decimal `json:"quantity"`
	MinThreshold   decimal.Decimal `json:"min_threshold"`
	MaxCapacity    decimal.Decimal `json:"max_capacity"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Location       string          `json:"location,omitempty"`
	Status         string          `json:"status"` // critical, low, medium, good
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// RegisterMovementRequest body para POST /api/feed-stocks/movements.
// El tipo se acepta en minúsculas (in|out|adjustment) como llega del cliente.
type RegisterMovementRequest struct {
	StockID  string          `json:"stock_id" validate:"required,uuid"`
	Type     string          `json:"type" validate:"required,oneof=in out adjustment"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason" validate:"required"`
	Notes    string          `json:"notes,omitempty"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID        string          `json:"id"`
	StockID   string          `json:"stock_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	Notes     string          `json:"notes,omitempty"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}

// AlertResponse salida de una alerta de stock.
type AlertResponse struct {
	ID         string    `json:"id"`
	StockID    string    `json:"stock_id"`
	Type       string    `json:"type"`
	Severity   string    `json:"severity"`
	Message    string    `json:"message"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

// CategorySummaryDTO desglose por categoría dentro del resumen.
type CategorySummaryDTO struct {
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// StockSummaryResponse resumen agregado del inventario.
type StockSummaryResponse struct {
	TotalItems      int                           `json:"total_items"`
	TotalValue      decimal.Decimal               `json:"total_value"`
	LowStockItems   int                           `json:"low_stock_items"`
	ExpiredItems    int                           `json:"expired_items"`
	NearExpiryItems int                           `json:"near_expiry_items"`
	ByCategory      map[string]CategorySummaryDTO `json:"by_category"`
}
