package entity

import "time"

// Tipos de alerta de stock.
const (
	AlertLowStock   = "low_stock"
	AlertExpired    = "expired"
	AlertNearExpiry = "near_expiry"
)

// Severidades de alerta.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// StockAlert es un aviso derivado, no autoritativo, generado al reevaluar
// el stock. Se resuelve explícitamente por acción del usuario.
type StockAlert struct {
	ID         string
	StockID    string
	HarasID    string
	Type       string // low_stock, expired, near_expiry
	Severity   string // low, medium, high, critical
	Message    string
	IsResolved bool
	CreatedAt  time.Time
}
