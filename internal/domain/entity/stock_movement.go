package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (delta con signo)
)

// StockMovement representa un movimiento auditable sobre una línea de stock.
// Se crea una sola vez y nunca se muta ni se borra.
// Quantity queda registrada con signo: positiva en entradas, negativa en salidas.
type StockMovement struct {
	ID        string
	StockID   string
	HarasID   string
	Type      string
	Quantity  decimal.Decimal
	Reason    string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
