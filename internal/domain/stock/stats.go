package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// CategorySummary resumen de una categoría de stock.
type CategorySummary struct {
	Count    int
	Quantity decimal.Decimal
	Value    decimal.Decimal
}

// Summary resumen agregado del inventario de un haras.
type Summary struct {
	TotalItems      int
	TotalValue      decimal.Decimal
	LowStockItems   int
	ExpiredItems    int
	NearExpiryItems int
	ByCategory      map[string]CategorySummary
}

// Aggregate pliega la lista de líneas de stock en un resumen: conteo total,
// valor monetario (Σ cantidad*costo unitario), líneas bajas/vencidas/por vencer
// y desglose por categoría. Un solo paso, determinista; lista vacía produce
// un resumen en ceros con mapa vacío.
func Aggregate(items []*entity.Stock, now time.Time) Summary {
	sum := Summary{
		TotalValue: decimal.Zero,
		ByCategory: make(map[string]CategorySummary),
	}

	for _, s := range items {
		sum.TotalItems++
		value := s.Quantity.Mul(s.UnitCost)
		sum.TotalValue = sum.TotalValue.Add(value)

		if s.IsLow() {
			sum.LowStockItems++
		}
		if s.ExpirationDate != nil {
			if exp := *s.ExpirationDate; exp.Before(now) {
				sum.ExpiredItems++
			} else if daysUntil(now, exp) <= nearExpiryWindowDays {
				sum.NearExpiryItems++
			}
		}

		cat := sum.ByCategory[s.Category]
		cat.Count++
		cat.Quantity = cat.Quantity.Add(s.Quantity)
		cat.Value = cat.Value.Add(value)
		sum.ByCategory[s.Category] = cat
	}

	return sum
}
