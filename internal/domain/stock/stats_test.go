package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/stock"
)

// Lista vacía: resumen en ceros con mapa de categorías vacío.
func TestAggregate_ListaVacia_ResumenEnCeros(t *testing.T) {
	sum := stock.Aggregate(nil, testNow)

	assert.Equal(t, 0, sum.TotalItems)
	assert.True(t, sum.TotalValue.IsZero(), "valor total debe ser cero")
	assert.Equal(t, 0, sum.LowStockItems)
	assert.Equal(t, 0, sum.ExpiredItems)
	assert.Equal(t, 0, sum.NearExpiryItems)
	assert.Empty(t, sum.ByCategory)
}

func TestAggregate_TotalesYCategorias(t *testing.T) {
	heno := stockWith(100, 50, 500) // hay, 100 kg a 2.5 → 250
	heno.ID = "s-heno"
	avena := stockWith(40, 50, 200) // baja (40 <= 50), 40 a 2.5 → 100
	avena.ID = "s-avena"
	avena.Name = "Avena"
	avena.Category = entity.CategoryGrain
	ivermectina := expiringAt(stockWith(20, 5, 50), testNow.AddDate(0, 0, -1)) // vencida, 20 a 2.5 → 50
	ivermectina.ID = "s-iver"
	ivermectina.Name = "Ivermectina"
	ivermectina.Category = entity.CategoryMedicine
	vacuna := expiringAt(stockWith(30, 5, 50), testNow.AddDate(0, 0, 10)) // por vencer, 30 a 2.5 → 75
	vacuna.ID = "s-vacuna"
	vacuna.Name = "Vacuna influenza"
	vacuna.Category = entity.CategoryMedicine

	sum := stock.Aggregate([]*entity.Stock{heno, avena, ivermectina, vacuna}, testNow)

	assert.Equal(t, 4, sum.TotalItems)
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromFloat(475)),
		"valor total = 250+100+50+75, obtenido %s", sum.TotalValue)
	assert.Equal(t, 1, sum.LowStockItems, "solo la avena está bajo umbral")
	assert.Equal(t, 1, sum.ExpiredItems)
	assert.Equal(t, 1, sum.NearExpiryItems)

	// El desglose se compara como mapa, sin orden.
	require.Len(t, sum.ByCategory, 3)

	med := sum.ByCategory[entity.CategoryMedicine]
	assert.Equal(t, 2, med.Count)
	assert.True(t, med.Quantity.Equal(decimal.NewFromFloat(50)))
	assert.True(t, med.Value.Equal(decimal.NewFromFloat(125)))

	hay := sum.ByCategory[entity.CategoryHay]
	assert.Equal(t, 1, hay.Count)
	assert.True(t, hay.Value.Equal(decimal.NewFromFloat(250)))
}

// Agregación determinista y de un solo paso: dos llamadas con la misma
// entrada producen el mismo resultado.
func TestAggregate_Determinista(t *testing.T) {
	items := []*entity.Stock{
		stockWith(10, 50, 100),
		stockWith(70, 50, 100),
	}
	a := stock.Aggregate(items, testNow)
	b := stock.Aggregate(items, testNow)

	assert.Equal(t, a.TotalItems, b.TotalItems)
	assert.True(t, a.TotalValue.Equal(b.TotalValue))
	assert.Equal(t, a.LowStockItems, b.LowStockItems)
}
