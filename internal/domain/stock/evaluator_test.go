package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// stockWith construye una línea de stock con cantidad, umbral y capacidad dados.
func stockWith(qty, threshold, capacity float64) *entity.Stock {
	return &entity.Stock{
		ID:           "stock-1",
		HarasID:      "haras-1",
		Name:         "Heno de alfalfa",
		Category:     entity.CategoryHay,
		UnitMeasure:  "kg",
		Quantity:     decimal.NewFromFloat(qty),
		MinThreshold: decimal.NewFromFloat(threshold),
		MaxCapacity:  decimal.NewFromFloat(capacity),
		UnitCost:     decimal.NewFromFloat(2.5),
	}
}

func expiringAt(s *entity.Stock, exp time.Time) *entity.Stock {
	s.ExpirationDate = &exp
	return s
}

// ──────────────────────────────────────────────────────────────────────────────
// Status — niveles por porcentaje de llenado
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_NivelesPorPorcentaje(t *testing.T) {
	cases := []struct {
		name     string
		qty      float64
		capacity float64
		want     string
	}{
		{"p=5 critical", 5, 100, stock.StatusCritical},
		{"p=10 límite critical", 10, 100, stock.StatusCritical},
		{"p=25 límite low", 25, 100, stock.StatusLow},
		{"p=45 medium (ejemplo de referencia)", 45, 100, stock.StatusMedium},
		{"p=50 límite medium", 50, 100, stock.StatusMedium},
		{"p=51 good", 51, 100, stock.StatusGood},
		{"p=100 good", 100, 100, stock.StatusGood},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := stock.Status(stockWith(tc.qty, 50, tc.capacity))
			assert.Equal(t, tc.want, got)
		})
	}
}

// Capacidad cero o negativa: la división no está definida, se trata como critical.
func TestStatus_CapacidadCero_EsCritical(t *testing.T) {
	assert.Equal(t, stock.StatusCritical, stock.Status(stockWith(10, 5, 0)))
	assert.Equal(t, stock.StatusCritical, stock.Status(stockWith(10, 5, -1)))
}

// El nivel es monotónico en el porcentaje de llenado: a menor porcentaje
// nunca corresponde un nivel "mejor".
func TestStatus_MonotonicoEnPorcentaje(t *testing.T) {
	rank := map[string]int{
		stock.StatusCritical: 0,
		stock.StatusLow:      1,
		stock.StatusMedium:   2,
		stock.StatusGood:     3,
	}
	prev := -1
	for qty := 0; qty <= 100; qty++ {
		st := stock.Status(stockWith(float64(qty), 50, 100))
		r, ok := rank[st]
		require.True(t, ok, "nivel desconocido: %s", st)
		assert.GreaterOrEqual(t, r, prev, "nivel empeoró al subir el llenado (qty=%d)", qty)
		prev = r
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate — alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_StockBajo_SeveridadMedium(t *testing.T) {
	// Ejemplo de referencia: 45 <= 50 pero 45 > 25 (50*0.5) → medium.
	evals := stock.Evaluate(stockWith(45, 50, 100), testNow)
	require.Len(t, evals, 1)
	assert.Equal(t, entity.AlertLowStock, evals[0].Type)
	assert.Equal(t, entity.SeverityMedium, evals[0].Severity)
}

func TestEvaluate_StockMuyBajo_SeveridadHigh(t *testing.T) {
	// 5 <= 25 (50*0.5) → high.
	evals := stock.Evaluate(stockWith(5, 50, 100), testNow)
	require.Len(t, evals, 1)
	assert.Equal(t, entity.AlertLowStock, evals[0].Type)
	assert.Equal(t, entity.SeverityHigh, evals[0].Severity)
}

func TestEvaluate_StockSobreUmbral_SinAlerta(t *testing.T) {
	evals := stock.Evaluate(stockWith(51, 50, 100), testNow)
	assert.Empty(t, evals)
}

func TestEvaluate_UmbralExacto_GeneraAlerta(t *testing.T) {
	evals := stock.Evaluate(stockWith(50, 50, 100), testNow)
	require.Len(t, evals, 1)
	assert.Equal(t, entity.AlertLowStock, evals[0].Type)
}

// ──────────────────────────────────────────────────────────────────────────────
// Evaluate — alertas de vencimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluate_Vencido_SeveridadCritical(t *testing.T) {
	s := expiringAt(stockWith(80, 50, 100), testNow.AddDate(0, 0, -3))
	evals := stock.Evaluate(s, testNow)
	require.Len(t, evals, 1)
	assert.Equal(t, entity.AlertExpired, evals[0].Type)
	assert.Equal(t, entity.SeverityCritical, evals[0].Severity)
}

func TestEvaluate_VenceEn15Dias_NearExpiryMedium(t *testing.T) {
	// 15 días: dentro de la ventana de 30 pero fuera de la urgente de 7 → medium.
	s := expiringAt(stockWith(80, 50, 100), testNow.AddDate(0, 0, 15))
	evals := stock.Evaluate(s, testNow)
	require.Len(t, evals, 1)
	assert.Equal(t, entity.AlertNearExpiry, evals[0].Type)
	assert.Equal(t, entity.SeverityMedium, evals[0].Severity)
}

func TestEvaluate_VenceEn5Dias_NearExpiryHigh(t *testing.T) {
	s := expiringAt(stockWith(80, 50, 100), testNow.AddDate(0, 0, 5))
	evals := stock.Evaluate(s, testNow)
	require.Len(t, evals, 1)
	assert.Equal(t, entity.AlertNearExpiry, evals[0].Type)
	assert.Equal(t, entity.SeverityHigh, evals[0].Severity)
}

func TestEvaluate_VenceEn60Dias_SinAlerta(t *testing.T) {
	s := expiringAt(stockWith(80, 50, 100), testNow.AddDate(0, 0, 60))
	assert.Empty(t, stock.Evaluate(s, testNow))
}

func TestEvaluate_SinFechaVencimiento_SinAlertaDeVencimiento(t *testing.T) {
	assert.Empty(t, stock.Evaluate(stockWith(80, 50, 100), testNow))
}

// Stock bajo Y por vencer: ambas alertas a la vez.
func TestEvaluate_BajoYPorVencer_DosAlertas(t *testing.T) {
	s := expiringAt(stockWith(10, 50, 100), testNow.AddDate(0, 0, 3))
	evals := stock.Evaluate(s, testNow)
	require.Len(t, evals, 2)
	types := []string{evals[0].Type, evals[1].Type}
	assert.Contains(t, types, entity.AlertLowStock)
	assert.Contains(t, types, entity.AlertNearExpiry)
}
