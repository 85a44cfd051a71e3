package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harasdev/haras-api/internal/application/inventory"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
)

// memAlertRepo repositorio de alertas en memoria.
type memAlertRepo struct {
	alerts map[string]*entity.StockAlert
}

func newMemAlertRepo() *memAlertRepo {
	return &memAlertRepo{alerts: make(map[string]*entity.StockAlert)}
}

func (r *memAlertRepo) Create(ctx context.Context, a *entity.StockAlert) error {
	cp := *a
	r.alerts[a.ID] = &cp
	return nil
}

func (r *memAlertRepo) GetByID(ctx context.Context, id string) (*entity.StockAlert, error) {
	a, ok := r.alerts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *memAlertRepo) ListByHaras(ctx context.Context, harasID string, includeResolved bool) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.alerts {
		if a.HarasID != harasID {
			continue
		}
		if !includeResolved && a.IsResolved {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAlertRepo) Resolve(ctx context.Context, id, harasID string) error {
	a, ok := r.alerts[id]
	if !ok || a.HarasID != harasID {
		return domain.ErrNotFound
	}
	a.IsResolved = true
	return nil
}

func (r *memAlertRepo) DeleteUnresolvedByHaras(ctx context.Context, harasID string) error {
	for id, a := range r.alerts {
		if a.HarasID == harasID && !a.IsResolved {
			delete(r.alerts, id)
		}
	}
	return nil
}

var alertNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return alertNow }

// ──────────────────────────────────────────────────────────────────────────────
// Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestRefresh_GeneraAlertasPorLineaBaja(t *testing.T) {
	bajo := heno(10) // 10 <= 50 y 10 <= 25 → low_stock high
	stockRepo := newMemStockRepo(bajo)
	alertRepo := newMemAlertRepo()
	uc := inventory.NewAlertUseCase(stockRepo, alertRepo, fixedNow)

	alerts, err := uc.Refresh(context.Background(), "haras-1")

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.AlertLowStock, alerts[0].Type)
	assert.Equal(t, entity.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, "stock-heno", alerts[0].StockID)
	assert.False(t, alerts[0].IsResolved)
}

func TestRefresh_StockSano_SinAlertas(t *testing.T) {
	sano := heno(400)
	uc := inventory.NewAlertUseCase(newMemStockRepo(sano), newMemAlertRepo(), fixedNow)

	alerts, err := uc.Refresh(context.Background(), "haras-1")
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

// Refresh reemplaza las no resueltas (no duplica) y conserva las resueltas.
func TestRefresh_ReemplazaNoResueltasYConservaResueltas(t *testing.T) {
	bajo := heno(10)
	stockRepo := newMemStockRepo(bajo)
	alertRepo := newMemAlertRepo()
	uc := inventory.NewAlertUseCase(stockRepo, alertRepo, fixedNow)
	ctx := context.Background()

	primera, err := uc.Refresh(ctx, "haras-1")
	require.NoError(t, err)
	require.Len(t, primera, 1)

	// El usuario resuelve la alerta; una reevaluación posterior genera una nueva
	// (la condición persiste) pero la resuelta queda como historial.
	require.NoError(t, uc.Resolve(ctx, "haras-1", primera[0].ID))

	segunda, err := uc.Refresh(ctx, "haras-1")
	require.NoError(t, err)
	require.Len(t, segunda, 1)
	assert.NotEqual(t, primera[0].ID, segunda[0].ID)

	todas, err := uc.List(ctx, "haras-1", true)
	require.NoError(t, err)
	assert.Len(t, todas, 2, "resuelta histórica + vigente")

	vigentes, err := uc.List(ctx, "haras-1", false)
	require.NoError(t, err)
	assert.Len(t, vigentes, 1)
}

func TestRefresh_MultiplesCondiciones(t *testing.T) {
	exp := alertNow.AddDate(0, 0, 3)
	vacuna := heno(10)
	vacuna.ID = "stock-vacuna"
	vacuna.Name = "Vacuna influenza"
	vacuna.Category = entity.CategoryMedicine
	vacuna.ExpirationDate = &exp

	uc := inventory.NewAlertUseCase(newMemStockRepo(vacuna), newMemAlertRepo(), fixedNow)

	alerts, err := uc.Refresh(context.Background(), "haras-1")
	require.NoError(t, err)
	assert.Len(t, alerts, 2, "línea baja y por vencer a la vez")
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_AlertaInexistente_NotFound(t *testing.T) {
	uc := inventory.NewAlertUseCase(newMemStockRepo(), newMemAlertRepo(), fixedNow)

	err := uc.Resolve(context.Background(), "haras-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolve_AlertaDeOtroHaras_NotFound(t *testing.T) {
	alertRepo := newMemAlertRepo()
	_ = alertRepo.Create(context.Background(), &entity.StockAlert{
		ID:      "alerta-ajena",
		StockID: "s-1",
		HarasID: "haras-ajeno",
		Type:    entity.AlertLowStock,
	})
	uc := inventory.NewAlertUseCase(newMemStockRepo(), alertRepo, fixedNow)

	err := uc.Resolve(context.Background(), "haras-1", "alerta-ajena")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Resumen vía StockUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_AgregaDesdeRepositorio(t *testing.T) {
	a := heno(100)
	b := heno(10)
	b.ID = "stock-avena"
	b.Name = "Avena"
	b.Category = entity.CategoryGrain
	stockRepo := newMemStockRepo(a, b)
	uc := inventory.NewStockUseCase(stockRepo, &memMovementRepo{}, fixedNow)

	sum, err := uc.Summary(context.Background(), "haras-1")

	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalItems)
	assert.Equal(t, 1, sum.LowStockItems)
	assert.True(t, sum.TotalValue.Equal(decimal.NewFromFloat(275)), "100*2.5 + 10*2.5")
	assert.Len(t, sum.ByCategory, 2)
}

func TestSummary_HarasSinStock_EnCeros(t *testing.T) {
	uc := inventory.NewStockUseCase(newMemStockRepo(), &memMovementRepo{}, fixedNow)

	sum, err := uc.Summary(context.Background(), "haras-1")

	require.NoError(t, err)
	assert.Equal(t, 0, sum.TotalItems)
	assert.True(t, sum.TotalValue.IsZero())
	assert.Empty(t, sum.ByCategory)
}
