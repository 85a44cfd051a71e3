package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
)

var stockCols = []string{
	"id", "haras_id", "name", "category", "unit_measure",
	"quantity", "min_threshold", "max_capacity", "unit_cost",
	"expiration_date", "location", "created_at", "updated_at",
}

func stockRow(id string, qty float64) *pgxmock.Rows {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return pgxmock.NewRows(stockCols).AddRow(
		id, "haras-1", "Heno de alfalfa", entity.CategoryHay, "kg",
		decimal.NewFromFloat(qty), decimal.NewFromFloat(50), decimal.NewFromFloat(500),
		decimal.NewFromFloat(2.5), (*time.Time)(nil), "galpón A", now, now,
	)
}

func TestStockRepo_GetByID_Encontrado(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewStockRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM stocks WHERE id = \$1`).
		WithArgs("stock-1").
		WillReturnRows(stockRow("stock-1", 120))

	s, err := repo.GetByID(context.Background(), "stock-1")

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "stock-1", s.ID)
	assert.Equal(t, "haras-1", s.HarasID)
	assert.True(t, s.Quantity.Equal(decimal.NewFromFloat(120)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepo_GetByID_Inexistente_NilNil(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewStockRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM stocks WHERE id = \$1`).
		WithArgs("no-existe").
		WillReturnRows(pgxmock.NewRows(stockCols))

	s, err := repo.GetByID(context.Background(), "no-existe")

	assert.NoError(t, err)
	assert.Nil(t, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepo_GetForUpdate_BloqueaFila(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewStockRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM stocks WHERE id = \$1 FOR UPDATE`).
		WithArgs("stock-1").
		WillReturnRows(stockRow("stock-1", 80))

	s, err := repo.GetForUpdate(context.Background(), "stock-1")

	require.NoError(t, err)
	require.NotNil(t, s)
	assert.True(t, s.Quantity.Equal(decimal.NewFromFloat(80)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepo_ListByHaras_FiltraPorCategoria(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewStockRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM stocks WHERE haras_id = \$1 AND category = \$2 ORDER BY name ASC`).
		WithArgs("haras-1", entity.CategoryHay).
		WillReturnRows(stockRow("stock-1", 120))

	list, err := repo.ListByHaras(context.Background(), "haras-1", entity.CategoryHay)

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.CategoryHay, list[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepo_Create_DuplicadoDevuelveErrDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewStockRepository(mock)

	mock.ExpectExec(`INSERT INTO stocks`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	s := &entity.Stock{ID: "stock-1", HarasID: "haras-1", Name: "Heno", Category: entity.CategoryHay}
	err = repo.Create(context.Background(), s)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStockRepo_UpdateQuantity_SoloCantidad(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewStockRepository(mock)

	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	qty := decimal.NewFromFloat(95)
	mock.ExpectExec(`UPDATE stocks SET quantity = \$2, updated_at = \$3 WHERE id = \$1`).
		WithArgs("stock-1", qty, now).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateQuantity(context.Background(), &entity.Stock{ID: "stock-1", Quantity: qty, UpdatedAt: now})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
