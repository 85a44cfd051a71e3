package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, haras_id, name, category, unit_measure, quantity, min_threshold, max_capacity, unit_cost, expiration_date, location, created_at, updated_at`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste una nueva línea de stock.
func (r *StockRepo) Create(ctx context.Context, s *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, haras_id, name, category, unit_measure, quantity, min_threshold, max_capacity, unit_cost, expiration_date, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.HarasID, s.Name, s.Category, s.UnitMeasure,
		s.Quantity, s.MinThreshold, s.MaxCapacity, s.UnitCost,
		s.ExpirationDate, s.Location, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get stock")
}

// GetForUpdate obtiene una línea y bloquea la fila (SELECT FOR UPDATE).
// Usar solo dentro de una transacción del TxRunner.
func (r *StockRepo) GetForUpdate(ctx context.Context, id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get stock for update")
}

// ListByHaras lista las líneas del haras; category vacío lista todas.
func (r *StockRepo) ListByHaras(ctx context.Context, harasID, category string) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE haras_id = $1`
	args := []any{harasID}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := scanStock(rows, &s); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los atributos descriptivos de la línea (no la cantidad).
func (r *StockRepo) Update(ctx context.Context, s *entity.Stock) error {
	query := `
		UPDATE stocks SET name = $2, category = $3, unit_measure = $4, min_threshold = $5,
			max_capacity = $6, unit_cost = $7, expiration_date = $8, location = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Category, s.UnitMeasure, s.MinThreshold,
		s.MaxCapacity, s.UnitCost, s.ExpirationDate, s.Location, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// UpdateQuantity actualiza solo la cantidad (usado por el registrador de movimientos).
func (r *StockRepo) UpdateQuantity(ctx context.Context, s *entity.Stock) error {
	_, err := r.q.Exec(ctx,
		`UPDATE stocks SET quantity = $2, updated_at = $3 WHERE id = $1`,
		s.ID, s.Quantity, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	return nil
}

func (r *StockRepo) scanOne(row pgx.Row, op string) (*entity.Stock, error) {
	var s entity.Stock
	if err := scanStock(row, &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

func scanStock(row pgx.Row, s *entity.Stock) error {
	return row.Scan(
		&s.ID, &s.HarasID, &s.Name, &s.Category, &s.UnitMeasure,
		&s.Quantity, &s.MinThreshold, &s.MaxCapacity, &s.UnitCost,
		&s.ExpirationDate, &s.Location, &s.CreatedAt, &s.UpdatedAt,
	)
}
