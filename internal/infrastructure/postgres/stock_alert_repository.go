package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

// StockAlertRepo implementación del puerto StockAlertRepository sobre PostgreSQL.
type StockAlertRepo struct {
	pool *pgxpool.Pool
}

// NewStockAlertRepository construye el adaptador de alertas.
func NewStockAlertRepository(pool *pgxpool.Pool) *StockAlertRepo {
	return &StockAlertRepo{pool: pool}
}

// Create persiste una alerta.
func (r *StockAlertRepo) Create(ctx context.Context, a *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (id, stock_id, haras_id, type, severity, message, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		a.ID, a.StockID, a.HarasID, a.Type, a.Severity, a.Message, a.IsResolved, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID.
func (r *StockAlertRepo) GetByID(ctx context.Context, id string) (*entity.StockAlert, error) {
	query := `
		SELECT id, stock_id, haras_id, type, severity, message, is_resolved, created_at
		FROM stock_alerts WHERE id = $1`
	var a entity.StockAlert
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.StockID, &a.HarasID, &a.Type, &a.Severity, &a.Message, &a.IsResolved, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock alert: %w", err)
	}
	return &a, nil
}

// ListByHaras lista las alertas del haras; por defecto solo las no resueltas.
func (r *StockAlertRepo) ListByHaras(ctx context.Context, harasID string, includeResolved bool) ([]*entity.StockAlert, error) {
	query := `
		SELECT id, stock_id, haras_id, type, severity, message, is_resolved, created_at
		FROM stock_alerts WHERE haras_id = $1`
	if !includeResolved {
		query += ` AND is_resolved = false`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, harasID)
	if err != nil {
		return nil, fmt.Errorf("list stock alerts: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.StockID, &a.HarasID, &a.Type, &a.Severity,
			&a.Message, &a.IsResolved, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Resolve marca la alerta como resuelta. El haras_id en el WHERE evita
// resolver alertas de otro haras.
func (r *StockAlertRepo) Resolve(ctx context.Context, id, harasID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE stock_alerts SET is_resolved = true WHERE id = $1 AND haras_id = $2`,
		id, harasID,
	)
	if err != nil {
		return fmt.Errorf("resolve stock alert: %w", err)
	}
	return nil
}

// DeleteUnresolvedByHaras borra las alertas no resueltas del haras antes de
// una reevaluación completa. Las resueltas quedan como historial.
func (r *StockAlertRepo) DeleteUnresolvedByHaras(ctx context.Context, harasID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM stock_alerts WHERE haras_id = $1 AND is_resolved = false`,
		harasID,
	)
	if err != nil {
		return fmt.Errorf("delete unresolved alerts: %w", err)
	}
	return nil
}
