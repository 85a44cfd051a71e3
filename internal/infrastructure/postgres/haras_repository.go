package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
)

var _ repository.HarasRepository = (*HarasRepo)(nil)

// HarasRepo implementación del puerto HarasRepository sobre PostgreSQL.
type HarasRepo struct {
	pool *pgxpool.Pool
}

// NewHarasRepository construye el adaptador de persistencia del haras.
func NewHarasRepository(pool *pgxpool.Pool) *HarasRepo {
	return &HarasRepo{pool: pool}
}

// Create persiste un nuevo haras.
func (r *HarasRepo) Create(ctx context.Context, h *entity.Haras) error {
	query := `
		INSERT INTO haras (id, name, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		h.ID, h.Name, h.Address, h.Phone, h.Email, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert haras: %w", err)
	}
	return nil
}

// GetByID obtiene un haras por ID.
func (r *HarasRepo) GetByID(ctx context.Context, id string) (*entity.Haras, error) {
	query := `
		SELECT id, name, address, phone, email, created_at, updated_at
		FROM haras WHERE id = $1`
	var h entity.Haras
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Address, &h.Phone, &h.Email, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get haras: %w", err)
	}
	return &h, nil
}

// List lista haras con paginación.
func (r *HarasRepo) List(ctx context.Context, limit, offset int) ([]*entity.Haras, error) {
	query := `
		SELECT id, name, address, phone, email, created_at, updated_at
		FROM haras ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list haras: %w", err)
	}
	defer rows.Close()

	var list []*entity.Haras
	for rows.Next() {
		var h entity.Haras
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Phone, &h.Email, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan haras: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// ListIDs devuelve los IDs de todos los haras (para trabajos programados).
func (r *HarasRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM haras`)
	if err != nil {
		return nil, fmt.Errorf("list haras ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan haras id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
