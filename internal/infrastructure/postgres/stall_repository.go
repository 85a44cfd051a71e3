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

var _ repository.StallRepository = (*StallRepo)(nil)

// StallRepo implementación del puerto StallRepository sobre PostgreSQL.
type StallRepo struct {
	pool *pgxpool.Pool
}

// NewStallRepository construye el adaptador de persistencia de baias.
func NewStallRepository(pool *pgxpool.Pool) *StallRepo {
	return &StallRepo{pool: pool}
}

// Create persiste una nueva baia. El número debe ser único por haras.
func (r *StallRepo) Create(ctx context.Context, s *entity.Stall) error {
	query := `
		INSERT INTO stalls (id, haras_id, number, status, horse_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.HarasID, s.Number, s.Status, s.HorseID, s.Notes, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stall: %w", err)
	}
	return nil
}

// GetByID obtiene una baia por ID.
func (r *StallRepo) GetByID(ctx context.Context, id string) (*entity.Stall, error) {
	query := `
		SELECT id, haras_id, number, status, horse_id, notes, created_at, updated_at
		FROM stalls WHERE id = $1`
	var s entity.Stall
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.HarasID, &s.Number, &s.Status, &s.HorseID, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stall: %w", err)
	}
	return &s, nil
}

// ListByHaras lista las baias del haras ordenadas por número.
func (r *StallRepo) ListByHaras(ctx context.Context, harasID string) ([]*entity.Stall, error) {
	query := `
		SELECT id, haras_id, number, status, horse_id, notes, created_at, updated_at
		FROM stalls WHERE haras_id = $1 ORDER BY number ASC`
	rows, err := r.pool.Query(ctx, query, harasID)
	if err != nil {
		return nil, fmt.Errorf("list stalls: %w", err)
	}
	defer rows.Close()

	var list []*entity.Stall
	for rows.Next() {
		var s entity.Stall
		if err := rows.Scan(&s.ID, &s.HarasID, &s.Number, &s.Status, &s.HorseID,
			&s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stall: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza estado, caballo asignado y notas de la baia.
func (r *StallRepo) Update(ctx context.Context, s *entity.Stall) error {
	query := `
		UPDATE stalls SET status = $2, horse_id = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, s.ID, s.Status, s.HorseID, s.Notes, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stall: %w", err)
	}
	return nil
}
