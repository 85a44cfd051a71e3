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

var _ repository.HorseRepository = (*HorseRepo)(nil)

// HorseRepo implementación del puerto HorseRepository sobre PostgreSQL.
type HorseRepo struct {
	pool *pgxpool.Pool
}

// NewHorseRepository construye el adaptador de persistencia de caballos.
func NewHorseRepository(pool *pgxpool.Pool) *HorseRepo {
	return &HorseRepo{pool: pool}
}

// Create persiste un nuevo caballo.
func (r *HorseRepo) Create(ctx context.Context, h *entity.Horse) error {
	query := `
		INSERT INTO horses (id, haras_id, name, breed, sex, birth_date, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		h.ID, h.HarasID, h.Name, h.Breed, h.Sex, h.BirthDate, h.PhotoURL, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert horse: %w", err)
	}
	return nil
}

// GetByID obtiene un caballo por ID.
func (r *HorseRepo) GetByID(ctx context.Context, id string) (*entity.Horse, error) {
	query := `
		SELECT id, haras_id, name, breed, sex, birth_date, photo_url, created_at, updated_at
		FROM horses WHERE id = $1`
	var h entity.Horse
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.HarasID, &h.Name, &h.Breed, &h.Sex, &h.BirthDate, &h.PhotoURL, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get horse: %w", err)
	}
	return &h, nil
}

// ListByHaras lista los caballos del haras con paginación.
func (r *HorseRepo) ListByHaras(ctx context.Context, harasID string, limit, offset int) ([]*entity.Horse, error) {
	query := `
		SELECT id, haras_id, name, breed, sex, birth_date, photo_url, created_at, updated_at
		FROM horses WHERE haras_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, harasID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list horses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Horse
	for rows.Next() {
		var h entity.Horse
		if err := rows.Scan(&h.ID, &h.HarasID, &h.Name, &h.Breed, &h.Sex,
			&h.BirthDate, &h.PhotoURL, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan horse: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// Update actualiza un caballo.
func (r *HorseRepo) Update(ctx context.Context, h *entity.Horse) error {
	query := `
		UPDATE horses SET name = $2, breed = $3, sex = $4, birth_date = $5, photo_url = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		h.ID, h.Name, h.Breed, h.Sex, h.BirthDate, h.PhotoURL, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update horse: %w", err)
	}
	return nil
}
