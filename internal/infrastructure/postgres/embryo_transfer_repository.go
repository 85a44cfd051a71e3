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

var _ repository.EmbryoTransferRepository = (*EmbryoTransferRepo)(nil)

const embryoColumns = `id, haras_id, donor_mare_id, stallion_name, recipient_mare_id, vet_id, transfer_date, status, notes, created_at, updated_at`

// EmbryoTransferRepo implementación del puerto EmbryoTransferRepository sobre PostgreSQL.
type EmbryoTransferRepo struct {
	pool *pgxpool.Pool
}

// NewEmbryoTransferRepository construye el adaptador de transferencias embrionarias.
func NewEmbryoTransferRepository(pool *pgxpool.Pool) *EmbryoTransferRepo {
	return &EmbryoTransferRepo{pool: pool}
}

// Create persiste una nueva transferencia.
func (r *EmbryoTransferRepo) Create(ctx context.Context, e *entity.EmbryoTransfer) error {
	query := `
		INSERT INTO embryo_transfers (id, haras_id, donor_mare_id, stallion_name, recipient_mare_id, vet_id, transfer_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.HarasID, e.DonorMareID, e.StallionName, e.RecipientMareID,
		e.VetID, e.TransferDate, e.Status, e.Notes, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert embryo transfer: %w", err)
	}
	return nil
}

// GetByID obtiene una transferencia por ID.
func (r *EmbryoTransferRepo) GetByID(ctx context.Context, id string) (*entity.EmbryoTransfer, error) {
	query := `SELECT ` + embryoColumns + ` FROM embryo_transfers WHERE id = $1`
	var e entity.EmbryoTransfer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.HarasID, &e.DonorMareID, &e.StallionName, &e.RecipientMareID,
		&e.VetID, &e.TransferDate, &e.Status, &e.Notes, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get embryo transfer: %w", err)
	}
	return &e, nil
}

// ListByHaras lista las transferencias del haras, más recientes primero.
func (r *EmbryoTransferRepo) ListByHaras(ctx context.Context, harasID string, limit, offset int) ([]*entity.EmbryoTransfer, error) {
	query := `SELECT ` + embryoColumns + ` FROM embryo_transfers
		WHERE haras_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, harasID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list embryo transfers: %w", err)
	}
	defer rows.Close()

	var list []*entity.EmbryoTransfer
	for rows.Next() {
		var e entity.EmbryoTransfer
		if err := rows.Scan(&e.ID, &e.HarasID, &e.DonorMareID, &e.StallionName,
			&e.RecipientMareID, &e.VetID, &e.TransferDate, &e.Status, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan embryo transfer: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza estado, receptora, veterinario, fecha y notas.
func (r *EmbryoTransferRepo) Update(ctx context.Context, e *entity.EmbryoTransfer) error {
	query := `
		UPDATE embryo_transfers SET recipient_mare_id = $2, vet_id = $3, transfer_date = $4, status = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.RecipientMareID, e.VetID, e.TransferDate, e.Status, e.Notes, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update embryo transfer: %w", err)
	}
	return nil
}
