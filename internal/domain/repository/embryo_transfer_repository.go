package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// EmbryoTransferRepository puerto de persistencia de transferencias embrionarias.
type EmbryoTransferRepository interface {
	Create(ctx context.Context, e *entity.EmbryoTransfer) error
	GetByID(ctx context.Context, id string) (*entity.EmbryoTransfer, error)
	ListByHaras(ctx context.Context, harasID string, limit, offset int) ([]*entity.EmbryoTransfer, error)
	Update(ctx context.Context, e *entity.EmbryoTransfer) error
}
