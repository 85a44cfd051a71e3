package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// StallRepository puerto de persistencia de baias.
type StallRepository interface {
	Create(ctx context.Context, s *entity.Stall) error
	GetByID(ctx context.Context, id string) (*entity.Stall, error)
	ListByHaras(ctx context.Context, harasID string) ([]*entity.Stall, error)
	Update(ctx context.Context, s *entity.Stall) error
}
