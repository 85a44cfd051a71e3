package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// HorseRepository puerto de persistencia de caballos.
type HorseRepository interface {
	Create(ctx context.Context, h *entity.Horse) error
	GetByID(ctx context.Context, id string) (*entity.Horse, error)
	ListByHaras(ctx context.Context, harasID string, limit, offset int) ([]*entity.Horse, error)
	Update(ctx context.Context, h *entity.Horse) error
}
