package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// HarasRepository puerto de persistencia del haras (unidad organizacional).
type HarasRepository interface {
	Create(ctx context.Context, h *entity.Haras) error
	GetByID(ctx context.Context, id string) (*entity.Haras, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Haras, error)
	ListIDs(ctx context.Context) ([]string, error)
}
