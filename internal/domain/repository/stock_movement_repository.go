package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// StockMovementRepository puerto de auditoría de movimientos.
// Los movimientos solo se insertan: nunca se actualizan ni se borran.
type StockMovementRepository interface {
	Create(ctx context.Context, m *entity.StockMovement) error
	ListByStock(ctx context.Context, stockID string, limit, offset int) ([]*entity.StockMovement, error)
}
