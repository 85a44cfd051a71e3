package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// StockAlertRepository puerto de persistencia de alertas derivadas.
type StockAlertRepository interface {
	Create(ctx context.Context, a *entity.StockAlert) error
	GetByID(ctx context.Context, id string) (*entity.StockAlert, error)
	ListByHaras(ctx context.Context, harasID string, includeResolved bool) ([]*entity.StockAlert, error)
	Resolve(ctx context.Context, id, harasID string) error
	// DeleteUnresolvedByHaras limpia las alertas no resueltas antes de una
	// reevaluación completa; las resueltas se conservan como historial.
	DeleteUnresolvedByHaras(ctx context.Context, harasID string) error
}
