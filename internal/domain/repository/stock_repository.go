package repository

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// StockRepository puerto para consultar y actualizar líneas de stock.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usarlo solo dentro
// de una transacción del TxRunner.
type StockRepository interface {
	Create(ctx context.Context, s *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Stock, error)
	ListByHaras(ctx context.Context, harasID, category string) ([]*entity.Stock, error)
	Update(ctx context.Context, s *entity.Stock) error
	UpdateQuantity(ctx context.Context, s *entity.Stock) error
}
