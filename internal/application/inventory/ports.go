package inventory

import (
	"context"

	"github.com/harasdev/haras-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a
// ella. Commit si fn devuelve nil; Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
