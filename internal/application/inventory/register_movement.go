package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (IN, OUT, ADJUSTMENT) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Reglas:
//   - IN: suma la cantidad.
//   - OUT: rechaza con ErrInsufficientStock si la cantidad supera el stock
//     actual; nunca se llega a cantidades negativas ni se recorta en silencio.
//   - ADJUSTMENT: delta con signo; el resultado se recorta en cero y el
//     movimiento registra el delta efectivo aplicado.
//
// Toda validación ocurre antes de mutar: ante error no hay aplicación parcial.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	HarasID  string
	UserID   string
	StockID  string
	Type     string // IN | OUT | ADJUSTMENT
	Quantity decimal.Decimal
	Reason   string
	Notes    string
}

// FromRequest adapta el body HTTP (tipos en minúsculas) a MovementInput.
func FromRequest(harasID, userID string, in dto.RegisterMovementRequest) MovementInput {
	return MovementInput{
		HarasID:  harasID,
		UserID:   userID,
		StockID:  in.StockID,
		Type:     strings.ToUpper(in.Type),
		Quantity: in.Quantity,
		Reason:   in.Reason,
		Notes:    in.Notes,
	}
}

// Register valida la entrada, abre la transacción, bloquea la fila de stock
// y aplica el movimiento. Devuelve el movimiento registrado y la línea con la
// cantidad resultante.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, input MovementInput) (*entity.StockMovement, *entity.Stock, error) {
	if input.StockID == "" || input.Reason == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if !input.Quantity.GreaterThan(decimal.Zero) {
			return nil, nil, domain.ErrInvalidQuantity
		}
	case entity.MovementTypeADJUSTMENT:
		// El ajuste lleva signo; cero no es un movimiento.
		if input.Quantity.IsZero() {
			return nil, nil, domain.ErrInvalidQuantity
		}
	default:
		return nil, nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var (
		mov     *entity.StockMovement
		updated *entity.Stock
	)

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.StockMovementRepository,
	) error {
		stock, err := stockRepo.GetForUpdate(ctx, input.StockID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if stock.HarasID != input.HarasID {
			return domain.ErrForbidden
		}

		var applied decimal.Decimal // delta efectivo, con signo
		switch input.Type {
		case entity.MovementTypeIN:
			applied = input.Quantity
		case entity.MovementTypeOUT:
			if stock.Quantity.LessThan(input.Quantity) {
				return domain.ErrInsufficientStock
			}
			applied = input.Quantity.Neg()
		case entity.MovementTypeADJUSTMENT:
			next := stock.Quantity.Add(input.Quantity)
			if next.LessThan(decimal.Zero) {
				next = decimal.Zero
			}
			applied = next.Sub(stock.Quantity)
		}

		stock.Quantity = stock.Quantity.Add(applied)
		stock.UpdatedAt = now
		if err := stockRepo.UpdateQuantity(ctx, stock); err != nil {
			return err
		}

		m := &entity.StockMovement{
			ID:        uuid.New().String(),
			StockID:   stock.ID,
			HarasID:   stock.HarasID,
			Type:      input.Type,
			Quantity:  applied,
			Reason:    input.Reason,
			Notes:     input.Notes,
			CreatedBy: input.UserID,
			CreatedAt: now,
		}
		if err := movRepo.Create(ctx, m); err != nil {
			return err
		}

		mov = m
		updated = stock
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return mov, updated, nil
}
