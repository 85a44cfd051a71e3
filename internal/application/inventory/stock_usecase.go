package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
	"github.com/harasdev/haras-api/internal/domain/stock"
)

// StockUseCase operaciones sobre líneas de stock: alta, consulta, edición,
// historial de movimientos y resumen agregado.
type StockUseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso. nowFn puede ser nil (usa time.Now).
func NewStockUseCase(stockRepo repository.StockRepository, movRepo repository.StockMovementRepository, nowFn func() time.Time) *StockUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &StockUseCase{stockRepo: stockRepo, movRepo: movRepo, now: nowFn}
}

// Create da de alta una línea de stock. La cantidad inicial puede ser cero;
// cantidades negativas son inválidas.
func (uc *StockUseCase) Create(ctx context.Context, harasID string, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.Name == "" || in.UnitMeasure == "" || !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity.LessThan(decimal.Zero) || in.MinThreshold.LessThan(decimal.Zero) ||
		in.MaxCapacity.LessThan(decimal.Zero) || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	s := &entity.Stock{
		ID:             uuid.New().String(),
		HarasID:        harasID,
		Name:           in.Name,
		Category:       in.Category,
		UnitMeasure:    in.UnitMeasure,
		Quantity:       in.Quantity,
		MinThreshold:   in.MinThreshold,
		MaxCapacity:    in.MaxCapacity,
		UnitCost:       in.UnitCost,
		ExpirationDate: in.ExpirationDate,
		Location:       in.Location,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.stockRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.toResponse(s), nil
}

// GetByID devuelve una línea del haras indicado.
func (uc *StockUseCase) GetByID(ctx context.Context, harasID, id string) (*dto.StockResponse, error) {
	s, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.HarasID != harasID {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(s), nil
}

// List devuelve las líneas del haras, opcionalmente filtradas por categoría.
func (uc *StockUseCase) List(ctx context.Context, harasID, category string) ([]dto.StockResponse, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.stockRepo.ListByHaras(ctx, harasID, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(items))
	for _, s := range items {
		out = append(out, *uc.toResponse(s))
	}
	return out, nil
}

// Update edita los atributos descriptivos. La cantidad no se toca aquí:
// solo cambia vía movimientos.
func (uc *StockUseCase) Update(ctx context.Context, harasID, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	s, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.HarasID != harasID {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		s.Name = in.Name
	}
	if in.Category != "" {
		if !entity.ValidCategory(in.Category) {
			return nil, domain.ErrInvalidInput
		}
		s.Category = in.Category
	}
	if in.UnitMeasure != "" {
		s.UnitMeasure = in.UnitMeasure
	}
	if in.MinThreshold.GreaterThanOrEqual(decimal.Zero) && !in.MinThreshold.IsZero() {
		s.MinThreshold = in.MinThreshold
	}
	if !in.MaxCapacity.IsZero() {
		if in.MaxCapacity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		s.MaxCapacity = in.MaxCapacity
	}
	if !in.UnitCost.IsZero() {
		if in.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		s.UnitCost = in.UnitCost
	}
	if in.ExpirationDate != nil {
		s.ExpirationDate = in.ExpirationDate
	}
	if in.Location != "" {
		s.Location = in.Location
	}
	s.UpdatedAt = uc.now()
	if err := uc.stockRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	return uc.toResponse(s), nil
}

// ListMovements historial de movimientos de una línea, más reciente primero.
func (uc *StockUseCase) ListMovements(ctx context.Context, harasID, stockID string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	s, err := uc.stockRepo.GetByID(ctx, stockID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.HarasID != harasID {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	movs, err := uc.movRepo.ListByStock(ctx, stockID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			StockID:   m.StockID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			Notes:     m.Notes,
			CreatedBy: m.CreatedBy,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

// Summary agrega el inventario completo del haras en un solo paso.
func (uc *StockUseCase) Summary(ctx context.Context, harasID string) (*dto.StockSummaryResponse, error) {
	items, err := uc.stockRepo.ListByHaras(ctx, harasID, "")
	if err != nil {
		return nil, err
	}
	sum := stock.Aggregate(items, uc.now())

	byCat := make(map[string]dto.CategorySummaryDTO, len(sum.ByCategory))
	for cat, cs := range sum.ByCategory {
		byCat[cat] = dto.CategorySummaryDTO{
			Count:    cs.Count,
			Quantity: cs.Quantity,
			Value:    cs.Value,
		}
	}
	return &dto.StockSummaryResponse{
		TotalItems:      sum.TotalItems,
		TotalValue:      sum.TotalValue,
		LowStockItems:   sum.LowStockItems,
		ExpiredItems:    sum.ExpiredItems,
		NearExpiryItems: sum.NearExpiryItems,
		ByCategory:      byCat,
	}, nil
}

// ItemsForReport devuelve las líneas junto con el resumen, para el reporte PDF.
func (uc *StockUseCase) ItemsForReport(ctx context.Context, harasID string) ([]*entity.Stock, stock.Summary, error) {
	items, err := uc.stockRepo.ListByHaras(ctx, harasID, "")
	if err != nil {
		return nil, stock.Summary{}, err
	}
	return items, stock.Aggregate(items, uc.now()), nil
}

func (uc *StockUseCase) toResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		ID:             s.ID,
		HarasID:        s.HarasID,
		Name:           s.Name,
		Category:       s.Category,
		UnitMeasure:    s.UnitMeasure,
		Quantity:       s.Quantity,
		MinThreshold:   s.MinThreshold,
		MaxCapacity:    s.MaxCapacity,
		UnitCost:       s.UnitCost,
		ExpirationDate: s.ExpirationDate,
		Location:       s.Location,
		Status:         stock.Status(s),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
