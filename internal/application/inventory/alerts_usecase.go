package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
	"github.com/harasdev/haras-api/internal/domain/stock"
)

// AlertUseCase genera, lista y resuelve alertas de stock. Las alertas son
// derivadas: Refresh reevalúa todas las líneas del haras y reemplaza las
// alertas no resueltas; las resueltas se conservan como historial.
type AlertUseCase struct {
	stockRepo repository.StockRepository
	alertRepo repository.StockAlertRepository
	now       func() time.Time
}

// NewAlertUseCase construye el caso de uso. nowFn puede ser nil (usa time.Now).
func NewAlertUseCase(stockRepo repository.StockRepository, alertRepo repository.StockAlertRepository, nowFn func() time.Time) *AlertUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &AlertUseCase{stockRepo: stockRepo, alertRepo: alertRepo, now: nowFn}
}

// Refresh reevalúa el stock completo del haras y regenera sus alertas no
// resueltas. Devuelve las alertas vigentes tras la reevaluación.
func (uc *AlertUseCase) Refresh(ctx context.Context, harasID string) ([]dto.AlertResponse, error) {
	items, err := uc.stockRepo.ListByHaras(ctx, harasID, "")
	if err != nil {
		return nil, err
	}
	now := uc.now()

	if err := uc.alertRepo.DeleteUnresolvedByHaras(ctx, harasID); err != nil {
		return nil, err
	}

	var out []dto.AlertResponse
	for _, s := range items {
		for _, ev := range stock.Evaluate(s, now) {
			a := &entity.StockAlert{
				ID:        uuid.New().String(),
				StockID:   s.ID,
				HarasID:   harasID,
				Type:      ev.Type,
				Severity:  ev.Severity,
				Message:   ev.Message,
				CreatedAt: now,
			}
			if err := uc.alertRepo.Create(ctx, a); err != nil {
				return nil, err
			}
			out = append(out, toAlertResponse(a))
		}
	}
	return out, nil
}

// List devuelve las alertas del haras; por defecto solo las no resueltas.
func (uc *AlertUseCase) List(ctx context.Context, harasID string, includeResolved bool) ([]dto.AlertResponse, error) {
	alerts, err := uc.alertRepo.ListByHaras(ctx, harasID, includeResolved)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, toAlertResponse(a))
	}
	return out, nil
}

// Resolve marca una alerta como resuelta por acción explícita del usuario.
func (uc *AlertUseCase) Resolve(ctx context.Context, harasID, alertID string) error {
	a, err := uc.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return err
	}
	if a == nil || a.HarasID != harasID {
		return domain.ErrNotFound
	}
	return uc.alertRepo.Resolve(ctx, alertID, harasID)
}

func toAlertResponse(a *entity.StockAlert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:         a.ID,
		StockID:    a.StockID,
		Type:       a.Type,
		Severity:   a.Severity,
		Message:    a.Message,
		IsResolved: a.IsResolved,
		CreatedAt:  a.CreatedAt,
	}
}
