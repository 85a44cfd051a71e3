package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
)

// EmbryoUseCase casos de uso de transferencias embrionarias. El estado
// avanza solo por transiciones válidas: planned -> transferred -> confirmed,
// con failed alcanzable desde planned y transferred.
type EmbryoUseCase struct {
	embryoRepo repository.EmbryoTransferRepository
	horseRepo  repository.HorseRepository
}

// NewEmbryoUseCase construye el caso de uso.
func NewEmbryoUseCase(embryoRepo repository.EmbryoTransferRepository, horseRepo repository.HorseRepository) *EmbryoUseCase {
	return &EmbryoUseCase{embryoRepo: embryoRepo, horseRepo: horseRepo}
}

// Create planifica una transferencia. La donante debe ser una yegua del haras.
func (uc *EmbryoUseCase) Create(ctx context.Context, harasID string, in dto.CreateEmbryoTransferRequest) (*dto.EmbryoTransferResponse, error) {
	if in.DonorMareID == "" || in.StallionName == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkMare(ctx, harasID, in.DonorMareID); err != nil {
		return nil, err
	}
	if in.RecipientMareID != nil {
		if err := uc.checkMare(ctx, harasID, *in.RecipientMareID); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	e := &entity.EmbryoTransfer{
		ID:              uuid.New().String(),
		HarasID:         harasID,
		DonorMareID:     in.DonorMareID,
		StallionName:    in.StallionName,
		RecipientMareID: in.RecipientMareID,
		VetID:           in.VetID,
		TransferDate:    in.TransferDate,
		Status:          entity.EmbryoPlanned,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.embryoRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmbryoResponse(e), nil
}

// GetByID obtiene una transferencia del haras.
func (uc *EmbryoUseCase) GetByID(ctx context.Context, harasID, id string) (*dto.EmbryoTransferResponse, error) {
	e, err := uc.getOwned(ctx, harasID, id)
	if err != nil {
		return nil, err
	}
	return toEmbryoResponse(e), nil
}

// List lista las transferencias del haras con paginación.
func (uc *EmbryoUseCase) List(ctx context.Context, harasID string, page dto.PageRequest) ([]dto.EmbryoTransferResponse, error) {
	page.DefaultPage()
	list, err := uc.embryoRepo.ListByHaras(ctx, harasID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmbryoTransferResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmbryoResponse(e))
	}
	return out, nil
}

// UpdateStatus avanza el estado clínico. Transiciones inválidas devuelven
// ErrConflict; los estados confirmed y failed son terminales.
func (uc *EmbryoUseCase) UpdateStatus(ctx context.Context, harasID, id string, in dto.UpdateEmbryoStatusRequest) (*dto.EmbryoTransferResponse, error) {
	e, err := uc.getOwned(ctx, harasID, id)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(entity.NextEmbryoStatuses(e.Status), in.Status) {
		return nil, domain.ErrConflict
	}
	e.Status = in.Status
	if in.Notes != "" {
		e.Notes = in.Notes
	}
	if in.Status == entity.EmbryoTransferred && e.TransferDate == nil {
		now := time.Now()
		e.TransferDate = &now
	}
	e.UpdatedAt = time.Now()
	if err := uc.embryoRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmbryoResponse(e), nil
}

func (uc *EmbryoUseCase) getOwned(ctx context.Context, harasID, id string) (*entity.EmbryoTransfer, error) {
	e, err := uc.embryoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || e.HarasID != harasID {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (uc *EmbryoUseCase) checkMare(ctx context.Context, harasID, horseID string) error {
	h, err := uc.horseRepo.GetByID(ctx, horseID)
	if err != nil {
		return err
	}
	if h == nil || h.HarasID != harasID {
		return domain.ErrNotFound
	}
	if h.Sex != "hembra" {
		return domain.ErrInvalidInput
	}
	return nil
}

func toEmbryoResponse(e *entity.EmbryoTransfer) *dto.EmbryoTransferResponse {
	return &dto.EmbryoTransferResponse{
		ID:              e.ID,
		HarasID:         e.HarasID,
		DonorMareID:     e.DonorMareID,
		StallionName:    e.StallionName,
		RecipientMareID: e.RecipientMareID,
		VetID:           e.VetID,
		TransferDate:    e.TransferDate,
		Status:          e.Status,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
