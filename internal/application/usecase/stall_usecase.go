package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
)

// StallUseCase casos de uso de baias: alta, listado y cambios de estado.
// Una baia ocupada siempre tiene caballo asignado; una libre o en
// mantenimiento nunca.
type StallUseCase struct {
	stallRepo repository.StallRepository
	horseRepo repository.HorseRepository
}

// NewStallUseCase construye el caso de uso.
func NewStallUseCase(stallRepo repository.StallRepository, horseRepo repository.HorseRepository) *StallUseCase {
	return &StallUseCase{stallRepo: stallRepo, horseRepo: horseRepo}
}

// Create da de alta una baia libre.
func (uc *StallUseCase) Create(ctx context.Context, harasID string, in dto.CreateStallRequest) (*dto.StallResponse, error) {
	if in.Number == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Stall{
		ID:        uuid.New().String(),
		HarasID:   harasID,
		Number:    in.Number,
		Status:    entity.StallFree,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.stallRepo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStallResponse(s), nil
}

// GetByID obtiene una baia del haras.
func (uc *StallUseCase) GetByID(ctx context.Context, harasID, id string) (*dto.StallResponse, error) {
	s, err := uc.getOwned(ctx, harasID, id)
	if err != nil {
		return nil, err
	}
	return toStallResponse(s), nil
}

// List lista las baias del haras.
func (uc *StallUseCase) List(ctx context.Context, harasID string) ([]dto.StallResponse, error) {
	list, err := uc.stallRepo.ListByHaras(ctx, harasID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StallResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStallResponse(s))
	}
	return out, nil
}

// Occupy asigna un caballo a una baia libre. Falla con ErrStallOccupied si
// ya está ocupada y con ErrConflict si está en mantenimiento o el caballo
// ya ocupa otra baia.
func (uc *StallUseCase) Occupy(ctx context.Context, harasID, stallID string, in dto.OccupyStallRequest) (*dto.StallResponse, error) {
	if in.HorseID == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.getOwned(ctx, harasID, stallID)
	if err != nil {
		return nil, err
	}
	switch s.Status {
	case entity.StallOccupied:
		return nil, domain.ErrStallOccupied
	case entity.StallMaintenance:
		return nil, domain.ErrConflict
	}

	horse, err := uc.horseRepo.GetByID(ctx, in.HorseID)
	if err != nil {
		return nil, err
	}
	if horse == nil || horse.HarasID != harasID {
		return nil, domain.ErrNotFound
	}

	stalls, err := uc.stallRepo.ListByHaras(ctx, harasID)
	if err != nil {
		return nil, err
	}
	for _, other := range stalls {
		if other.HorseID != nil && *other.HorseID == in.HorseID {
			return nil, domain.ErrConflict
		}
	}

	s.Status = entity.StallOccupied
	s.HorseID = &in.HorseID
	s.UpdatedAt = time.Now()
	if err := uc.stallRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toStallResponse(s), nil
}

// Release libera una baia ocupada.
func (uc *StallUseCase) Release(ctx context.Context, harasID, stallID string) (*dto.StallResponse, error) {
	s, err := uc.getOwned(ctx, harasID, stallID)
	if err != nil {
		return nil, err
	}
	if s.Status != entity.StallOccupied {
		return nil, domain.ErrConflict
	}
	s.Status = entity.StallFree
	s.HorseID = nil
	s.UpdatedAt = time.Now()
	if err := uc.stallRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toStallResponse(s), nil
}

// SetMaintenance pone una baia libre en mantenimiento, o la devuelve a libre.
func (uc *StallUseCase) SetMaintenance(ctx context.Context, harasID, stallID string, enable bool) (*dto.StallResponse, error) {
	s, err := uc.getOwned(ctx, harasID, stallID)
	if err != nil {
		return nil, err
	}
	if s.Status == entity.StallOccupied {
		return nil, domain.ErrStallOccupied
	}
	if enable {
		s.Status = entity.StallMaintenance
	} else {
		s.Status = entity.StallFree
	}
	s.UpdatedAt = time.Now()
	if err := uc.stallRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toStallResponse(s), nil
}

func (uc *StallUseCase) getOwned(ctx context.Context, harasID, id string) (*entity.Stall, error) {
	s, err := uc.stallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil || s.HarasID != harasID {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func toStallResponse(s *entity.Stall) *dto.StallResponse {
	return &dto.StallResponse{
		ID:        s.ID,
		HarasID:   s.HarasID,
		Number:    s.Number,
		Status:    s.Status,
		HorseID:   s.HorseID,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
