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

// HorseUseCase casos de uso CRUD para caballos.
type HorseUseCase struct {
	repo repository.HorseRepository
}

// NewHorseUseCase construye el caso de uso.
func NewHorseUseCase(repo repository.HorseRepository) *HorseUseCase {
	return &HorseUseCase{repo: repo}
}

// Create registra un caballo del haras.
func (uc *HorseUseCase) Create(ctx context.Context, harasID string, in dto.CreateHorseRequest) (*dto.HorseResponse, error) {
	if in.Name == "" || (in.Sex != "macho" && in.Sex != "hembra") {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	h := &entity.Horse{
		ID:        uuid.New().String(),
		HarasID:   harasID,
		Name:      in.Name,
		Breed:     in.Breed,
		Sex:       in.Sex,
		BirthDate: in.BirthDate,
		PhotoURL:  in.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return toHorseResponse(h), nil
}

// GetByID obtiene un caballo del haras.
func (uc *HorseUseCase) GetByID(ctx context.Context, harasID, id string) (*dto.HorseResponse, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil || h.HarasID != harasID {
		return nil, domain.ErrNotFound
	}
	return toHorseResponse(h), nil
}

// List lista los caballos del haras con paginación.
func (uc *HorseUseCase) List(ctx context.Context, harasID string, page dto.PageRequest) ([]dto.HorseResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByHaras(ctx, harasID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HorseResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *toHorseResponse(h))
	}
	return out, nil
}

// Update actualiza los datos del caballo.
func (uc *HorseUseCase) Update(ctx context.Context, harasID, id string, in dto.UpdateHorseRequest) (*dto.HorseResponse, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil || h.HarasID != harasID {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		h.Name = in.Name
	}
	if in.Breed != "" {
		h.Breed = in.Breed
	}
	if in.Sex != "" {
		if in.Sex != "macho" && in.Sex != "hembra" {
			return nil, domain.ErrInvalidInput
		}
		h.Sex = in.Sex
	}
	if in.BirthDate != nil {
		h.BirthDate = in.BirthDate
	}
	if in.PhotoURL != "" {
		h.PhotoURL = in.PhotoURL
	}
	h.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return toHorseResponse(h), nil
}

func toHorseResponse(h *entity.Horse) *dto.HorseResponse {
	return &dto.HorseResponse{
		ID:        h.ID,
		HarasID:   h.HarasID,
		Name:      h.Name,
		Breed:     h.Breed,
		Sex:       h.Sex,
		BirthDate: h.BirthDate,
		PhotoURL:  h.PhotoURL,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
