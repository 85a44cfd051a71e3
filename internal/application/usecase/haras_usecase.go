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

// HarasUseCase casos de uso del haras.
type HarasUseCase struct {
	repo repository.HarasRepository
}

// NewHarasUseCase construye el caso de uso.
func NewHarasUseCase(repo repository.HarasRepository) *HarasUseCase {
	return &HarasUseCase{repo: repo}
}

// Create registra un nuevo haras.
func (uc *HarasUseCase) Create(ctx context.Context, in dto.CreateHarasRequest) (*dto.HarasResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	h := &entity.Haras{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return toHarasResponse(h), nil
}

// GetByID obtiene un haras por ID.
func (uc *HarasUseCase) GetByID(ctx context.Context, id string) (*dto.HarasResponse, error) {
	h, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, domain.ErrNotFound
	}
	return toHarasResponse(h), nil
}

// List devuelve los haras registrados, paginados.
func (uc *HarasUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.HarasResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HarasResponse, 0, len(list))
	for _, h := range list {
		out = append(out, *toHarasResponse(h))
	}
	return out, nil
}

func toHarasResponse(h *entity.Haras) *dto.HarasResponse {
	return &dto.HarasResponse{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		Phone:     h.Phone,
		Email:     h.Email,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
