package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/application/usecase"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStallRepo struct {
	stalls map[string]*entity.Stall
}

func newMemStallRepo(stalls ...*entity.Stall) *memStallRepo {
	m := &memStallRepo{stalls: make(map[string]*entity.Stall)}
	for _, s := range stalls {
		cp := *s
		m.stalls[s.ID] = &cp
	}
	return m
}

func (r *memStallRepo) Create(ctx context.Context, s *entity.Stall) error {
	for _, other := range r.stalls {
		if other.HarasID == s.HarasID && other.Number == s.Number {
			return domain.ErrDuplicate
		}
	}
	cp := *s
	r.stalls[s.ID] = &cp
	return nil
}

func (r *memStallRepo) GetByID(ctx context.Context, id string) (*entity.Stall, error) {
	s, ok := r.stalls[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memStallRepo) ListByHaras(ctx context.Context, harasID string) ([]*entity.Stall, error) {
	var out []*entity.Stall
	for _, s := range r.stalls {
		if s.HarasID == harasID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memStallRepo) Update(ctx context.Context, s *entity.Stall) error {
	cp := *s
	r.stalls[s.ID] = &cp
	return nil
}

type memHorseRepo struct {
	horses map[string]*entity.Horse
}

func newMemHorseRepo(horses ...*entity.Horse) *memHorseRepo {
	m := &memHorseRepo{horses: make(map[string]*entity.Horse)}
	for _, h := range horses {
		cp := *h
		m.horses[h.ID] = &cp
	}
	return m
}

func (r *memHorseRepo) Create(ctx context.Context, h *entity.Horse) error {
	cp := *h
	r.horses[h.ID] = &cp
	return nil
}

func (r *memHorseRepo) GetByID(ctx context.Context, id string) (*entity.Horse, error) {
	h, ok := r.horses[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *memHorseRepo) ListByHaras(ctx context.Context, harasID string, limit, offset int) ([]*entity.Horse, error) {
	var out []*entity.Horse
	for _, h := range r.horses {
		if h.HarasID == harasID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memHorseRepo) Update(ctx context.Context, h *entity.Horse) error {
	cp := *h
	r.horses[h.ID] = &cp
	return nil
}

func baiaLibre(id, number string) *entity.Stall {
	now := time.Now()
	return &entity.Stall{
		ID:        id,
		HarasID:   "haras-1",
		Number:    number,
		Status:    entity.StallFree,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func caballo(id, sex string) *entity.Horse {
	now := time.Now()
	return &entity.Horse{
		ID:        id,
		HarasID:   "haras-1",
		Name:      "Relámpago",
		Sex:       sex,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ocupar y liberar
// ──────────────────────────────────────────────────────────────────────────────

func TestOccupy_BaiaLibre_AsignaCaballo(t *testing.T) {
	uc := usecase.NewStallUseCase(
		newMemStallRepo(baiaLibre("baia-1", "A-01")),
		newMemHorseRepo(caballo("horse-1", "macho")),
	)

	out, err := uc.Occupy(context.Background(), "haras-1", "baia-1", dto.OccupyStallRequest{HorseID: "horse-1"})

	require.NoError(t, err)
	assert.Equal(t, entity.StallOccupied, out.Status)
	require.NotNil(t, out.HorseID)
	assert.Equal(t, "horse-1", *out.HorseID)
}

func TestOccupy_BaiaOcupada_ErrStallOccupied(t *testing.T) {
	ocupada := baiaLibre("baia-1", "A-01")
	horseID := "horse-1"
	ocupada.Status = entity.StallOccupied
	ocupada.HorseID = &horseID

	uc := usecase.NewStallUseCase(
		newMemStallRepo(ocupada),
		newMemHorseRepo(caballo("horse-1", "macho"), caballo("horse-2", "hembra")),
	)

	_, err := uc.Occupy(context.Background(), "haras-1", "baia-1", dto.OccupyStallRequest{HorseID: "horse-2"})
	assert.ErrorIs(t, err, domain.ErrStallOccupied)
}

func TestOccupy_CaballoYaAlojado_ErrConflict(t *testing.T) {
	horseID := "horse-1"
	ocupada := baiaLibre("baia-1", "A-01")
	ocupada.Status = entity.StallOccupied
	ocupada.HorseID = &horseID

	uc := usecase.NewStallUseCase(
		newMemStallRepo(ocupada, baiaLibre("baia-2", "A-02")),
		newMemHorseRepo(caballo("horse-1", "macho")),
	)

	_, err := uc.Occupy(context.Background(), "haras-1", "baia-2", dto.OccupyStallRequest{HorseID: "horse-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOccupy_EnMantenimiento_ErrConflict(t *testing.T) {
	mant := baiaLibre("baia-1", "A-01")
	mant.Status = entity.StallMaintenance

	uc := usecase.NewStallUseCase(
		newMemStallRepo(mant),
		newMemHorseRepo(caballo("horse-1", "macho")),
	)

	_, err := uc.Occupy(context.Background(), "haras-1", "baia-1", dto.OccupyStallRequest{HorseID: "horse-1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestOccupy_CaballoDeOtroHaras_NotFound(t *testing.T) {
	ajeno := caballo("horse-1", "macho")
	ajeno.HarasID = "haras-ajeno"

	uc := usecase.NewStallUseCase(
		newMemStallRepo(baiaLibre("baia-1", "A-01")),
		newMemHorseRepo(ajeno),
	)

	_, err := uc.Occupy(context.Background(), "haras-1", "baia-1", dto.OccupyStallRequest{HorseID: "horse-1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRelease_BaiaOcupada_QuedaLibreSinCaballo(t *testing.T) {
	horseID := "horse-1"
	ocupada := baiaLibre("baia-1", "A-01")
	ocupada.Status = entity.StallOccupied
	ocupada.HorseID = &horseID

	uc := usecase.NewStallUseCase(newMemStallRepo(ocupada), newMemHorseRepo())

	out, err := uc.Release(context.Background(), "haras-1", "baia-1")

	require.NoError(t, err)
	assert.Equal(t, entity.StallFree, out.Status)
	assert.Nil(t, out.HorseID)
}

func TestRelease_BaiaLibre_ErrConflict(t *testing.T) {
	uc := usecase.NewStallUseCase(newMemStallRepo(baiaLibre("baia-1", "A-01")), newMemHorseRepo())

	_, err := uc.Release(context.Background(), "haras-1", "baia-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mantenimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestSetMaintenance_IdaYVuelta(t *testing.T) {
	uc := usecase.NewStallUseCase(newMemStallRepo(baiaLibre("baia-1", "A-01")), newMemHorseRepo())
	ctx := context.Background()

	out, err := uc.SetMaintenance(ctx, "haras-1", "baia-1", true)
	require.NoError(t, err)
	assert.Equal(t, entity.StallMaintenance, out.Status)

	out, err = uc.SetMaintenance(ctx, "haras-1", "baia-1", false)
	require.NoError(t, err)
	assert.Equal(t, entity.StallFree, out.Status)
}

func TestSetMaintenance_BaiaOcupada_ErrStallOccupied(t *testing.T) {
	horseID := "horse-1"
	ocupada := baiaLibre("baia-1", "A-01")
	ocupada.Status = entity.StallOccupied
	ocupada.HorseID = &horseID

	uc := usecase.NewStallUseCase(newMemStallRepo(ocupada), newMemHorseRepo())

	_, err := uc.SetMaintenance(context.Background(), "haras-1", "baia-1", true)
	assert.ErrorIs(t, err, domain.ErrStallOccupied)
}

func TestCreateStall_NumeroDuplicado_ErrDuplicate(t *testing.T) {
	uc := usecase.NewStallUseCase(newMemStallRepo(baiaLibre("baia-1", "A-01")), newMemHorseRepo())

	_, err := uc.Create(context.Background(), "haras-1", dto.CreateStallRequest{Number: "A-01"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
