package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/application/usecase"
	"github.com/harasdev/haras-api/internal/domain"
)

// StallHandler maneja las peticiones de baias.
type StallHandler struct {
	uc *usecase.StallUseCase
}

// NewStallHandler construye el handler de baias.
func NewStallHandler(uc *usecase.StallUseCase) *StallHandler {
	return &StallHandler{uc: uc}
}

// Create godoc
// @Summary      Crear baia
// @Tags         stalls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStallRequest  true  "number, notes"
// @Success      201   {object}  dto.StallResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stalls [post]
func (h *StallHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStallRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetHarasID(c), in)
	if err != nil {
		return stallError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar baias del haras
// @Tags         stalls
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StallResponse
// @Router       /api/stalls [get]
func (h *StallHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetHarasID(c))
	if err != nil {
		return stallError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener baia
// @Tags         stalls
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Stall ID"
// @Success      200  {object}  dto.StallResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stalls/{id} [get]
func (h *StallHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetHarasID(c), c.Params("id"))
	if err != nil {
		return stallError(c, err)
	}
	return c.JSON(out)
}

// Occupy godoc
// @Summary      Asignar caballo a una baia libre
// @Tags         stalls
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Stall ID"
// @Param        body  body  dto.OccupyStallRequest  true  "horse_id"
// @Success      200   {object}  dto.StallResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stalls/{id}/occupy [put]
func (h *StallHandler) Occupy(c *fiber.Ctx) error {
	var in dto.OccupyStallRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Occupy(c.Context(), GetHarasID(c), c.Params("id"), in)
	if err != nil {
		return stallError(c, err)
	}
	return c.JSON(out)
}

// Release godoc
// @Summary      Liberar una baia ocupada
// @Tags         stalls
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Stall ID"
// @Success      200  {object}  dto.StallResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stalls/{id}/release [put]
func (h *StallHandler) Release(c *fiber.Ctx) error {
	out, err := h.uc.Release(c.Context(), GetHarasID(c), c.Params("id"))
	if err != nil {
		return stallError(c, err)
	}
	return c.JSON(out)
}

// SetMaintenance godoc
// @Summary      Poner o sacar una baia de mantenimiento
// @Tags         stalls
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Stall ID"
// @Param        enable  query  bool    false  "true = a mantenimiento, false = a libre"
// @Success      200  {object}  dto.StallResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stalls/{id}/maintenance [put]
func (h *StallHandler) SetMaintenance(c *fiber.Ctx) error {
	enable := c.QueryBool("enable", true)
	out, err := h.uc.SetMaintenance(c.Context(), GetHarasID(c), c.Params("id"), enable)
	if err != nil {
		return stallError(c, err)
	}
	return c.JSON(out)
}

func stallError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrStallOccupied:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STALL_OCCUPIED", Message: "la baia está ocupada"})
	case domain.ErrConflict, domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
