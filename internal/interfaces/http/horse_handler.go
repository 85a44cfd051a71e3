package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/application/usecase"
	"github.com/harasdev/haras-api/internal/domain"
)

// HorseHandler maneja las peticiones de caballos.
type HorseHandler struct {
	uc *usecase.HorseUseCase
}

// NewHorseHandler construye el handler de caballos.
func NewHorseHandler(uc *usecase.HorseUseCase) *HorseHandler {
	return &HorseHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar caballo
// @Tags         horses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHorseRequest  true  "name, sex (macho|hembra), breed..."
// @Success      201   {object}  dto.HorseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/horses [post]
func (h *HorseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHorseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetHarasID(c), in)
	if err != nil {
		return horseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar caballos del haras
// @Tags         horses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100, por defecto 20"
// @Param        offset  query  int  false  "por defecto 0"
// @Success      200  {array}  dto.HorseResponse
// @Router       /api/horses [get]
func (h *HorseHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.List(c.Context(), GetHarasID(c), page)
	if err != nil {
		return horseError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener caballo
// @Tags         horses
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Horse ID"
// @Success      200  {object}  dto.HorseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/horses/{id} [get]
func (h *HorseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetHarasID(c), c.Params("id"))
	if err != nil {
		return horseError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar caballo
// @Tags         horses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Horse ID"
// @Param        body  body  dto.UpdateHorseRequest  true  "atributos a editar"
// @Success      200   {object}  dto.HorseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/horses/{id} [put]
func (h *HorseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHorseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetHarasID(c), c.Params("id"), in)
	if err != nil {
		return horseError(c, err)
	}
	return c.JSON(out)
}

func horseError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
