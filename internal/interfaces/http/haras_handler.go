package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/application/usecase"
	"github.com/harasdev/haras-api/internal/domain"
)

// HarasHandler maneja las peticiones del haras.
type HarasHandler struct {
	uc *usecase.HarasUseCase
}

// NewHarasHandler construye el handler del haras.
func NewHarasHandler(uc *usecase.HarasUseCase) *HarasHandler {
	return &HarasHandler{uc: uc}
}

// Create godoc
// @Summary      Crear haras
// @Tags         haras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateHarasRequest  true  "name, address..."
// @Success      201   {object}  dto.HarasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/haras [post]
func (h *HarasHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHarasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar haras
// @Tags         haras
// @Produce      json
// @Param        limit   query  int  false  "máx. 100, por defecto 20"
// @Param        offset  query  int  false  "por defecto 0"
// @Success      200  {array}  dto.HarasResponse
// @Router       /api/haras [get]
func (h *HarasHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener haras
// @Tags         haras
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Haras ID"
// @Success      200  {object}  dto.HarasResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/haras/{id} [get]
func (h *HarasHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
