package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/application/usecase"
	"github.com/harasdev/haras-api/internal/domain"
)

// EmbryoHandler maneja las peticiones de transferencias embrionarias.
type EmbryoHandler struct {
	uc *usecase.EmbryoUseCase
}

// NewEmbryoHandler construye el handler de transferencias.
func NewEmbryoHandler(uc *usecase.EmbryoUseCase) *EmbryoHandler {
	return &EmbryoHandler{uc: uc}
}

// Create godoc
// @Summary      Planificar transferencia embrionaria
// @Tags         embryos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmbryoTransferRequest  true  "donor_mare_id, stallion_name..."
// @Success      201   {object}  dto.EmbryoTransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/embryos [post]
func (h *EmbryoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmbryoTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetHarasID(c), in)
	if err != nil {
		return embryoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar transferencias del haras
// @Tags         embryos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100, por defecto 20"
// @Param        offset  query  int  false  "por defecto 0"
// @Success      200  {array}  dto.EmbryoTransferResponse
// @Router       /api/embryos [get]
func (h *EmbryoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.uc.List(c.Context(), GetHarasID(c), page)
	if err != nil {
		return embryoError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener transferencia
// @Tags         embryos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Transfer ID"
// @Success      200  {object}  dto.EmbryoTransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/embryos/{id} [get]
func (h *EmbryoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetHarasID(c), c.Params("id"))
	if err != nil {
		return embryoError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar el estado clínico de una transferencia
// @Tags         embryos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "Transfer ID"
// @Param        body  body  dto.UpdateEmbryoStatusRequest true  "status: transferred | confirmed | failed"
// @Success      200   {object}  dto.EmbryoTransferResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/embryos/{id}/status [put]
func (h *EmbryoHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateEmbryoStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(c.Context(), GetHarasID(c), c.Params("id"), in)
	if err != nil {
		return embryoError(c, err)
	}
	return c.JSON(out)
}

func embryoError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrConflict:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
