package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/application/inventory"
	"github.com/harasdev/haras-api/internal/application/report"
	"github.com/harasdev/haras-api/internal/domain"
)

// StockHandler maneja las peticiones de stock: líneas, movimientos, alertas,
// resumen y reporte PDF (todo protegido y acotado al haras del token).
type StockHandler struct {
	stocks    *inventory.StockUseCase
	movements *inventory.RegisterMovementUseCase
	alerts    *inventory.AlertUseCase
	reports   *report.StockReportUseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(stocks *inventory.StockUseCase, movements *inventory.RegisterMovementUseCase, alerts *inventory.AlertUseCase, reports *report.StockReportUseCase) *StockHandler {
	return &StockHandler{stocks: stocks, movements: movements, alerts: alerts, reports: reports}
}

// Create godoc
// @Summary      Crear línea de stock
// @Tags         feed-stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "name, category, unit_measure, quantity..."
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/feed-stocks [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stocks.Create(c.Context(), GetHarasID(c), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar stock del haras
// @Tags         feed-stocks
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría (hay, grain, medicine...)"
// @Success      200  {array}   dto.StockResponse
// @Router       /api/feed-stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.stocks.List(c.Context(), GetHarasID(c), c.Query("category"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener línea de stock
// @Tags         feed-stocks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Stock ID"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feed-stocks/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.stocks.GetByID(c.Context(), GetHarasID(c), c.Params("id"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar línea de stock (la cantidad solo cambia vía movimientos)
// @Tags         feed-stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "Stock ID"
// @Param        body  body  dto.UpdateStockRequest true  "atributos a editar"
// @Success      200   {object}  dto.StockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/feed-stocks/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.stocks.Update(c.Context(), GetHarasID(c), c.Params("id"), in)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (in | out | adjustment)
// @Tags         feed-stocks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "stock_id, type, quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/feed-stocks/movements [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, updated, err := h.movements.Register(c.Context(), inventory.FromRequest(GetHarasID(c), GetUserID(c), in))
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"movement": dto.MovementResponse{
			ID:        mov.ID,
			StockID:   mov.StockID,
			Type:      mov.Type,
			Quantity:  mov.Quantity,
			Reason:    mov.Reason,
			Notes:     mov.Notes,
			CreatedBy: mov.CreatedBy,
			CreatedAt: mov.CreatedAt,
		},
		"quantity": updated.Quantity,
	})
}

// ListMovements godoc
// @Summary      Historial de movimientos de una línea
// @Tags         feed-stocks
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "Stock ID"
// @Param        limit   query  int     false  "máx. 100, por defecto 20"
// @Param        offset  query  int     false  "por defecto 0"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feed-stocks/{id}/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.stocks.ListMovements(c.Context(), GetHarasID(c), c.Params("id"), page)
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Resumen agregado del inventario
// @Tags         feed-stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/feed-stocks/stats [get]
func (h *StockHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stocks.Summary(c.Context(), GetHarasID(c))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// ListAlerts godoc
// @Summary      Alertas de stock del haras
// @Tags         feed-stocks
// @Security     Bearer
// @Produce      json
// @Param        include_resolved  query  bool  false  "incluir alertas resueltas"
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/feed-stocks/alerts [get]
func (h *StockHandler) ListAlerts(c *fiber.Ctx) error {
	out, err := h.alerts.List(c.Context(), GetHarasID(c), c.QueryBool("include_resolved"))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// RefreshAlerts godoc
// @Summary      Reevaluar las alertas del haras
// @Tags         feed-stocks
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/feed-stocks/alerts/refresh [post]
func (h *StockHandler) RefreshAlerts(c *fiber.Ctx) error {
	out, err := h.alerts.Refresh(c.Context(), GetHarasID(c))
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(out)
}

// ResolveAlert godoc
// @Summary      Resolver una alerta
// @Tags         feed-stocks
// @Security     Bearer
// @Param        id  path  string  true  "Alert ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/feed-stocks/alerts/{id}/resolve [put]
func (h *StockHandler) ResolveAlert(c *fiber.Ctx) error {
	if err := h.alerts.Resolve(c.Context(), GetHarasID(c), c.Params("id")); err != nil {
		return stockError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF del inventario
// @Tags         feed-stocks
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/feed-stocks/report [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	pdf, err := h.reports.Generate(c.Context(), GetHarasID(c))
	if err != nil {
		return stockError(c, err)
	}
	filename := "inventario-" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// stockError traduce errores de dominio a respuestas HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput, domain.ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
