package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harasdev/haras-api/internal/application/auth"
	"github.com/harasdev/haras-api/internal/application/inventory"
	"github.com/harasdev/haras-api/internal/application/report"
	"github.com/harasdev/haras-api/internal/application/usecase"
	"github.com/harasdev/haras-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	HarasUC          *usecase.HarasUseCase
	StockUC          *inventory.StockUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AlertUC          *inventory.AlertUseCase
	StockReport      *report.StockReportUseCase
	StallUC          *usecase.StallUseCase
	HorseUC          *usecase.HorseUseCase
	EmbryoUC         *usecase.EmbryoUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authHandler.Me)
	authGroup.Post("/logout", authHandler.Logout)

	// Haras (público por ahora; el registro de usuarios necesita un haras existente)
	harasGroup := api.Group("/haras")
	harasHandler := NewHarasHandler(deps.HarasUC)
	harasGroup.Post("/", harasHandler.Create)
	harasGroup.Get("/", harasHandler.List)
	harasGroup.Get("/:id", harasHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manageStock := RequireRole(entity.RoleAdmin, entity.RoleVeterinario)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Stock de alimentos y medicinas (protegido)
	stocks := protected.Group("/feed-stocks")
	stockHandler := NewStockHandler(deps.StockUC, deps.RegisterMovement, deps.AlertUC, deps.StockReport)
	stocks.Post("/", manageStock, stockHandler.Create)
	stocks.Get("/", stockHandler.List)
	stocks.Get("/stats", stockHandler.Stats)
	stocks.Get("/report", stockHandler.Report)
	stocks.Post("/movements", stockHandler.RegisterMovement)

	// Alertas: lectura para todos, refresco y resolución para quien gestiona stock
	stocks.Get("/alerts", stockHandler.ListAlerts)
	stocks.Post("/alerts/refresh", manageStock, stockHandler.RefreshAlerts)
	stocks.Put("/alerts/:id/resolve", manageStock, stockHandler.ResolveAlert)

	stocks.Get("/:id", stockHandler.GetByID)
	stocks.Put("/:id", manageStock, stockHandler.Update)
	stocks.Get("/:id/movements", stockHandler.ListMovements)

	// Baias (protegido)
	stalls := protected.Group("/stalls")
	stallHandler := NewStallHandler(deps.StallUC)
	stalls.Post("/", adminOnly, stallHandler.Create)
	stalls.Get("/", stallHandler.List)
	stalls.Get("/:id", stallHandler.GetByID)
	stalls.Put("/:id/occupy", stallHandler.Occupy)
	stalls.Put("/:id/release", stallHandler.Release)
	stalls.Put("/:id/maintenance", adminOnly, stallHandler.SetMaintenance)

	// Caballos (protegido)
	horses := protected.Group("/horses")
	horseHandler := NewHorseHandler(deps.HorseUC)
	horses.Post("/", manageStock, horseHandler.Create)
	horses.Get("/", horseHandler.List)
	horses.Get("/:id", horseHandler.GetByID)
	horses.Put("/:id", manageStock, horseHandler.Update)

	// Transferencias de embriones (protegido; solo admin y veterinario operan)
	embryos := protected.Group("/embryos", manageStock)
	embryoHandler := NewEmbryoHandler(deps.EmbryoUC)
	embryos.Post("/", embryoHandler.Create)
	embryos.Get("/", embryoHandler.List)
	embryos.Get("/:id", embryoHandler.GetByID)
	embryos.Put("/:id/status", embryoHandler.UpdateStatus)
}
