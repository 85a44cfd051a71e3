package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/harasdev/haras-api/internal/application/auth"
	"github.com/harasdev/haras-api/internal/application/inventory"
	"github.com/harasdev/haras-api/internal/application/report"
	"github.com/harasdev/haras-api/internal/application/usecase"
	infrapdf "github.com/harasdev/haras-api/internal/infrastructure/pdf"
	"github.com/harasdev/haras-api/internal/infrastructure/postgres"
	"github.com/harasdev/haras-api/internal/interfaces/http"
	"github.com/harasdev/haras-api/internal/jobs"
	"github.com/harasdev/haras-api/pkg/config"
	"github.com/harasdev/haras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	harasRepo := postgres.NewHarasRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	alertRepo := postgres.NewStockAlertRepository(pool)
	stallRepo := postgres.NewStallRepository(pool)
	horseRepo := postgres.NewHorseRepository(pool)
	embryoRepo := postgres.NewEmbryoTransferRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := inventory.NewStockUseCase(stockRepo, movementRepo, time.Now)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	alertUC := inventory.NewAlertUseCase(stockRepo, alertRepo, time.Now)

	pdfGenerator := infrapdf.NewMarotoStockReport()
	stockReportUC := report.NewStockReportUseCase(harasRepo, stockUC, pdfGenerator, time.Now)

	harasUC := usecase.NewHarasUseCase(harasRepo)
	stallUC := usecase.NewStallUseCase(stallRepo, horseRepo)
	horseUC := usecase.NewHorseUseCase(horseRepo)
	embryoUC := usecase.NewEmbryoUseCase(embryoRepo, horseRepo)

	authUC := auth.NewAuthUseCase(userRepo, harasRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Refresco periódico de alertas de stock para todos los haras.
	alertScheduler, err := jobs.NewAlertScheduler(
		harasRepo, alertUC,
		time.Duration(cfg.Jobs.AlertRefreshMinutes)*time.Minute,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("crear scheduler de alertas")
	}
	alertScheduler.Start()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Haras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	http.Router(app, http.RouterDeps{
		HarasUC:          harasUC,
		StockUC:          stockUC,
		RegisterMovement: registerMovementUC,
		AlertUC:          alertUC,
		StockReport:      stockReportUC,
		StallUC:          stallUC,
		HorseUC:          horseUC,
		EmbryoUC:         embryoUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := alertScheduler.Stop(); err != nil {
		log.Error().Err(err).Msg("apagado del scheduler de alertas")
	}

	log.Info().Msg("aplicación detenida")
}
