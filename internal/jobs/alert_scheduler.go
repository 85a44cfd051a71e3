// Package jobs agrupa los trabajos programados de la aplicación.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/harasdev/haras-api/internal/application/inventory"
	"github.com/harasdev/haras-api/internal/domain/repository"
	"github.com/harasdev/haras-api/pkg/logger"
)

// AlertScheduler reevalúa periódicamente las alertas de stock de todos los
// haras. Las alertas también se regeneran a demanda vía HTTP; este job
// garantiza que las derivadas de fechas (vencimientos) no queden obsoletas.
type AlertScheduler struct {
	scheduler gocron.Scheduler
	harasRepo repository.HarasRepository
	alerts    *inventory.AlertUseCase
	interval  time.Duration
	log       *logger.Logger
}

// NewAlertScheduler construye el scheduler. interval <= 0 deshabilita el job.
func NewAlertScheduler(harasRepo repository.HarasRepository, alerts *inventory.AlertUseCase, interval time.Duration, log *logger.Logger) (*AlertScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("crear scheduler: %w", err)
	}
	s := &AlertScheduler{
		scheduler: scheduler,
		harasRepo: harasRepo,
		alerts:    alerts,
		interval:  interval,
		log:       log,
	}
	if interval > 0 {
		_, err = scheduler.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(s.refreshAll),
			gocron.WithName("stock-alert-refresh"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, fmt.Errorf("registrar job de alertas: %w", err)
		}
	}
	return s, nil
}

// Start arranca el scheduler.
func (s *AlertScheduler) Start() {
	if s.interval <= 0 {
		s.log.Info().Msg("job de alertas deshabilitado")
		return
	}
	s.log.Info().Dur("interval", s.interval).Msg("job de alertas iniciado")
	s.scheduler.Start()
}

// Stop detiene el scheduler y espera a que terminen los jobs en curso.
func (s *AlertScheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *AlertScheduler) refreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ids, err := s.harasRepo.ListIDs(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("job de alertas: listar haras")
		return
	}
	for _, harasID := range ids {
		alerts, err := s.alerts.Refresh(ctx, harasID)
		if err != nil {
			s.log.Error().Err(err).Str("haras_id", harasID).Msg("job de alertas: reevaluación")
			continue
		}
		s.log.Debug().Str("haras_id", harasID).Int("alerts", len(alerts)).Msg("alertas reevaluadas")
	}
}
