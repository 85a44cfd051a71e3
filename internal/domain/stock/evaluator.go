// Package stock contiene los servicios de dominio puros sobre líneas de
// inventario: clasificación de estado, evaluación de alertas y agregación
// de estadísticas. Ninguna función lee el reloj global: "now" se pasa
// explícitamente para que los cálculos sean deterministas y testeables.
package stock

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harasdev/haras-api/internal/domain/entity"
)

// Niveles de estado de una línea de stock según porcentaje de llenado.
const (
	StatusCritical = "critical"
	StatusLow      = "low"
	StatusMedium   = "medium"
	StatusGood     = "good"
)

// Ventana de preaviso de vencimiento.
const (
	nearExpiryWindowDays = 30
	urgentExpiryDays     = 7
)

var half = decimal.NewFromFloat(0.5)

// Status clasifica el estado de llenado de la línea:
// p = Quantity/MaxCapacity*100; p<=10 critical, p<=25 low, p<=50 medium, resto good.
// MaxCapacity <= 0 se trata como critical (la división no está definida).
func Status(s *entity.Stock) string {
	if s.MaxCapacity.LessThanOrEqual(decimal.Zero) {
		return StatusCritical
	}
	pct := s.Quantity.Div(s.MaxCapacity).Mul(decimal.NewFromInt(100))
	switch {
	case pct.LessThanOrEqual(decimal.NewFromInt(10)):
		return StatusCritical
	case pct.LessThanOrEqual(decimal.NewFromInt(25)):
		return StatusLow
	case pct.LessThanOrEqual(decimal.NewFromInt(50)):
		return StatusMedium
	default:
		return StatusGood
	}
}

// Evaluation es el resultado de evaluar una línea: tipo, severidad y mensaje
// listos para materializarse como StockAlert.
type Evaluation struct {
	Type     string
	Severity string
	Message  string
}

// Evaluate produce cero o más evaluaciones de alerta para la línea:
//   - low_stock cuando Quantity <= MinThreshold (high si Quantity <= MinThreshold*0.5, si no medium);
//   - expired cuando la fecha de vencimiento ya pasó;
//   - near_expiry cuando vence dentro de 30 días (high si faltan <= 7 días, si no medium).
//
// Función pura: sin efectos, sin reloj global.
func Evaluate(s *entity.Stock, now time.Time) []Evaluation {
	var evals []Evaluation

	if s.Quantity.LessThanOrEqual(s.MinThreshold) {
		severity := entity.SeverityMedium
		if s.Quantity.LessThanOrEqual(s.MinThreshold.Mul(half)) {
			severity = entity.SeverityHigh
		}
		evals = append(evals, Evaluation{
			Type:     entity.AlertLowStock,
			Severity: severity,
			Message: fmt.Sprintf("'%s' en nivel bajo: %s %s (umbral %s)",
				s.Name, s.Quantity.String(), s.UnitMeasure, s.MinThreshold.String()),
		})
	}

	if s.ExpirationDate != nil {
		if exp := *s.ExpirationDate; exp.Before(now) {
			evals = append(evals, Evaluation{
				Type:     entity.AlertExpired,
				Severity: entity.SeverityCritical,
				Message: fmt.Sprintf("'%s' venció el %s",
					s.Name, exp.Format("02/01/2006")),
			})
		} else if days := daysUntil(now, exp); days <= nearExpiryWindowDays {
			severity := entity.SeverityMedium
			if days <= urgentExpiryDays {
				severity = entity.SeverityHigh
			}
			evals = append(evals, Evaluation{
				Type:     entity.AlertNearExpiry,
				Severity: severity,
				Message: fmt.Sprintf("'%s' vence en %d días (%s)",
					s.Name, days, exp.Format("02/01/2006")),
			})
		}
	}

	return evals
}

// daysUntil días calendario completos entre now y exp (exp >= now).
func daysUntil(now, exp time.Time) int {
	return int(exp.Sub(now).Hours() / 24)
}
