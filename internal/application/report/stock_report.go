// Package report arma el reporte PDF del inventario de un haras.
package report

import (
	"context"
	"time"

	"github.com/harasdev/haras-api/internal/application/inventory"
	"github.com/harasdev/haras-api/internal/domain"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/repository"
	"github.com/harasdev/haras-api/internal/domain/stock"
)

// StockPDFGenerator puerto del generador de PDF del inventario.
type StockPDFGenerator interface {
	GenerateStockPDF(ctx context.Context, haras *entity.Haras, items []*entity.Stock, summary stock.Summary, generatedAt time.Time) ([]byte, error)
}

// StockReportUseCase genera el reporte de inventario del haras.
type StockReportUseCase struct {
	harasRepo repository.HarasRepository
	stocks    *inventory.StockUseCase
	generator StockPDFGenerator
	now       func() time.Time
}

// NewStockReportUseCase construye el caso de uso. nowFn puede ser nil (usa time.Now).
func NewStockReportUseCase(harasRepo repository.HarasRepository, stocks *inventory.StockUseCase, generator StockPDFGenerator, nowFn func() time.Time) *StockReportUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &StockReportUseCase{harasRepo: harasRepo, stocks: stocks, generator: generator, now: nowFn}
}

// Generate produce el PDF con las líneas de stock y el resumen agregado.
func (uc *StockReportUseCase) Generate(ctx context.Context, harasID string) ([]byte, error) {
	haras, err := uc.harasRepo.GetByID(ctx, harasID)
	if err != nil {
		return nil, err
	}
	if haras == nil {
		return nil, domain.ErrNotFound
	}
	items, summary, err := uc.stocks.ItemsForReport(ctx, harasID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockPDF(ctx, haras, items, summary, uc.now())
}
