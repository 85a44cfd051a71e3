// Package pdf implementa la generación del reporte PDF del inventario del haras.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del haras  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Totales / líneas bajas / vencidas / por vencer     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Categoría | Cantidad | Mínimo | Estado      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/harasdev/haras-api/internal/application/report"
	"github.com/harasdev/haras-api/internal/domain/entity"
	"github.com/harasdev/haras-api/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 183, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appreport.StockPDFGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa report.StockPDFGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockPDF genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockPDF(
	_ context.Context,
	haras *entity.Haras,
	items []*entity.Stock,
	summary stock.Summary,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(haras.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(haras, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(categoryRows(summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del haras (izq) y fecha de generación (der).
func headerRow(haras *entity.Haras, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(haras.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// summaryRow: totales agregados del inventario.
func summaryRow(summary stock.Summary) core.Row {
	alertColor := colorGray
	if summary.LowStockItems > 0 || summary.ExpiredItems > 0 {
		alertColor = colorAlert
	}
	return row.New(14).Add(
		col.New(3).Add(
			text.New(fmt.Sprintf("Líneas: %d", summary.TotalItems), props.Text{Size: 9, Top: 2}),
			text.New("Valor total: "+summary.TotalValue.StringFixed(2), props.Text{Size: 9, Top: 8}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("En nivel bajo: %d", summary.LowStockItems), props.Text{
				Size: 9, Top: 2, Color: alertColor,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("Vencidas: %d", summary.ExpiredItems), props.Text{
				Size: 9, Top: 2, Color: alertColor,
			}),
		),
		col.New(3).Add(
			text.New(fmt.Sprintf("Por vencer: %d", summary.NearExpiryItems), props.Text{Size: 9, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(4).Add(text.New("Nombre", header)),
		col.New(2).Add(text.New("Categoría", header)),
		col.New(2).Add(text.New("Cantidad", propRight(header))),
		col.New(2).Add(text.New("Mínimo", propRight(header))),
		col.New(2).Add(text.New("Estado", header)),
	)
}

func tableItemRows(items []*entity.Stock) []core.Row {
	rows := make([]core.Row, 0, len(items))
	cell := props.Text{Size: 9, Top: 1}
	for _, s := range items {
		status := stock.Status(s)
		statusProps := cell
		if status == stock.StatusCritical || status == stock.StatusLow {
			statusProps.Color = colorAlert
		}
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(s.Name, cell)),
			col.New(2).Add(text.New(s.Category, cell)),
			col.New(2).Add(text.New(s.Quantity.StringFixed(2)+" "+s.UnitMeasure, propRight(cell))),
			col.New(2).Add(text.New(s.MinThreshold.StringFixed(2), propRight(cell))),
			col.New(2).Add(text.New(status, statusProps)),
		))
	}
	return rows
}

// categoryRows: desglose por categoría al pie, ordenado para salida estable.
func categoryRows(summary stock.Summary) []core.Row {
	cats := make([]string, 0, len(summary.ByCategory))
	for c := range summary.ByCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)

	rows := make([]core.Row, 0, len(cats)+1)
	rows = append(rows, row.New(8).Add(
		col.New(12).Add(text.New("Por categoría", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	))
	for _, c := range cats {
		cs := summary.ByCategory[c]
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(c, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(fmt.Sprintf("%d líneas", cs.Count), props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New("valor "+cs.Value.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func propRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
