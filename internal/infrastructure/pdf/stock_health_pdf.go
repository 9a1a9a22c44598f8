// Package pdf genera el reporte de salud de inventario con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación + versión snapshot     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: materiales / valor total / bajo stock / agotados   │
//	│  ESTADOS: conteo por estado de salud                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA ALERTAS: Severidad | Parte | Stock | Reorden | Acción │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA REPOSICIÓN: Prioridad | Parte | Pedido | Costo        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

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

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

var _ analytics.StockHealthPDFGenerator = (*StockHealthGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorCritical = &props.Color{Red: 176, Green: 0, Blue: 32}
	colorHigh     = &props.Color{Red: 214, Green: 96, Blue: 0}
)

// StockHealthGenerator implementa analytics.StockHealthPDFGenerator.
type StockHealthGenerator struct{}

// NewStockHealthGenerator construye el generador.
func NewStockHealthGenerator() *StockHealthGenerator { return &StockHealthGenerator{} }

// GenerateStockHealthPDF genera el PDF y devuelve sus bytes.
func (g *StockHealthGenerator) GenerateStockHealthPDF(ctx context.Context, report *dto.StockHealthReportDTO) ([]byte, error) {
	if report == nil || report.Summary == nil || report.Health == nil || report.Alerts == nil {
		return nil, fmt.Errorf("pdf: reporte incompleto")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(statusRow(report.Health))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle(fmt.Sprintf("ALERTAS (%d)", report.Alerts.TotalAlerts)))
	if len(report.Alerts.Alerts) == 0 {
		m.AddRows(emptyRow("Sin alertas: todos los materiales están sobre el punto de reorden."))
	} else {
		m.AddRows(alertHeaderRow())
		m.AddRows(alertRows(report.Alerts.Alerts)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitle(fmt.Sprintf("REPOSICIÓN SUGERIDA (%d)", len(report.Replenishment))))
	if len(report.Replenishment) == 0 {
		m.AddRows(emptyRow("No hay pedidos sugeridos."))
	} else {
		m.AddRows(replenishmentHeaderRow())
		m.AddRows(replenishmentRows(report.Replenishment)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.StockHealthReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Snapshot: "+report.Summary.SnapshotVersion, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRow(s *dto.InventorySummaryDTO) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		cell("Materiales", strconv.Itoa(s.TotalMaterials)),
		cell("Valor en stock", "$"+formatMoney(s.TotalStockValue)),
		cell("Bajo stock", strconv.Itoa(s.LowStockCount)),
		cell("Agotados", strconv.Itoa(s.OutOfStockCount)),
	)
}

func statusRow(h *dto.StockHealthDTO) core.Row {
	parts := make([]string, 0, len(entity.HealthStatuses))
	for _, st := range entity.HealthStatuses {
		parts = append(parts, fmt.Sprintf("%s: %d", st, h.ByStatus[string(st)]))
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(strings.Join(parts, "   |   "), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}),
	))
}

func emptyRow(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

// headerCells cabecera de tabla con fondo del color primario.
func headerCells(cells ...headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

type headerCell struct {
	label string
	size  int
	align align.Type
}

func alertHeaderRow() core.Row {
	return headerCells(
		headerCell{"Severidad", 2, align.Left},
		headerCell{"Parte", 4, align.Left},
		headerCell{"Stock", 1, align.Right},
		headerCell{"Reorden", 1, align.Right},
		headerCell{"Acción", 4, align.Left},
	)
}

func alertRows(alerts []dto.AlertDTO) []core.Row {
	rows := make([]core.Row, 0, len(alerts))
	for _, a := range alerts {
		sev := props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1}
		switch entity.Severity(a.Severity) {
		case entity.SeverityCritical:
			sev.Color = colorCritical
		case entity.SeverityHigh:
			sev.Color = colorHigh
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(strings.ToUpper(a.Severity), sev)),
			col.New(4).Add(text.New(a.PartID+" "+a.PartName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(a.CurrentStock, 10), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(1).Add(text.New(strconv.FormatInt(a.ReorderPoint, 10), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(4).Add(text.New(a.ActionRequired, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
		))
	}
	return rows
}

func replenishmentHeaderRow() core.Row {
	return headerCells(
		headerCell{"#", 1, align.Center},
		headerCell{"Parte", 5, align.Left},
		headerCell{"Estado", 2, align.Left},
		headerCell{"Pedido", 1, align.Right},
		headerCell{"Costo estimado", 3, align.Right},
	)
}

func replenishmentRows(list []dto.ReplenishmentSuggestionDTO) []core.Row {
	rows := make([]core.Row, 0, len(list))
	for _, s := range list {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(s.Priority), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(5).Add(text.New(s.PartID+" "+s.PartName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(s.Status, props.Text{Size: 7, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.FormatInt(s.SuggestedOrderQty, 10), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
			col.New(3).Add(text.New("$"+formatMoney(s.EstimatedOrderCost), props.Text{Size: 8, Top: 1, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney usa punto de miles y coma decimal. Ej: 25033.37 → "25.033,37".
func formatMoney(m dto.Money) string {
	s := m.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + "," + frac
}
