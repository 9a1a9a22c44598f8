package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
)

// ReportUseCase genera el reporte PDF de salud de inventario.
// Resumen, conteo por estado, alertas y reposición salen del mismo snapshot.
type ReportUseCase struct {
	queries   *QueryUseCase
	generator StockHealthPDFGenerator
	now       func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(queries *QueryUseCase, generator StockHealthPDFGenerator) *ReportUseCase {
	return &ReportUseCase{queries: queries, generator: generator, now: time.Now}
}

// Build arma los datos del reporte sin renderizarlo.
func (uc *ReportUseCase) Build(ctx context.Context) (*dto.StockHealthReportDTO, error) {
	snap, err := uc.queries.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	valuation, err := inventory.Summarize(snap.Materials)
	if err != nil {
		return nil, err
	}
	alerts, err := inventory.GenerateAlerts(snap.Materials)
	if err != nil {
		return nil, err
	}
	health, err := stockHealth(snap, dto.PageRequest{})
	if err != nil {
		return nil, err
	}
	replenishment, err := inventory.Replenishment(snap.Materials)
	if err != nil {
		return nil, err
	}

	return &dto.StockHealthReportDTO{
		Title:         "Reporte de salud de inventario",
		GeneratedAt:   uc.now(),
		Summary:       toSummaryDTO(valuation, snap.Materials, snap.Version),
		Health:        health,
		Alerts:        toAlertsDTO(alerts, snap.Version),
		Replenishment: toReplenishmentDTOs(replenishment),
	}, nil
}

// DownloadStockHealthPDF genera el PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) DownloadStockHealthPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	report, err := uc.Build(ctx)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateStockHealthPDF(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar reporte: %w", err)
	}
	filename = fmt.Sprintf("salud-inventario-%s.pdf", report.GeneratedAt.Format("20060102-1504"))
	return pdfBytes, filename, nil
}
