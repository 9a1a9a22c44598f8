package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/pdf"
)

func sampleReport() *dto.StockHealthReportDTO {
	return &dto.StockHealthReportDTO{
		Title:       "Salud de inventario",
		GeneratedAt: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
		Summary: &dto.InventorySummaryDTO{
			TotalMaterials:  2,
			TotalStockValue: dto.NewMoney(decimal.RequireFromString("25033.37")),
			LowStockCount:   1,
			OutOfStockCount: 1,
			SnapshotVersion: "v1",
		},
		Health: &dto.StockHealthDTO{
			TotalMaterials: 2,
			ByStatus:       map[string]int{"OUT_OF_STOCK": 1, "HEALTHY": 1},
		},
		Alerts: &dto.AlertsDTO{
			TotalAlerts: 1,
			Alerts: []dto.AlertDTO{{
				Severity: "critical", AlertType: "stockout", PartID: "WHEEL-10", PartName: "Rueda",
				Status: "OUT_OF_STOCK", ReorderPoint: 10, ActionRequired: "Pedido urgente",
			}},
		},
		Replenishment: []dto.ReplenishmentSuggestionDTO{{
			PartID: "WHEEL-10", PartName: "Rueda", Status: "OUT_OF_STOCK",
			SuggestedOrderQty: 15, EstimatedOrderCost: dto.NewMoney(decimal.RequireFromString("682.5")), Priority: 1,
		}},
	}
}

func TestStockHealthGenerator_GeneraPDF(t *testing.T) {
	out, err := pdf.NewStockHealthGenerator().GenerateStockHealthPDF(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "cabecera PDF")
}

func TestStockHealthGenerator_SinAlertas(t *testing.T) {
	r := sampleReport()
	r.Alerts = &dto.AlertsDTO{}
	r.Replenishment = nil
	out, err := pdf.NewStockHealthGenerator().GenerateStockHealthPDF(context.Background(), r)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestStockHealthGenerator_ReporteIncompleto(t *testing.T) {
	_, err := pdf.NewStockHealthGenerator().GenerateStockHealthPDF(context.Background(), &dto.StockHealthReportDTO{})
	assert.Error(t, err)
}
