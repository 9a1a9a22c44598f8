package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/application/analytics"
	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/domain"
)

type fakePDF struct {
	got *dto.StockHealthReportDTO
	err error
}

func (f *fakePDF) GenerateStockHealthPDF(_ context.Context, r *dto.StockHealthReportDTO) ([]byte, error) {
	f.got = r
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func TestReport_Build(t *testing.T) {
	uc, src := newUC(testSnapshot("v7"))
	report := analytics.NewReportUseCase(uc, &fakePDF{})

	out, err := report.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, src.calls, "todas las secciones del mismo snapshot")
	assert.Equal(t, "v7", out.Summary.SnapshotVersion)
	assert.Equal(t, "v7", out.Alerts.SnapshotVersion)
	assert.Equal(t, 2, out.Alerts.TotalAlerts)
	assert.Len(t, out.Health.Materials, 4)
	assert.Len(t, out.Replenishment, 2)
	assert.False(t, out.GeneratedAt.IsZero())
}

func TestReport_DownloadPDF(t *testing.T) {
	uc, _ := newUC(testSnapshot("v7"))
	gen := &fakePDF{}
	report := analytics.NewReportUseCase(uc, gen)

	pdf, filename, err := report.DownloadStockHealthPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
	assert.Regexp(t, `^salud-inventario-\d{8}-\d{4}\.pdf$`, filename)
	require.NotNil(t, gen.got)
}

func TestReport_ErroresSePropagan(t *testing.T) {
	uc, _ := newUC(testSnapshot("v7"))
	_, _, err := analytics.NewReportUseCase(uc, &fakePDF{err: errors.New("fuente sin glifos")}).
		DownloadStockHealthPDF(context.Background())
	assert.ErrorContains(t, err, "fuente sin glifos")

	broken := testSnapshot("v8")
	broken.Materials[0].ReorderPoint = -1
	uc, _ = newUC(broken)
	_, _, err = analytics.NewReportUseCase(uc, &fakePDF{}).DownloadStockHealthPDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
