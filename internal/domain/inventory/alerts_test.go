package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
)

func TestGenerateAlerts_SeveridadYTipoPorEstado(t *testing.T) {
	report, err := inventory.GenerateAlerts([]entity.Material{
		mat("P-LOW", 7, 10),
		mat("P-CRIT", 3, 10),
		mat("P-OUT", 0, 10),
		mat("P-OK", 12, 10),
		mat("P-GOOD", 30, 10),
	})
	require.NoError(t, err)
	require.Equal(t, 3, report.TotalAlerts)

	byPart := map[string]entity.Alert{}
	for _, a := range report.Alerts {
		byPart[a.PartID] = a
	}
	assert.Equal(t, entity.SeverityMedium, byPart["P-LOW"].Severity)
	assert.Equal(t, entity.AlertTypeLowStock, byPart["P-LOW"].AlertType)
	assert.Equal(t, entity.SeverityHigh, byPart["P-CRIT"].Severity)
	assert.Equal(t, entity.AlertTypeCriticalStock, byPart["P-CRIT"].AlertType)
	assert.Equal(t, entity.SeverityCritical, byPart["P-OUT"].Severity)
	assert.Equal(t, entity.AlertTypeStockout, byPart["P-OUT"].AlertType)
	assert.NotContains(t, byPart, "P-OK", "ADEQUATE no genera alerta")
	assert.NotContains(t, byPart, "P-GOOD", "HEALTHY no genera alerta")

	for _, a := range report.Alerts {
		assert.NotEmpty(t, a.Message)
		assert.NotEmpty(t, a.ActionRequired)
	}
}

func TestGenerateAlerts_OrdenSeveridadLuegoPartID(t *testing.T) {
	report, err := inventory.GenerateAlerts([]entity.Material{
		mat("Z-LOW", 8, 10),
		mat("B-OUT", 0, 10),
		mat("A-LOW", 6, 10),
		mat("C-CRIT", 1, 10),
		mat("A-OUT", 0, 10),
	})
	require.NoError(t, err)

	got := make([]string, 0, len(report.Alerts))
	for _, a := range report.Alerts {
		got = append(got, a.PartID)
	}
	assert.Equal(t, []string{"A-OUT", "B-OUT", "C-CRIT", "A-LOW", "Z-LOW"}, got)
}

func TestGenerateAlerts_HistogramaSumaTotal(t *testing.T) {
	var materials []entity.Material
	nonHealthy := 0
	for i := int64(0); i < 40; i++ {
		m := mat(string(rune('A'+i%26))+string(rune('a'+i/26)), i, 20)
		materials = append(materials, m)
		status, err := inventory.Classify(m)
		require.NoError(t, err)
		if status.NeedsAttention() {
			nonHealthy++
		}
	}

	report, err := inventory.GenerateAlerts(materials)
	require.NoError(t, err)

	sum := 0
	for _, n := range report.BySeverity {
		sum += n
	}
	assert.Equal(t, report.TotalAlerts, sum, "by_severity debe sumar total_alerts")
	assert.Equal(t, nonHealthy, report.TotalAlerts, "una alerta por material no HEALTHY/ADEQUATE")
	assert.Equal(t, 0, report.BySeverity[entity.SeverityLow])

	typeSum := 0
	for _, n := range report.ByType {
		typeSum += n
	}
	assert.Equal(t, report.TotalAlerts, typeSum)
}

func TestGenerateAlerts_SinMateriales_HistogramaEnCero(t *testing.T) {
	report, err := inventory.GenerateAlerts(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalAlerts)
	assert.NotNil(t, report.Alerts)
	assert.Len(t, report.BySeverity, 4, "las cuatro severidades deben estar presentes")
	for _, s := range entity.Severities {
		assert.Equal(t, 0, report.BySeverity[s])
	}
}

func TestGenerateAlerts_ConfigurationErrorAborta(t *testing.T) {
	_, err := inventory.GenerateAlerts([]entity.Material{
		mat("P1", 1, 10),
		mat("P-BAD", 1, 0),
	})
	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "P-BAD", cfgErr.PartID)
}
