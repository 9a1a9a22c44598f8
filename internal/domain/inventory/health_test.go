package inventory_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
)

// mat construye un material de prueba con precio unitario 1.
func mat(partID string, stock, reorderPoint int64) entity.Material {
	return entity.Material{
		PartID:       partID,
		PartName:     "Pieza " + partID,
		Category:     "Component",
		CurrentStock: stock,
		ReorderPoint: reorderPoint,
		UnitPrice:    decimal.NewFromInt(1),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_Escenarios(t *testing.T) {
	cases := []struct {
		name  string
		stock int64
		rp    int64
		want  entity.HealthStatus
	}{
		{"A: sin stock", 0, 10, entity.HealthOutOfStock},
		{"B: razón 0.4", 4, 10, entity.HealthCritical},
		{"C: razón 1.2", 12, 10, entity.HealthAdequate},
		{"límite 0.5 es LOW", 5, 10, entity.HealthLow},
		{"justo bajo 1.0 es LOW", 9, 10, entity.HealthLow},
		{"límite 1.0 es ADEQUATE", 10, 10, entity.HealthAdequate},
		{"justo bajo 1.5 es ADEQUATE", 14, 10, entity.HealthAdequate},
		{"límite 1.5 es HEALTHY", 15, 10, entity.HealthHealthy},
		{"muy por encima", 1000, 10, entity.HealthHealthy},
		{"reorden impar 1/3", 1, 3, entity.HealthCritical},
		{"reorden impar 2/3", 2, 3, entity.HealthLow},
		{"reorden impar 4/3", 4, 3, entity.HealthAdequate},
		{"reorden impar 5/3", 5, 3, entity.HealthHealthy},
		{"reorden 1 con stock 1", 1, 1, entity.HealthAdequate},
		{"reorden 1 con stock 2", 2, 1, entity.HealthHealthy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.Classify(mat("P1", tc.stock, tc.rp))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_ReorderPointNoPositivo_ConfigurationError(t *testing.T) {
	for _, rp := range []int64{0, -5} {
		_, err := inventory.Classify(mat("P9", 3, rp))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConfiguration)

		var cfgErr *domain.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "P9", cfgErr.PartID, "el error debe nombrar el material")
		assert.Equal(t, rp, cfgErr.ReorderPoint)
	}
}

// La clasificación es total y monótona: para un punto de reorden fijo, más stock
// nunca empeora el estado, y cada par produce exactamente un estado válido.
func TestClassify_TotalYMonotona(t *testing.T) {
	for rp := int64(1); rp <= 25; rp++ {
		prevRank := -1
		for stock := int64(0); stock <= 4*rp; stock++ {
			status, err := inventory.Classify(mat("P", stock, rp))
			require.NoError(t, err)
			rank := status.Rank()
			require.GreaterOrEqual(t, rank, 0, "estado inválido para stock=%d rp=%d", stock, rp)
			assert.GreaterOrEqual(t, rank, prevRank, "stock=%d rp=%d empeoró el estado", stock, rp)
			prevRank = rank

			// Coherencia con la razón exacta (stock·2 y stock·2/3 evitan flotantes).
			switch {
			case stock == 0:
				assert.Equal(t, entity.HealthOutOfStock, status)
			case 2*stock < rp:
				assert.Equal(t, entity.HealthCritical, status)
			case stock < rp:
				assert.Equal(t, entity.HealthLow, status)
			case 2*stock < 3*rp:
				assert.Equal(t, entity.HealthAdequate, status)
			default:
				assert.Equal(t, entity.HealthHealthy, status)
			}
		}
	}
}

// Cerca de math.MaxInt64 los umbrales siguen siendo exactos: nada se multiplica.
func TestClassify_ValoresExtremos(t *testing.T) {
	const top = math.MaxInt64
	cases := []struct {
		name  string
		stock int64
		rp    int64
		want  entity.HealthStatus
	}{
		{"stock y reorden máximos", top, top, entity.HealthAdequate},
		{"justo bajo la mitad", top / 2, top, entity.HealthCritical},
		{"justo en la mitad", top/2 + 1, top, entity.HealthLow},
		{"reorden máximo menos uno", top - 1, top, entity.HealthLow},
		{"stock máximo, reorden apenas menor", top, top - 1, entity.HealthAdequate},
		{"razón 2 con valores enormes", top, top/2 + 1, entity.HealthHealthy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.Classify(mat("P1", tc.stock, tc.rp))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIdealStock(t *testing.T) {
	assert.Equal(t, int64(15), inventory.IdealStock(10))
	assert.Equal(t, int64(5), inventory.IdealStock(3))
	assert.Equal(t, int64(2), inventory.IdealStock(1))
	assert.Equal(t, int64(6917529027641081855), inventory.IdealStock(math.MaxInt64/2))
	assert.Equal(t, int64(math.MaxInt64), inventory.IdealStock(math.MaxInt64), "satura")
}

func TestClassify_Idempotente(t *testing.T) {
	m := mat("P1", 7, 10)
	first, err1 := inventory.Classify(m)
	second, err2 := inventory.Classify(m)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestStockRatio(t *testing.T) {
	r, err := inventory.StockRatio(mat("P1", 1, 3))
	require.NoError(t, err)
	assert.Equal(t, "0.3333", r.String())

	_, err = inventory.StockRatio(mat("P1", 1, 0))
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestTallyHealth_HistogramaCompleto(t *testing.T) {
	tally, err := inventory.TallyHealth([]entity.Material{
		mat("A", 0, 10),
		mat("B", 0, 10),
		mat("C", 20, 10),
	})
	require.NoError(t, err)
	assert.Len(t, tally, 5, "deben aparecer los cinco estados")
	assert.Equal(t, 2, tally[entity.HealthOutOfStock])
	assert.Equal(t, 1, tally[entity.HealthHealthy])
	assert.Equal(t, 0, tally[entity.HealthLow])
}
