package inventory_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
)

func index(materials ...entity.Material) map[string]entity.Material {
	idx := make(map[string]entity.Material, len(materials))
	for _, m := range materials {
		idx[m.PartID] = m
	}
	return idx
}

func bom(model string, lines ...any) []entity.BOMEntry {
	entries := make([]entity.BOMEntry, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		entries = append(entries, entity.BOMEntry{
			ScooterModel:    model,
			PartID:          lines[i].(string),
			RequiredPerUnit: int64(lines[i+1].(int)),
		})
	}
	return entries
}

func partIDs(caps []entity.MaterialCapacity) []string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, c.PartID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildCapacity
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildCapacity_CuelloDeBotella(t *testing.T) {
	materials := index(mat("partA", 10, 5), mat("partB", 9, 5))
	entries := bom("S1", "partA", 2, "partB", 3)

	res, err := inventory.BuildCapacity("S1", entries, materials)
	require.NoError(t, err)

	assert.Equal(t, "S1", res.ScooterModel)
	assert.Equal(t, int64(3), res.MaxUnits)
	assert.Equal(t, 2, res.TotalPartsInBOM)
	assert.Equal(t, []string{"partB"}, partIDs(res.BottleneckMaterials))
	assert.Equal(t, []string{"partA"}, partIDs(res.SufficientMaterials))
	assert.Equal(t, int64(5), res.SufficientMaterials[0].UnitsPossible)
	assert.Equal(t, int64(3), res.BottleneckMaterials[0].RequiredPerUnit)
}

func TestBuildCapacity_ModeloDesconocido(t *testing.T) {
	materials := index(mat("partA", 10, 5))
	_, err := inventory.BuildCapacity("NOPE", bom("S1", "partA", 1), materials)

	var unknown *domain.UnknownModelError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NOPE", unknown.Model)
	assert.ErrorIs(t, err, domain.ErrUnknownModel)
}

func TestBuildCapacity_MaterialAusente(t *testing.T) {
	materials := index(mat("partA", 10, 5))
	_, err := inventory.BuildCapacity("S1", bom("S1", "partA", 1, "ghost", 2), materials)

	var missing *domain.MissingMaterialError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "S1", missing.Model)
	assert.Equal(t, "ghost", missing.PartID)
	assert.ErrorIs(t, err, domain.ErrMissingMaterial)
}

func TestBuildCapacity_EmpatesSonTodosCuellos(t *testing.T) {
	materials := index(mat("a", 0, 5), mat("b", 0, 5), mat("c", 40, 5))
	res, err := inventory.BuildCapacity("S1", bom("S1", "c", 1, "b", 1, "a", 1), materials)
	require.NoError(t, err)

	assert.Equal(t, int64(0), res.MaxUnits)
	assert.Equal(t, []string{"a", "b"}, partIDs(res.BottleneckMaterials), "todos los quiebres juntos")
	assert.Equal(t, []string{"c"}, partIDs(res.SufficientMaterials))
}

func TestBuildCapacity_LineasDuplicadasSeSuman(t *testing.T) {
	materials := index(mat("bolt", 20, 5))
	res, err := inventory.BuildCapacity("S1", bom("S1", "bolt", 2, "bolt", 3), materials)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalPartsInBOM)
	assert.Equal(t, int64(5), res.BottleneckMaterials[0].RequiredPerUnit)
	assert.Equal(t, int64(4), res.MaxUnits)
}

func TestBuildCapacity_IgnoraOtrosModelos(t *testing.T) {
	materials := index(mat("a", 10, 5), mat("b", 1, 5))
	entries := append(bom("S1", "a", 1), bom("S2", "b", 1)...)

	res, err := inventory.BuildCapacity("S1", entries, materials)
	require.NoError(t, err)
	assert.Equal(t, int64(10), res.MaxUnits)
	assert.Equal(t, 1, res.TotalPartsInBOM)
}

// Particiones: cuellos ∪ suficientes = BOM, disjuntos, y max_units es el mínimo.
func TestBuildCapacity_Particion(t *testing.T) {
	for stock := int64(0); stock <= 30; stock += 3 {
		materials := index(mat("a", stock, 5), mat("b", 12, 5), mat("c", 7, 5))
		res, err := inventory.BuildCapacity("S1", bom("S1", "a", 2, "b", 4, "c", 1), materials)
		require.NoError(t, err)

		assert.Equal(t, res.TotalPartsInBOM, len(res.BottleneckMaterials)+len(res.SufficientMaterials))
		require.NotEmpty(t, res.BottleneckMaterials)
		for _, c := range res.BottleneckMaterials {
			assert.Equal(t, res.MaxUnits, c.UnitsPossible)
		}
		for _, c := range res.SufficientMaterials {
			assert.Greater(t, c.UnitsPossible, res.MaxUnits)
		}
	}
}

// Más stock en cualquier material nunca reduce max_units; más consumo en el cuello
// nunca lo aumenta.
func TestBuildCapacity_Monotonia(t *testing.T) {
	prev := int64(-1)
	for stock := int64(0); stock <= 50; stock++ {
		materials := index(mat("a", stock, 5), mat("b", 30, 5))
		res, err := inventory.BuildCapacity("S1", bom("S1", "a", 3, "b", 2), materials)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.MaxUnits, prev)
		prev = res.MaxUnits
	}

	prev = int64(1 << 62)
	for req := 1; req <= 20; req++ {
		materials := index(mat("a", 40, 5), mat("b", 100, 5))
		res, err := inventory.BuildCapacity("S1", bom("S1", "a", req, "b", 1), materials)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.MaxUnits, prev)
		prev = res.MaxUnits
	}
}

func TestBuildCapacity_Idempotente(t *testing.T) {
	materials := index(mat("a", 17, 5), mat("b", 4, 5), mat("c", 4, 5))
	entries := bom("S1", "a", 2, "b", 1, "c", 1)

	first, err := inventory.BuildCapacity("S1", entries, materials)
	require.NoError(t, err)
	second, err := inventory.BuildCapacity("S1", entries, materials)
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.JSONEq(t, string(a), string(b))
}

func TestBuildCapacity_RequiredPerUnitInvalido(t *testing.T) {
	materials := index(mat("a", 10, 5))
	_, err := inventory.BuildCapacity("S1", bom("S1", "a", 0), materials)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
