package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
)

func TestMaterialRequirements_Faltantes(t *testing.T) {
	materials := index(mat("wheel", 10, 5), mat("frame", 3, 5))
	entries := bom("S1", "wheel", 2, "frame", 1)

	plan, err := inventory.MaterialRequirements("S1", 4, entries, materials)
	require.NoError(t, err)

	assert.Equal(t, "S1", plan.ScooterModel)
	assert.Equal(t, int64(4), plan.Quantity)
	assert.False(t, plan.CanBuild)
	require.Len(t, plan.Requirements, 2)

	frame, wheel := plan.Requirements[0], plan.Requirements[1]
	assert.Equal(t, "frame", frame.PartID, "ordenado por part_id")
	assert.Equal(t, int64(4), frame.RequiredQuantity)
	assert.Equal(t, int64(1), frame.Shortage)
	assert.Equal(t, inventory.RequirementShortage, frame.Status)

	assert.Equal(t, int64(8), wheel.RequiredQuantity)
	assert.Equal(t, int64(0), wheel.Shortage)
	assert.Equal(t, inventory.RequirementSufficient, wheel.Status)
}

// CanBuild coincide con quantity <= max_units de BuildCapacity.
func TestMaterialRequirements_CoherenteConCapacidad(t *testing.T) {
	materials := index(mat("a", 10, 5), mat("b", 9, 5))
	entries := bom("S1", "a", 2, "b", 3)

	capacity, err := inventory.BuildCapacity("S1", entries, materials)
	require.NoError(t, err)

	for q := int64(1); q <= 6; q++ {
		plan, err := inventory.MaterialRequirements("S1", q, entries, materials)
		require.NoError(t, err)
		assert.Equal(t, q <= capacity.MaxUnits, plan.CanBuild, "quantity=%d", q)
	}
}

func TestMaterialRequirements_Errores(t *testing.T) {
	materials := index(mat("a", 10, 5))

	_, err := inventory.MaterialRequirements("S1", 0, bom("S1", "a", 1), materials)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.MaterialRequirements("X", 1, bom("S1", "a", 1), materials)
	assert.ErrorIs(t, err, domain.ErrUnknownModel)

	_, err = inventory.MaterialRequirements("S1", 1, bom("S1", "zz", 1), materials)
	assert.ErrorIs(t, err, domain.ErrMissingMaterial)
}

func TestMaterialRequirements_CantidadFueraDeRango(t *testing.T) {
	materials := index(mat("a", 10, 5))

	_, err := inventory.MaterialRequirements("S1", math.MaxInt64/2+1, bom("S1", "a", 2), materials)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	plan, err := inventory.MaterialRequirements("S1", math.MaxInt64/2, bom("S1", "a", 2), materials)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), plan.Requirements[0].RequiredQuantity)
	assert.False(t, plan.CanBuild)

	// Líneas repetidas cuya suma no cabe en int64.
	entries := []entity.BOMEntry{
		{ScooterModel: "S1", PartID: "a", RequiredPerUnit: math.MaxInt64},
		{ScooterModel: "S1", PartID: "a", RequiredPerUnit: 1},
	}
	_, err = inventory.MaterialRequirements("S1", 1, entries, materials)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = inventory.BuildCapacity("S1", entries, materials)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
