package inventory

import (
	"fmt"
	"math"
	"sort"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// bomLine línea del BOM ya resuelta contra el snapshot.
type bomLine struct {
	material        entity.Material
	requiredPerUnit int64
}

// resolveBOM filtra las entradas del modelo, fusiona líneas repetidas del mismo part_id
// (sumando required_per_unit) y resuelve cada una contra el índice de materiales.
// El orden de salida es el de primera aparición en el BOM.
func resolveBOM(
	scooterModel string,
	entries []entity.BOMEntry,
	materials map[string]entity.Material,
) ([]bomLine, error) {
	required := make(map[string]int64)
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.ScooterModel != scooterModel {
			continue
		}
		if e.RequiredPerUnit <= 0 {
			return nil, fmt.Errorf("%w: BOM %s/%s con required_per_unit %d",
				domain.ErrInvalidInput, scooterModel, e.PartID, e.RequiredPerUnit)
		}
		if _, seen := required[e.PartID]; !seen {
			order = append(order, e.PartID)
		}
		if required[e.PartID] > math.MaxInt64-e.RequiredPerUnit {
			return nil, fmt.Errorf("%w: BOM %s/%s excede el rango entero", domain.ErrInvalidInput, scooterModel, e.PartID)
		}
		required[e.PartID] += e.RequiredPerUnit
	}
	if len(order) == 0 {
		return nil, &domain.UnknownModelError{Model: scooterModel}
	}

	lines := make([]bomLine, 0, len(order))
	for _, partID := range order {
		m, ok := materials[partID]
		if !ok {
			return nil, &domain.MissingMaterialError{Model: scooterModel, PartID: partID}
		}
		lines = append(lines, bomLine{material: m, requiredPerUnit: required[partID]})
	}
	return lines, nil
}

// BuildCapacity calcula cuántas unidades del modelo se pueden ensamblar con el stock actual.
//
// Por cada material: units_possible = floor(stock / required_per_unit) y
// max_units = min(units_possible). Los cuellos de botella son todos los materiales con
// units_possible == max_units (con max_units == 0 se reportan juntos todos los quiebres).
//
// Errores: *domain.UnknownModelError si el modelo no tiene BOM,
// *domain.MissingMaterialError si una entrada referencia un material ausente.
func BuildCapacity(
	scooterModel string,
	entries []entity.BOMEntry,
	materials map[string]entity.Material,
) (*entity.BuildCapacityResult, error) {
	lines, err := resolveBOM(scooterModel, entries, materials)
	if err != nil {
		return nil, err
	}

	caps := make([]entity.MaterialCapacity, 0, len(lines))
	maxUnits := int64(-1)
	for _, l := range lines {
		stock := l.material.CurrentStock
		if stock < 0 {
			stock = 0
		}
		units := stock / l.requiredPerUnit
		caps = append(caps, entity.MaterialCapacity{
			PartID:          l.material.PartID,
			PartName:        l.material.PartName,
			AvailableStock:  l.material.CurrentStock,
			RequiredPerUnit: l.requiredPerUnit,
			UnitsPossible:   units,
		})
		if maxUnits < 0 || units < maxUnits {
			maxUnits = units
		}
	}

	sort.SliceStable(caps, func(i, j int) bool {
		if caps[i].UnitsPossible != caps[j].UnitsPossible {
			return caps[i].UnitsPossible < caps[j].UnitsPossible
		}
		return caps[i].PartID < caps[j].PartID
	})

	result := &entity.BuildCapacityResult{
		ScooterModel:        scooterModel,
		MaxUnits:            maxUnits,
		TotalPartsInBOM:     len(caps),
		BottleneckMaterials: make([]entity.MaterialCapacity, 0),
		SufficientMaterials: make([]entity.MaterialCapacity, 0),
	}
	for _, c := range caps {
		if c.UnitsPossible == maxUnits {
			result.BottleneckMaterials = append(result.BottleneckMaterials, c)
		} else {
			result.SufficientMaterials = append(result.SufficientMaterials, c)
		}
	}
	return result, nil
}
