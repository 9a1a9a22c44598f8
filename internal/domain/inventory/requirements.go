package inventory

import (
	"fmt"
	"math"
	"sort"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// Estado de una línea de requerimientos.
const (
	RequirementSufficient = "sufficient"
	RequirementShortage   = "shortage"
)

// Requirement consumo de un material para fabricar N unidades.
type Requirement struct {
	PartID           string
	PartName         string
	RequiredQuantity int64
	AvailableStock   int64
	Shortage         int64 // max(0, RequiredQuantity - AvailableStock)
	Status           string
}

// RequirementsPlan explosión del BOM de un modelo para una cantidad objetivo.
type RequirementsPlan struct {
	ScooterModel string
	Quantity     int64
	CanBuild     bool // ninguna línea con faltante
	Requirements []Requirement
}

// MaterialRequirements calcula cuánto de cada material consume fabricar quantity unidades
// del modelo y cuánto falta. Líneas ordenadas por part_id.
func MaterialRequirements(
	scooterModel string,
	quantity int64,
	entries []entity.BOMEntry,
	materials map[string]entity.Material,
) (*RequirementsPlan, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser > 0 (recibido %d)", domain.ErrInvalidInput, quantity)
	}
	lines, err := resolveBOM(scooterModel, entries, materials)
	if err != nil {
		return nil, err
	}

	plan := &RequirementsPlan{
		ScooterModel: scooterModel,
		Quantity:     quantity,
		CanBuild:     true,
		Requirements: make([]Requirement, 0, len(lines)),
	}
	for _, l := range lines {
		if quantity > math.MaxInt64/l.requiredPerUnit {
			return nil, fmt.Errorf("%w: quantity %d × %d de %s excede el rango entero",
				domain.ErrInvalidInput, quantity, l.requiredPerUnit, l.material.PartID)
		}
		needed := l.requiredPerUnit * quantity
		shortage := needed - l.material.CurrentStock
		status := RequirementShortage
		if shortage <= 0 {
			shortage = 0
			status = RequirementSufficient
		} else {
			plan.CanBuild = false
		}
		plan.Requirements = append(plan.Requirements, Requirement{
			PartID:           l.material.PartID,
			PartName:         l.material.PartName,
			RequiredQuantity: needed,
			AvailableStock:   l.material.CurrentStock,
			Shortage:         shortage,
			Status:           status,
		})
	}
	sort.Slice(plan.Requirements, func(i, j int) bool {
		return plan.Requirements[i].PartID < plan.Requirements[j].PartID
	})
	return plan, nil
}
