// Package inventory contiene los servicios de dominio del motor de analítica de inventario:
// clasificación de salud de stock, alertas, valorización, capacidad de ensamble,
// requerimientos de materiales y reposición.
//
// Todas las funciones son puras: no guardan estado, no hacen I/O y son seguras para
// invocarse en paralelo sobre el mismo snapshot.
package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-health-api/internal/domain"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// Classify devuelve el HealthStatus del material según la razón stock / punto de reorden:
//
//	stock == 0        → OUT_OF_STOCK
//	razón <  0.5      → CRITICAL
//	0.5 <= razón < 1  → LOW
//	1   <= razón < 1.5 → ADEQUATE
//	razón >= 1.5      → HEALTHY
//
// Los umbrales se comparan en aritmética entera contra ceil(reorden/2) = reorden - reorden/2,
// sin multiplicar stock ni reorden: los límites son exactos y no hay desborde en int64.
func Classify(m entity.Material) (entity.HealthStatus, error) {
	if m.ReorderPoint <= 0 {
		return "", &domain.ConfigurationError{PartID: m.PartID, ReorderPoint: m.ReorderPoint}
	}
	stock, rp := m.CurrentStock, m.ReorderPoint
	half := rp - rp/2
	switch {
	case stock <= 0:
		return entity.HealthOutOfStock, nil
	case stock < half:
		return entity.HealthCritical, nil
	case stock < rp:
		return entity.HealthLow, nil
	case stock-rp < half:
		return entity.HealthAdequate, nil
	default:
		return entity.HealthHealthy, nil
	}
}

// StockRatio razón stock / punto de reorden redondeada a 4 decimales (solo informativa).
func StockRatio(m entity.Material) (decimal.Decimal, error) {
	if m.ReorderPoint <= 0 {
		return decimal.Zero, &domain.ConfigurationError{PartID: m.PartID, ReorderPoint: m.ReorderPoint}
	}
	return decimal.NewFromInt(m.CurrentStock).
		DivRound(decimal.NewFromInt(m.ReorderPoint), 4), nil
}

// TallyHealth cuenta materiales por estado. El mapa incluye los cinco estados, aun en cero.
func TallyHealth(materials []entity.Material) (map[entity.HealthStatus]int, error) {
	tally := make(map[entity.HealthStatus]int, len(entity.HealthStatuses))
	for _, s := range entity.HealthStatuses {
		tally[s] = 0
	}
	for _, m := range materials {
		status, err := Classify(m)
		if err != nil {
			return nil, err
		}
		tally[status]++
	}
	return tally, nil
}

// IdealStock ceil(1.5 · reorden), el primer stock HEALTHY. Satura en math.MaxInt64.
func IdealStock(reorderPoint int64) int64 {
	half := reorderPoint - reorderPoint/2
	if reorderPoint > math.MaxInt64-half {
		return math.MaxInt64
	}
	return reorderPoint + half
}
