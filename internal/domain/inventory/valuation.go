package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// CategoryValuation acumulado de una categoría.
type CategoryValuation struct {
	Count int
	Value decimal.Decimal
}

// Valuation resumen de valorización del inventario.
// TotalStockValue = Σ CurrentStock × UnitPrice, igual a la suma de ByCategory[*].Value.
type Valuation struct {
	TotalMaterials  int
	TotalStockValue decimal.Decimal
	LowStockCount   int // estado peor que ADEQUATE
	OutOfStockCount int
	ByCategory      map[string]CategoryValuation // solo las categorías presentes
}

// Summarize valoriza el inventario en aritmética decimal (sin redondeo intermedio).
func Summarize(materials []entity.Material) (*Valuation, error) {
	v := &Valuation{
		TotalMaterials:  len(materials),
		TotalStockValue: decimal.Zero,
		ByCategory:      make(map[string]CategoryValuation),
	}
	for _, m := range materials {
		status, err := Classify(m)
		if err != nil {
			return nil, err
		}
		if status.NeedsAttention() {
			v.LowStockCount++
		}
		if status == entity.HealthOutOfStock {
			v.OutOfStockCount++
		}

		value := m.StockValue()
		v.TotalStockValue = v.TotalStockValue.Add(value)

		cat := v.ByCategory[m.Category]
		cat.Count++
		cat.Value = cat.Value.Add(value)
		v.ByCategory[m.Category] = cat
	}
	return v, nil
}
