package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// ReplenishmentSuggestion sugerencia de pedido para un material bajo el nivel ADEQUATE.
type ReplenishmentSuggestion struct {
	PartID             string
	PartName           string
	Category           string
	Status             entity.HealthStatus
	CurrentStock       int64
	ReorderPoint       int64
	IdealStock         int64 // ceil(ReorderPoint * 1.5)
	SuggestedOrderQty  int64 // IdealStock - CurrentStock
	UnitPrice          decimal.Decimal
	EstimatedOrderCost decimal.Decimal // SuggestedOrderQty * UnitPrice
	Priority           int             // 1 = más urgente
}

// Replenishment genera la lista de reposición: un renglón por material LOW, CRITICAL u
// OUT_OF_STOCK, llevando el stock a 1.5 veces el punto de reorden (umbral de HEALTHY).
//
// Orden: peor estado primero, luego mayor déficit absoluto, luego part_id.
func Replenishment(materials []entity.Material) ([]ReplenishmentSuggestion, error) {
	suggestions := make([]ReplenishmentSuggestion, 0)
	for _, m := range materials {
		status, err := Classify(m)
		if err != nil {
			return nil, err
		}
		if !status.NeedsAttention() {
			continue
		}
		ideal := IdealStock(m.ReorderPoint)
		qty := ideal - m.CurrentStock
		if qty < 0 {
			qty = 0
		}
		suggestions = append(suggestions, ReplenishmentSuggestion{
			PartID:             m.PartID,
			PartName:           m.PartName,
			Category:           m.Category,
			Status:             status,
			CurrentStock:       m.CurrentStock,
			ReorderPoint:       m.ReorderPoint,
			IdealStock:         ideal,
			SuggestedOrderQty:  qty,
			UnitPrice:          m.UnitPrice,
			EstimatedOrderCost: decimal.NewFromInt(qty).Mul(m.UnitPrice),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if a.Status != b.Status {
			return a.Status.WorseThan(b.Status)
		}
		defA := a.ReorderPoint - a.CurrentStock
		defB := b.ReorderPoint - b.CurrentStock
		if defA != defB {
			return defA > defB
		}
		return a.PartID < b.PartID
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}
