package analytics

import (
	"sort"

	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/domain/entity"
	"github.com/jhoicas/stock-health-api/internal/domain/inventory"
)

func toMaterialDTOs(materials []entity.Material) []dto.MaterialDTO {
	out := make([]dto.MaterialDTO, 0, len(materials))
	for _, m := range materials {
		out = append(out, dto.MaterialDTO{
			PartID:       m.PartID,
			PartName:     m.PartName,
			Category:     m.Category,
			CurrentStock: m.CurrentStock,
			ReorderPoint: m.ReorderPoint,
			UnitPrice:    dto.NewMoney(m.UnitPrice),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PartID < out[j].PartID })
	return out
}

func toSummaryDTO(v *inventory.Valuation, materials []entity.Material, version string) *dto.InventorySummaryDTO {
	byCategory := make(map[string]dto.CategorySummaryDTO, len(v.ByCategory))
	for cat, c := range v.ByCategory {
		byCategory[cat] = dto.CategorySummaryDTO{Count: c.Count, Value: dto.NewMoney(c.Value)}
	}
	return &dto.InventorySummaryDTO{
		TotalMaterials:  v.TotalMaterials,
		TotalStockValue: dto.NewMoney(v.TotalStockValue),
		LowStockCount:   v.LowStockCount,
		OutOfStockCount: v.OutOfStockCount,
		ByCategory:      byCategory,
		Materials:       toMaterialDTOs(materials),
		SnapshotVersion: version,
	}
}

func toAlertsDTO(r *inventory.AlertReport, version string) *dto.AlertsDTO {
	alerts := make([]dto.AlertDTO, 0, len(r.Alerts))
	for _, a := range r.Alerts {
		alerts = append(alerts, dto.AlertDTO{
			Severity:       string(a.Severity),
			AlertType:      a.AlertType,
			PartID:         a.PartID,
			PartName:       a.PartName,
			Status:         string(a.Status),
			CurrentStock:   a.CurrentStock,
			ReorderPoint:   a.ReorderPoint,
			Message:        a.Message,
			ActionRequired: a.ActionRequired,
		})
	}
	bySeverity := make(map[string]int, len(r.BySeverity))
	for s, n := range r.BySeverity {
		bySeverity[string(s)] = n
	}
	return &dto.AlertsDTO{
		Alerts:          alerts,
		TotalAlerts:     r.TotalAlerts,
		BySeverity:      bySeverity,
		ByType:          r.ByType,
		SnapshotVersion: version,
	}
}

func toCapacityDTO(r *entity.BuildCapacityResult) dto.BuildCapacityDTO {
	return dto.BuildCapacityDTO{
		ScooterModel:        r.ScooterModel,
		MaxUnits:            r.MaxUnits,
		TotalPartsInBOM:     r.TotalPartsInBOM,
		BottleneckMaterials: toMaterialCapacityDTOs(r.BottleneckMaterials),
		SufficientMaterials: toMaterialCapacityDTOs(r.SufficientMaterials),
	}
}

func toMaterialCapacityDTOs(caps []entity.MaterialCapacity) []dto.MaterialCapacityDTO {
	out := make([]dto.MaterialCapacityDTO, 0, len(caps))
	for _, c := range caps {
		out = append(out, dto.MaterialCapacityDTO{
			PartID:          c.PartID,
			PartName:        c.PartName,
			AvailableStock:  c.AvailableStock,
			RequiredPerUnit: c.RequiredPerUnit,
			UnitsPossible:   c.UnitsPossible,
		})
	}
	return out
}

func toRequirementsDTO(p *inventory.RequirementsPlan) *dto.MaterialRequirementsDTO {
	reqs := make([]dto.RequirementDTO, 0, len(p.Requirements))
	for _, r := range p.Requirements {
		reqs = append(reqs, dto.RequirementDTO{
			PartID:           r.PartID,
			PartName:         r.PartName,
			RequiredQuantity: r.RequiredQuantity,
			AvailableStock:   r.AvailableStock,
			Shortage:         r.Shortage,
			Status:           r.Status,
		})
	}
	return &dto.MaterialRequirementsDTO{
		ScooterModel: p.ScooterModel,
		Quantity:     p.Quantity,
		CanBuild:     p.CanBuild,
		Requirements: reqs,
	}
}

func toReplenishmentDTOs(list []inventory.ReplenishmentSuggestion) []dto.ReplenishmentSuggestionDTO {
	out := make([]dto.ReplenishmentSuggestionDTO, 0, len(list))
	for _, s := range list {
		out = append(out, dto.ReplenishmentSuggestionDTO{
			PartID:             s.PartID,
			PartName:           s.PartName,
			Category:           s.Category,
			Status:             string(s.Status),
			CurrentStock:       s.CurrentStock,
			ReorderPoint:       s.ReorderPoint,
			IdealStock:         s.IdealStock,
			SuggestedOrderQty:  s.SuggestedOrderQty,
			UnitPrice:          dto.NewMoney(s.UnitPrice),
			EstimatedOrderCost: dto.NewMoney(s.EstimatedOrderCost),
			Priority:           s.Priority,
		})
	}
	return out
}
