package inventory

import (
	"fmt"
	"sort"

	"github.com/jhoicas/stock-health-api/internal/domain/entity"
)

// AlertReport lista de alertas ordenada más histogramas por severidad y por tipo.
type AlertReport struct {
	Alerts      []entity.Alert
	TotalAlerts int
	BySeverity  map[entity.Severity]int // siempre con las cuatro severidades
	ByType      map[string]int
}

// alertRule severidad y tipo por estado; ADEQUATE y HEALTHY no generan alerta.
type alertRule struct {
	severity  entity.Severity
	alertType string
}

var alertRules = map[entity.HealthStatus]alertRule{
	entity.HealthOutOfStock: {entity.SeverityCritical, entity.AlertTypeStockout},
	entity.HealthCritical:   {entity.SeverityHigh, entity.AlertTypeCriticalStock},
	entity.HealthLow:        {entity.SeverityMedium, entity.AlertTypeLowStock},
}

// GenerateAlerts clasifica cada material y produce una alerta por cada LOW, CRITICAL u
// OUT_OF_STOCK. Orden: severidad descendente y luego part_id ascendente.
// Un material con reorder_point <= 0 aborta con *domain.ConfigurationError.
func GenerateAlerts(materials []entity.Material) (*AlertReport, error) {
	report := &AlertReport{
		Alerts:     make([]entity.Alert, 0),
		BySeverity: make(map[entity.Severity]int, len(entity.Severities)),
		ByType:     make(map[string]int),
	}
	for _, s := range entity.Severities {
		report.BySeverity[s] = 0
	}

	for _, m := range materials {
		status, err := Classify(m)
		if err != nil {
			return nil, err
		}
		rule, ok := alertRules[status]
		if !ok {
			continue
		}
		message, action := alertText(m, status)
		report.Alerts = append(report.Alerts, entity.Alert{
			Severity:       rule.severity,
			AlertType:      rule.alertType,
			PartID:         m.PartID,
			PartName:       m.PartName,
			Status:         status,
			CurrentStock:   m.CurrentStock,
			ReorderPoint:   m.ReorderPoint,
			Message:        message,
			ActionRequired: action,
		})
		report.BySeverity[rule.severity]++
		report.ByType[rule.alertType]++
	}

	sort.SliceStable(report.Alerts, func(i, j int) bool {
		a, b := report.Alerts[i], report.Alerts[j]
		if a.Severity != b.Severity {
			return a.Severity.Weight() > b.Severity.Weight()
		}
		return a.PartID < b.PartID
	})
	report.TotalAlerts = len(report.Alerts)
	return report, nil
}

func alertText(m entity.Material, status entity.HealthStatus) (message, action string) {
	name := m.PartName
	if name == "" {
		name = m.PartID
	}
	deficit := m.ReorderPoint - m.CurrentStock
	switch status {
	case entity.HealthOutOfStock:
		message = fmt.Sprintf("%s (%s) sin stock; punto de reorden %d", name, m.PartID, m.ReorderPoint)
		action = fmt.Sprintf("Reponer de inmediato al menos %d unidades", m.ReorderPoint)
	case entity.HealthCritical:
		message = fmt.Sprintf("%s (%s) en %d unidades, menos del 50%% del punto de reorden (%d)",
			name, m.PartID, m.CurrentStock, m.ReorderPoint)
		action = fmt.Sprintf("Reponer con urgencia; faltan %d unidades para el punto de reorden", deficit)
	default:
		message = fmt.Sprintf("%s (%s) en %d unidades, bajo el punto de reorden (%d)",
			name, m.PartID, m.CurrentStock, m.ReorderPoint)
		action = fmt.Sprintf("Programar reposición de %d unidades", deficit)
	}
	return message, action
}
