package dto

import "time"

// StockHealthReportDTO datos del reporte PDF de salud de inventario.
// Todas las secciones salen del mismo snapshot.
type StockHealthReportDTO struct {
	Title         string                       `json:"title"`
	GeneratedAt   time.Time                    `json:"generated_at"`
	Summary       *InventorySummaryDTO         `json:"summary"`
	Health        *StockHealthDTO              `json:"health"`
	Alerts        *AlertsDTO                   `json:"alerts"`
	Replenishment []ReplenishmentSuggestionDTO `json:"replenishment"`
}
