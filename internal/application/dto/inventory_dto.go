package dto

// ── Resumen de inventario ─────────────────────────────────────────────────────

// CategorySummaryDTO cantidad de materiales y valor de stock de una categoría.
type CategorySummaryDTO struct {
	Count int   `json:"count"`
	Value Money `json:"value"`
}

// MaterialDTO material tal como está en el snapshot.
type MaterialDTO struct {
	PartID       string `json:"part_id"`
	PartName     string `json:"part_name"`
	Category     string `json:"category"`
	CurrentStock int64  `json:"current_stock"`
	ReorderPoint int64  `json:"reorder_point"`
	UnitPrice    Money  `json:"unit_price"`
}

// InventorySummaryDTO respuesta de GET /api/inventory-summary.
// total_stock_value es igual a la suma de by_category[*].value; materials va ordenado por part_id.
type InventorySummaryDTO struct {
	TotalMaterials  int                           `json:"total_materials"`
	TotalStockValue Money                         `json:"total_stock_value"`
	LowStockCount   int                           `json:"low_stock_count"`    // LOW + CRITICAL + OUT_OF_STOCK
	OutOfStockCount int                           `json:"out_of_stock_count"` // solo OUT_OF_STOCK
	ByCategory      map[string]CategorySummaryDTO `json:"by_category"`
	Materials       []MaterialDTO                 `json:"materials"`
	SnapshotVersion string                        `json:"snapshot_version"`
}

// ── Salud de stock ────────────────────────────────────────────────────────────

// MaterialHealthDTO estado de un material.
type MaterialHealthDTO struct {
	PartID       string `json:"part_id"`
	PartName     string `json:"part_name"`
	Category     string `json:"category"`
	CurrentStock int64  `json:"current_stock"`
	ReorderPoint int64  `json:"reorder_point"`
	StockRatio   string `json:"stock_ratio"` // stock / reorden, 4 decimales
	Status       string `json:"status"`
}

// StockHealthDTO respuesta de GET /api/stock-health.
// by_status siempre trae los cinco estados; materials viene del peor al mejor.
type StockHealthDTO struct {
	TotalMaterials  int                 `json:"total_materials"`
	ByStatus        map[string]int      `json:"by_status"`
	Materials       []MaterialHealthDTO `json:"materials"`
	Page            PageResponse        `json:"page"`
	SnapshotVersion string              `json:"snapshot_version"`
}

// ── Alertas ───────────────────────────────────────────────────────────────────

// AlertDTO alerta de un material con stock bajo.
type AlertDTO struct {
	Severity       string `json:"severity"`
	AlertType      string `json:"alert_type"`
	PartID         string `json:"part_id"`
	PartName       string `json:"part_name"`
	Status         string `json:"status"`
	CurrentStock   int64  `json:"current_stock"`
	ReorderPoint   int64  `json:"reorder_point"`
	Message        string `json:"message"`
	ActionRequired string `json:"action_required"`
}

// AlertsDTO respuesta de GET /api/alerts. Σ by_severity == total_alerts.
type AlertsDTO struct {
	Alerts          []AlertDTO     `json:"alerts"`
	TotalAlerts     int            `json:"total_alerts"`
	BySeverity      map[string]int `json:"by_severity"`
	ByType          map[string]int `json:"by_type"`
	SnapshotVersion string         `json:"snapshot_version"`
}

// ── Reposición ────────────────────────────────────────────────────────────────

// ReplenishmentSuggestionDTO sugerencia de pedido para un material bajo el nivel ADEQUATE.
type ReplenishmentSuggestionDTO struct {
	PartID             string `json:"part_id"`
	PartName           string `json:"part_name"`
	Category           string `json:"category"`
	Status             string `json:"status"`
	CurrentStock       int64  `json:"current_stock"`
	ReorderPoint       int64  `json:"reorder_point"`
	IdealStock         int64  `json:"ideal_stock"`         // ceil(reorder_point * 1.5)
	SuggestedOrderQty  int64  `json:"suggested_order_qty"` // ideal_stock - current_stock
	UnitPrice          Money  `json:"unit_price"`
	EstimatedOrderCost Money  `json:"estimated_order_cost"` // suggested_order_qty * unit_price
	Priority           int    `json:"priority"`             // 1 = más urgente
}
