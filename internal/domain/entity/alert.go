package entity

// Tipos de alerta de stock (etiqueta fija por estado).
const (
	AlertTypeLowStock      = "low_stock"
	AlertTypeCriticalStock = "critical_stock"
	AlertTypeStockout      = "stockout"
)

// Alert alerta operativa derivada de un material y su HealthStatus.
// Message y ActionRequired son texto de presentación; los campos estructurados son el contrato.
type Alert struct {
	Severity       Severity
	AlertType      string
	PartID         string
	PartName       string
	Status         HealthStatus
	CurrentStock   int64
	ReorderPoint   int64
	Message        string
	ActionRequired string
}
