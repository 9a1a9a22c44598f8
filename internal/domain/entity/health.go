package entity

// HealthStatus clasificación de la suficiencia de stock de un material. Derivado, nunca persistido.
type HealthStatus string

const (
	HealthOutOfStock HealthStatus = "OUT_OF_STOCK"
	HealthCritical   HealthStatus = "CRITICAL"
	HealthLow        HealthStatus = "LOW"
	HealthAdequate   HealthStatus = "ADEQUATE"
	HealthHealthy    HealthStatus = "HEALTHY"
)

// HealthStatuses en orden total, del peor al mejor.
var HealthStatuses = []HealthStatus{
	HealthOutOfStock,
	HealthCritical,
	HealthLow,
	HealthAdequate,
	HealthHealthy,
}

// Rank posición en el orden total (0 = peor). -1 si el estado no es válido.
func (s HealthStatus) Rank() int {
	for i, h := range HealthStatuses {
		if h == s {
			return i
		}
	}
	return -1
}

// WorseThan indica si s es estrictamente peor que other.
func (s HealthStatus) WorseThan(other HealthStatus) bool {
	return s.Rank() < other.Rank()
}

// NeedsAttention true para LOW, CRITICAL y OUT_OF_STOCK (peor que ADEQUATE).
func (s HealthStatus) NeedsAttention() bool {
	return s.WorseThan(HealthAdequate)
}

// Severity de una alerta operativa.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities de mayor a menor.
var Severities = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Weight mayor valor = más severa. 0 si la severidad no es válida.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}
