package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa un insumo o pieza del inventario tal como lo lee el motor de analítica.
// Lo crea y actualiza un sistema externo; aquí solo se consume desde un Snapshot.
type Material struct {
	PartID       string
	PartName     string
	Category     string          // conjunto abierto: Assembly, Component, Service, ...
	CurrentStock int64           // >= 0
	ReorderPoint int64           // > 0; cero o negativo es un error de configuración
	UnitPrice    decimal.Decimal // precio unitario (moneda), >= 0
	UpdatedAt    time.Time
}

// StockValue devuelve CurrentStock * UnitPrice sin redondeo.
func (m Material) StockValue() decimal.Decimal {
	return decimal.NewFromInt(m.CurrentStock).Mul(m.UnitPrice)
}
