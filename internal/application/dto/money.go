package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money monto en moneda. Se serializa como string con al menos 2 decimales ("1234.50",
// "0.125"). Nunca se redondea: el total debe seguir siendo la suma exacta de sus partes.
type Money decimal.Decimal

// NewMoney envuelve un decimal.
func NewMoney(d decimal.Decimal) Money { return Money(d) }

// Decimal devuelve el valor sin redondear.
func (m Money) Decimal() decimal.Decimal { return decimal.Decimal(m) }

// String con 2 decimales, o más si el monto los necesita.
func (m Money) String() string {
	d := decimal.Decimal(m)
	if d.Exponent() < -2 && !d.Equal(d.Truncate(2)) {
		return d.String()
	}
	return d.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("monto inválido %q: %w", raw, err)
	}
	*m = Money(d)
	return nil
}
