package pdf_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stock-health-api/internal/application/dto"
	"github.com/jhoicas/stock-health-api/internal/infrastructure/pdf"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0,00",
		"999.5":     "999,50",
		"25033.37":  "25.033,37",
		"1000000":   "1.000.000,00",
		"-1234.567": "-1.234,57",
	}
	for in, want := range cases {
		assert.Equal(t, want, pdf.FormatMoney(dto.NewMoney(decimal.RequireFromString(in))), in)
	}
}
