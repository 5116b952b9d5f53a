package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jempresa/erp-api/internal/domain/tax"
)

func TestNet_TruncaNuncaRedondea(t *testing.T) {
	cases := []struct {
		name  string
		gross int64
		net   int64
		vat   int64
	}{
		{"monto exacto", 1190, 1000, 190},
		{"monto con resto", 4000, 3361, 639},
		{"cero", 0, 0, 0},
		{"una unidad", 1, 0, 1},
		{"justo bajo el siguiente neto", 118, 99, 19},
		{"monto grande", 5_000_000, 4_201_680, 798_320},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, vat := tax.Decompose(tc.gross)
			assert.Equal(t, tc.net, net, "neto de %d", tc.gross)
			assert.Equal(t, tc.vat, vat, "IVA de %d", tc.gross)
			assert.Equal(t, tc.gross, net+vat, "neto + IVA debe reconstruir el bruto")
		})
	}
}

func TestNet_CoincideConDecompose(t *testing.T) {
	for _, gross := range []int64{0, 1, 119, 1190, 3570, 4000, 999_999} {
		net, _ := tax.Decompose(gross)
		assert.Equal(t, net, tax.Net(gross))
	}
}

// El IVA por movimiento se trunca por separado: la suma de varios movimientos
// puede diferir del IVA del total en hasta una unidad por movimiento, y esa
// diferencia se preserva, no se corrige.
func TestDecompose_TruncadoPorMovimiento(t *testing.T) {
	perMovement := int64(0)
	for i := 0; i < 3; i++ {
		_, vat := tax.Decompose(4000)
		perMovement += vat
	}
	_, vatTotal := tax.Decompose(12000)
	assert.Equal(t, int64(1917), perMovement)
	assert.Equal(t, int64(1916), vatTotal)
	assert.NotEqual(t, vatTotal, perMovement)
}
