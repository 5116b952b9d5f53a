// Package tax implementa la descomposición de IVA sobre montos brutos.
//
// Norma chilena: el monto bruto incluye IVA 19%. Neto = Bruto / 1.19 truncado
// a entero (hacia cero); IVA = Bruto − Neto. La descomposición se hace
// movimiento por movimiento, nunca sobre la suma; el agregado puede diferir
// en ±1 peso por movimiento respecto de un cálculo único sobre el total.
package tax

import "github.com/shopspring/decimal"

// Rate tasa de IVA vigente (fija en el alcance actual).
var Rate = decimal.RequireFromString("0.19")

// divisor = 1 + Rate, precalculado.
var divisor = decimal.NewFromInt(1).Add(Rate)

// Net devuelve el monto neto (sin IVA) de un monto bruto, truncado a entero.
func Net(gross int64) int64 {
	return decimal.NewFromInt(gross).Div(divisor).IntPart()
}

// Decompose separa un monto bruto en neto e IVA.
func Decompose(gross int64) (net, vat int64) {
	net = Net(gross)
	return net, gross - net
}
