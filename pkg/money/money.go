// Package money formatea importes decimales para el formato de intercambio XML.
package money

import "github.com/shopspring/decimal"

// Places decimales fijos en el wire.
const Places = 2

// Format devuelve el importe con 2 decimales fijos y punto decimal, sin separador de miles.
// Ej: 18 -> "18.00", 10.005 -> "10.01".
func Format(d decimal.Decimal) string {
	return d.Round(Places).StringFixed(Places)
}

// FormatNull formatea un importe opcional; ok es false si no hay valor.
func FormatNull(d decimal.NullDecimal) (s string, ok bool) {
	if !d.Valid {
		return "", false
	}
	return Format(d.Decimal), true
}
