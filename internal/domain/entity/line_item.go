package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/xero-gateway/internal/domain"
	"github.com/jhoicas/xero-gateway/pkg/xero"
)

var hundred = decimal.NewFromInt(100)

// LineItemOptions opciones de serialización de la línea.
type LineItemOptions struct {
	// SuppressLineAmount omite LineAmount en el XML (el servicio a veces rechaza el total enviado).
	SuppressLineAmount bool
}

// LineItem representa una línea de un documento comercial (factura de venta o de compra).
// LineAmount es derivado: no se almacena y se recalcula en cada llamada.
// Los strings opcionales vacíos se consideran ausentes.
type LineItem struct {
	ID           string // LineItemID del servicio; si existe debe ser GUID
	Description  string
	Quantity     decimal.NullDecimal // por defecto 1
	UnitAmount   decimal.Decimal     // por defecto 0
	ItemCode     string              // referencia a Item.Code (no se verifica aquí)
	TaxType      string              // debe existir en la tabla de tipos de impuesto
	TaxAmount    decimal.NullDecimal
	DiscountRate decimal.Decimal // porcentaje 0-100, por defecto 0
	AccountCode  string
	Tracking     Tracking
	Options      LineItemOptions

	// Errors se recalcula en cada llamada a Valid.
	Errors domain.FieldErrors
}

// NewLineItem crea una línea con los valores por defecto.
func NewLineItem() *LineItem {
	return &LineItem{
		Quantity:     decimal.NewNullDecimal(decimal.NewFromInt(1)),
		UnitAmount:   decimal.Zero,
		DiscountRate: decimal.Zero,
		Tracking:     NoTracking{},
	}
}

// NewLineItemFromFields construye la línea asignando campo por campo.
// Claves desconocidas o valores de tipo no admitido fallan sin devolver registro parcial.
func NewLineItemFromFields(fields map[string]any, opts LineItemOptions) (*LineItem, error) {
	li := NewLineItem()
	li.Options = opts
	for k, v := range fields {
		if err := li.set(k, v); err != nil {
			return nil, err
		}
	}
	return li, nil
}

func (li *LineItem) set(key string, v any) error {
	var err error
	switch key {
	case "id", "line_item_id":
		li.ID, err = toString(key, v)
	case "description":
		li.Description, err = toString(key, v)
	case "quantity":
		li.Quantity, err = toNullDecimal(key, v)
	case "unit_amount":
		li.UnitAmount, err = toDecimal(key, v)
	case "item_code":
		li.ItemCode, err = toString(key, v)
	case "tax_type":
		li.TaxType, err = toString(key, v)
	case "tax_amount":
		li.TaxAmount, err = toNullDecimal(key, v)
	case "discount_rate":
		li.DiscountRate, err = toDecimal(key, v)
	case "account_code":
		li.AccountCode, err = toString(key, v)
	case "tracking":
		li.Tracking, err = toTracking(key, v)
	case "line_amount":
		// Se valida el valor pero se descarta: LineAmount es derivado.
		var d decimal.NullDecimal
		if d, err = toNullDecimal(key, v); err == nil && d.Valid {
			li.SetLineAmount(d.Decimal)
		}
	default:
		err = &domain.UnknownFieldError{Record: "LineItem", Field: key}
	}
	return err
}

// SetLineAmount no hace nada. Se mantiene por compatibilidad con llamadas antiguas:
// el servicio exige que LineAmount coincida con el cálculo, así que siempre se deriva.
func (li *LineItem) SetLineAmount(decimal.Decimal) {}

// LineAmount calcula quantity * unit_amount * (100 - discount_rate) / 100.
// discount_rate se redondea a 2 decimales antes de aplicarlo. Sin cantidad no hay total.
func (li *LineItem) LineAmount() decimal.NullDecimal {
	if !li.Quantity.Valid {
		return decimal.NullDecimal{}
	}
	rate := li.DiscountRate.Round(2)
	amount := li.Quantity.Decimal.
		Mul(li.UnitAmount).
		Mul(hundred.Sub(rate)).
		Div(hundred)
	return decimal.NewNullDecimal(amount)
}

// HasTracking indica si la línea tiene al menos una categoría de seguimiento.
func (li *LineItem) HasTracking() bool {
	switch t := li.Tracking.(type) {
	case nil, NoTracking:
		return false
	case SingleTracking:
		return t.Category != nil
	case TrackingList:
		return len(t.Categories()) > 0
	default:
		return len(t.Categories()) > 0
	}
}

// Valid valida la línea contra la tabla de impuestos por defecto.
func (li *LineItem) Valid() bool {
	return li.ValidWith(xero.DefaultTaxTypes)
}

// ValidWith reinicia Errors y evalúa todas las reglas sin cortar en la primera.
// La validación es informativa: una línea inválida se puede serializar igual.
func (li *LineItem) ValidWith(taxTypes xero.TaxTypes) bool {
	li.Errors = domain.FieldErrors{}

	if li.ID != "" && !xero.IsGUID(li.ID) {
		li.Errors = append(li.Errors, domain.FieldError{Field: "id", Message: "must be blank or a valid GUID"})
	}
	if li.Description == "" {
		li.Errors = append(li.Errors, domain.FieldError{Field: "description", Message: "can't be blank"})
	}
	if li.TaxType != "" && !taxTypes.Has(li.TaxType) {
		li.Errors = append(li.Errors, domain.FieldError{
			Field:   "tax_type",
			Message: "must be one of " + strings.Join(taxTypes.Codes(), "/"),
		})
	}
	return len(li.Errors) == 0
}

// Equal compara campo a campo. ID y Tracking no participan.
func (li *LineItem) Equal(other *LineItem) bool {
	if li == nil || other == nil {
		return li == other
	}
	return li.Description == other.Description &&
		nullDecimalEqual(li.Quantity, other.Quantity) &&
		li.UnitAmount.Equal(other.UnitAmount) &&
		li.TaxType == other.TaxType &&
		nullDecimalEqual(li.TaxAmount, other.TaxAmount) &&
		li.DiscountRate.Equal(other.DiscountRate) &&
		nullDecimalEqual(li.LineAmount(), other.LineAmount()) &&
		li.AccountCode == other.AccountCode &&
		li.ItemCode == other.ItemCode
}
