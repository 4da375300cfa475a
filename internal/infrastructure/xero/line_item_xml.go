// Package xero mapea las entidades al formato XML del servicio contable externo y viceversa.
// El orden de los hijos en la escritura es parte del contrato; la lectura no depende del orden.
package xero

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/xero-gateway/internal/domain/entity"
	"github.com/jhoicas/xero-gateway/pkg/money"
	wire "github.com/jhoicas/xero-gateway/pkg/xero"
)

// WriteLineItem agrega <LineItem> a parent y lo devuelve.
// Orden fijo: Description, Quantity, UnitAmount, ItemCode, TaxType, TaxAmount,
// DiscountRate, LineAmount, AccountCode, Tracking. LineItemID no se envía.
func WriteLineItem(parent *etree.Element, li *entity.LineItem) *etree.Element {
	el := parent.CreateElement(wire.ElemLineItem)

	writeText(el, wire.ElemDescription, li.Description)
	if li.Quantity.Valid {
		writeText(el, wire.ElemQuantity, li.Quantity.Decimal.String())
	}
	writeText(el, wire.ElemUnitAmount, money.Format(li.UnitAmount))
	writeOptional(el, wire.ElemItemCode, li.ItemCode)
	writeOptional(el, wire.ElemTaxType, li.TaxType)
	if li.TaxAmount.Valid {
		writeText(el, wire.ElemTaxAmount, li.TaxAmount.Decimal.String())
	}
	writeText(el, wire.ElemDiscountRate, li.DiscountRate.String())
	if !li.Options.SuppressLineAmount {
		if s, ok := money.FormatNull(li.LineAmount()); ok {
			writeText(el, wire.ElemLineAmount, s)
		}
	}
	writeOptional(el, wire.ElemAccountCode, li.AccountCode)

	if li.HasTracking() {
		tracking := el.CreateElement(wire.ElemTracking)
		// Dentro de una línea la categoría va con la forma de factura, nunca la independiente.
		for _, c := range li.Tracking.Categories() {
			WriteTrackingCategoryForInvoice(tracking, c)
		}
	}
	return el
}

// ReadLineItem reconstruye la línea desde un elemento <LineItem>.
// Un hijo numérico que no sea decimal válido aborta la lectura. Los hijos desconocidos se ignoran.
func ReadLineItem(el *etree.Element) (*entity.LineItem, error) {
	li := entity.NewLineItem()
	for _, child := range el.ChildElements() {
		var err error
		switch child.Tag {
		case wire.ElemLineItemID:
			li.ID = child.Text()
		case wire.ElemDescription:
			li.Description = child.Text()
		case wire.ElemQuantity:
			li.Quantity, err = readNullDecimal(child)
		case wire.ElemUnitAmount:
			li.UnitAmount, err = readDecimal(child)
		case wire.ElemItemCode:
			li.ItemCode = child.Text()
		case wire.ElemTaxType:
			li.TaxType = child.Text()
		case wire.ElemTaxAmount:
			li.TaxAmount, err = readNullDecimal(child)
		case wire.ElemDiscountRate:
			li.DiscountRate, err = readDecimal(child)
		case wire.ElemLineAmount:
			var amount decimal.Decimal
			if amount, err = readDecimal(child); err == nil {
				li.SetLineAmount(amount)
			}
		case wire.ElemAccountCode:
			li.AccountCode = child.Text()
		case wire.ElemTracking:
			for _, tc := range child.ChildElements() {
				li.Tracking = entity.AppendTracking(li.Tracking, ReadTrackingCategory(tc))
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return li, nil
}

func readDecimal(el *etree.Element) (decimal.Decimal, error) {
	return entity.ParseDecimal(el.Tag, el.Text())
}

func readNullDecimal(el *etree.Element) (decimal.NullDecimal, error) {
	v, err := readDecimal(el)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(v), nil
}

func writeText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

// writeOptional omite el elemento completo cuando value está vacío.
func writeOptional(parent *etree.Element, tag, value string) {
	if value != "" {
		writeText(parent, tag, value)
	}
}
