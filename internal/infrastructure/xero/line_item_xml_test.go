package xero_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/xero-gateway/internal/domain"
	"github.com/jhoicas/xero-gateway/internal/domain/entity"
	"github.com/jhoicas/xero-gateway/internal/infrastructure/xero"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func childTags(el *etree.Element) []string {
	var tags []string
	for _, c := range el.ChildElements() {
		tags = append(tags, c.Tag)
	}
	return tags
}

func fullLineItem() *entity.LineItem {
	li := entity.NewLineItem()
	li.Description = "Consultoría"
	li.Quantity = decimal.NewNullDecimal(d("2"))
	li.UnitAmount = d("10.00")
	li.ItemCode = "CONS-1"
	li.TaxType = "OUTPUT"
	li.TaxAmount = decimal.NewNullDecimal(d("2.70"))
	li.DiscountRate = d("10")
	li.AccountCode = "200"
	return li
}

func TestWriteLineItem_OrdenYFormato(t *testing.T) {
	li := fullLineItem()
	li.Tracking = entity.SingleTracking{Category: &entity.TrackingCategory{Name: "Region", Options: []string{"North", "South"}}}

	el := xero.WriteLineItem(etree.NewElement("Root"), li)

	assert.Equal(t, "LineItem", el.Tag)
	assert.Equal(t, []string{
		"Description", "Quantity", "UnitAmount", "ItemCode", "TaxType", "TaxAmount",
		"DiscountRate", "LineAmount", "AccountCode", "Tracking",
	}, childTags(el))
	assert.Equal(t, "2", el.SelectElement("Quantity").Text())
	assert.Equal(t, "10.00", el.SelectElement("UnitAmount").Text())
	assert.Equal(t, "18.00", el.SelectElement("LineAmount").Text())
	assert.Equal(t, "10", el.SelectElement("DiscountRate").Text())
}

func TestWriteLineItem_OmiteOpcionales(t *testing.T) {
	li := entity.NewLineItem()
	li.Description = "Solo descripción"

	el := xero.WriteLineItem(etree.NewElement("Root"), li)

	assert.Equal(t, []string{"Description", "Quantity", "UnitAmount", "DiscountRate", "LineAmount"}, childTags(el))
	for _, tag := range []string{"ItemCode", "TaxType", "TaxAmount", "AccountCode", "Tracking", "LineItemID"} {
		assert.Nil(t, el.SelectElement(tag), "%s no debe emitirse", tag)
	}
	assert.Equal(t, "1", el.SelectElement("Quantity").Text(), "la cantidad por defecto se emite")
	assert.Equal(t, "0.00", el.SelectElement("UnitAmount").Text())
}

func TestWriteLineItem_SinCantidad(t *testing.T) {
	li := entity.NewLineItem()
	li.Quantity = decimal.NullDecimal{}

	el := xero.WriteLineItem(etree.NewElement("Root"), li)

	assert.Nil(t, el.SelectElement("Quantity"))
	assert.Nil(t, el.SelectElement("LineAmount"), "sin cantidad no hay total calculado")
}

func TestWriteLineItem_SuprimeLineAmount(t *testing.T) {
	li := fullLineItem()
	li.Options.SuppressLineAmount = true

	el := xero.WriteLineItem(etree.NewElement("Root"), li)

	assert.Nil(t, el.SelectElement("LineAmount"))
	assert.NotNil(t, el.SelectElement("AccountCode"))
}

func TestWriteLineItem_TrackingFormaFactura(t *testing.T) {
	li := fullLineItem()
	li.Tracking = entity.TrackingList{
		{ID: "c1", Name: "Region", Options: []string{"North"}},
		{Name: "Departamento", Options: []string{"Ventas"}},
	}

	el := xero.WriteLineItem(etree.NewElement("Root"), li)

	tracking := el.SelectElement("Tracking")
	require.NotNil(t, tracking)
	cats := tracking.SelectElements("TrackingCategory")
	require.Len(t, cats, 2)
	assert.Equal(t, []string{"TrackingCategoryID", "Name", "Option"}, childTags(cats[0]))
	assert.Equal(t, "North", cats[0].SelectElement("Option").Text())
	assert.Equal(t, []string{"Name", "Option"}, childTags(cats[1]))
	assert.Nil(t, cats[1].SelectElement("Options"), "nunca se usa la forma independiente")
}

func TestWriteLineItem_TrackingConNil(t *testing.T) {
	li := fullLineItem()
	li.Tracking = entity.TrackingList{nil}

	var el *etree.Element
	require.NotPanics(t, func() { el = xero.WriteLineItem(etree.NewElement("Root"), li) })
	assert.Nil(t, el.SelectElement("Tracking"), "sin categorías reales no se emite Tracking")

	li.Tracking = entity.TrackingList{nil, {Name: "Region", Options: []string{"North"}}}
	el = xero.WriteLineItem(etree.NewElement("Root"), li)
	assert.Len(t, el.SelectElement("Tracking").SelectElements("TrackingCategory"), 1)
}

func TestLineItem_RoundTripPierdeFraccionesDeCentavo(t *testing.T) {
	li := fullLineItem()
	li.UnitAmount = d("10.005")

	el := xero.WriteLineItem(etree.NewElement("Root"), li)
	assert.Equal(t, "10.01", el.SelectElement("UnitAmount").Text())

	got, err := xero.ReadLineItem(el)
	require.NoError(t, err)
	assert.True(t, got.UnitAmount.Equal(d("10.01")))
	assert.False(t, li.Equal(got), "UnitAmount viaja con 2 decimales fijos")
}

func TestLineItem_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		li   *entity.LineItem
	}{
		{"completa", fullLineItem()},
		{"por defecto", func() *entity.LineItem {
			li := entity.NewLineItem()
			li.Description = "x"
			return li
		}()},
		{"descuento fraccionario", func() *entity.LineItem {
			li := fullLineItem()
			li.DiscountRate = d("12.5")
			li.Quantity = decimal.NewNullDecimal(d("1.25"))
			return li
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := xero.WriteLineItem(etree.NewElement("Root"), tt.li)
			got, err := xero.ReadLineItem(el)
			require.NoError(t, err)
			assert.True(t, tt.li.Equal(got), "round trip debe preservar la igualdad")
		})
	}
}

func TestReadLineItem(t *testing.T) {
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(`<LineItem>
  <LineItemID>7a5b9c1d-2e3f-4a5b-8c7d-9e0f1a2b3c4d</LineItemID>
  <Description>Consulting</Description>
  <Quantity>3</Quantity>
  <UnitAmount>12.50</UnitAmount>
  <LineAmount>999.99</LineAmount>
  <Unknown>ignored</Unknown>
  <Tracking>
    <TrackingCategory><Name>Region</Name><Option>North</Option></TrackingCategory>
    <TrackingCategory><Name>Dept</Name><Options><Option><Name>Sales</Name></Option></Options></TrackingCategory>
  </Tracking>
</LineItem>`))

	li, err := xero.ReadLineItem(doc.Root())
	require.NoError(t, err)
	assert.Equal(t, "7a5b9c1d-2e3f-4a5b-8c7d-9e0f1a2b3c4d", li.ID)
	assert.Equal(t, "Consulting", li.Description)
	assert.True(t, li.LineAmount().Decimal.Equal(d("37.5")), "LineAmount recibido se ignora")
	assert.True(t, li.HasTracking())

	cats := li.Tracking.Categories()
	require.Len(t, cats, 2)
	assert.Equal(t, []string{"North"}, cats[0].Options)
	assert.Equal(t, []string{"Sales"}, cats[1].Options)
	assert.True(t, li.Valid())
}

func TestReadLineItem_NumeroMalFormado(t *testing.T) {
	for _, tag := range []string{"Quantity", "UnitAmount", "TaxAmount", "DiscountRate", "LineAmount"} {
		t.Run(tag, func(t *testing.T) {
			el := etree.NewElement("LineItem")
			el.CreateElement("Description").SetText("x")
			el.CreateElement(tag).SetText("1,5")

			li, err := xero.ReadLineItem(el)
			assert.Nil(t, li)
			var mErr *domain.MalformedNumberError
			require.ErrorAs(t, err, &mErr)
			assert.Equal(t, tag, mErr.Field)
			assert.Equal(t, "1,5", mErr.Text)
		})
	}
}
