package xero

import (
	"github.com/beevik/etree"

	"github.com/jhoicas/xero-gateway/internal/domain/entity"
	wire "github.com/jhoicas/xero-gateway/pkg/xero"
)

// WriteTrackingCategory forma independiente:
//
//	<TrackingCategory><TrackingCategoryID/><Name/><Options><Option><Name/></Option>...</Options></TrackingCategory>
func WriteTrackingCategory(parent *etree.Element, c *entity.TrackingCategory) *etree.Element {
	el := parent.CreateElement(wire.ElemTrackingCategory)
	writeOptional(el, wire.ElemTrackingCategoryID, c.ID)
	writeText(el, wire.ElemName, c.Name)
	opts := el.CreateElement(wire.ElemOptions)
	for _, o := range c.Options {
		writeText(opts.CreateElement(wire.ElemOption), wire.ElemName, o)
	}
	return el
}

// WriteTrackingCategoryForInvoice forma embebida en líneas de factura: una sola opción como texto.
//
//	<TrackingCategory><TrackingCategoryID/><Name/><Option/></TrackingCategory>
func WriteTrackingCategoryForInvoice(parent *etree.Element, c *entity.TrackingCategory) *etree.Element {
	el := parent.CreateElement(wire.ElemTrackingCategory)
	writeOptional(el, wire.ElemTrackingCategoryID, c.ID)
	writeText(el, wire.ElemName, c.Name)
	writeText(el, wire.ElemOption, c.Option())
	return el
}

// ReadTrackingCategory lee una categoría en cualquiera de las dos formas.
func ReadTrackingCategory(el *etree.Element) *entity.TrackingCategory {
	c := &entity.TrackingCategory{}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case wire.ElemTrackingCategoryID:
			c.ID = child.Text()
		case wire.ElemName:
			c.Name = child.Text()
		case wire.ElemOptions:
			for _, opt := range child.ChildElements() {
				if name := opt.SelectElement(wire.ElemName); name != nil {
					c.Options = append(c.Options, name.Text())
				}
			}
		case wire.ElemOption:
			c.Options = append(c.Options, child.Text())
		}
	}
	return c
}
