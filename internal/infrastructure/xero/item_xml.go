package xero

import (
	"strings"
	"unicode"

	"github.com/beevik/etree"

	"github.com/jhoicas/xero-gateway/internal/domain/entity"
	wire "github.com/jhoicas/xero-gateway/pkg/xero"
)

// WriteItem agrega <Item> a parent. Todos los hijos se emiten siempre, aunque estén vacíos.
func WriteItem(parent *etree.Element, it *entity.Item) *etree.Element {
	el := parent.CreateElement(wire.ElemItem)
	writeText(el, wire.ElemCode, it.Code)
	writeText(el, wire.ElemName, it.Name)
	writeText(el, wire.ElemDescription, it.Description)
	sd := el.CreateElement(wire.ElemSalesDetails)
	writeText(sd, wire.ElemUnitPrice, it.SalesDetails[entity.SalesUnitPrice])
	writeText(sd, wire.ElemAccountCode, it.SalesDetails[entity.SalesAccountCode])
	return el
}

// ReadItem reconstruye el ítem. Los hijos de SalesDetails se guardan con clave snake_case.
func ReadItem(el *etree.Element) *entity.Item {
	it := entity.NewItem()
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case wire.ElemCode:
			it.Code = child.Text()
		case wire.ElemName:
			it.Name = child.Text()
		case wire.ElemDescription:
			it.Description = child.Text()
		case wire.ElemSalesDetails:
			for _, e := range child.ChildElements() {
				it.SalesDetails[ToSnakeCase(e.Tag)] = e.Text()
			}
		}
	}
	return it
}

// ToSnakeCase convierte un nombre del wire a la convención interna: UnitPrice -> unit_price,
// TaxTypeID -> tax_type_id.
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '-' {
			r = '_'
		}
		b.WriteRune(r)
	}
	return b.String()
}
