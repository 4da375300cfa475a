package entity

import "github.com/jhoicas/xero-gateway/internal/domain"

// Claves de SalesDetails (convención interna snake_case).
const (
	SalesUnitPrice   = "unit_price"
	SalesAccountCode = "account_code"
)

// SalesDetails precio de venta por defecto y cuenta contable del ítem.
type SalesDetails map[string]string

// Item producto o servicio del catálogo del servicio contable.
type Item struct {
	Code         string
	Name         string
	Description  string
	SalesDetails SalesDetails
}

// NewItem crea un ítem con SalesDetails vacío.
func NewItem() *Item {
	return &Item{SalesDetails: SalesDetails{}}
}

// NewItemFromFields construye el ítem asignando campo por campo; claves desconocidas fallan.
func NewItemFromFields(fields map[string]any) (*Item, error) {
	it := NewItem()
	for k, v := range fields {
		var err error
		switch k {
		case "code":
			it.Code, err = toString(k, v)
		case "name":
			it.Name, err = toString(k, v)
		case "description":
			it.Description, err = toString(k, v)
		case "sales_details":
			err = it.setSalesDetails(v)
		default:
			err = &domain.UnknownFieldError{Record: "Item", Field: k}
		}
		if err != nil {
			return nil, err
		}
	}
	return it, nil
}

func (it *Item) setSalesDetails(v any) error {
	switch x := v.(type) {
	case nil:
		it.SalesDetails = SalesDetails{}
	case SalesDetails:
		it.SalesDetails = x
	case map[string]string:
		it.SalesDetails = SalesDetails(x)
	default:
		return &domain.InvalidFieldValueError{Field: "sales_details", Value: v}
	}
	return nil
}

// UnitPrice atajo para SalesDetails["unit_price"].
func (it *Item) UnitPrice() string { return it.SalesDetails[SalesUnitPrice] }

// AccountCode atajo para SalesDetails["account_code"].
func (it *Item) AccountCode() string { return it.SalesDetails[SalesAccountCode] }
