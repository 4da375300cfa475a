package entity

// TrackingCategory categoría de seguimiento del servicio contable (ej. Región -> Norte).
// Tiene dos formas en el wire: la independiente y la embebida en líneas de factura.
type TrackingCategory struct {
	ID      string // TrackingCategoryID (opcional)
	Name    string
	Options []string // en líneas de factura solo se envía la primera
}

// Option devuelve la opción seleccionada (primera), vacío si no hay.
func (c *TrackingCategory) Option() string {
	if c == nil || len(c.Options) == 0 {
		return ""
	}
	return c.Options[0]
}

// Tracking asociación de una línea con sus categorías: NoTracking, SingleTracking o TrackingList.
// Un Tracking nil equivale a NoTracking.
type Tracking interface {
	Categories() []*TrackingCategory
	isTracking()
}

// NoTracking la línea no tiene categorías.
type NoTracking struct{}

func (NoTracking) Categories() []*TrackingCategory { return nil }
func (NoTracking) isTracking()                     {}

// SingleTracking una única categoría.
type SingleTracking struct {
	Category *TrackingCategory
}

func (s SingleTracking) Categories() []*TrackingCategory {
	if s.Category == nil {
		return nil
	}
	return []*TrackingCategory{s.Category}
}
func (SingleTracking) isTracking() {}

// TrackingList cero o más categorías.
type TrackingList []*TrackingCategory

// Categories descarta entradas nil.
func (l TrackingList) Categories() []*TrackingCategory {
	out := make([]*TrackingCategory, 0, len(l))
	for _, c := range l {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
func (TrackingList) isTracking() {}

// AppendTracking agrega c a t y devuelve siempre una TrackingList. Un c nil no se agrega.
func AppendTracking(t Tracking, c *TrackingCategory) Tracking {
	if c == nil {
		if t == nil {
			return NoTracking{}
		}
		return t
	}
	switch v := t.(type) {
	case nil, NoTracking:
		return TrackingList{c}
	case SingleTracking:
		if v.Category == nil {
			return TrackingList{c}
		}
		return TrackingList{v.Category, c}
	case TrackingList:
		return append(v, c)
	default:
		return append(TrackingList(t.Categories()), c)
	}
}
