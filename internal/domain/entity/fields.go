package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/xero-gateway/internal/domain"
)

// ParseDecimal convierte el texto de un campo numérico; nunca pasa por float64.
func ParseDecimal(field, text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, &domain.MalformedNumberError{Field: field, Text: text, Err: err}
	}
	return d, nil
}

func toNullDecimal(field string, v any) (decimal.NullDecimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case decimal.NullDecimal:
		return x, nil
	case decimal.Decimal:
		return decimal.NewNullDecimal(x), nil
	case string:
		d, err := ParseDecimal(field, x)
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		return decimal.NewNullDecimal(d), nil
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(x))), nil
	case int32:
		return decimal.NewNullDecimal(decimal.NewFromInt32(x)), nil
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(x)), nil
	default:
		// float32/float64 incluidos: los importes no admiten binario en coma flotante.
		return decimal.NullDecimal{}, &domain.InvalidFieldValueError{Field: field, Value: v}
	}
}

func toDecimal(field string, v any) (decimal.Decimal, error) {
	nd, err := toNullDecimal(field, v)
	if err != nil {
		return decimal.Zero, err
	}
	if !nd.Valid {
		return decimal.Zero, &domain.InvalidFieldValueError{Field: field, Value: v}
	}
	return nd.Decimal, nil
}

func toString(field string, v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	default:
		return "", &domain.InvalidFieldValueError{Field: field, Value: v}
	}
}

func toTracking(field string, v any) (Tracking, error) {
	switch x := v.(type) {
	case nil:
		return NoTracking{}, nil
	case SingleTracking:
		if x.Category == nil {
			return nil, &domain.InvalidFieldValueError{Field: field, Value: v}
		}
		return x, nil
	case TrackingList:
		return checkTrackingList(field, x)
	case Tracking:
		return x, nil
	case *TrackingCategory:
		if x == nil {
			return nil, &domain.InvalidFieldValueError{Field: field, Value: v}
		}
		return SingleTracking{Category: x}, nil
	case TrackingCategory:
		return SingleTracking{Category: &x}, nil
	case []*TrackingCategory:
		return checkTrackingList(field, TrackingList(x))
	default:
		return nil, &domain.InvalidFieldValueError{Field: field, Value: v}
	}
}

// checkTrackingList rechaza listas con categorías nil.
func checkTrackingList(field string, l TrackingList) (Tracking, error) {
	for _, c := range l {
		if c == nil {
			return nil, &domain.InvalidFieldValueError{Field: field, Value: l}
		}
	}
	return l, nil
}

func nullDecimalEqual(a, b decimal.NullDecimal) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || a.Decimal.Equal(b.Decimal)
}
