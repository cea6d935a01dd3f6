package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Coercion renders a raw document value. ok=false means the value is
// unusable and the field default applies.
type Coercion func(raw any) (string, bool)

// Text renders numbers canonically and passes strings through untouched.
func Text(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	default:
		return "", false
	}
}

// Fixed parses the value as a decimal and rounds it half away from zero to
// the given number of places.
func Fixed(places int32) Coercion {
	return func(raw any) (string, bool) {
		d, ok := Decimal(raw)
		if !ok {
			return "", false
		}
		return d.StringFixed(places), true
	}
}

// Decimal parses a raw document value as a number.
func Decimal(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case json.Number:
		return parseDecimal(v.String())
	case string:
		return parseDecimal(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	default:
		return decimal.Zero, false
	}
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
