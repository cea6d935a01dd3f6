package ticker

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder is shown for any value that is null or was never populated.
const Placeholder = "--"

type Class string

const (
	ClassNone     Class = ""
	ClassPositive Class = "positive"
	ClassNegative Class = "negative"
)

// Cell is one rendered display location.
type Cell struct {
	Text  string
	Class Class
}

var blank = Cell{Text: Placeholder}

// Value renders v as-is.
func Value(v *string) Cell {
	if v == nil || strings.TrimSpace(*v) == "" {
		return blank
	}
	return Cell{Text: *v}
}

// Change renders a signed change. Strictly positive values get a "+"
// prefix and the positive class, strictly negative ones the negative
// class; zero and unparsable values get no class.
func Change(v *string) Cell {
	if v == nil || strings.TrimSpace(*v) == "" {
		return blank
	}
	text := strings.TrimSpace(*v)
	suffix := ""
	if strings.HasSuffix(text, "%") {
		suffix = "%"
		text = strings.TrimSuffix(text, "%")
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(text, "+"))
	if err != nil {
		return Cell{Text: *v}
	}
	switch d.Sign() {
	case 1:
		return Cell{Text: "+" + strings.TrimPrefix(text, "+") + suffix, Class: ClassPositive}
	case -1:
		return Cell{Text: text + suffix, Class: ClassNegative}
	default:
		return Cell{Text: strings.TrimLeft(text, "+-") + suffix}
	}
}

// Percent renders a signed percentage, adding the "%" suffix when the
// value lacks one.
func Percent(v *string) Cell {
	if v == nil || strings.TrimSpace(*v) == "" {
		return blank
	}
	text := strings.TrimSpace(*v)
	if !strings.HasSuffix(text, "%") {
		text += "%"
	}
	return Change(&text)
}
