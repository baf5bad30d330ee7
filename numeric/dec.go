package numeric

import (
	"github.com/shopspring/decimal"
	"github.com/vipcxj/intervals"
)

// Dec is a continuous endpoint over arbitrary-precision decimals. The
// zero value is 0.
type Dec struct {
	d decimal.Decimal
}

// NewDec wraps a decimal.
func NewDec(d decimal.Decimal) Dec { return Dec{d: d} }

// ParseDec reads a decimal from its string form.
func ParseDec(s string) (Dec, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Dec{}, err
	}
	return Dec{d: d}, nil
}

// Decimal returns the underlying decimal.
func (d Dec) Decimal() decimal.Decimal { return d.d }

func (d Dec) String() string { return d.d.String() }

func (d Dec) Compare(o Dec) int { return d.d.Cmp(o.d) }

// Adjacent always reports false: decimals are treated as a dense
// domain with no next or previous element.
func (Dec) Adjacent(intervals.Side) (Dec, bool) { return Dec{}, false }

func (d Dec) Add(o Dec) Dec { return Dec{d: d.d.Add(o.d)} }
func (d Dec) Sub(o Dec) Dec { return Dec{d: d.d.Sub(o.d)} }
