// Package numeric adapts arbitrary-precision number types as interval
// endpoint domains: Big for math/big integers, Dec for decimals.
package numeric

import (
	"math/big"

	"github.com/vipcxj/intervals"
)

var one = big.NewInt(1)

// Big is a discrete endpoint over arbitrary-precision integers. It is
// an immutable value; the zero value is 0.
type Big struct {
	x *big.Int
}

// NewBig returns the endpoint for v.
func NewBig(v int64) Big {
	return Big{x: big.NewInt(v)}
}

// ParseBig reads a base-10 integer.
func ParseBig(s string) (Big, bool) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Big{}, false
	}
	return Big{x: x}, true
}

func (b Big) val() *big.Int {
	if b.x == nil {
		return new(big.Int)
	}
	return b.x
}

// Int returns the underlying integer. Callers must not mutate it.
func (b Big) Int() *big.Int { return b.val() }

func (b Big) String() string { return b.val().String() }

func (b Big) Compare(o Big) int { return b.val().Cmp(o.val()) }

// Adjacent steps to the neighboring integer. Big integers never
// saturate, so this always succeeds.
func (b Big) Adjacent(side intervals.Side) (Big, bool) {
	if side == intervals.Left {
		return Big{x: new(big.Int).Sub(b.val(), one)}, true
	}
	return Big{x: new(big.Int).Add(b.val(), one)}, true
}

func (b Big) Add(o Big) Big {
	return Big{x: new(big.Int).Add(b.val(), o.val())}
}

func (b Big) Sub(o Big) Big {
	return Big{x: new(big.Int).Sub(b.val(), o.val())}
}

// CountTo returns the number of integers in [b, o] inclusive.
func (b Big) CountTo(o Big) (Big, bool) {
	if o.Compare(b) < 0 {
		return Big{}, false
	}
	n := new(big.Int).Sub(o.val(), b.val())
	return Big{x: n.Add(n, one)}, true
}
