package intervals

import (
	"cmp"
	"math"

	"github.com/pkg/errors"
)

// Side marks which end of an interval a bound terminates.
//
//go:generate go run github.com/dmarkham/enumer -type=Side -transform=kebab
type Side int

const (
	Left Side = iota
	Right
)

// Flip maps Left to Right and Right to Left.
func (s Side) Flip() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Element is the contract an endpoint value type must satisfy.
//
// Compare defines the total order of the domain. Adjacent steps one element
// toward the given side and reports whether such a neighbor exists: discrete
// domains (integers) return the predecessor/successor, continuous domains
// (reals, decimals) always report false. Adjacent is the only place the
// discrete/continuous distinction enters the algebra; it drives bound
// normalization and adjacency testing.
type Element[T any] interface {
	Compare(T) int
	Adjacent(Side) (T, bool)
}

// Numeric adds the endpoint arithmetic needed by width measurement.
// The zero value of T must be its additive identity.
type Numeric[T any] interface {
	Element[T]
	Add(T) T
	Sub(T) T
}

// Countable is satisfied only by discrete domains that can count their
// elements. CountTo returns the number of elements in [recv, arg] and
// reports false when the count is not representable.
type Countable[T any] interface {
	Numeric[T]
	CountTo(T) (T, bool)
}

// Saturating is satisfied by domains with least and greatest representable
// values. It powers Truncate.
type Saturating[T any] interface {
	Element[T]
	MinValue() T
	MaxValue() T
}

// Int is the built-in discrete element over machine integers.
type Int int

func (i Int) Compare(o Int) int { return cmp.Compare(i, o) }

func (i Int) Adjacent(side Side) (Int, bool) {
	if side == Left {
		if i == math.MinInt {
			return 0, false
		}
		return i - 1, true
	}
	if i == math.MaxInt {
		return 0, false
	}
	return i + 1, true
}

func (i Int) Add(o Int) Int { return i + o }
func (i Int) Sub(o Int) Int { return i - o }

// CountTo returns the number of integers in [i, o] inclusive.
func (i Int) CountTo(o Int) (Int, bool) {
	if o < i {
		return 0, false
	}
	d := uint(o) - uint(i)
	if d >= math.MaxInt {
		return 0, false
	}
	return Int(d) + 1, true
}

func (Int) MinValue() Int { return math.MinInt }
func (Int) MaxValue() Int { return math.MaxInt }

// Real is the built-in continuous element over float64, admitting every
// value except NaN. Use NewReal to reject NaN at the boundary; converting
// a NaN directly breaks the total order and is the caller's bug.
type Real float64

// NewReal wraps f, rejecting NaN which has no place in a total order.
func NewReal(f float64) (Real, error) {
	if math.IsNaN(f) {
		return 0, errors.New("NaN is not an ordered value")
	}
	return Real(f), nil
}

func (r Real) Compare(o Real) int { return cmp.Compare(r, o) }

func (Real) Adjacent(Side) (Real, bool) { return 0, false }

func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
