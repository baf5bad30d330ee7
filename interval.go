package intervals

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type shape int8

const (
	shapeEmpty shape = iota
	shapeFinite
	shapeHalf
	shapeUnbounded
)

// Interval is a contiguous, possibly empty or unbounded run of elements.
// Intervals are immutable values; every operation returns a new one.
//
// Finite intervals are kept normalized: open bounds over discrete
// domains are rewritten as closed bounds one step into the interior, and
// any finite interval that admits no element collapses to the canonical
// empty interval. The zero value is the empty interval.
type Interval[T Element[T]] struct {
	shape shape
	side  Side // half-bounded only
	lo    Bound[T]
	hi    Bound[T]
}

// NewEmpty returns the empty interval.
func NewEmpty[T Element[T]]() Interval[T] {
	return Interval[T]{}
}

// NewUnbounded returns the interval containing every element.
func NewUnbounded[T Element[T]]() Interval[T] {
	return Interval[T]{shape: shapeUnbounded}
}

// NewFinite builds a bounded interval from two raw bounds, normalizing
// them and collapsing to empty when no element remains.
func NewFinite[T Element[T]](left, right Bound[T]) Interval[T] {
	return newFiniteNormed(left.Normalize(Left), right.Normalize(Right))
}

// newFiniteNormed assumes its bounds are already normalized.
func newFiniteNormed[T Element[T]](left, right Bound[T]) Interval[T] {
	c := left.Value.Compare(right.Value)
	if c < 0 || (c == 0 && left.IsClosed() && right.IsClosed()) {
		return Interval[T]{shape: shapeFinite, lo: left, hi: right}
	}
	return Interval[T]{}
}

// New builds a bounded interval like NewFinite but reports inverted
// bounds as an error instead of collapsing them. Degenerate same-value
// bounds that are not both closed still collapse to empty.
func New[T Element[T]](left, right Bound[T]) (Interval[T], error) {
	if left.Value.Compare(right.Value) > 0 {
		return Interval[T]{}, errors.Wrapf(ErrInvertedBounds,
			"left %s sorts after right %s", bstr(left, Left), bstr(right, Right))
	}
	return NewFinite(left, right), nil
}

// NewHalf returns the interval bounded on one side only: side Left gives
// [v, ->) style intervals, side Right gives (<-, v] style.
func NewHalf[T Element[T]](side Side, b Bound[T]) Interval[T] {
	b = b.Normalize(side)
	iv := Interval[T]{shape: shapeHalf, side: side}
	if side == Left {
		iv.lo = b
	} else {
		iv.hi = b
	}
	return iv
}

// NewClosed returns [lo, hi].
func NewClosed[T Element[T]](lo, hi T) Interval[T] {
	return NewFinite(ClosedBound(lo), ClosedBound(hi))
}

// NewOpen returns (lo, hi).
func NewOpen[T Element[T]](lo, hi T) Interval[T] {
	return NewFinite(OpenBound(lo), OpenBound(hi))
}

// NewOpenClosed returns (lo, hi].
func NewOpenClosed[T Element[T]](lo, hi T) Interval[T] {
	return NewFinite(OpenBound(lo), ClosedBound(hi))
}

// NewClosedOpen returns [lo, hi).
func NewClosedOpen[T Element[T]](lo, hi T) Interval[T] {
	return NewFinite(ClosedBound(lo), OpenBound(hi))
}

// NewPoint returns the degenerate interval [v, v].
func NewPoint[T Element[T]](v T) Interval[T] {
	return NewFinite(ClosedBound(v), ClosedBound(v))
}

// NewAtLeast returns [v, ->).
func NewAtLeast[T Element[T]](v T) Interval[T] {
	return NewHalf(Left, ClosedBound(v))
}

// NewGreaterThan returns (v, ->).
func NewGreaterThan[T Element[T]](v T) Interval[T] {
	return NewHalf(Left, OpenBound(v))
}

// NewAtMost returns (<-, v].
func NewAtMost[T Element[T]](v T) Interval[T] {
	return NewHalf(Right, ClosedBound(v))
}

// NewLessThan returns (<-, v).
func NewLessThan[T Element[T]](v T) Interval[T] {
	return NewHalf(Right, OpenBound(v))
}

func (iv Interval[T]) IsEmpty() bool     { return iv.shape == shapeEmpty }
func (iv Interval[T]) IsFinite() bool    { return iv.shape == shapeFinite }
func (iv Interval[T]) IsHalf() bool      { return iv.shape == shapeHalf }
func (iv Interval[T]) IsUnbounded() bool { return iv.shape == shapeUnbounded }

// Bound returns the finite bound terminating the given side, if any.
func (iv Interval[T]) Bound(side Side) (Bound[T], bool) {
	switch iv.shape {
	case shapeFinite:
		if side == Left {
			return iv.lo, true
		}
		return iv.hi, true
	case shapeHalf:
		if iv.side != side {
			return Bound[T]{}, false
		}
		if side == Left {
			return iv.lo, true
		}
		return iv.hi, true
	default:
		return Bound[T]{}, false
	}
}

// Finite returns the two bounds of a bounded interval.
func (iv Interval[T]) Finite() (left, right Bound[T], err error) {
	if iv.shape != shapeFinite {
		return Bound[T]{}, Bound[T]{}, errors.Wrapf(ErrConversion,
			"expected a bounded interval, got %s", iv)
	}
	return iv.lo, iv.hi, nil
}

// Half returns the side and bound of a half-bounded interval.
func (iv Interval[T]) Half() (Side, Bound[T], error) {
	if iv.shape != shapeHalf {
		return Left, Bound[T]{}, errors.Wrapf(ErrConversion,
			"expected a half-bounded interval, got %s", iv)
	}
	b, _ := iv.Bound(iv.side)
	return iv.side, b, nil
}

// CombineHalves merges a left-bounded and a right-bounded interval into
// the bounded interval between their bounds.
func CombineHalves[T Element[T]](a, b Interval[T]) (Interval[T], error) {
	aSide, aBound, err := a.Half()
	if err != nil {
		return Interval[T]{}, errors.Wrapf(ErrBoundsMismatch, "first operand %s is not half-bounded", a)
	}
	bSide, bBound, err := b.Half()
	if err != nil {
		return Interval[T]{}, errors.Wrapf(ErrBoundsMismatch, "second operand %s is not half-bounded", b)
	}
	if aSide == bSide {
		return Interval[T]{}, errors.Wrapf(ErrBoundsMismatch,
			"operands %s and %s are bounded on the same side", a, b)
	}
	if aSide == Left {
		return New(aBound, bBound)
	}
	return New(bBound, aBound)
}

// Truncate clamps the unbounded sides of an interval to the extremes of
// a saturating domain, yielding a bounded interval.
func Truncate[T Saturating[T]](iv Interval[T]) Interval[T] {
	switch iv.shape {
	case shapeHalf:
		var z T
		if iv.side == Left {
			return newFiniteNormed(iv.lo, ClosedBound(z.MaxValue()))
		}
		return newFiniteNormed(ClosedBound(z.MinValue()), iv.hi)
	case shapeUnbounded:
		var z T
		return NewClosed(z.MinValue(), z.MaxValue())
	default:
		return iv
	}
}

// ordLeft and ordRight view the interval's ends in the total bound
// order. The empty interval maps to the pair (-inf, -inf), placing it
// below every other interval and giving it an empty ord range.
func (iv Interval[T]) ordLeft() ordBound[T] {
	switch iv.shape {
	case shapeFinite:
		return iv.lo.ord(Left)
	case shapeHalf:
		if iv.side == Left {
			return iv.lo.ord(Left)
		}
		return ordLeftUnbounded[T]()
	case shapeUnbounded:
		return ordLeftUnbounded[T]()
	default:
		return ordLeftUnbounded[T]()
	}
}

func (iv Interval[T]) ordRight() ordBound[T] {
	switch iv.shape {
	case shapeFinite:
		return iv.hi.ord(Right)
	case shapeHalf:
		if iv.side == Right {
			return iv.hi.ord(Right)
		}
		return ordRightUnbounded[T]()
	case shapeUnbounded:
		return ordRightUnbounded[T]()
	default:
		return ordLeftUnbounded[T]()
	}
}

// Compare orders intervals by left bound, then right bound. The empty
// interval sorts before everything, the unbounded interval before any
// other non-empty interval.
func (iv Interval[T]) Compare(other Interval[T]) int {
	if c := iv.ordLeft().compare(other.ordLeft()); c != 0 {
		return c
	}
	return iv.ordRight().compare(other.ordRight())
}

// Equal reports whether both intervals contain exactly the same
// elements. Element types need not be comparable with ==, so this is
// the equality to use in tests and callers alike.
func (iv Interval[T]) Equal(other Interval[T]) bool {
	return iv.Compare(other) == 0
}

// String renders the conventional notation: [0, 10], (0, 10], [5, ->),
// (<-, 5), (<-, ->) and {} for the empty interval.
func (iv Interval[T]) String() string {
	switch iv.shape {
	case shapeEmpty:
		return "{}"
	case shapeFinite:
		return bstr(iv.lo, Left) + ", " + bstr(iv.hi, Right)
	case shapeHalf:
		if iv.side == Left {
			return bstr(iv.lo, Left) + ", ->)"
		}
		return "(<-, " + bstr(iv.hi, Right)
	default:
		return "(<-, ->)"
	}
}

func bstr[T Element[T]](b Bound[T], side Side) string {
	var sb strings.Builder
	if side == Left {
		if b.IsClosed() {
			sb.WriteByte('[')
		} else {
			sb.WriteByte('(')
		}
		fmt.Fprintf(&sb, "%v", b.Value)
	} else {
		fmt.Fprintf(&sb, "%v", b.Value)
		if b.IsClosed() {
			sb.WriteByte(']')
		} else {
			sb.WriteByte(')')
		}
	}
	return sb.String()
}
