package intervals

// Bounding says whether a bound's own value belongs to the interval.
//
//go:generate go run github.com/dmarkham/enumer -type=Bounding -transform=kebab
type Bounding int

const (
	Open Bounding = iota
	Closed
)

// Flip swaps Open and Closed.
func (b Bounding) Flip() Bounding {
	if b == Open {
		return Closed
	}
	return Open
}

// Bound is a finite interval endpoint. Which end it terminates is
// positional, carried by the interval that holds it.
type Bound[T Element[T]] struct {
	Type  Bounding
	Value T
}

// ClosedBound returns a bound that includes its own value.
func ClosedBound[T Element[T]](v T) Bound[T] {
	return Bound[T]{Type: Closed, Value: v}
}

// OpenBound returns a bound that excludes its own value.
func OpenBound[T Element[T]](v T) Bound[T] {
	return Bound[T]{Type: Open, Value: v}
}

func (b Bound[T]) IsClosed() bool { return b.Type == Closed }
func (b Bound[T]) IsOpen() bool   { return b.Type == Open }

// Flip converts between a bound and the facing bound of its complement:
// the left bound [5 flips to the right bound 5), and so on.
func (b Bound[T]) Flip() Bound[T] {
	return Bound[T]{Type: b.Type.Flip(), Value: b.Value}
}

// Normalize rewrites an open bound of a discrete domain as its closed
// equivalent, stepping one element into the interval interior: a left
// bound (2 becomes [3, a right bound 7) becomes 6]. Continuous domains
// and saturated endpoints are returned unchanged.
func (b Bound[T]) Normalize(side Side) Bound[T] {
	if b.Type != Open {
		return b
	}
	if v, ok := b.Value.Adjacent(side.Flip()); ok {
		return Bound[T]{Type: Closed, Value: v}
	}
	return b
}

// contains reports whether v lies on the interval side of the bound.
func (b Bound[T]) contains(side Side, v T) bool {
	c := b.Value.Compare(v)
	if side == Left {
		if b.Type == Closed {
			return c <= 0
		}
		return c < 0
	}
	if b.Type == Closed {
		return c >= 0
	}
	return c > 0
}

// ordKind positions finite bounds sharing a value in the total bound
// order: a right bound 5) sorts before [5 or 5], which sort before a
// left bound (5.
const (
	ordRightOpen int8 = -1
	ordClosed    int8 = 0
	ordLeftOpen  int8 = 1
)

// ordBound is a bound lifted into a single total order covering both
// sides and the two infinities. It makes every pairwise predicate a
// pair of comparisons.
type ordBound[T Element[T]] struct {
	inf   int8 // -1 left-unbounded, 0 finite, +1 right-unbounded
	kind  int8 // finite only
	value T
}

func (b Bound[T]) ord(side Side) ordBound[T] {
	o := ordBound[T]{kind: ordClosed, value: b.Value}
	if b.Type == Open {
		if side == Left {
			o.kind = ordLeftOpen
		} else {
			o.kind = ordRightOpen
		}
	}
	return o
}

func ordValue[T Element[T]](v T) ordBound[T] {
	return ordBound[T]{kind: ordClosed, value: v}
}

func ordLeftUnbounded[T Element[T]]() ordBound[T]  { return ordBound[T]{inf: -1} }
func ordRightUnbounded[T Element[T]]() ordBound[T] { return ordBound[T]{inf: 1} }

func (o ordBound[T]) compare(p ordBound[T]) int {
	if o.inf != p.inf {
		return int(o.inf - p.inf)
	}
	if o.inf != 0 {
		return 0
	}
	if c := o.value.Compare(p.value); c != 0 {
		return c
	}
	return int(o.kind - p.kind)
}

// minBound and maxBound pick the lesser or greater of two finite bounds
// on the same side.
func minBound[T Element[T]](side Side, a, b Bound[T]) Bound[T] {
	if a.ord(side).compare(b.ord(side)) <= 0 {
		return a
	}
	return b
}

func maxBound[T Element[T]](side Side, a, b Bound[T]) Bound[T] {
	if a.ord(side).compare(b.ord(side)) >= 0 {
		return a
	}
	return b
}
