package intervals

// fromBounds assembles an interval from optional, already normalized
// bounds.
func fromBounds[T Element[T]](left Bound[T], leftOK bool, right Bound[T], rightOK bool) Interval[T] {
	switch {
	case leftOK && rightOK:
		return newFiniteNormed(left, right)
	case leftOK:
		return Interval[T]{shape: shapeHalf, side: Left, lo: left}
	case rightOK:
		return Interval[T]{shape: shapeHalf, side: Right, hi: right}
	default:
		return Interval[T]{shape: shapeUnbounded}
	}
}

// Intersection returns the interval of elements common to both
// operands.
func (iv Interval[T]) Intersection(other Interval[T]) Interval[T] {
	if iv.IsEmpty() || other.IsEmpty() {
		return Interval[T]{}
	}
	left, leftOK := iv.Bound(Left)
	if l, ok := other.Bound(Left); ok {
		if !leftOK {
			left, leftOK = l, true
		} else {
			left = maxBound(Left, left, l)
		}
	}
	right, rightOK := iv.Bound(Right)
	if r, ok := other.Bound(Right); ok {
		if !rightOK {
			right, rightOK = r, true
		} else {
			right = minBound(Right, right, r)
		}
	}
	return fromBounds(left, leftOK, right, rightOK)
}

// Hull returns the smallest interval containing both operands. The
// empty interval is the identity.
func (iv Interval[T]) Hull(other Interval[T]) Interval[T] {
	if iv.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return iv
	}
	left, leftOK := iv.Bound(Left)
	if l, ok := other.Bound(Left); ok && leftOK {
		left = minBound(Left, left, l)
	} else {
		leftOK = false
	}
	right, rightOK := iv.Bound(Right)
	if r, ok := other.Bound(Right); ok && rightOK {
		right = maxBound(Right, right, r)
	} else {
		rightOK = false
	}
	return fromBounds(left, leftOK, right, rightOK)
}

// TryMerge returns the union of the two intervals when that union is a
// single interval, i.e. when the operands connect.
func (iv Interval[T]) TryMerge(other Interval[T]) (Interval[T], bool) {
	if iv.IsEmpty() {
		return other, true
	}
	if other.IsEmpty() {
		return iv, true
	}
	if !iv.Connects(other) {
		return Interval[T]{}, false
	}
	return iv.Hull(other), true
}

// Union returns the set of elements in either interval. The result has
// one component when the operands connect, otherwise two.
func (iv Interval[T]) Union(other Interval[T]) Set[T] {
	if m, ok := iv.TryMerge(other); ok {
		return setOf(m)
	}
	if iv.Compare(other) <= 0 {
		return Set[T]{intervals: []Interval[T]{iv, other}}
	}
	return Set[T]{intervals: []Interval[T]{other, iv}}
}

// Complement returns the set of elements not in the interval: zero
// components for the unbounded interval, one ray for a half-bounded
// interval, up to two rays around a bounded one.
func (iv Interval[T]) Complement() Set[T] {
	switch iv.shape {
	case shapeEmpty:
		return setOf(NewUnbounded[T]())
	case shapeUnbounded:
		return Set[T]{}
	case shapeHalf:
		b, _ := iv.Bound(iv.side)
		return setOf(NewHalf(iv.side.Flip(), b.Flip()))
	default:
		return Set[T]{intervals: []Interval[T]{
			NewHalf(Right, iv.lo.Flip()),
			NewHalf(Left, iv.hi.Flip()),
		}}
	}
}

// Difference returns the set of elements in the interval but not in
// other.
func (iv Interval[T]) Difference(other Interval[T]) Set[T] {
	out := make([]Interval[T], 0, 2)
	for _, c := range other.Complement().Intervals() {
		if piece := iv.Intersection(c); !piece.IsEmpty() {
			out = append(out, piece)
		}
	}
	return Set[T]{intervals: out}
}

// SymmetricDifference returns the elements in exactly one of the two
// intervals.
func (iv Interval[T]) SymmetricDifference(other Interval[T]) Set[T] {
	return iv.Union(other).Difference(setOf(iv.Intersection(other)))
}

// WithLeft replaces the left bound, keeping the right end as is. The
// result is renormalized, so it may be empty.
func (iv Interval[T]) WithLeft(b Bound[T]) Interval[T] {
	switch iv.shape {
	case shapeEmpty:
		return iv
	default:
		right, rightOK := iv.Bound(Right)
		return fromBounds(b.Normalize(Left), true, right, rightOK)
	}
}

// WithRight replaces the right bound, keeping the left end as is.
func (iv Interval[T]) WithRight(b Bound[T]) Interval[T] {
	switch iv.shape {
	case shapeEmpty:
		return iv
	default:
		left, leftOK := iv.Bound(Left)
		return fromBounds(left, leftOK, b.Normalize(Right), true)
	}
}

// WithoutLeft drops the left bound, extending the interval to -inf.
func (iv Interval[T]) WithoutLeft() Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	right, rightOK := iv.Bound(Right)
	return fromBounds(Bound[T]{}, false, right, rightOK)
}

// WithoutRight drops the right bound, extending the interval to +inf.
func (iv Interval[T]) WithoutRight() Interval[T] {
	if iv.IsEmpty() {
		return iv
	}
	left, leftOK := iv.Bound(Left)
	return fromBounds(left, leftOK, Bound[T]{}, false)
}

// Split cuts the interval at a contained value. The closed side keeps
// the split point; the other part starts just past it. Values outside
// the interval leave it whole on one side of the cut.
func (iv Interval[T]) Split(at T, closed Side) (left, right Interval[T]) {
	if iv.IsEmpty() {
		return iv, iv
	}
	if !iv.Contains(at) {
		if iv.ordRight().compare(ordValue(at)) < 0 {
			return iv, Interval[T]{}
		}
		return Interval[T]{}, iv
	}
	var lmax, rmin Bound[T]
	if closed == Left {
		lmax, rmin = ClosedBound(at), OpenBound(at)
	} else {
		lmax, rmin = OpenBound(at), ClosedBound(at)
	}
	lo, loOK := iv.Bound(Left)
	hi, hiOK := iv.Bound(Right)
	left = fromBounds(lo, loOK, lmax.Normalize(Right), true)
	right = fromBounds(rmin.Normalize(Left), true, hi, hiOK)
	return left, right
}
