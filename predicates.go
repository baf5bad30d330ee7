package intervals

// Contains reports whether v is an element of the interval.
func (iv Interval[T]) Contains(v T) bool {
	switch iv.shape {
	case shapeFinite:
		return iv.lo.contains(Left, v) && iv.hi.contains(Right, v)
	case shapeHalf:
		if iv.side == Left {
			return iv.lo.contains(Left, v)
		}
		return iv.hi.contains(Right, v)
	case shapeUnbounded:
		return true
	default:
		return false
	}
}

// ContainsInterval reports whether other is a subset of the interval.
// The empty interval is a subset of everything.
func (iv Interval[T]) ContainsInterval(other Interval[T]) bool {
	if other.IsEmpty() {
		return true
	}
	if iv.IsEmpty() {
		return false
	}
	return iv.ordLeft().compare(other.ordLeft()) <= 0 &&
		other.ordRight().compare(iv.ordRight()) <= 0
}

// Intersects reports whether the two intervals share at least one
// element.
func (iv Interval[T]) Intersects(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return false
	}
	return iv.ordLeft().compare(other.ordRight()) <= 0 &&
		other.ordLeft().compare(iv.ordRight()) <= 0
}

// Connects reports whether the union of the two intervals is itself a
// single interval: they intersect, or nothing of the domain lies
// between them. [1, 5] connects [6, 10] over the integers but not over
// the reals; [1.0, 5.0) connects [5.0, 10.0]. The empty interval
// connects everything.
func (iv Interval[T]) Connects(other Interval[T]) bool {
	if iv.IsEmpty() || other.IsEmpty() {
		return true
	}
	if iv.Intersects(other) {
		return true
	}
	if r, ok := iv.Bound(Right); ok {
		if l, ok := other.Bound(Left); ok && boundsConnected(r, l) {
			return true
		}
	}
	if r, ok := other.Bound(Right); ok {
		if l, ok := iv.Bound(Left); ok && boundsConnected(r, l) {
			return true
		}
	}
	return false
}

// boundsConnected reports whether no element separates a right bound
// from a left bound sitting at or above it. Saturated endpoints have no
// neighbor to step to, so they only connect when the values coincide
// and at least one side is closed; that same rule is the touching case
// for continuous domains.
func boundsConnected[T Element[T]](right, left Bound[T]) bool {
	up, upOK := right.Value.Adjacent(Right)
	down, downOK := left.Value.Adjacent(Left)
	switch {
	case upOK && downOK:
		return up.Compare(left.Value) == 0 && down.Compare(right.Value) == 0
	case upOK:
		return left.IsClosed() && right.Value.Compare(left.Value) == 0
	case downOK:
		return right.IsClosed() && right.Value.Compare(left.Value) == 0
	default:
		return right.Value.Compare(left.Value) == 0 &&
			(right.IsClosed() || left.IsClosed())
	}
}

// Adjacent reports whether no element of the domain lies strictly
// between the extrema of the two intervals. Unlike Connects it does not
// hold for overlapping interiors or for empty operands: [1, 5] is
// adjacent to [6, 10], not to [4, 10].
func (iv Interval[T]) Adjacent(other Interval[T]) bool {
	r1, ok1 := iv.Bound(Right)
	l2, ok2 := other.Bound(Left)
	if ok1 && ok2 && boundsAdjacent(r1, l2) {
		return true
	}
	r2, ok3 := other.Bound(Right)
	l1, ok4 := iv.Bound(Left)
	return ok3 && ok4 && boundsAdjacent(r2, l1)
}

func boundsAdjacent[T Element[T]](right, left Bound[T]) bool {
	up, upOK := right.Value.Adjacent(Right)
	down, downOK := left.Value.Adjacent(Left)
	if upOK && downOK {
		return up.Compare(left.Value) == 0 && down.Compare(right.Value) == 0
	}
	if !upOK && !downOK {
		return right.Value.Compare(left.Value) == 0 &&
			(right.IsClosed() || left.IsClosed())
	}
	return false
}
