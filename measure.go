package intervals

// Width returns the distance between the bound values of an interval.
// It is zero for the empty interval and unavailable for unbounded ones.
// Bound types are ignored: over the reals, [0, 10] and (0, 10) both
// have width 10.
func Width[T Numeric[T]](iv Interval[T]) (T, bool) {
	switch {
	case iv.IsEmpty():
		var zero T
		return zero, true
	case iv.IsFinite():
		return iv.hi.Value.Sub(iv.lo.Value), true
	default:
		var zero T
		return zero, false
	}
}

// SetWidth sums the widths of the components; unavailable when any
// component is unbounded.
func SetWidth[T Numeric[T]](s Set[T]) (T, bool) {
	var total T
	for _, iv := range s.intervals {
		w, ok := Width(iv)
		if !ok {
			var zero T
			return zero, false
		}
		total = total.Add(w)
	}
	return total, true
}

// Count returns the number of elements in an interval of a countable
// domain. It is zero for the empty interval and unavailable for
// unbounded intervals or counts the domain cannot represent.
func Count[T Countable[T]](iv Interval[T]) (T, bool) {
	switch {
	case iv.IsEmpty():
		var zero T
		return zero, true
	case iv.IsFinite():
		return iv.lo.Value.CountTo(iv.hi.Value)
	default:
		var zero T
		return zero, false
	}
}

// SetCount sums the element counts of the components.
func SetCount[T Countable[T]](s Set[T]) (T, bool) {
	var total T
	for _, iv := range s.intervals {
		n, ok := Count(iv)
		if !ok {
			var zero T
			return zero, false
		}
		total = total.Add(n)
	}
	return total, true
}
