package intervals

import (
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Set is a finite union of disjoint, non-connected intervals kept
// sorted ascending. That canonical form makes equality structural and
// the n-ary operations linear merges. The zero value is the empty set.
//
// Sets are immutable values like the intervals they hold.
type Set[T Element[T]] struct {
	intervals []Interval[T]
}

func setOf[T Element[T]](iv Interval[T]) Set[T] {
	if iv.IsEmpty() {
		return Set[T]{}
	}
	return Set[T]{intervals: []Interval[T]{iv}}
}

// NewSet builds a set from arbitrary intervals: empties are dropped,
// the rest sorted, and connected runs merged. Already canonical input
// is detected and copied as is.
func NewSet[T Element[T]](ivs ...Interval[T]) Set[T] {
	if canonical(ivs) {
		return Set[T]{intervals: slices.Clone(ivs)}
	}
	sorted := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			sorted = append(sorted, iv)
		}
	}
	slices.SortFunc(sorted, Interval[T].Compare)
	return Set[T]{intervals: mergeSorted(sorted)}
}

func canonical[T Element[T]](ivs []Interval[T]) bool {
	for i, iv := range ivs {
		if iv.IsEmpty() {
			return false
		}
		if i > 0 && (ivs[i-1].Compare(iv) >= 0 || ivs[i-1].Connects(iv)) {
			return false
		}
	}
	return true
}

// mergeSorted sweeps a sorted, empty-free slice, merging each interval
// into its predecessor while they connect.
func mergeSorted[T Element[T]](ivs []Interval[T]) []Interval[T] {
	out := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if n := len(out); n > 0 {
			if m, ok := out[n-1].TryMerge(iv); ok {
				out[n-1] = m
				continue
			}
		}
		out = append(out, iv)
	}
	return out
}

// Intervals returns the components in ascending order.
func (s Set[T]) Intervals() []Interval[T] {
	return slices.Clone(s.intervals)
}

func (s Set[T]) IsEmpty() bool { return len(s.intervals) == 0 }

// Size returns the number of components.
func (s Set[T]) Size() int { return len(s.intervals) }

// Interval returns the sole component of the set. The empty set yields
// the empty interval; more than one component is an error.
func (s Set[T]) Interval() (Interval[T], error) {
	switch len(s.intervals) {
	case 0:
		return Interval[T]{}, nil
	case 1:
		return s.intervals[0], nil
	default:
		return Interval[T]{}, errors.Wrapf(ErrMultipleIntervals,
			"set %s has %d components", s, len(s.intervals))
	}
}

// Hull returns the smallest single interval containing the whole set.
func (s Set[T]) Hull() Interval[T] {
	switch len(s.intervals) {
	case 0:
		return Interval[T]{}
	case 1:
		return s.intervals[0]
	default:
		return s.intervals[0].Hull(s.intervals[len(s.intervals)-1])
	}
}

// Contains reports whether v is an element of the set, by binary search
// over the sorted components.
func (s Set[T]) Contains(v T) bool {
	n := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].ordRight().compare(ordValue(v)) >= 0
	})
	return n < len(s.intervals) && s.intervals[n].Contains(v)
}

// ContainsInterval reports whether iv is a subset of the set. Since
// components are non-connected, iv fits iff a single component holds
// all of it.
func (s Set[T]) ContainsInterval(iv Interval[T]) bool {
	if iv.IsEmpty() {
		return true
	}
	n := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].ordRight().compare(iv.ordRight()) >= 0
	})
	return n < len(s.intervals) && s.intervals[n].ContainsInterval(iv)
}

// ContainsSet reports whether other is a subset of the set.
func (s Set[T]) ContainsSet(other Set[T]) bool {
	for _, iv := range other.intervals {
		if !s.ContainsInterval(iv) {
			return false
		}
	}
	return true
}

// Union returns the set of elements in either operand, merging the two
// sorted runs in one pass.
func (s Set[T]) Union(other Set[T]) Set[T] {
	merged := make([]Interval[T], 0, len(s.intervals)+len(other.intervals))
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		if s.intervals[i].Compare(other.intervals[j]) <= 0 {
			merged = append(merged, s.intervals[i])
			i++
		} else {
			merged = append(merged, other.intervals[j])
			j++
		}
	}
	merged = append(merged, s.intervals[i:]...)
	merged = append(merged, other.intervals[j:]...)
	return Set[T]{intervals: mergeSorted(merged)}
}

// UnionInterval adds a single interval to the set.
func (s Set[T]) UnionInterval(iv Interval[T]) Set[T] {
	return s.Union(setOf(iv))
}

// Intersection returns the set of elements in both operands. The two
// sorted runs are walked together, always advancing whichever current
// component ends first.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	var out []Interval[T]
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		a, b := s.intervals[i], other.intervals[j]
		if piece := a.Intersection(b); !piece.IsEmpty() {
			out = append(out, piece)
		}
		if a.ordRight().compare(b.ordRight()) <= 0 {
			i++
		} else {
			j++
		}
	}
	return Set[T]{intervals: out}
}

// IntersectionInterval restricts the set to a single interval.
func (s Set[T]) IntersectionInterval(iv Interval[T]) Set[T] {
	return s.Intersection(setOf(iv))
}

// Complement returns the elements not in the set: the gaps between
// consecutive components plus the rays beyond the outermost bounds.
func (s Set[T]) Complement() Set[T] {
	if len(s.intervals) == 0 {
		return setOf(NewUnbounded[T]())
	}
	var out []Interval[T]
	if lb, ok := s.intervals[0].Bound(Left); ok {
		out = append(out, NewHalf(Right, lb.Flip()))
	}
	for k := 0; k+1 < len(s.intervals); k++ {
		rb, _ := s.intervals[k].Bound(Right)
		lb, _ := s.intervals[k+1].Bound(Left)
		out = append(out, NewFinite(rb.Flip(), lb.Flip()))
	}
	if rb, ok := s.intervals[len(s.intervals)-1].Bound(Right); ok {
		out = append(out, NewHalf(Left, rb.Flip()))
	}
	return Set[T]{intervals: out}
}

// Difference returns the elements in the set but not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return s.Intersection(other.Complement())
}

// SymmetricDifference returns the elements in exactly one operand.
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	return s.Union(other).Difference(s.Intersection(other))
}

// Split cuts every component at the given value, returning the subsets
// at or below and at or above the cut. The closed side keeps the split
// point.
func (s Set[T]) Split(at T, closed Side) (Set[T], Set[T]) {
	var left, right []Interval[T]
	for _, iv := range s.intervals {
		l, r := iv.Split(at, closed)
		if !l.IsEmpty() {
			left = append(left, l)
		}
		if !r.IsEmpty() {
			right = append(right, r)
		}
	}
	return Set[T]{intervals: left}, Set[T]{intervals: right}
}

// Compare orders sets componentwise, shorter-prefix first. It exists
// so collections of sets can be sorted deterministically.
func (s Set[T]) Compare(other Set[T]) int {
	return slices.CompareFunc(s.intervals, other.intervals, Interval[T].Compare)
}

// Equal reports whether both sets contain exactly the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	for i := range s.intervals {
		if !s.intervals[i].Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

// String renders the components between braces: {[0, 5], [8, 10]}, or
// {} for the empty set.
func (s Set[T]) String() string {
	if len(s.intervals) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, iv := range s.intervals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(iv.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
