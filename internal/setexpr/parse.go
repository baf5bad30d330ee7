// Package setexpr parses the command line notation for intervals and
// interval sets and evaluates set algebra over them.
package setexpr

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vipcxj/intervals"
)

// atomFunc reads one endpoint value.
type atomFunc[T intervals.Element[T]] func(string) (T, error)

func intAtom(s string) (intervals.Int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid integer %q", s)
	}
	return intervals.Int(n), nil
}

func realAtom(s string) (intervals.Real, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	r, err := intervals.NewReal(f)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	return r, nil
}

// parseInterval reads one interval.
//
// Supported formats:
//   - N         the point [N, N]
//   - =N        same as N
//   - >N, >=N   left-bounded rays
//   - <N, <=N   right-bounded rays
//   - (a,b), (a,b], [a,b), [a,b]
//   - (,b), (a,), (,) with empty sides unbounded
//
// Spaces around tokens are ignored. An unbounded side must be open.
// Inverted bounds are an error rather than an empty interval, since a
// literal like [10,0] is almost certainly a typo.
func parseInterval[T intervals.Element[T]](atom atomFunc[T], value string) (intervals.Interval[T], error) {
	var zero intervals.Interval[T]
	s := strings.TrimSpace(value)
	if s == "" {
		return zero, errors.New("empty interval expression")
	}

	// prefix operators
	switch {
	case strings.HasPrefix(s, "="):
		v, err := atom(strings.TrimSpace(s[1:]))
		if err != nil {
			return zero, err
		}
		return intervals.NewPoint(v), nil
	case strings.HasPrefix(s, ">="):
		v, err := atom(strings.TrimSpace(s[2:]))
		if err != nil {
			return zero, err
		}
		return intervals.NewAtLeast(v), nil
	case strings.HasPrefix(s, ">"):
		v, err := atom(strings.TrimSpace(s[1:]))
		if err != nil {
			return zero, err
		}
		return intervals.NewGreaterThan(v), nil
	case strings.HasPrefix(s, "<="):
		v, err := atom(strings.TrimSpace(s[2:]))
		if err != nil {
			return zero, err
		}
		return intervals.NewAtMost(v), nil
	case strings.HasPrefix(s, "<"):
		v, err := atom(strings.TrimSpace(s[1:]))
		if err != nil {
			return zero, err
		}
		return intervals.NewLessThan(v), nil
	}

	// interval notation
	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		leftClosed := s[0] == '['
		rightClosed := s[len(s)-1] == ']'
		inner := s[1 : len(s)-1]
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return zero, errors.Errorf("invalid interval syntax: %s", value)
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		switch {
		case left == "" && right == "":
			if leftClosed || rightClosed {
				return zero, errors.Errorf("infinite side must be open: %s", value)
			}
			return intervals.NewUnbounded[T](), nil
		case left == "":
			if leftClosed {
				return zero, errors.Errorf("infinite side must be open on left: %s", value)
			}
			v, err := atom(right)
			if err != nil {
				return zero, err
			}
			return intervals.NewHalf(intervals.Right, bound(rightClosed, v)), nil
		case right == "":
			if rightClosed {
				return zero, errors.Errorf("infinite side must be open on right: %s", value)
			}
			v, err := atom(left)
			if err != nil {
				return zero, err
			}
			return intervals.NewHalf(intervals.Left, bound(leftClosed, v)), nil
		default:
			lo, err := atom(left)
			if err != nil {
				return zero, err
			}
			hi, err := atom(right)
			if err != nil {
				return zero, err
			}
			return intervals.New(bound(leftClosed, lo), bound(rightClosed, hi))
		}
	}

	// plain value
	v, err := atom(s)
	if err != nil {
		return zero, errors.Errorf("unrecognized interval format: %s", value)
	}
	return intervals.NewPoint(v), nil
}

func bound[T intervals.Element[T]](closed bool, v T) intervals.Bound[T] {
	if closed {
		return intervals.ClosedBound(v)
	}
	return intervals.OpenBound(v)
}

// parseSet reads an underscore-separated list of intervals as their
// union: "[0,5]_[8,10]_20".
func parseSet[T intervals.Element[T]](atom atomFunc[T], value string) (intervals.Set[T], error) {
	parts := strings.Split(value, "_")
	ivs := make([]intervals.Interval[T], 0, len(parts))
	for _, part := range parts {
		iv, err := parseInterval(atom, part)
		if err != nil {
			return intervals.Set[T]{}, err
		}
		ivs = append(ivs, iv)
	}
	return intervals.NewSet(ivs...), nil
}
