package setexpr

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vipcxj/intervals"
)

// Op selects a set operation to fold over the operands.
type Op int

const (
	OpUnion Op = iota
	OpIntersection
	OpDifference
	OpSymmetricDifference
)

// Apply parses each operand as a set and folds op over them left to
// right, returning the display form of the result. With real set, the
// endpoints are read as floating point numbers, otherwise as integers.
func Apply(op Op, real bool, operands []string) (string, error) {
	if real {
		return apply(realAtom, op, operands)
	}
	return apply(intAtom, op, operands)
}

func apply[T intervals.Element[T]](atom atomFunc[T], op Op, operands []string) (string, error) {
	acc, err := parseSet(atom, operands[0])
	if err != nil {
		return "", err
	}
	for _, operand := range operands[1:] {
		s, err := parseSet(atom, operand)
		if err != nil {
			return "", err
		}
		switch op {
		case OpUnion:
			acc = acc.Union(s)
		case OpIntersection:
			acc = acc.Intersection(s)
		case OpDifference:
			acc = acc.Difference(s)
		case OpSymmetricDifference:
			acc = acc.SymmetricDifference(s)
		}
	}
	return acc.String(), nil
}

// Complement parses the operand as a set and returns the display form
// of its complement.
func Complement(real bool, operand string) (string, error) {
	if real {
		s, err := parseSet(realAtom, operand)
		if err != nil {
			return "", err
		}
		return s.Complement().String(), nil
	}
	s, err := parseSet(intAtom, operand)
	if err != nil {
		return "", err
	}
	return s.Complement().String(), nil
}

// Contains reports whether the set holds the value, or every element
// of the interval when the value itself parses as one.
func Contains(real bool, setExpr, valueExpr string) (bool, error) {
	if real {
		return contains(realAtom, setExpr, valueExpr)
	}
	return contains(intAtom, setExpr, valueExpr)
}

func contains[T intervals.Element[T]](atom atomFunc[T], setExpr, valueExpr string) (bool, error) {
	s, err := parseSet(atom, setExpr)
	if err != nil {
		return false, err
	}
	if v, err := atom(strings.TrimSpace(valueExpr)); err == nil {
		return s.Contains(v), nil
	}
	q, err := parseSet(atom, valueExpr)
	if err != nil {
		return false, err
	}
	return s.ContainsSet(q), nil
}

// Measure returns the total width of the operand set, or with count the
// number of elements. Unbounded measures render as "inf". Counting is
// only defined over the integers.
func Measure(real, count bool, operand string) (string, error) {
	if real {
		if count {
			return "", errors.New("count requires a discrete domain")
		}
		s, err := parseSet(realAtom, operand)
		if err != nil {
			return "", err
		}
		w, ok := intervals.SetWidth(s)
		if !ok {
			return "inf", nil
		}
		return strconv.FormatFloat(float64(w), 'g', -1, 64), nil
	}
	s, err := parseSet(intAtom, operand)
	if err != nil {
		return "", err
	}
	var n intervals.Int
	var ok bool
	if count {
		n, ok = intervals.SetCount(s)
	} else {
		n, ok = intervals.SetWidth(s)
	}
	if !ok {
		return "inf", nil
	}
	return strconv.Itoa(int(n)), nil
}
