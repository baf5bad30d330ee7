package intervals

import "github.com/pkg/errors"

// Sentinel errors for the fallible entry points. Call sites wrap these
// with errors.Wrapf, so test with errors.Is.
var (
	// ErrInvertedBounds is returned by New when the left bound sorts
	// after the right bound.
	ErrInvertedBounds = errors.New("inverted bounds")

	// ErrBoundsMismatch is returned by CombineHalves when the operands
	// are not one left half and one right half.
	ErrBoundsMismatch = errors.New("bounds mismatch")

	// ErrMultipleIntervals is returned by Set.Interval when the set
	// holds more than one component.
	ErrMultipleIntervals = errors.New("multiple intervals")

	// ErrConversion is returned when an interval does not have the
	// shape a conversion requires.
	ErrConversion = errors.New("wrong interval shape")
)
