package shape

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDimension is returned when a dimension is missing or not a
	// strictly positive finite number.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidTriangle is returned when three valid sides fail the strict
	// triangle inequality.
	ErrInvalidTriangle = errors.New("invalid triangle")
	ErrUnknownShape    = errors.New("unknown shape")
)

// dim is a named dimension, used for error messages.
type dim struct {
	name  string
	value float64
}

// validateDims checks that every dimension is present and strictly positive.
// NaN stands for a missing value.
func validateDims(dims ...dim) error {
	for _, d := range dims {
		if math.IsNaN(d.value) {
			return fmt.Errorf("%w: %s is missing", ErrInvalidDimension, d.name)
		}
		if math.IsInf(d.value, 0) || d.value <= 0 {
			return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidDimension, d.name, d.value)
		}
	}
	return nil
}

// validateWidthHeight is shared by Rectangle and RightTriangle.
func validateWidthHeight(width, height float64) error {
	return validateDims(dim{"width", width}, dim{"height", height})
}
