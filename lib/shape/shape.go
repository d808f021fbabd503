// Package shape computes the area of planar shapes.
//
// Every shape is validated once by its constructor. A value returned without an
// error satisfies its invariants for its whole lifetime; there are no setters.
package shape

import (
	"fmt"
	"strings"
)

const (
	CIRCLE_TYPE         = "Circle"
	TRIANGLE_TYPE       = "Triangle"
	RECTANGLE_TYPE      = "Rectangle"
	RIGHT_TRIANGLE_TYPE = "RightTriangle"
)

// Types lists every supported shape type in a stable order.
var Types = []string{
	CIRCLE_TYPE,
	TRIANGLE_TYPE,
	RECTANGLE_TYPE,
	RIGHT_TRIANGLE_TYPE,
}

type Shape interface {
	GetType() string
	Area() float64

	// restricts implementations to this package
	shape()
}

// CalculateArea returns the area of s.
func CalculateArea(s Shape) float64 {
	return s.Area()
}

// NewShape constructs a shape of the given type from its dimensions, in the
// order the type's constructor takes them. Type names are case-insensitive.
func NewShape(shapeType string, dims ...float64) (Shape, error) {
	var s Shape
	var err error
	switch strings.ToLower(shapeType) {
	case strings.ToLower(CIRCLE_TYPE):
		if err = checkArity(CIRCLE_TYPE, dims, 1); err == nil {
			s, err = NewCircle(dims[0])
		}
	case strings.ToLower(TRIANGLE_TYPE):
		if err = checkArity(TRIANGLE_TYPE, dims, 3); err == nil {
			s, err = NewTriangle(dims[0], dims[1], dims[2])
		}
	case strings.ToLower(RECTANGLE_TYPE):
		if err = checkArity(RECTANGLE_TYPE, dims, 2); err == nil {
			s, err = NewRectangle(dims[0], dims[1])
		}
	case strings.ToLower(RIGHT_TRIANGLE_TYPE):
		if err = checkArity(RIGHT_TRIANGLE_TYPE, dims, 2); err == nil {
			s, err = NewRightTriangle(dims[0], dims[1])
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownShape, shapeType)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Dimensions returns the stored dimensions of s. Triangle sides come back
// sorted ascending.
func Dimensions(s Shape) []float64 {
	switch s := s.(type) {
	case Circle:
		return []float64{s.radius}
	case Triangle:
		return []float64{s.a, s.b, s.c}
	case Rectangle:
		return []float64{s.width, s.height}
	case RightTriangle:
		return []float64{s.width, s.height}
	}
	return nil
}

// Arity returns how many dimensions the given shape type takes, or -1 for an
// unknown type.
func Arity(shapeType string) int {
	switch strings.ToLower(shapeType) {
	case strings.ToLower(CIRCLE_TYPE):
		return 1
	case strings.ToLower(TRIANGLE_TYPE):
		return 3
	case strings.ToLower(RECTANGLE_TYPE), strings.ToLower(RIGHT_TRIANGLE_TYPE):
		return 2
	}
	return -1
}

func checkArity(shapeType string, dims []float64, n int) error {
	if len(dims) < n {
		return fmt.Errorf("%w: %s needs %d dimensions, got %d", ErrInvalidDimension, shapeType, n, len(dims))
	}
	if len(dims) > n {
		return fmt.Errorf("%w: %s takes %d dimensions, got %d", ErrInvalidDimension, shapeType, n, len(dims))
	}
	return nil
}
