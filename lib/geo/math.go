package geo

import (
	"math"

	"golang.org/x/exp/slices"
)

// SortSides returns a, b, c in ascending order.
func SortSides(a, b, c float64) (float64, float64, float64) {
	sides := []float64{a, b, c}
	slices.Sort(sides)
	return sides[0], sides[1], sides[2]
}

// IsPythagorean reports whether a² + b² == c².
// The comparison is exact, no epsilon.
func IsPythagorean(a, b, c float64) bool {
	return a*a+b*b == c*c
}

// Heron returns the area of a triangle with side lengths a, b, c.
func Heron(a, b, c float64) float64 {
	p := (a + b + c) / 2
	return math.Sqrt(p * (p - a) * (p - b) * (p - c))
}
