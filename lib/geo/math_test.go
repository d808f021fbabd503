package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortSides(t *testing.T) {
	t.Parallel()

	tcs := [][3]float64{
		{3, 4, 5},
		{4, 3, 5},
		{5, 3, 4},
		{5, 4, 3},
	}
	for _, tc := range tcs {
		a, b, c := SortSides(tc[0], tc[1], tc[2])
		if a != 3 || b != 4 || c != 5 {
			t.Fatalf("expected (3, 4, 5) from %v, got (%v, %v, %v)", tc, a, b, c)
		}
	}
}

func TestIsPythagorean(t *testing.T) {
	t.Parallel()

	if !IsPythagorean(3, 4, 5) {
		t.Fatal("expected 3-4-5 to be pythagorean")
	}
	if !IsPythagorean(5, 12, 13) {
		t.Fatal("expected 5-12-13 to be pythagorean")
	}
	if IsPythagorean(2, 2, 2) {
		t.Fatal("equilateral triangle is not pythagorean")
	}
	// 0.0009 + 0.0016 != 0.0025 in float64
	if IsPythagorean(0.03, 0.04, 0.05) {
		t.Fatal("expected exact comparison to reject 0.03-0.04-0.05")
	}
}

func TestHeron(t *testing.T) {
	t.Parallel()

	if a := Heron(3, 4, 5); a != 6 {
		t.Fatalf("expected 6 and got %v", a)
	}
	assert.InDelta(t, math.Sqrt(3), Heron(2, 2, 2), 1e-12)
	assert.InDelta(t, 30.0, Heron(5, 12, 13), 1e-12)
}
