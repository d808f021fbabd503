package shape

import (
	"fmt"

	"oss.terrastruct.com/shapearea/lib/geo"
)

// Triangle stores its sides sorted so that a <= b <= c. The stored order
// does not follow the constructor's argument order.
type Triangle struct {
	a float64
	b float64
	c float64
}

func NewTriangle(sideA, sideB, sideC float64) (Triangle, error) {
	err := validateDims(
		dim{"side a", sideA},
		dim{"side b", sideB},
		dim{"side c", sideC},
	)
	if err != nil {
		return Triangle{}, err
	}
	if sideA+sideB <= sideC || sideA+sideC <= sideB || sideB+sideC <= sideA {
		return Triangle{}, fmt.Errorf("%w: no triangle has sides %v, %v and %v", ErrInvalidTriangle, sideA, sideB, sideC)
	}

	a, b, c := geo.SortSides(sideA, sideB, sideC)
	return Triangle{a: a, b: b, c: c}, nil
}

// Sides returns the sides in ascending order.
func (t Triangle) Sides() (a, b, c float64) {
	return t.a, t.b, t.c
}

// IsRightTriangle reports whether a² + b² == c² holds exactly. Right
// triangles whose sides are not exactly representable (0.03, 0.04, 0.05) are
// not detected and fall through to Heron's formula in Area.
func (t Triangle) IsRightTriangle() bool {
	return geo.IsPythagorean(t.a, t.b, t.c)
}

func (t Triangle) GetType() string {
	return TRIANGLE_TYPE
}

func (t Triangle) Area() float64 {
	if t.IsRightTriangle() {
		// the two shorter sides are the legs
		return RightTriangle{width: t.a, height: t.b}.Area()
	}
	return geo.Heron(t.a, t.b, t.c)
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{A: %v, B: %v, C: %v}", t.a, t.b, t.c)
}

func (Triangle) shape() {}
