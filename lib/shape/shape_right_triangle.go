package shape

import "fmt"

// RightTriangle is the triangle obtained by halving a width x height
// rectangle along its diagonal. It is validated like a Rectangle but is not
// one: the areas differ for the same width and height.
type RightTriangle struct {
	width  float64
	height float64
}

func NewRightTriangle(width, height float64) (RightTriangle, error) {
	if err := validateWidthHeight(width, height); err != nil {
		return RightTriangle{}, err
	}
	return RightTriangle{width: width, height: height}, nil
}

func (t RightTriangle) Width() float64 {
	return t.width
}

func (t RightTriangle) Height() float64 {
	return t.height
}

func (t RightTriangle) GetType() string {
	return RIGHT_TRIANGLE_TYPE
}

func (t RightTriangle) Area() float64 {
	return 0.5 * t.width * t.height
}

func (t RightTriangle) String() string {
	return fmt.Sprintf("RightTriangle{Width: %v, Height: %v}", t.width, t.height)
}

func (RightTriangle) shape() {}
