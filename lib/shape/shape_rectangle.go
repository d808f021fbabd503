package shape

import "fmt"

type Rectangle struct {
	width  float64
	height float64
}

func NewRectangle(width, height float64) (Rectangle, error) {
	if err := validateWidthHeight(width, height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{width: width, height: height}, nil
}

func (r Rectangle) Width() float64 {
	return r.width
}

func (r Rectangle) Height() float64 {
	return r.height
}

func (r Rectangle) GetType() string {
	return RECTANGLE_TYPE
}

func (r Rectangle) Area() float64 {
	return r.width * r.height
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle{Width: %v, Height: %v}", r.width, r.height)
}

func (Rectangle) shape() {}
