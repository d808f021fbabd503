package shape

import (
	"fmt"
	"math"
)

type Circle struct {
	radius float64
}

func NewCircle(radius float64) (Circle, error) {
	if err := validateDims(dim{"radius", radius}); err != nil {
		return Circle{}, err
	}
	return Circle{radius: radius}, nil
}

func (c Circle) Radius() float64 {
	return c.radius
}

func (c Circle) GetType() string {
	return CIRCLE_TYPE
}

func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle{Radius: %v}", c.radius)
}

func (Circle) shape() {}
