package geometry

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Rectangle represents an origin-centred rectangular aperture
type Rectangle struct {
	HalfWidth  float64 // Half extent along x
	HalfHeight float64 // Half extent along y
}

// NewRectangle creates a rectangle from its full width and height
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
	}
}

// NewSquare creates a square rectangle with the given side length
func NewSquare(size float64) *Rectangle {
	return NewRectangle(size, size)
}

// Inside implements the Shape interface
func (r *Rectangle) Inside(point core.Vec2) bool {
	// Zero-size rectangles match no points
	if r.HalfWidth <= 0 || r.HalfHeight <= 0 {
		return false
	}
	return math.Abs(point.X) <= r.HalfWidth && math.Abs(point.Y) <= r.HalfHeight
}

// BoundingBox implements the Shape interface
func (r *Rectangle) BoundingBox() core.BoundingBox2 {
	return core.NewBoundingBox2(
		core.NewVec2(-r.HalfWidth, -r.HalfHeight),
		core.NewVec2(r.HalfWidth, r.HalfHeight),
	)
}

// MaxRadius implements the Shape interface
func (r *Rectangle) MaxRadius() float64 {
	return math.Hypot(r.HalfWidth, r.HalfHeight)
}

// MinRadius implements the Shape interface
func (r *Rectangle) MinRadius() float64 {
	return math.Min(r.HalfWidth, r.HalfHeight)
}
