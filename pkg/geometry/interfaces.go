package geometry

import "github.com/df07/go-optical-raytracer/pkg/core"

// Shape interface for 2D aperture regions in a surface's local plane
type Shape interface {
	// Inside reports whether point lies within the shape
	Inside(point core.Vec2) bool
	// BoundingBox returns the axis-aligned extent of the shape
	BoundingBox() core.BoundingBox2
	// MaxRadius returns the distance from the origin to the farthest point of the shape
	MaxRadius() float64
	// MinRadius returns the radius of the largest origin-centred disk inside the bounds
	MinRadius() float64
}

// Obstructable is implemented by shapes with exclusion regions that can be
// ignored when sampling unobstructed
type Obstructable interface {
	InsideUnobstructed(point core.Vec2) bool
}
