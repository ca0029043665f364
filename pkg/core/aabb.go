package core

import "math"

// BoundingBox2 represents an axis-aligned box in a surface's 2D plane
type BoundingBox2 struct {
	Min Vec2 // Minimum corner
	Max Vec2 // Maximum corner
}

// NewBoundingBox2 creates a new box from min and max points
func NewBoundingBox2(min, max Vec2) BoundingBox2 {
	return BoundingBox2{Min: min, Max: max}
}

// NewBoundingBox2FromPoints creates a box that bounds all given points
func NewBoundingBox2FromPoints(points ...Vec2) BoundingBox2 {
	if len(points) == 0 {
		return BoundingBox2{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
	}

	return BoundingBox2{Min: min, Max: max}
}

// Contains reports whether p lies inside the box, boundary included
func (b BoundingBox2) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Union returns a box that bounds both this box and another
func (b BoundingBox2) Union(other BoundingBox2) BoundingBox2 {
	return BoundingBox2{
		Min: Vec2{math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y)},
		Max: Vec2{math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y)},
	}
}

// Corners returns the four corners counter-clockwise from Min
func (b BoundingBox2) Corners() [4]Vec2 {
	return [4]Vec2{
		b.Min,
		{b.Max.X, b.Min.Y},
		b.Max,
		{b.Min.X, b.Max.Y},
	}
}

// Center returns the midpoint of the box
func (b BoundingBox2) Center() Vec2 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// Size returns the width and height of the box
func (b BoundingBox2) Size() Vec2 {
	return b.Max.Subtract(b.Min)
}
