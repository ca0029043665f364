package geometry

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Disk represents a circular aperture centred on the origin
type Disk struct {
	Radius float64
}

// NewDisk creates a new disk
func NewDisk(radius float64) *Disk {
	return &Disk{Radius: radius}
}

// Inside implements the Shape interface
func (d *Disk) Inside(point core.Vec2) bool {
	if d.Radius <= 0 {
		return false
	}
	return point.X*point.X+point.Y*point.Y <= d.Radius*d.Radius
}

// BoundingBox implements the Shape interface
func (d *Disk) BoundingBox() core.BoundingBox2 {
	return core.NewBoundingBox2(core.NewVec2(-d.Radius, -d.Radius), core.NewVec2(d.Radius, d.Radius))
}

// MaxRadius implements the Shape interface
func (d *Disk) MaxRadius() float64 { return d.Radius }

// MinRadius implements the Shape interface
func (d *Disk) MinRadius() float64 { return d.Radius }

// Ring is an annulus: a disk with a concentric hole
type Ring struct {
	Radius     float64 // Outer radius
	HoleRadius float64 // Inner radius, points strictly inside are excluded
}

// NewRing creates a new ring. A hole at least as large as the outer radius
// leaves an empty shape.
func NewRing(radius, holeRadius float64) *Ring {
	return &Ring{Radius: radius, HoleRadius: holeRadius}
}

// Inside implements the Shape interface
func (r *Ring) Inside(point core.Vec2) bool {
	if r.Radius <= 0 || r.HoleRadius >= r.Radius {
		return false
	}
	d2 := point.X*point.X + point.Y*point.Y
	return d2 <= r.Radius*r.Radius && d2 >= r.HoleRadius*r.HoleRadius
}

// InsideUnobstructed implements Obstructable; the central hole is ignored
func (r *Ring) InsideUnobstructed(point core.Vec2) bool {
	return NewDisk(r.Radius).Inside(point)
}

// BoundingBox implements the Shape interface
func (r *Ring) BoundingBox() core.BoundingBox2 {
	return core.NewBoundingBox2(core.NewVec2(-r.Radius, -r.Radius), core.NewVec2(r.Radius, r.Radius))
}

// MaxRadius implements the Shape interface
func (r *Ring) MaxRadius() float64 { return r.Radius }

// MinRadius implements the Shape interface
func (r *Ring) MinRadius() float64 { return r.Radius }

// Ellipse is an axis-aligned elliptical aperture centred on the origin
type Ellipse struct {
	XRadius float64
	YRadius float64
}

// NewEllipse creates a new ellipse
func NewEllipse(xRadius, yRadius float64) *Ellipse {
	return &Ellipse{XRadius: xRadius, YRadius: yRadius}
}

// Inside implements the Shape interface
func (e *Ellipse) Inside(point core.Vec2) bool {
	if e.XRadius <= 0 || e.YRadius <= 0 {
		return false
	}
	x := point.X / e.XRadius
	y := point.Y / e.YRadius
	return x*x+y*y <= 1
}

// BoundingBox implements the Shape interface
func (e *Ellipse) BoundingBox() core.BoundingBox2 {
	return core.NewBoundingBox2(core.NewVec2(-e.XRadius, -e.YRadius), core.NewVec2(e.XRadius, e.YRadius))
}

// MaxRadius implements the Shape interface
func (e *Ellipse) MaxRadius() float64 { return math.Max(e.XRadius, e.YRadius) }

// MinRadius implements the Shape interface
func (e *Ellipse) MinRadius() float64 { return math.Min(e.XRadius, e.YRadius) }
