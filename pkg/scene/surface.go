package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/material"
)

// Surface is an element with an aperture that sources can sample
type Surface interface {
	Element

	// Shape returns the aperture in the surface's local plane
	Shape() geometry.Shape

	// Pattern calls fn for every sample point of d on the surface, in
	// local 3D coordinates
	Pattern(fn func(core.Vec3), d geometry.Distribution, unobstructed bool) error
}

// OpticalSurface is a flat surface bounded by an aperture shape
type OpticalSurface struct {
	Base
	shape    geometry.Shape
	Material material.ID // Medium after the surface, Environment when unset
}

// NewOpticalSurface creates a surface at position facing +z
func NewOpticalSurface(position core.Vec3, shape geometry.Shape) *OpticalSurface {
	return &OpticalSurface{
		Base:  NewBase(position, core.IdentityMatrix()),
		shape: shape,
	}
}

// NewOpticalSurfaceFacing creates a surface whose optical axis follows pair.Direction
func NewOpticalSurfaceFacing(pair core.VectorPair3, shape geometry.Shape) (*OpticalSurface, error) {
	b, err := NewBaseFacing(pair)
	if err != nil {
		return nil, err
	}
	return &OpticalSurface{Base: b, shape: shape}, nil
}

// Shape implements Surface
func (s *OpticalSurface) Shape() geometry.Shape {
	return s.shape
}

// Pattern implements Surface
func (s *OpticalSurface) Pattern(fn func(core.Vec3), d geometry.Distribution, unobstructed bool) error {
	return geometry.IteratePattern(s.shape, func(p core.Vec2) {
		fn(p.Vec3(0))
	}, d, unobstructed)
}

// Image is a square detector surface
type Image struct {
	OpticalSurface
	size float64
}

// NewImage creates a square image plane of the given side length at position
func NewImage(position core.Vec3, size float64) *Image {
	return &Image{
		OpticalSurface: *NewOpticalSurface(position, geometry.NewSquare(size)),
		size:           size,
	}
}

// Size returns the side length of the image
func (i *Image) Size() float64 {
	return i.size
}
