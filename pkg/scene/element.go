package scene

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Element is anything that can be placed in an optical System. Every
// element owns a local frame; its local +z axis is its optical axis.
type Element interface {
	ID() core.ElementID
	// Frame maps local coordinates to global coordinates
	Frame() core.Transform
	// System returns the owning system, nil until added
	System() *System

	base() *Base
}

// Base carries identity and frame for elements. Embed it to implement Element.
type Base struct {
	id     core.ElementID
	frame  core.Transform
	system *System
}

// NewBase creates a base frame at position with the given rotation
func NewBase(position core.Vec3, rotation core.Matrix3) Base {
	return Base{frame: core.NewTransform(rotation, position)}
}

// NewBaseFacing creates a base at pair.Origin whose local +z points along pair.Direction
func NewBaseFacing(pair core.VectorPair3) (Base, error) {
	rot, err := core.AlignZ(pair.Direction)
	if err != nil {
		return Base{}, err
	}
	return NewBase(pair.Origin, rot), nil
}

// ID implements Element
func (b *Base) ID() core.ElementID { return b.id }

// Frame implements Element
func (b *Base) Frame() core.Transform { return b.frame }

// System implements Element
func (b *Base) System() *System { return b.system }

// Position returns the element origin in global coordinates
func (b *Base) Position() core.Vec3 { return b.frame.Translation }

// SetFrame moves the element
func (b *Base) SetFrame(frame core.Transform) {
	b.frame = frame
	if b.system != nil {
		b.system.invalidate()
	}
}

func (b *Base) base() *Base { return b }
