package scene

import (
	"fmt"
	"sync"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/material"
)

// System contains all the elements of an optical system and resolves the
// frames, identifiers and materials they refer to
type System struct {
	elements  []Element
	materials *material.Registry

	mu         sync.Mutex
	transforms map[[2]core.ElementID]core.Transform
}

// NewSystem creates an empty system with a vacuum environment
func NewSystem() *System {
	return &System{
		materials:  material.NewRegistry(),
		transforms: make(map[[2]core.ElementID]core.Transform),
	}
}

// Add registers an element and returns its ID. IDs start at 1.
func (s *System) Add(e Element) (core.ElementID, error) {
	b := e.base()
	if b.system != nil {
		return core.NoElement, fmt.Errorf("element %d already belongs to a system", b.id)
	}
	s.elements = append(s.elements, e)
	b.id = core.ElementID(len(s.elements))
	b.system = s
	return b.id, nil
}

// Elements returns the elements in insertion order
func (s *System) Elements() []Element {
	return s.elements
}

// Element resolves an ID
func (s *System) Element(id core.ElementID) (Element, bool) {
	if id < 1 || int(id) > len(s.elements) {
		return nil, false
	}
	return s.elements[id-1], true
}

// Materials returns the system's material registry
func (s *System) Materials() *material.Registry {
	return s.materials
}

// Environment returns the ID of the environment proxy medium
func (s *System) Environment() material.ID {
	return material.Environment
}

// TransformTo returns the transform mapping points in from's local frame to
// to's local frame. Results are cached per pair until a frame changes.
func (s *System) TransformTo(from, to Element) (core.Transform, error) {
	if from.System() != s || to.System() != s {
		return core.Transform{}, core.ErrNotInSystem
	}

	key := [2]core.ElementID{from.ID(), to.ID()}
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.transforms[key]; ok {
		return t, nil
	}
	t := to.Frame().Inverse().Compose(from.Frame())
	s.transforms[key] = t
	return t, nil
}

// PositionIn returns e's origin expressed in frame's local coordinates
func (s *System) PositionIn(e, frame Element) (core.Vec3, error) {
	t, err := s.TransformTo(e, frame)
	if err != nil {
		return core.Vec3{}, err
	}
	return t.Apply(core.Vec3Zero), nil
}

// invalidate drops cached transforms after an element moved
func (s *System) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.transforms)
}
