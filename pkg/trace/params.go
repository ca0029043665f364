package trace

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/scene"
)

// DefaultLostRayLength is the distance used to place virtual source planes
// and to extend rays that leave the system
const DefaultLostRayLength float64 = 1000

// Params holds the trace parameters consulted by sources during generation
type Params struct {
	lostRayLength       float64
	defaultDistribution geometry.Distribution
	distributions       map[core.ElementID]geometry.Distribution
	unobstructed        bool
}

// NewParams returns parameters with default values
func NewParams() *Params {
	return &Params{
		lostRayLength:       DefaultLostRayLength,
		defaultDistribution: geometry.DefaultDistribution(),
		distributions:       make(map[core.ElementID]geometry.Distribution),
	}
}

// LostRayLength returns the configured lost-ray length
func (p *Params) LostRayLength() float64 {
	return p.lostRayLength
}

// SetLostRayLength sets the lost-ray length, which must be positive and finite
func (p *Params) SetLostRayLength(length float64) error {
	if !(length > 0) || math.IsInf(length, 0) {
		return core.NewConfigError("lost ray length", length, "must be positive and finite")
	}
	p.lostRayLength = length
	return nil
}

// DefaultDistribution returns the distribution used for surfaces without an override
func (p *Params) DefaultDistribution() geometry.Distribution {
	return p.defaultDistribution
}

// SetDefaultDistribution replaces the default distribution
func (p *Params) SetDefaultDistribution(d geometry.Distribution) error {
	if err := d.Validate(); err != nil {
		return err
	}
	p.defaultDistribution = d
	return nil
}

// Distribution returns the distribution for a surface
func (p *Params) Distribution(e scene.Element) geometry.Distribution {
	if d, ok := p.distributions[e.ID()]; ok {
		return d
	}
	return p.defaultDistribution
}

// SetDistribution overrides the distribution for one surface
func (p *Params) SetDistribution(e scene.Element, d geometry.Distribution) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if e.System() == nil {
		return core.ErrNotInSystem
	}
	p.distributions[e.ID()] = d
	return nil
}

// ResetDistribution removes a per-surface override
func (p *Params) ResetDistribution(e scene.Element) {
	delete(p.distributions, e.ID())
}

// Unobstructed reports whether sampling ignores aperture exclusions
func (p *Params) Unobstructed() bool {
	return p.unobstructed
}

// SetUnobstructed sets whether sampling ignores aperture exclusions
func (p *Params) SetUnobstructed(unobstructed bool) {
	p.unobstructed = unobstructed
}
