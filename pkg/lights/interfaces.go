package lights

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/material"
	"github.com/df07/go-optical-raytracer/pkg/scene"
	"github.com/df07/go-optical-raytracer/pkg/trace"
)

// DefaultRadialDensity is the number of rings a DiskSource emits per target point
const DefaultRadialDensity = 10

// RingEpsilon ends the ring sweep once the polar angle is this small
const RingEpsilon = 1e-8

// Mode selects where a source sits relative to the system
type Mode int

const (
	ModeAtInfinity       Mode = iota // parallel beams along the source axis
	ModeAtFiniteDistance             // emission from the source position
)

func (m Mode) String() string {
	switch m {
	case ModeAtInfinity:
		return "infinity"
	case ModeAtFiniteDistance:
		return "finite"
	}
	return "unknown"
}

// Option configures a source at construction
type Option func(*options)

type options struct {
	spectrum Spectrum
	material material.ID
	density  int
}

func defaultOptions() options {
	return options{
		spectrum: DefaultSpectrum(),
		material: material.Environment,
		density:  DefaultRadialDensity,
	}
}

// WithSpectrum sets the emitted lines
func WithSpectrum(s Spectrum) Option {
	return func(o *options) { o.spectrum = s }
}

// WithMaterial sets the medium rays start in. The system environment is
// used when unset.
func WithMaterial(id material.ID) Option {
	return func(o *options) { o.material = id }
}

// WithDensity sets the radial ring count of a DiskSource
func WithDensity(density int) Option {
	return func(o *options) { o.density = density }
}

// source holds what point and disk sources share
type source struct {
	scene.Base
	mode     Mode
	spectrum Spectrum
	material material.ID
}

// newSource builds the frame for mode. Sources at infinity point their
// local +z along pair.Direction; finite sources are unrotated at pair.Origin.
func newSource(mode Mode, pair core.VectorPair3, o options) (source, error) {
	if o.spectrum.Len() == 0 {
		return source{}, core.NewConfigError("spectrum", o.spectrum.Len(), "must contain at least one line")
	}
	for _, l := range o.spectrum.lines {
		if err := l.validate(); err != nil {
			return source{}, err
		}
	}
	s := source{mode: mode, spectrum: o.spectrum, material: o.material}
	switch mode {
	case ModeAtInfinity:
		if pair.Direction.IsZero() || !pair.Direction.IsFinite() {
			return source{}, core.NewConfigError("direction", pair.Direction, "must be non-zero and finite")
		}
		b, err := scene.NewBaseFacing(pair)
		if err != nil {
			return source{}, err
		}
		s.Base = b
	case ModeAtFiniteDistance:
		s.Base = scene.NewBase(pair.Origin, core.IdentityMatrix())
	default:
		return source{}, core.NewConfigError("mode", mode, "unknown source mode")
	}
	return s, nil
}

// Mode returns the source mode
func (s *source) Mode() Mode { return s.mode }

// Spectrum returns the emitted lines
func (s *source) Spectrum() Spectrum { return s.spectrum }

// Material returns the medium rays start in
func (s *source) Material() material.ID { return s.material }

func (s *source) registerWavelengths(result *trace.Result) {
	for _, w := range s.spectrum.Wavelengths() {
		result.AddRayWavelen(w)
	}
}

func (s *source) emit(result *trace.Result, origin, direction core.Vec3, line SpectralLine) {
	ray := result.NewRay()
	ray.Origin = origin
	ray.Direction = direction
	ray.Creator = s.ID()
	ray.Intensity = line.Intensity
	ray.Wavelength = line.Wavelength
	ray.Material = s.material
	if ray.Material == material.Environment {
		ray.Material = s.System().Environment()
	}
}

// targetFrame resolves what generation needs about one target: the target
// as a Surface, the transform into the source frame and the virtual source
// plane lying lostRayLength behind the target along the source axis. ok is
// false for targets that are not surfaces.
func (s *source) targetFrame(result *trace.Result, target scene.Element) (surface scene.Surface, tr core.Transform, plane core.VectorPair3, ok bool, err error) {
	surface, ok = target.(scene.Surface)
	if !ok {
		return nil, core.Transform{}, core.VectorPair3{}, false, nil
	}
	sys := s.System()
	if sys == nil {
		return nil, core.Transform{}, core.VectorPair3{}, false, core.ErrNotInSystem
	}
	tr, err = sys.TransformTo(target, s)
	if err != nil {
		return nil, core.Transform{}, core.VectorPair3{}, false, err
	}
	pos := tr.Apply(core.Vec3Zero)
	rlen := result.Params().LostRayLength()
	plane = core.NewVectorPair3(pos.Subtract(core.Vec3Z.Multiply(rlen)), core.Vec3Z)
	return surface, tr, plane, true, nil
}

func validDensity(density int) error {
	if density <= 0 {
		return core.NewConfigError("density", density, "must be positive")
	}
	return nil
}

func validAngularSize(size float64) error {
	switch {
	case math.IsNaN(size) || math.IsInf(size, 0):
		return core.NewConfigError("size", size, "must be finite")
	case size < 0:
		return core.NewConfigError("size", size, "must not be negative")
	case size/2 >= math.Pi/2:
		return core.NewConfigError("size", size, "half angle must be below 90 degrees")
	}
	return nil
}
