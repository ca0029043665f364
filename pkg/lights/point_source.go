package lights

import (
	"fmt"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/scene"
	"github.com/df07/go-optical-raytracer/pkg/trace"
)

// PointSource emits one ray per spectral line toward every pattern point
// of its targets
type PointSource struct {
	source
}

// NewPointSource creates a point source. In ModeAtInfinity pair.Direction is
// the beam direction; in ModeAtFiniteDistance pair.Origin is the position.
func NewPointSource(mode Mode, pair core.VectorPair3, opts ...Option) (*PointSource, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s, err := newSource(mode, pair, o)
	if err != nil {
		return nil, err
	}
	return &PointSource{source: s}, nil
}

// GenerateRaysSimple implements trace.Source
func (ps *PointSource) GenerateRaysSimple(result *trace.Result, targets []scene.Element) error {
	ps.registerWavelengths(result)
	lines := ps.spectrum.Lines()

	for _, target := range targets {
		surface, tr, plane, ok, err := ps.targetFrame(result, target)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		var genErr error
		d := result.Params().Distribution(surface)
		err = surface.Pattern(func(i core.Vec3) {
			if genErr != nil {
				return
			}
			pp := tr.Apply(i)

			var origin, direction core.Vec3
			switch ps.mode {
			case ModeAtInfinity:
				direction = core.Vec3Z
				origin, genErr = plane.PlaneLineIntersect(core.NewVectorPair3(pp, direction))
			case ModeAtFiniteDistance:
				if pp.IsZero() {
					genErr = fmt.Errorf("pattern point at the source position: %w", core.ErrDegenerateDirection)
					return
				}
				direction = pp.Normalize()
			}
			if genErr != nil {
				return
			}

			for _, l := range lines {
				ps.emit(result, origin, direction, l)
			}
		}, d, result.Params().Unobstructed())
		if err != nil {
			return err
		}
		if genErr != nil {
			return fmt.Errorf("target %d: %w", target.ID(), genErr)
		}
	}
	return nil
}

// GenerateRaysIntensity implements trace.Source. Point sources carry no
// intensity weighting so this is the simple variant.
func (ps *PointSource) GenerateRaysIntensity(result *trace.Result, targets []scene.Element) error {
	return ps.GenerateRaysSimple(result, targets)
}
