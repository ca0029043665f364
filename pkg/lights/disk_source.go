package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/scene"
	"github.com/df07/go-optical-raytracer/pkg/trace"
)

// DiskSource is an extended source subtending a cone of angular diameter
// size, such as the sun or a star disk. For every pattern point of a
// target it emits a chief ray along the source axis and marginal rays on
// concentric rings of decreasing polar angle.
type DiskSource struct {
	source
	size    float64
	density int
	limit1  core.Vec2
	limit2  core.Vec2
}

// NewDiskSource creates a disk source of angular diameter size in radians.
// Limits are unbounded until SetLimits is called.
func NewDiskSource(mode Mode, pair core.VectorPair3, size float64, opts ...Option) (*DiskSource, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validAngularSize(size); err != nil {
		return nil, err
	}
	if err := validDensity(o.density); err != nil {
		return nil, err
	}
	s, err := newSource(mode, pair, o)
	if err != nil {
		return nil, err
	}
	return &DiskSource{
		source:  s,
		size:    size,
		density: o.density,
		limit1:  core.NewVec2(math.Inf(-1), math.Inf(-1)),
		limit2:  core.NewVec2(math.Inf(1), math.Inf(1)),
	}, nil
}

// Size returns the angular diameter
func (ds *DiskSource) Size() float64 { return ds.size }

// HalfSize returns the angular radius
func (ds *DiskSource) HalfSize() float64 { return ds.size / 2 }

// Density returns the ring count
func (ds *DiskSource) Density() int { return ds.density }

// Limits returns the sampling rectangle in target-local coordinates
func (ds *DiskSource) Limits() (core.Vec2, core.Vec2) { return ds.limit1, ds.limit2 }

// SetLimits restricts emission to target points inside the rectangle
// [limit1, limit2], independent of the target's aperture
func (ds *DiskSource) SetLimits(limit1, limit2 core.Vec2) error {
	if limit1.X > limit2.X || limit1.Y > limit2.Y {
		return core.NewConfigError("limits", [2]core.Vec2{limit1, limit2}, "lower corner exceeds upper corner")
	}
	ds.limit1, ds.limit2 = limit1, limit2
	return nil
}

// SetDensity changes the ring count
func (ds *DiskSource) SetDensity(density int) error {
	if err := validDensity(density); err != nil {
		return err
	}
	ds.density = density
	return nil
}

func (ds *DiskSource) withinLimits(p core.Vec3) bool {
	return p.X >= ds.limit1.X && p.X <= ds.limit2.X &&
		p.Y >= ds.limit1.Y && p.Y <= ds.limit2.Y
}

// ring is one cone of marginal directions
type ring struct {
	radius float64 // tangent of the polar angle
	tilt   core.Matrix3
}

// rings returns the marginal cones from the outermost inward. The tangent
// radius starts at tan(halfsize) and shrinks by tan(halfsize)/density; the
// sweep ends when the polar angle drops to RingEpsilon.
func (ds *DiskSource) rings() ([]ring, float64) {
	step := math.Tan(ds.HalfSize()) / float64(ds.density)
	var out []ring
	for k := 0; ; k++ {
		radius := math.Tan(ds.HalfSize()) - float64(k)*step
		theta := math.Atan(radius)
		if theta <= RingEpsilon {
			break
		}
		out = append(out, ring{radius: radius, tilt: core.RotationMatrix(1, theta)})
	}
	return out, step
}

// GenerateRaysSimple implements trace.Source
func (ds *DiskSource) GenerateRaysSimple(result *trace.Result, targets []scene.Element) error {
	ds.registerWavelengths(result)

	// TODO: emit from the source disk for finite-distance sources; only the
	// infinity mode generates rays
	if ds.mode != ModeAtInfinity {
		return nil
	}

	lines := ds.spectrum.Lines()
	rings, step := ds.rings()

	for _, target := range targets {
		surface, tr, plane, ok, err := ds.targetFrame(result, target)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		var genErr error
		d := result.Params().Distribution(surface)
		err = surface.Pattern(func(i core.Vec3) {
			if genErr != nil || !ds.withinLimits(i) {
				return
			}
			pp := tr.Apply(i)

			chief, err := plane.PlaneLineIntersect(core.NewVectorPair3(pp, core.Vec3Z))
			if err != nil {
				genErr = err
				return
			}

			for _, l := range lines {
				ds.emit(result, chief, core.Vec3Z, l)

				for _, rg := range rings {
					tilted := rg.tilt.MulVec(core.Vec3Z)
					geometry.ForEachRingAngle(step, rg.radius, func(phi float64) {
						if genErr != nil {
							return
						}
						dir := core.RotationMatrix(2, phi).MulVec(tilted)
						origin, err := plane.PlaneLineIntersect(core.NewVectorPair3(pp, dir))
						if err != nil {
							genErr = err
							return
						}
						// intensity is not weighted by ring density or solid angle
						ds.emit(result, origin, dir, l)
					})
				}
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

// GenerateRaysIntensity implements trace.Source. Ray intensity is not yet
// weighted so this is the simple variant.
func (ds *DiskSource) GenerateRaysIntensity(result *trace.Result, targets []scene.Element) error {
	return ds.GenerateRaysSimple(result, targets)
}
