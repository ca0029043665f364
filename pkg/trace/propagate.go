package trace

import (
	"errors"
	"fmt"
	"slices"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/scene"
)

// minHitDistance rejects self-intersections at the ray origin
const minHitDistance = 1e-9

// Propagator carries generated rays through the system. It receives the
// index of the first ray produced by the current trace.
type Propagator interface {
	Propagate(sys *scene.System, result *Result, first int, targets []scene.Element) error
}

// StraightPropagator moves rays in straight lines without refraction. Each
// ray stops at the first surface whose aperture it misses; rays hitting an
// Image aperture are intercepted there; the rest are lost.
type StraightPropagator struct{}

type surfaceHit struct {
	surface scene.Surface
	t       float64
	point   core.Vec3
}

// Propagate implements Propagator
func (StraightPropagator) Propagate(sys *scene.System, result *Result, first int, targets []scene.Element) error {
	lost := result.Params().LostRayLength()
	hits := make([]surfaceHit, 0, len(targets))

	for i := first; i < result.Len(); i++ {
		ray := result.Ray(i)
		creator, ok := sys.Element(ray.Creator)
		if !ok {
			return fmt.Errorf("ray %d: creator %d: %w", i, ray.Creator, core.ErrNotInSystem)
		}

		hits = hits[:0]
		for _, target := range targets {
			surface, ok := target.(scene.Surface)
			if !ok {
				continue
			}
			tr, err := sys.TransformTo(creator, target)
			if err != nil {
				return err
			}
			local := tr.ApplyPair(ray.Line())
			plane := core.NewVectorPair3(core.Vec3Zero, core.Vec3Z)
			t, err := plane.LineParameter(local)
			if errors.Is(err, core.ErrNoIntersection) {
				continue
			}
			if err != nil {
				return fmt.Errorf("ray %d: %w", i, err)
			}
			if t <= minHitDistance {
				continue
			}
			hits = append(hits, surfaceHit{surface: surface, t: t, point: local.At(t)})
		}
		slices.SortStableFunc(hits, func(a, b surfaceHit) int {
			switch {
			case a.t < b.t:
				return -1
			case a.t > b.t:
				return 1
			}
			return 0
		})

		ray.Status = RayLost
		ray.Length = lost
		for _, h := range hits {
			inside := h.surface.Shape().Inside(h.point.XY())
			_, isImage := h.surface.(*scene.Image)
			switch {
			case isImage && inside:
				ray.Status = RayIntercepted
			case isImage:
				continue
			case !inside:
				ray.Status = RayStopped
			default:
				continue
			}
			ray.Intercept = h.surface.ID()
			ray.Point = h.point
			ray.Length = h.t * ray.Direction.Length()
			break
		}
	}
	return nil
}
