package geometry

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

const (
	// PatternEpsilon stops radial loops before they reach the centre twice
	PatternEpsilon = 1e-8
	// HexPackingFactor scales the angular step so adjacent samples on a ring
	// sit roughly one radial step apart, approximating hexagonal packing
	HexPackingFactor = math.Pi / 3
)

// IteratePattern calls fn once for every sample point of d that lies
// inside shape. When unobstructed is set, exclusion regions of shapes
// implementing Obstructable are ignored. Points are produced in a
// deterministic order for a fixed distribution.
func IteratePattern(shape Shape, fn func(core.Vec2), d Distribution, unobstructed bool) error {
	if err := d.Validate(); err != nil {
		return err
	}

	inside := shape.Inside
	if unobstructed {
		if o, ok := shape.(Obstructable); ok {
			inside = o.InsideUnobstructed
		}
	}

	tr := shape.MaxRadius() * d.Scaling
	if !(tr > 0) || math.IsInf(tr, 0) {
		// degenerate shapes produce no samples
		return nil
	}
	step := tr / float64(d.RadialDensity)

	emit := func(p core.Vec2) {
		if inside(p) {
			fn(p)
		}
	}

	switch d.Pattern {
	case PatternMeridional:
		emit(core.Vec2{})
		forEachRadius(tr, step, func(r float64) {
			emit(core.NewVec2(0, r))
			emit(core.NewVec2(0, -r))
		})

	case PatternSagittal:
		emit(core.Vec2{})
		forEachRadius(tr, step, func(r float64) {
			emit(core.NewVec2(r, 0))
			emit(core.NewVec2(-r, 0))
		})

	case PatternCross:
		emit(core.Vec2{})
		forEachRadius(tr, step, func(r float64) {
			emit(core.NewVec2(0, r))
			emit(core.NewVec2(0, -r))
			emit(core.NewVec2(r, 0))
			emit(core.NewVec2(-r, 0))
		})

	case PatternSquare:
		n := 2 * d.RadialDensity
		for i := 0; i <= n; i++ {
			x := -tr + float64(i)*step
			for j := 0; j <= n; j++ {
				emit(core.NewVec2(x, -tr+float64(j)*step))
			}
		}

	case PatternTriangular:
		rowStep := step * math.Sqrt(3) / 2
		rows := int(math.Floor(2*tr/rowStep + PatternEpsilon))
		for i := 0; i <= rows; i++ {
			y := -tr + float64(i)*rowStep
			offset := 0.0
			if i%2 == 1 {
				offset = step / 2
			}
			for j := 0; ; j++ {
				x := -tr + offset + float64(j)*step
				if x > tr+PatternEpsilon {
					break
				}
				emit(core.NewVec2(x, y))
			}
		}

	case PatternRandom:
		sampler := core.NewSeededSampler(core.DefaultSeed)
		n := 2 * d.RadialDensity
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				jitter := sampler.Get2D()
				emit(core.NewVec2(
					-tr+(float64(i)+jitter.X)*step,
					-tr+(float64(j)+jitter.Y)*step,
				))
			}
		}

	default:
		emit(core.Vec2{})
		forEachRadius(tr, step, func(r float64) {
			ForEachRingAngle(step, r, func(a float64) {
				sin, cos := math.Sincos(a)
				emit(core.NewVec2(sin*r, cos*r))
			})
		})
	}

	return nil
}

// forEachRadius visits tr, tr-step, ... while the radius stays above PatternEpsilon
func forEachRadius(tr, step float64, fn func(r float64)) {
	for i := 0; ; i++ {
		r := tr - float64(i)*step
		if r <= PatternEpsilon {
			return
		}
		fn(r)
	}
}

// ForEachRingAngle sweeps a ring of the given radius from 0 towards 2π in
// increments of (step/radius)·HexPackingFactor. The sweep never reaches 2π.
func ForEachRingAngle(step, radius float64, fn func(angle float64)) {
	astep := (step / radius) * HexPackingFactor
	if !(astep > 0) || math.IsInf(astep, 0) {
		return
	}
	for j := 0; ; j++ {
		a := float64(j) * astep
		if a >= 2*math.Pi-PatternEpsilon {
			return
		}
		fn(a)
	}
}
