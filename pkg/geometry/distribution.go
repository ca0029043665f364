package geometry

import (
	"math"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Pattern selects the layout of sample points on a shape
type Pattern int

const (
	PatternDefault Pattern = iota // HexaPolar
	PatternHexaPolar
	PatternMeridional // points along the y axis
	PatternSagittal   // points along the x axis
	PatternCross      // meridional and sagittal
	PatternSquare
	PatternTriangular
	PatternRandom // jittered grid from a fixed-seed sampler
)

var patternNames = map[Pattern]string{
	PatternDefault:    "default",
	PatternHexaPolar:  "hexapolar",
	PatternMeridional: "meridional",
	PatternSagittal:   "sagittal",
	PatternCross:      "cross",
	PatternSquare:     "square",
	PatternTriangular: "triangular",
	PatternRandom:     "random",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "unknown"
}

const (
	// DefaultPatternDensity is the number of radial steps between centre and edge
	DefaultPatternDensity = 5
	// DefaultPatternScaling keeps edge samples just inside the shape boundary
	DefaultPatternScaling = 0.999
)

// Distribution configures how many sample points a shape produces and how
// they are laid out. It is a value object.
type Distribution struct {
	Pattern       Pattern
	RadialDensity int     // Radial steps from centre to the scaled max radius
	Scaling       float64 // Fraction of the shape's max radius to cover
}

// NewDistribution creates a distribution with the default scaling
func NewDistribution(pattern Pattern, radialDensity int) Distribution {
	return Distribution{
		Pattern:       pattern,
		RadialDensity: radialDensity,
		Scaling:       DefaultPatternScaling,
	}
}

// DefaultDistribution returns the hexapolar distribution used when nothing
// else is configured
func DefaultDistribution() Distribution {
	return NewDistribution(PatternDefault, DefaultPatternDensity)
}

// Validate rejects distributions whose sampling loops would not terminate
func (d Distribution) Validate() error {
	if d.RadialDensity < 1 {
		return core.NewConfigError("radial density", d.RadialDensity, "must be at least 1")
	}
	if !(d.Scaling > 0) || math.IsInf(d.Scaling, 0) {
		return core.NewConfigError("pattern scaling", d.Scaling, "must be positive and finite")
	}
	if _, ok := patternNames[d.Pattern]; !ok {
		return core.NewConfigError("pattern", int(d.Pattern), "unknown pattern")
	}
	return nil
}
