package trace

import (
	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/material"
)

// RayStatus records what happened to a ray during propagation
type RayStatus int

const (
	RayPending     RayStatus = iota // generated, not yet propagated
	RayIntercepted                  // reached an image
	RayStopped                      // blocked by an aperture
	RayLost                         // left the system
)

func (s RayStatus) String() string {
	switch s {
	case RayPending:
		return "pending"
	case RayIntercepted:
		return "intercepted"
	case RayStopped:
		return "stopped"
	case RayLost:
		return "lost"
	}
	return "unknown"
}

// Ray is one generated light ray. Origin and Direction are expressed in the
// local frame of the Creator element. Direction is the propagation
// direction and is not necessarily unit length.
type Ray struct {
	Origin     core.Vec3
	Direction  core.Vec3
	Creator    core.ElementID
	Intensity  float64
	Wavelength float64 // nanometres
	Material   material.ID

	Status    RayStatus
	Intercept core.ElementID // element that detected or stopped the ray
	Point     core.Vec3      // hit point in the Intercept element's frame
	Length    float64        // distance travelled, or the lost-ray length
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) core.Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Line returns the ray as an origin/direction pair
func (r Ray) Line() core.VectorPair3 {
	return core.NewVectorPair3(r.Origin, r.Direction)
}
