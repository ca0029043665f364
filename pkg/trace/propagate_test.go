package trace

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
	"github.com/df07/go-optical-raytracer/pkg/scene"
)

// emitter is a bare element that owns rays in tests
type emitter struct {
	scene.Base
}

func newEmitter(position core.Vec3) *emitter {
	return &emitter{Base: scene.NewBase(position, core.IdentityMatrix())}
}

func TestStraightPropagator(t *testing.T) {
	sys := scene.NewSystem()
	src := newEmitter(core.Vec3Zero)
	stop := scene.NewOpticalSurface(core.NewVec3(0, 0, 100), geometry.NewDisk(10))
	img := scene.NewImage(core.NewVec3(0, 0, 200), 10)
	sys.Add(src)
	sys.Add(stop)
	sys.Add(img)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		status    RayStatus
		intercept core.ElementID
		point     core.Vec3
		length    float64
	}{
		{"On axis", core.Vec3Zero, core.Vec3Z, RayIntercepted, img.ID(), core.NewVec3(0, 0, 0), 200},
		{"Blocked by stop", core.NewVec3(20, 0, 0), core.Vec3Z, RayStopped, stop.ID(), core.NewVec3(20, 0, 0), 100},
		{"Through stop, misses image", core.Vec3Zero, core.NewVec3(0.09, 0, 1), RayLost, core.NoElement, core.Vec3{}, DefaultLostRayLength},
		{"Scaled direction", core.Vec3Zero, core.NewVec3(0, 0.02, 2), RayIntercepted, img.ID(), core.NewVec3(0, 2, 0), 200.01},
		{"Backwards", core.Vec3Zero, core.Vec3Z.Negate(), RayLost, core.NoElement, core.Vec3{}, DefaultLostRayLength},
		{"Parallel to surfaces", core.Vec3Zero, core.Vec3X, RayLost, core.NoElement, core.Vec3{}, DefaultLostRayLength},
	}

	result := NewResult(NewParams())
	for _, tt := range tests {
		ray := result.NewRay()
		ray.Origin = tt.origin
		ray.Direction = tt.direction
		ray.Creator = src.ID()
		ray.Intensity = 1
	}

	if err := (StraightPropagator{}).Propagate(sys, result, 0, []scene.Element{stop, img}); err != nil {
		t.Fatal(err)
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := result.Ray(i)
			if ray.Status != tt.status {
				t.Errorf("Expected status %v, got %v", tt.status, ray.Status)
			}
			if ray.Intercept != tt.intercept {
				t.Errorf("Expected intercept %d, got %d", tt.intercept, ray.Intercept)
			}
			if !ray.Point.Equals(tt.point) {
				t.Errorf("Expected point %v, got %v", tt.point, ray.Point)
			}
			if !scalar.EqualWithinAbs(ray.Length, tt.length, 1e-2) {
				t.Errorf("Expected length %v, got %v", tt.length, ray.Length)
			}
		})
	}
}

func TestStraightPropagator_StartsAtFirst(t *testing.T) {
	sys := scene.NewSystem()
	src := newEmitter(core.Vec3Zero)
	img := scene.NewImage(core.NewVec3(0, 0, 50), 10)
	sys.Add(src)
	sys.Add(img)

	result := NewResult(NewParams())
	for i := 0; i < 2; i++ {
		ray := result.NewRay()
		ray.Direction = core.Vec3Z
		ray.Creator = src.ID()
	}

	if err := (StraightPropagator{}).Propagate(sys, result, 1, []scene.Element{img}); err != nil {
		t.Fatal(err)
	}
	if result.Ray(0).Status != RayPending {
		t.Errorf("Rays before first must be left alone, got %v", result.Ray(0).Status)
	}
	if result.Ray(1).Status != RayIntercepted {
		t.Errorf("Expected intercepted, got %v", result.Ray(1).Status)
	}
}

func TestStraightPropagator_UnknownCreator(t *testing.T) {
	sys := scene.NewSystem()
	result := NewResult(NewParams())
	ray := result.NewRay()
	ray.Direction = core.Vec3Z
	ray.Creator = 7

	if err := (StraightPropagator{}).Propagate(sys, result, 0, nil); err == nil {
		t.Error("Expected an error for an unresolved creator")
	}
}
