package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/geometry"
)

func TestSystem_AddAssignsIDs(t *testing.T) {
	sys := NewSystem()
	s1 := NewOpticalSurface(core.NewVec3(0, 0, 0), geometry.NewDisk(10))
	img := NewImage(core.NewVec3(0, 0, 100), 50)

	id1, err := sys.Add(s1)
	if err != nil {
		t.Fatal(err)
	}
	id2, err := sys.Add(img)
	if err != nil {
		t.Fatal(err)
	}
	if id1 != 1 || id2 != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", id1, id2)
	}

	if _, err := sys.Add(s1); err == nil {
		t.Error("Adding an element twice should fail")
	}

	got, ok := sys.Element(id2)
	if !ok || got != Element(img) {
		t.Errorf("Element(%d) did not resolve to the image", id2)
	}
	if _, ok := sys.Element(core.NoElement); ok {
		t.Error("NoElement should not resolve")
	}
}

func TestSystem_TransformTo(t *testing.T) {
	sys := NewSystem()
	a, err := NewOpticalSurfaceFacing(core.NewVectorPair3(core.NewVec3(10, 0, 0), core.NewVec3(0.8, 0.8, 1)), geometry.NewDisk(1))
	if err != nil {
		t.Fatal(err)
	}
	b := NewOpticalSurface(core.NewVec3(0, 0, 500), geometry.NewSquare(195))
	sys.Add(a)
	sys.Add(b)

	ab, err := sys.TransformTo(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := sys.TransformTo(b, a)
	if err != nil {
		t.Fatal(err)
	}

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, -2, 3),
		core.NewVec3(97.5, 97.5, 0),
	}
	for _, p := range points {
		if back := ba.Apply(ab.Apply(p)); !back.Equals(p) {
			t.Errorf("Round trip of %v produced %v", p, back)
		}
		// going through the global frame must agree
		expected := b.Frame().Inverse().Apply(a.Frame().Apply(p))
		if got := ab.Apply(p); !got.Equals(expected) {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	}

	pos, err := sys.PositionIn(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Frame().Apply(pos).Equals(core.NewVec3(0, 0, 500)) {
		t.Errorf("PositionIn returned %v which is not b's origin", pos)
	}
}

func TestSystem_TransformCacheInvalidation(t *testing.T) {
	sys := NewSystem()
	a := NewOpticalSurface(core.NewVec3(0, 0, 0), geometry.NewDisk(1))
	b := NewOpticalSurface(core.NewVec3(0, 0, 10), geometry.NewDisk(1))
	sys.Add(a)
	sys.Add(b)

	before, _ := sys.PositionIn(b, a)
	if !before.Equals(core.NewVec3(0, 0, 10)) {
		t.Fatalf("Unexpected position %v", before)
	}

	b.SetFrame(core.NewTransform(core.IdentityMatrix(), core.NewVec3(0, 0, 20)))
	after, _ := sys.PositionIn(b, a)
	if !after.Equals(core.NewVec3(0, 0, 20)) {
		t.Errorf("Stale transform after move: %v", after)
	}
}

func TestSystem_NotInSystem(t *testing.T) {
	sys := NewSystem()
	a := NewOpticalSurface(core.NewVec3(0, 0, 0), geometry.NewDisk(1))
	b := NewOpticalSurface(core.NewVec3(0, 0, 10), geometry.NewDisk(1))
	sys.Add(a)

	if _, err := sys.TransformTo(a, b); !errors.Is(err, core.ErrNotInSystem) {
		t.Errorf("Expected ErrNotInSystem, got %v", err)
	}
}

func TestNewOpticalSurfaceFacing_ZeroDirection(t *testing.T) {
	_, err := NewOpticalSurfaceFacing(core.NewVectorPair3(core.Vec3Zero, core.Vec3Zero), geometry.NewDisk(1))
	if !errors.Is(err, core.ErrDegenerateDirection) {
		t.Errorf("Expected ErrDegenerateDirection, got %v", err)
	}
}

func TestSurfacePattern(t *testing.T) {
	s := NewOpticalSurface(core.NewVec3(0, 0, 0), geometry.NewDisk(10))

	count := 0
	err := s.Pattern(func(p core.Vec3) {
		count++
		if p.Z != 0 {
			t.Errorf("Flat surface sample off the plane: %v", p)
		}
		if !s.Shape().Inside(p.XY()) {
			t.Errorf("Sample %v outside the aperture", p)
		}
	}, geometry.NewDistribution(geometry.PatternHexaPolar, 5), false)
	if err != nil {
		t.Fatal(err)
	}
	if count != 91 {
		t.Errorf("Expected 91 samples, got %d", count)
	}
}

func TestImageSize(t *testing.T) {
	img := NewImage(core.NewVec3(0, 0, 600), 300)
	if img.Size() != 300 {
		t.Errorf("Expected size 300, got %v", img.Size())
	}
	if !img.Shape().Inside(core.NewVec2(149, -149)) || img.Shape().Inside(core.NewVec2(151, 0)) {
		t.Error("Image aperture should be a 300-wide square")
	}
}
