package core

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestRotationMatrix(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		axis     int
		angle    float64
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			axis:     2,
			angle:    0,
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around Z axis",
			vector:   NewVec3(1, 0, 0),
			axis:     2,
			angle:    math.Pi / 2,
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "90 degree rotation around Y axis",
			vector:   NewVec3(0, 0, 1),
			axis:     1,
			angle:    math.Pi / 2,
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation around X axis",
			vector:   NewVec3(0, 1, 0),
			axis:     0,
			angle:    math.Pi / 2,
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "180 degree rotation around Y axis",
			vector:   NewVec3(1, 0, 0),
			axis:     1,
			angle:    math.Pi,
			expected: NewVec3(-1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RotationMatrix(tt.axis, tt.angle).MulVec(tt.vector)
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRotationMatrix_ComposedPolarAzimuth(t *testing.T) {
	theta, phi := 0.3, 1.1
	dir := RotationMatrix(2, phi).Mul(RotationMatrix(1, theta)).MulVec(Vec3Z)

	expected := NewVec3(math.Sin(theta)*math.Cos(phi), math.Sin(theta)*math.Sin(phi), math.Cos(theta))
	if !dir.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, dir)
	}
	if !scalar.EqualWithinAbs(dir.Length(), 1, 1e-12) {
		t.Errorf("Rotation should preserve length, got %v", dir.Length())
	}
}

func TestAxisAngleRotation(t *testing.T) {
	m, err := AxisAngleRotation(Vec3Z, math.Pi/2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := m.MulVec(Vec3X); !got.Equals(Vec3Y) {
		t.Errorf("Expected %v, got %v", Vec3Y, got)
	}

	if _, err := AxisAngleRotation(Vec3Zero, 1); !errors.Is(err, ErrDegenerateDirection) {
		t.Errorf("Expected ErrDegenerateDirection, got %v", err)
	}
}

func TestAlignZ(t *testing.T) {
	directions := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 0, -1),
		NewVec3(0.8, 0.8, 1),
		NewVec3(1, 0, 0),
		NewVec3(-3, 2, -0.5),
	}

	for _, d := range directions {
		m, err := AlignZ(d)
		if err != nil {
			t.Fatalf("AlignZ(%v): unexpected error %v", d, err)
		}
		got := m.MulVec(Vec3Z)
		if !got.Equals(d.Normalize()) {
			t.Errorf("AlignZ(%v) maps z to %v", d, got)
		}
		// rotation must be orthonormal
		if !m.Mul(m.Transpose()).MulVec(NewVec3(1, 2, 3)).Equals(NewVec3(1, 2, 3)) {
			t.Errorf("AlignZ(%v) is not orthonormal", d)
		}
	}

	if _, err := AlignZ(Vec3Zero); !errors.Is(err, ErrDegenerateDirection) {
		t.Errorf("Expected ErrDegenerateDirection, got %v", err)
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	rot, err := AlignZ(NewVec3(0.3, -0.4, 1))
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTransform(rot.Mul(RotationMatrix(2, 0.7)), NewVec3(10, -5, 500))

	points := []Vec3{
		NewVec3(0, 0, 0),
		NewVec3(1, 2, 3),
		NewVec3(-97.5, 97.5, 0),
		NewVec3(1e3, -1e3, 42),
	}
	for _, p := range points {
		back := tr.Inverse().Apply(tr.Apply(p))
		if !back.Equals(p) {
			t.Errorf("Round trip of %v produced %v", p, back)
		}
	}
}

func TestTransform_Compose(t *testing.T) {
	a := NewTransform(RotationMatrix(2, math.Pi/2), NewVec3(1, 0, 0))
	b := NewTransform(IdentityMatrix(), NewVec3(0, 0, 5))

	p := NewVec3(1, 1, 1)
	expected := a.Apply(b.Apply(p))
	if got := a.Compose(b).Apply(p); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPlaneLineIntersect(t *testing.T) {
	plane := NewVectorPair3(NewVec3(0, 0, -1000), Vec3Z)

	tests := []struct {
		name     string
		line     VectorPair3
		expected Vec3
		err      error
	}{
		{
			name:     "Axis-parallel line",
			line:     NewVectorPair3(NewVec3(3, 4, 0), Vec3Z),
			expected: NewVec3(3, 4, -1000),
		},
		{
			name:     "Tilted line back-projects upstream",
			line:     NewVectorPair3(NewVec3(0, 0, 0), NewVec3(0.1, 0, 1)),
			expected: NewVec3(-100, 0, -1000),
		},
		{
			name: "Parallel line",
			line: NewVectorPair3(NewVec3(0, 0, 0), Vec3X),
			err:  ErrNoIntersection,
		},
		{
			name: "Zero direction",
			line: NewVectorPair3(NewVec3(0, 0, 0), Vec3Zero),
			err:  ErrDegenerateDirection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := plane.PlaneLineIntersect(tt.line)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBoundingBox2(t *testing.T) {
	box := NewBoundingBox2FromPoints(NewVec2(-1, 2), NewVec2(3, -4), NewVec2(0, 0))
	if !box.Min.Equals(NewVec2(-1, -4)) || !box.Max.Equals(NewVec2(3, 2)) {
		t.Fatalf("Unexpected box %v", box)
	}
	if !box.Contains(NewVec2(3, 2)) {
		t.Error("Box should contain its max corner")
	}
	if box.Contains(NewVec2(3.1, 0)) {
		t.Error("Box should not contain a point outside")
	}

	u := box.Union(NewBoundingBox2(NewVec2(5, 5), NewVec2(6, 6)))
	if !u.Max.Equals(NewVec2(6, 6)) || !u.Min.Equals(NewVec2(-1, -4)) {
		t.Errorf("Unexpected union %v", u)
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(DefaultSeed)
	b := NewSeededSampler(DefaultSeed)
	for i := 0; i < 16; i++ {
		if a.Get2D() != b.Get2D() {
			t.Fatalf("Samplers with the same seed diverged at draw %d", i)
		}
	}
}

func TestConfigError(t *testing.T) {
	var err error = NewConfigError("density", -1, "must be positive")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatal("Expected errors.As to find a ConfigError")
	}
	if cfgErr.Field != "density" {
		t.Errorf("Expected field density, got %s", cfgErr.Field)
	}
	if err.Error() != "invalid density -1: must be positive" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
