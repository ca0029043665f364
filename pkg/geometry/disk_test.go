package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

func TestShapeInside(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		point    core.Vec2
		expected bool
	}{
		{"Square centre", NewSquare(10), core.NewVec2(0, 0), true},
		{"Square edge", NewSquare(10), core.NewVec2(5, -5), true},
		{"Square outside", NewSquare(10), core.NewVec2(5.01, 0), false},
		{"Rectangle tall", NewRectangle(2, 10), core.NewVec2(0.5, 4.5), true},
		{"Rectangle too wide", NewRectangle(2, 10), core.NewVec2(1.5, 0), false},
		{"Zero-size square matches nothing", NewSquare(0), core.NewVec2(0, 0), false},
		{"Disk centre", NewDisk(1), core.NewVec2(0, 0), true},
		{"Disk edge", NewDisk(1), core.NewVec2(0, -1), true},
		{"Disk just inside the diagonal", NewDisk(1), core.NewVec2(0.7071, 0.7071), true},
		{"Disk outside", NewDisk(1), core.NewVec2(0.8, 0.8), false},
		{"Zero-radius disk matches nothing", NewDisk(0), core.NewVec2(0, 0), false},
		{"Ring body", NewRing(2, 1), core.NewVec2(1.5, 0), true},
		{"Ring hole", NewRing(2, 1), core.NewVec2(0.5, 0), false},
		{"Ring hole larger than radius", NewRing(1, 2), core.NewVec2(0, 1.5), false},
		{"Ellipse along major axis", NewEllipse(3, 1), core.NewVec2(2.9, 0), true},
		{"Ellipse beyond minor axis", NewEllipse(3, 1), core.NewVec2(0, 1.1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shape.Inside(tt.point); got != tt.expected {
				t.Errorf("Inside(%v) = %v, expected %v", tt.point, got, tt.expected)
			}
		})
	}
}

func TestShapeRadii(t *testing.T) {
	tests := []struct {
		name      string
		shape     Shape
		maxRadius float64
		minRadius float64
	}{
		{"Square", NewSquare(80), math.Hypot(40, 40), 40},
		{"Rectangle", NewRectangle(6, 8), 5, 3},
		{"Disk", NewDisk(2), 2, 2},
		{"Ring", NewRing(2, 1), 2, 2},
		{"Ellipse", NewEllipse(3, 1), 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.shape.MaxRadius()-tt.maxRadius) > 1e-9 {
				t.Errorf("MaxRadius = %v, expected %v", tt.shape.MaxRadius(), tt.maxRadius)
			}
			if math.Abs(tt.shape.MinRadius()-tt.minRadius) > 1e-9 {
				t.Errorf("MinRadius = %v, expected %v", tt.shape.MinRadius(), tt.minRadius)
			}
		})
	}
}

func TestRingUnobstructedIgnoresHole(t *testing.T) {
	ring := NewRing(2, 1)
	if ring.Inside(core.NewVec2(0, 0)) {
		t.Error("Ring centre should be obstructed")
	}
	if !ring.InsideUnobstructed(core.NewVec2(0, 0)) {
		t.Error("Ring centre should be inside when unobstructed")
	}
}
