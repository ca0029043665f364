package core

import "math"

// parallelEpsilon bounds |n·d| below which a line is treated as parallel to a plane
const parallelEpsilon = 1e-12

// VectorPair3 is a point and a direction. It describes either a line
// (origin, direction) or a plane (point on plane, normal).
type VectorPair3 struct {
	Origin    Vec3
	Direction Vec3
}

// NewVectorPair3 creates a new VectorPair3
func NewVectorPair3(origin, direction Vec3) VectorPair3 {
	return VectorPair3{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the line
func (p VectorPair3) At(t float64) Vec3 {
	return p.Origin.Add(p.Direction.Multiply(t))
}

// PlaneLineIntersect treats p as a plane and returns the point where line
// crosses it.
func (p VectorPair3) PlaneLineIntersect(line VectorPair3) (Vec3, error) {
	if p.Direction.IsZero() || line.Direction.IsZero() {
		return Vec3{}, ErrDegenerateDirection
	}

	denom := p.Direction.Dot(line.Direction)
	if math.Abs(denom) < parallelEpsilon*p.Direction.Length()*line.Direction.Length() {
		return Vec3{}, ErrNoIntersection
	}

	t := p.Direction.Dot(p.Origin.Subtract(line.Origin)) / denom
	hit := line.At(t)
	if !hit.IsFinite() {
		return Vec3{}, ErrNoIntersection
	}
	return hit, nil
}

// LineParameter treats p as a plane and returns t such that line.At(t) lies on it
func (p VectorPair3) LineParameter(line VectorPair3) (float64, error) {
	if p.Direction.IsZero() || line.Direction.IsZero() {
		return 0, ErrDegenerateDirection
	}
	denom := p.Direction.Dot(line.Direction)
	if math.Abs(denom) < parallelEpsilon*p.Direction.Length()*line.Direction.Length() {
		return 0, ErrNoIntersection
	}
	return p.Direction.Dot(p.Origin.Subtract(line.Origin)) / denom, nil
}
