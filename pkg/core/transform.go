package core

// Transform maps points from one frame into another: p' = R*p + T
type Transform struct {
	Rotation    Matrix3
	Translation Vec3
}

// IdentityTransform returns the transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{Rotation: IdentityMatrix()}
}

// NewTransform creates a transform from a rotation and a translation
func NewTransform(rotation Matrix3, translation Vec3) Transform {
	return Transform{Rotation: rotation, Translation: translation}
}

// Apply transforms a point
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rotation.MulVec(p).Add(t.Translation)
}

// ApplyLinear transforms a direction, ignoring translation
func (t Transform) ApplyLinear(v Vec3) Vec3 {
	return t.Rotation.MulVec(v)
}

// ApplyPair transforms both members of a line
func (t Transform) ApplyPair(p VectorPair3) VectorPair3 {
	return VectorPair3{Origin: t.Apply(p.Origin), Direction: t.ApplyLinear(p.Direction)}
}

// Inverse returns the inverse transform. Rotation is assumed orthonormal.
func (t Transform) Inverse() Transform {
	inv := t.Rotation.Transpose()
	return Transform{
		Rotation:    inv,
		Translation: inv.MulVec(t.Translation).Negate(),
	}
}

// Compose returns the transform applying other first, then t
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		Rotation:    t.Rotation.Mul(other.Rotation),
		Translation: t.Rotation.MulVec(other.Translation).Add(t.Translation),
	}
}
