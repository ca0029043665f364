package material

// Material describes the medium a ray travels through
type Material interface {
	// Name identifies the medium in logs
	Name() string

	// RefractiveIndex returns the index of refraction at a wavelength in nanometres
	RefractiveIndex(wavelength float64) float64
}

// ID references a Material registered in a Registry. Rays carry IDs rather
// than Material values so they never own the medium they travel through.
type ID int

// Environment is the ID of the registry's environment proxy: the medium
// assigned to rays whose source has no explicit material
const Environment ID = 0
