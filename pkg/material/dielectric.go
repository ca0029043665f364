package material

// Vacuum is the default environment medium
type Vacuum struct{}

// NewVacuum creates a vacuum
func NewVacuum() *Vacuum {
	return &Vacuum{}
}

// Name implements the Material interface
func (v *Vacuum) Name() string { return "vacuum" }

// RefractiveIndex implements the Material interface
func (v *Vacuum) RefractiveIndex(float64) float64 { return 1 }

// Dielectric is a non-dispersive transparent medium with a fixed index
type Dielectric struct {
	name string
	ior  float64
}

// NewDielectric creates a dielectric with a constant refractive index
func NewDielectric(name string, refractiveIndex float64) *Dielectric {
	return &Dielectric{name: name, ior: refractiveIndex}
}

// Name implements the Material interface
func (d *Dielectric) Name() string { return d.name }

// RefractiveIndex implements the Material interface
func (d *Dielectric) RefractiveIndex(float64) float64 { return d.ior }
