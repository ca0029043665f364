package material

// Registry owns the materials of an optical system and resolves IDs.
// Slot 0 always holds the environment proxy.
type Registry struct {
	materials []Material
}

// NewRegistry creates a registry whose environment is a vacuum
func NewRegistry() *Registry {
	return &Registry{materials: []Material{NewVacuum()}}
}

// SetEnvironment replaces the environment proxy medium
func (r *Registry) SetEnvironment(m Material) {
	r.materials[Environment] = m
}

// Add registers a material and returns its ID
func (r *Registry) Add(m Material) ID {
	r.materials = append(r.materials, m)
	return ID(len(r.materials) - 1)
}

// Get resolves an ID
func (r *Registry) Get(id ID) (Material, bool) {
	if id < 0 || int(id) >= len(r.materials) {
		return nil, false
	}
	return r.materials[id], true
}

// Len returns the number of registered materials, environment included
func (r *Registry) Len() int {
	return len(r.materials)
}
