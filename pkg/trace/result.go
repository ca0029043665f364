package trace

import (
	"fmt"
	"math"
	"slices"

	"github.com/df07/go-optical-raytracer/pkg/core"
	"github.com/df07/go-optical-raytracer/pkg/scene"
)

// rayChunkSize is the number of rays per arena chunk. Chunks are never
// reallocated, so pointers returned by NewRay stay valid until Clear.
const rayChunkSize = 1024

// Result is the ray buffer of one trace. It is owned by a single goroutine;
// parallel generation uses one Result per worker followed by Append.
type Result struct {
	params *Params

	chunks [][]Ray
	count  int

	wavelengths     map[float64]struct{}
	generatedSave   map[core.ElementID]bool
	interceptedSave map[core.ElementID]bool
}

// NewResult creates an empty buffer bound to params, or to default
// parameters when params is nil
func NewResult(params *Params) *Result {
	if params == nil {
		params = NewParams()
	}
	return &Result{
		params:          params,
		wavelengths:     make(map[float64]struct{}),
		generatedSave:   make(map[core.ElementID]bool),
		interceptedSave: make(map[core.ElementID]bool),
	}
}

// Params returns the trace parameters
func (r *Result) Params() *Params {
	return r.params
}

// NewRay allocates a zeroed ray at the end of the buffer. The caller must
// populate every field before the result is consumed.
func (r *Result) NewRay() *Ray {
	chunk := r.count / rayChunkSize
	if chunk == len(r.chunks) {
		r.chunks = append(r.chunks, make([]Ray, rayChunkSize))
	}
	ray := &r.chunks[chunk][r.count%rayChunkSize]
	*ray = Ray{}
	r.count++
	return ray
}

// Len returns the number of rays in generation order
func (r *Result) Len() int {
	return r.count
}

// Ray returns the i-th ray
func (r *Result) Ray(i int) *Ray {
	if i < 0 || i >= r.count {
		panic(fmt.Sprintf("ray index %d out of range [0, %d)", i, r.count))
	}
	return &r.chunks[i/rayChunkSize][i%rayChunkSize]
}

// Rays returns a copy of all rays in generation order
func (r *Result) Rays() []Ray {
	out := make([]Ray, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, *r.Ray(i))
	}
	return out
}

// AddRayWavelen records a wavelength bucket; duplicates are coalesced
func (r *Result) AddRayWavelen(wavelength float64) {
	r.wavelengths[wavelength] = struct{}{}
}

// Wavelengths returns the registered wavelengths in ascending order
func (r *Result) Wavelengths() []float64 {
	out := make([]float64, 0, len(r.wavelengths))
	for w := range r.wavelengths {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

// Clear empties the buffer but keeps its chunks for reuse. Rays returned
// before Clear are zeroed and will be handed out again by NewRay.
// Save-state flags are kept.
func (r *Result) Clear() {
	for i := 0; i < r.count; i++ {
		*r.Ray(i) = Ray{}
	}
	r.count = 0
	clear(r.wavelengths)
}

// Append copies other's rays and wavelengths onto the end of r
func (r *Result) Append(other *Result) {
	for i := 0; i < other.count; i++ {
		*r.NewRay() = *other.Ray(i)
	}
	for w := range other.wavelengths {
		r.wavelengths[w] = struct{}{}
	}
}

// SetGeneratedSaveState keeps rays generated by source available through GeneratedRays
func (r *Result) SetGeneratedSaveState(source scene.Element) {
	r.generatedSave[source.ID()] = true
}

// SetInterceptedSaveState keeps rays intercepted by e available through Intercepts
func (r *Result) SetInterceptedSaveState(e scene.Element) {
	r.interceptedSave[e.ID()] = true
}

// GeneratedRays returns the rays created by source, or nil when its
// generated save state is not set
func (r *Result) GeneratedRays(source scene.Element) []Ray {
	if !r.generatedSave[source.ID()] {
		return nil
	}
	var out []Ray
	for i := 0; i < r.count; i++ {
		if ray := r.Ray(i); ray.Creator == source.ID() {
			out = append(out, *ray)
		}
	}
	return out
}

// Intercepts returns the rays detected or stopped by e, or nil when its
// intercepted save state is not set
func (r *Result) Intercepts(e scene.Element) []Ray {
	if !r.interceptedSave[e.ID()] {
		return nil
	}
	var out []Ray
	for i := 0; i < r.count; i++ {
		if ray := r.Ray(i); ray.Intercept == e.ID() {
			out = append(out, *ray)
		}
	}
	return out
}

// Pixelate accumulates the intensity of rays intercepted by image into a
// resolution x resolution grid. Row 0 is the image's +y edge. An empty
// buffer yields a grid of zeros.
func (r *Result) Pixelate(image *scene.Image, resolution int) ([][]float64, error) {
	if resolution < 1 {
		return nil, core.NewConfigError("resolution", resolution, "must be at least 1")
	}

	grid := make([][]float64, resolution)
	for row := range grid {
		grid[row] = make([]float64, resolution)
	}

	size := image.Size()
	if !(size > 0) {
		return grid, nil
	}
	half := size / 2

	for i := 0; i < r.count; i++ {
		ray := r.Ray(i)
		if ray.Status != RayIntercepted || ray.Intercept != image.ID() {
			continue
		}
		col := pixelIndex((ray.Point.X+half)/size, resolution)
		row := pixelIndex((half-ray.Point.Y)/size, resolution)
		if col < 0 || row < 0 {
			continue
		}
		grid[row][col] += ray.Intensity
	}

	return grid, nil
}

// pixelIndex maps a normalized coordinate in [0, 1] to a cell, -1 when outside
func pixelIndex(u float64, resolution int) int {
	if u < 0 || u > 1 || math.IsNaN(u) {
		return -1
	}
	return min(int(u*float64(resolution)), resolution-1)
}
