package trace

import "github.com/df07/go-optical-raytracer/pkg/scene"

// Source is an element that emits rays toward a set of entry targets.
// Targets that are not surfaces are skipped, not rejected.
type Source interface {
	scene.Element

	// GenerateRaysSimple appends the source's rays for every target to result
	GenerateRaysSimple(result *Result, targets []scene.Element) error

	// GenerateRaysIntensity is the intensity-aware variant of GenerateRaysSimple
	GenerateRaysIntensity(result *Result, targets []scene.Element) error
}
