package lights

import (
	"math"
	"slices"

	"github.com/df07/go-optical-raytracer/pkg/core"
)

// Fraunhofer line wavelengths in nanometres
const (
	LineC = 656.2725 // hydrogen
	Lined = 587.5618 // helium
	Linee = 546.074  // mercury
	LineF = 486.1327 // hydrogen
	Lineg = 435.8343 // mercury
	Lineh = 404.6561 // mercury
	Linei = 365.0146 // mercury
)

// SpectralLine is one emission line of a source
type SpectralLine struct {
	Wavelength float64 // nanometres
	Intensity  float64
}

// NewSpectralLine creates a spectral line
func NewSpectralLine(wavelength, intensity float64) SpectralLine {
	return SpectralLine{Wavelength: wavelength, Intensity: intensity}
}

func (l SpectralLine) validate() error {
	if !(l.Wavelength > 0) || math.IsInf(l.Wavelength, 0) {
		return core.NewConfigError("spectrum wavelength", l.Wavelength, "must be positive and finite")
	}
	if !(l.Intensity >= 0) || math.IsInf(l.Intensity, 0) {
		return core.NewConfigError("spectrum intensity", l.Intensity, "must be non-negative and finite")
	}
	return nil
}

// Spectrum is an ordered list of spectral lines. Duplicate wavelengths are
// kept; each one produces its own rays.
type Spectrum struct {
	lines []SpectralLine
}

// NewSpectrum creates a spectrum from lines in emission order
func NewSpectrum(lines ...SpectralLine) Spectrum {
	return Spectrum{lines: slices.Clone(lines)}
}

// DefaultSpectrum is the helium d line at unit intensity
func DefaultSpectrum() Spectrum {
	return NewSpectrum(NewSpectralLine(Lined, 1))
}

// Add appends a line
func (s *Spectrum) Add(line SpectralLine) {
	s.lines = append(s.lines, line)
}

// Lines returns a copy of the lines in emission order
func (s Spectrum) Lines() []SpectralLine {
	return slices.Clone(s.lines)
}

// Wavelengths returns the distinct wavelengths in emission order
func (s Spectrum) Wavelengths() []float64 {
	var out []float64
	for _, l := range s.lines {
		if !slices.Contains(out, l.Wavelength) {
			out = append(out, l.Wavelength)
		}
	}
	return out
}

// Len returns the number of lines
func (s Spectrum) Len() int {
	return len(s.lines)
}
