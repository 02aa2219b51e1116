package pulsejet

import "github.com/llehouerou/go-pulsejet/internal/spectrum"

// NoiseSource supplies the dither added to sparse bands.
// Uniform must return values in [-1, 1].
type NoiseSource = spectrum.NoiseSource

// GlobalNoise returns the default noise source, backed by the unseeded
// process-wide math/rand/v2 generator. Output is not reproducible.
func GlobalNoise() NoiseSource {
	return spectrum.GlobalNoise()
}

// ZeroNoise returns a noise source that disables noise fill.
func ZeroNoise() NoiseSource {
	return spectrum.ZeroNoise()
}

// NewPolycounterNoise returns a deterministic noise source seeded with
// (r1, r2). The same seed always yields the same decode output.
// The returned source is not safe for concurrent use.
func NewPolycounterNoise(r1, r2 uint32) NoiseSource {
	return spectrum.NewPolycounter(r1, r2)
}
