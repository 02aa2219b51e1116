package pulsejet

import (
	"github.com/llehouerou/go-pulsejet/internal/bits"
	"github.com/llehouerou/go-pulsejet/internal/filterbank"
	"github.com/llehouerou/go-pulsejet/internal/spectrum"
	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// Decode decodes a whole pulsejet stream into normalized float32 samples
// using a default Decoder.
//
// The result holds exactly frame count * FrameSize samples. Samples are
// nominally in [-1, 1] but are not clamped. Noise fill draws from
// GlobalNoise, so output varies slightly between calls; use a Decoder with
// Config.Noise set for reproducible output.
func Decode(input []byte) ([]float32, error) {
	return NewDecoder().Decode(input)
}

// decodeSamples runs the decode pipeline over input.
//
// Frames are decoded into a buffer padded by one frame on each side: the
// stream carries one more frame than it stores, and the first FrameSize
// samples of the padded buffer are lead-in that is dropped.
func decodeSamples(input []byte, noise NoiseSource) ([]float32, error) {
	layout, err := bits.ParseLayout(input)
	if err != nil {
		return nil, classify(err)
	}

	numSamples := layout.NumSamples()
	padded := make([]float32, numSamples+2*tables.FrameSize)

	predictor := &spectrum.EnergyPredictor{}
	fb := filterbank.NewFilterBank()
	spec := make([]float32, tables.FrameSize)

	cfg := &spectrum.ReconstructConfig{
		Bins:      layout.Bins,
		Energies:  layout.Energies,
		Predictor: predictor,
		Noise:     noise,
	}

	for frame := 0; frame < layout.NumFrames(); frame++ {
		modeByte, err := layout.WindowModes.ReadUint8()
		if err != nil {
			return nil, classify(err)
		}
		mode := tables.WindowMode(modeByte)
		sub := filterbank.SubframesFor(mode)
		cfg.NumSubframes = sub.Count

		frameOffset := frame * tables.FrameSize
		for i := 0; i < sub.Count; i++ {
			clear(spec)
			if err := spectrum.ReconstructSubframe(spec, cfg); err != nil {
				return nil, classify(err)
			}
			fb.Synthesize(spec, mode, sub, i, frameOffset, padded)
		}
	}

	samples := make([]float32, numSamples)
	copy(samples, padded[tables.FrameSize:])
	return samples, nil
}
