package spectrum

import (
	"fmt"
	"math"

	"github.com/llehouerou/go-pulsejet/internal/bits"
	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// Noise fill parameters.
const (
	// NoiseFillThreshold is the fraction of nonzero bins below which a band
	// receives noise.
	NoiseFillThreshold = 0.1

	// normEpsilon keeps the band norm nonzero for all-zero bands.
	normEpsilon = 1e-27
)

// ReconstructConfig holds the shared state for subframe reconstruction.
// Bins and Energies advance across calls, as does Predictor.
type ReconstructConfig struct {
	// NumSubframes is the subframe count of the current frame (1 or 8)
	NumSubframes int

	// Bins is the quantized bin cursor
	Bins *bits.Cursor

	// Energies is the band energy residual cursor
	Energies *bits.Cursor

	// Predictor is the per-band energy prediction state
	Predictor *EnergyPredictor

	// Noise supplies the sparse band dither
	Noise NoiseSource
}

// ReconstructSubframe decodes all bands of one subframe into spec.
//
// Bands are written contiguously from spec[0]; entries past the last band
// are left untouched. spec must hold at least NumTotalBins/NumSubframes
// values.
//
// Processing order per band:
// 1. Read quantized bins
// 2. Noise fill (sparse bands only)
// 3. Decode band energy against the prediction
// 4. Normalize bins and scale to the band energy
func ReconstructSubframe(spec []float32, cfg *ReconstructConfig) error {
	offset := 0
	for band := 0; band < tables.NumBands; band++ {
		numBins, err := tables.GetNumBins(band, cfg.NumSubframes)
		if err != nil {
			return err
		}
		if offset+numBins > len(spec) {
			return fmt.Errorf("%w: band %d ends at bin %d, subframe holds %d",
				tables.ErrBandLayout, band, offset+numBins, len(spec))
		}

		if err := decodeBand(spec[offset:offset+numBins], band, cfg); err != nil {
			return err
		}
		offset += numBins
	}
	return nil
}

// decodeBand reconstructs a single band in place.
func decodeBand(bandBins []float32, band int, cfg *ReconstructConfig) error {
	nonzero, err := readBins(bandBins, cfg.Bins)
	if err != nil {
		return err
	}

	NoiseFill(bandBins, nonzero, cfg.Noise)

	residual, err := cfg.Energies.ReadUint8()
	if err != nil {
		return err
	}
	energy := DequantizeEnergy(cfg.Predictor.Apply(band, residual), len(bandBins))

	Normalize(bandBins, energy)
	return nil
}

// readBins reads len(bandBins) signed bins and returns how many are nonzero.
func readBins(bandBins []float32, c *bits.Cursor) (int, error) {
	nonzero := 0
	for i := range bandBins {
		q, err := c.ReadInt8()
		if err != nil {
			return 0, err
		}
		if q != 0 {
			nonzero++
		}
		bandBins[i] = float32(q)
	}
	return nonzero, nil
}

// NoiseFill adds noise to every bin of a band whose fill ratio
// (nonzero/len) is below NoiseFillThreshold. The gain is the squared
// sparsity, so an empty band gets full-scale noise.
func NoiseFill(bandBins []float32, nonzero int, noise NoiseSource) {
	if len(bandBins) == 0 {
		return
	}

	fill := float64(nonzero) / float64(len(bandBins))
	if fill >= NoiseFillThreshold {
		return
	}

	sparsity := (NoiseFillThreshold - fill) / NoiseFillThreshold
	gain := float32(sparsity * sparsity)
	for i := range bandBins {
		bandBins[i] += noise.Uniform() * gain
	}
}

// Normalize scales bandBins to unit L2 norm and then by energy.
func Normalize(bandBins []float32, energy float64) {
	sum := normEpsilon
	for _, v := range bandBins {
		sum += float64(v) * float64(v)
	}

	// Scale in float64: an empty band's scale can exceed float32 range.
	scale := energy / math.Sqrt(sum)
	for i := range bandBins {
		bandBins[i] = float32(float64(bandBins[i]) * scale)
	}
}
