package spectrum

import (
	"math"

	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// Band energy dequantization: q maps to 2^(q/64*40 - 20) per bin.
const (
	energyStepsPerRange = 64.0
	energyRange         = 40.0
	energyFloor         = -20.0
)

// EnergyPredictor holds the last quantized energy of every band.
//
// Band energies are coded as 8-bit residuals against the previous frame's
// value for the same band. The zero value is the initial state.
type EnergyPredictor struct {
	quantized [tables.NumBands]uint8
}

// Apply adds residual to the prediction for band with 8-bit wraparound,
// stores the result as the new prediction and returns it.
func (p *EnergyPredictor) Apply(band int, residual uint8) uint8 {
	q := p.quantized[band] + residual
	p.quantized[band] = q
	return q
}

// Prediction returns the current prediction for band.
func (p *EnergyPredictor) Prediction(band int) uint8 {
	return p.quantized[band]
}

// DequantizeEnergy converts a quantized band energy to the linear energy of
// a band of numBins bins.
func DequantizeEnergy(quantized uint8, numBins int) float64 {
	exponent := float64(quantized)/energyStepsPerRange*energyRange + energyFloor
	return math.Exp2(exponent) * float64(numBins)
}
