// Package spectrum implements spectral reconstruction for pulsejet decoding.
// This file contains the noise sources used by sparse-band noise fill.

package spectrum

import "math/rand"

// NoiseSource supplies the dither added to sparse bands.
//
// Uniform returns a value uniformly distributed in [-1, 1].
type NoiseSource interface {
	Uniform() float32
}

// globalNoise draws from the process-wide math/rand source. It is unseeded
// and safe for concurrent use.
type globalNoise struct{}

func (globalNoise) Uniform() float32 {
	return rand.Float32()*2 - 1
}

// GlobalNoise returns the default, non-reproducible noise source.
func GlobalNoise() NoiseSource {
	return globalNoise{}
}

// zeroNoise always returns 0, which disables noise fill.
type zeroNoise struct{}

func (zeroNoise) Uniform() float32 {
	return 0
}

// ZeroNoise returns a noise source that adds nothing.
func ZeroNoise() NoiseSource {
	return zeroNoise{}
}

// parity contains precomputed parity (number of 1-bits mod 2) for bytes 0-255.
var parity = [256]uint8{
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
}

// Polycounter is a deterministic noise source built from two LFSRs with
// opposite rotation direction and coprime periods.
//
// Period = 3*5*17*257*65537 * 7*47*73*178481 = 18,410,713,077,675,721,215
//
// A Polycounter is not safe for concurrent use.
type Polycounter struct {
	R1 uint32
	R2 uint32
}

// NewPolycounter creates a Polycounter with the given state. A state of
// (0, 0) is degenerate and yields only zeros.
func NewPolycounter(r1, r2 uint32) *Polycounter {
	return &Polycounter{R1: r1, R2: r2}
}

// Next advances the state and returns the next raw 32-bit value.
func (p *Polycounter) Next() uint32 {
	t1 := p.R1
	t2 := p.R2
	t3 := t1
	t4 := t2

	// First polycounter: taps at bits 0,2,4,5,6,7
	t1 &= 0xF5
	t1 = uint32(parity[t1])
	t1 <<= 31

	// Second polycounter: taps at bits 25,26,29,30
	t2 >>= 25
	t2 &= 0x63
	t2 = uint32(parity[t2])

	p.R1 = (t3 >> 1) | t1
	p.R2 = (t4 + t4) | t2

	return p.R1 ^ p.R2
}

// Uniform maps the next raw value onto [-1, 1].
func (p *Polycounter) Uniform() float32 {
	return float32(float64(int32(p.Next())) / (1 << 31))
}
