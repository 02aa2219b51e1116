// Package mdct implements the inverse Modified Discrete Cosine Transform.
package mdct

import "math"

// IMDCT computes the inverse MDCT of N = len(out)/2 coefficients by direct
// summation:
//
//	out[n] = sum_k (2/N) * spec[k] * cos(pi/N * (n + 1/2 + N/2) * (k + 1/2))
//
// Only spec[:N] is read. Zero coefficients are skipped. len(out) must be
// even and spec must hold at least N values.
func IMDCT(spec []float32, out []float32) {
	n2 := len(out) / 2
	spec = spec[:n2]

	nf := float64(n2)
	scale := 2.0 / nf
	for n := range out {
		phase := math.Pi / nf * (float64(n) + 0.5 + nf/2)

		sum := 0.0
		for k, coeff := range spec {
			if coeff == 0 {
				continue
			}
			sum += float64(coeff) * math.Cos(phase*(float64(k)+0.5))
		}
		out[n] = float32(sum * scale)
	}
}

// MDCT computes the forward MDCT of len(in) samples into N = len(in)/2
// coefficients, with the same kernel as IMDCT. IMDCT(MDCT(x)) reproduces x
// up to time-domain aliasing, which windowed overlap-add cancels.
func MDCT(in []float32, spec []float32) {
	n2 := len(in) / 2
	spec = spec[:n2]

	nf := float64(n2)
	for k := range spec {
		kPlusHalf := float64(k) + 0.5

		sum := 0.0
		for n, x := range in {
			if x == 0 {
				continue
			}
			sum += float64(x) * math.Cos(math.Pi/nf*(float64(n)+0.5+nf/2)*kPlusHalf)
		}
		spec[k] = float32(sum)
	}
}
