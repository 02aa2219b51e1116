// Package spectrum implements spectral reconstruction for pulsejet decoding.
//
// For each band of a subframe it reads the quantized bins, fills sparse
// bands with noise, decodes the band energy against a per-band prediction
// and rescales the bins to that energy.
package spectrum
