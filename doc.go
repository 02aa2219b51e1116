// Package pulsejet provides a pure Go decoder for the pulsejet audio codec.
//
// pulsejet is a small lossy MDCT codec for size-constrained intros and
// demos. A stream holds one window mode per frame, 856 signed quantized bins
// per frame spread over 20 bands, and one energy residual per band per
// subframe. Decoding reconstructs the bands, runs an inverse MDCT per
// subframe and overlap-adds the windowed blocks.
//
// # Basic Usage
//
// To decode a whole stream at once:
//
//	samples, err := pulsejet.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// len(samples) == frame count * pulsejet.FrameSize
//
// To check the tag and version first:
//
//	hdr, err := pulsejet.CheckSample(data)
//
// # API Variants
//
//   - Decode, Decoder.Decode: normalized float32 samples
//   - Decoder.DecodeInt16: clipped 16-bit PCM
//   - Decoder.DecodeBuffer, Decoder.DecodeIntBuffer: go-audio buffers
//
// # Noise Fill
//
// Sparse bands are dithered with random noise, so by default two decodes of
// the same stream differ slightly. Set Config.Noise to ZeroNoise() or a
// NewPolycounterNoise source to make decoding reproducible.
//
// # Thread Safety
//
// A Decoder holds only configuration; every decode call allocates its own
// state. A Decoder may be shared between goroutines as long as its noise
// source is safe for concurrent use. GlobalNoise and ZeroNoise are, a
// polycounter source is not.
package pulsejet
