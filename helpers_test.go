package pulsejet

import (
	"encoding/binary"
)

// buildStream assembles a stream decoding len(modes) frames, of which
// len(modes)-1 are stored. fillBins, if non-nil, sets the raw bin bytes of
// each frame. Every energy residual is set to residual.
func buildStream(modes []WindowMode, fillBins func(frame int, bins []byte), residual byte) []byte {
	data := []byte(SampleTag)
	data = binary.LittleEndian.AppendUint16(data, CodecVersionMajor)
	data = binary.LittleEndian.AppendUint16(data, CodecVersionMinor)
	data = binary.LittleEndian.AppendUint16(data, uint16(len(modes)-1))

	for _, m := range modes {
		data = append(data, byte(m))
	}

	for f := range modes {
		bins := make([]byte, NumTotalBins)
		if fillBins != nil {
			fillBins(f, bins)
		}
		data = append(data, bins...)
	}

	for _, m := range modes {
		subframes := 1
		if m == WindowModeShort {
			subframes = NumShortWindowsPerFrame
		}
		for i := 0; i < subframes*NumBands; i++ {
			data = append(data, residual)
		}
	}
	return data
}

// repeatMode returns n copies of mode.
func repeatMode(mode WindowMode, n int) []WindowMode {
	modes := make([]WindowMode, n)
	for i := range modes {
		modes[i] = mode
	}
	return modes
}

// newTestDecoder returns a decoder with noise fill disabled.
func newTestDecoder() *Decoder {
	d := NewDecoder()
	d.SetConfiguration(Config{Noise: ZeroNoise()})
	return d
}

func sumSquares(samples []float32) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return sum
}

// headerSize is the size of tag, version and frame count.
const headerSize = 10
