package pulsejet

import (
	"errors"
	"math"
	"testing"
)

func TestDecode_LengthLaw(t *testing.T) {
	tests := []struct {
		name  string
		modes []WindowMode
	}{
		{"no stored frames", []WindowMode{WindowModeLong}},
		{"one frame", repeatMode(WindowModeLong, 2)},
		{"short frames", repeatMode(WindowModeShort, 3)},
		{"transition", []WindowMode{WindowModeLong, WindowModeStart, WindowModeShort, WindowModeStop, WindowModeLong}},
	}

	dec := newTestDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := dec.Decode(buildStream(tt.modes, nil, 0))
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			want := (len(tt.modes) - 1) * FrameSize
			if len(samples) != want {
				t.Errorf("len(samples) = %d, want %d", len(samples), want)
			}
		})
	}
}

// TestDecode_Silence decodes a stream of all-zero bins and residuals. Every
// band is empty, so noise fill runs at full gain; with it disabled the output
// must be exactly zero.
func TestDecode_Silence(t *testing.T) {
	data := buildStream(repeatMode(WindowModeLong, 2), nil, 0)

	samples, err := newTestDecoder().Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(samples) != FrameSize {
		t.Fatalf("len(samples) = %d, want %d", len(samples), FrameSize)
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("samples[%d] = %v, want 0", i, s)
		}
	}
}

// TestDecode_SilenceWithDither checks that the default dither on a silent
// stream stays at the level of the lowest band energy.
func TestDecode_SilenceWithDither(t *testing.T) {
	data := buildStream(repeatMode(WindowModeShort, 2), nil, 0)

	samples, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	for i, s := range samples {
		if math.Abs(float64(s)) > 1e-3 {
			t.Fatalf("samples[%d] = %v, want |s| <= 1e-3", i, s)
		}
	}
}

func TestDecode_DeterministicWithSeededNoise(t *testing.T) {
	data := buildStream([]WindowMode{WindowModeLong, WindowModeShort, WindowModeLong}, nil, 4)

	decodeSeeded := func() []float32 {
		d := NewDecoder()
		d.SetConfiguration(Config{Noise: NewPolycounterNoise(0x2bb431ea, 0x206155b7)})
		samples, err := d.Decode(data)
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		return samples
	}

	a := decodeSeeded()
	b := decodeSeeded()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("samples[%d] differ: %v vs %v", i, a[i], b[i])
		}
	}
	if sumSquares(a) == 0 {
		t.Error("seeded noise fill produced silence")
	}
}

func TestDecode_EnergyMonotonic(t *testing.T) {
	// Band 19 is fully populated, so no noise is involved.
	lastBand := NumTotalBins - BandToNumBins()[NumBands-1]
	fill := func(frame int, bins []byte) {
		for i := lastBand; i < NumTotalBins; i++ {
			bins[i] = 1
		}
	}

	dec := newTestDecoder()
	prev := -1.0
	for _, residual := range []byte{8, 16, 24, 32} {
		samples, err := dec.Decode(buildStream(repeatMode(WindowModeLong, 2), fill, residual))
		if err != nil {
			t.Fatalf("Decode error: %v", err)
		}
		energy := sumSquares(samples)
		if energy <= prev {
			t.Errorf("residual %d: energy %g not above %g", residual, energy, prev)
		}
		prev = energy
	}
}

func TestDecode_SteadyToneAcrossFrames(t *testing.T) {
	// A single fully populated band repeated in every long frame produces the
	// same waveform each frame once the overlap is filled.
	fill := func(frame int, bins []byte) {
		for i := 0; i < 8; i++ {
			bins[i] = 1
		}
	}
	// Band 0 gets residual 32 in the first frame and 0 afterwards, all other
	// bands stay at the quiet floor.
	data := buildStream(repeatMode(WindowModeLong, 4), fill, 0)
	energyStart := len(data) - 4*NumBands
	data[energyStart] = 32

	samples, err := newTestDecoder().Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	for i := FrameSize; i < 2*FrameSize; i++ {
		if d := math.Abs(float64(samples[i] - samples[i+FrameSize])); d > 1e-4 {
			t.Fatalf("samples[%d] = %v, samples[%d] = %v, want equal",
				i, samples[i], i+FrameSize, samples[i+FrameSize])
		}
	}
	if sumSquares(samples) == 0 {
		t.Error("tone decoded to silence")
	}
}

func TestDecode_Truncated(t *testing.T) {
	modes := []WindowMode{WindowModeLong, WindowModeShort}
	full := buildStream(modes, nil, 0)
	energyStart := headerSize + len(modes) + len(modes)*NumTotalBins

	tests := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"partial header", 9},
		{"missing window modes", headerSize + 1},
		{"missing bins", energyStart - 1},
		{"no energies", energyStart},
		{"missing last energy", len(full) - 1},
	}

	dec := newTestDecoder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples, err := dec.Decode(full[:tt.size])
			if !errors.Is(err, ErrTruncatedStream) {
				t.Errorf("Decode(%d bytes) error = %v, want ErrTruncatedStream", tt.size, err)
			}
			if samples != nil {
				t.Errorf("Decode returned %d samples on error", len(samples))
			}
		})
	}

	if _, err := dec.Decode(full); err != nil {
		t.Errorf("Decode(full stream) error: %v", err)
	}
}

func TestDecode_UnknownWindowModeDecodesAsLong(t *testing.T) {
	fill := func(frame int, bins []byte) {
		for i := range bins {
			bins[i] = byte(i%7) - 3
		}
	}
	long := buildStream(repeatMode(WindowModeLong, 2), fill, 20)
	unknown := buildStream([]WindowMode{WindowModeLong, WindowMode(9)}, fill, 20)

	dec := newTestDecoder()
	a, err := dec.Decode(long)
	if err != nil {
		t.Fatalf("Decode(long) error: %v", err)
	}
	b, err := dec.Decode(unknown)
	if err != nil {
		t.Fatalf("Decode(unknown) error: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("samples[%d] = %v, want %v", i, b[i], a[i])
		}
	}
}

func TestDecode_IgnoresTagAndVersion(t *testing.T) {
	data := buildStream(repeatMode(WindowModeLong, 2), nil, 0)
	copy(data, "XXXX\xff\xff\xff\xff")

	samples, err := newTestDecoder().Decode(data)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if len(samples) != FrameSize {
		t.Errorf("len(samples) = %d, want %d", len(samples), FrameSize)
	}
}
