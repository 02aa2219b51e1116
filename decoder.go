package pulsejet

import (
	"github.com/go-audio/audio"

	"github.com/llehouerou/go-pulsejet/internal/output"
)

// Decoder decodes pulsejet streams with a fixed configuration.
//
// A Decoder keeps no state between calls. Energy prediction state and
// buffers are created per call, so a Decoder can be reused for any number
// of streams.
type Decoder struct {
	config Config
}

// NewDecoder creates a decoder with default settings: DefaultSampleRate and
// GlobalNoise.
func NewDecoder() *Decoder {
	return &Decoder{
		config: Config{
			SampleRate: DefaultSampleRate,
			Noise:      GlobalNoise(),
		},
	}
}

// Config returns the current decoder configuration.
func (d *Decoder) Config() Config {
	return d.config
}

// SetConfiguration replaces the decoder configuration. A zero SampleRate
// or nil Noise selects the default.
func (d *Decoder) SetConfiguration(cfg Config) {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Noise == nil {
		cfg.Noise = GlobalNoise()
	}
	d.config = cfg
}

// Decode decodes a whole stream into normalized float32 samples.
//
// Returns ErrTruncatedStream if the stream ends before any region the
// header and window modes imply, and ErrInvalidBandConfiguration if a band
// cannot be split across the frame's subframes. No samples are returned on
// error.
func (d *Decoder) Decode(input []byte) ([]float32, error) {
	if d == nil {
		return nil, ErrNilDecoder
	}
	if input == nil {
		return nil, ErrNilBuffer
	}
	return decodeSamples(input, d.config.Noise)
}

// DecodeFloat32 is an alias for Decode.
func (d *Decoder) DecodeFloat32(input []byte) ([]float32, error) {
	return d.Decode(input)
}

// DecodeInt16 decodes a whole stream into 16-bit PCM. Samples outside
// [-1, 1] are clipped.
func (d *Decoder) DecodeInt16(input []byte) ([]int16, error) {
	samples, err := d.Decode(input)
	if err != nil {
		return nil, err
	}

	pcm := make([]int16, len(samples))
	output.ToPCM16Bit(samples, pcm)
	return pcm, nil
}

// DecodeBuffer decodes a whole stream into a mono go-audio float buffer at
// the configured sample rate.
func (d *Decoder) DecodeBuffer(input []byte) (*audio.Float32Buffer, error) {
	samples, err := d.Decode(input)
	if err != nil {
		return nil, err
	}

	return &audio.Float32Buffer{
		Format:         d.Format(),
		Data:           samples,
		SourceBitDepth: 32,
	}, nil
}

// DecodeIntBuffer decodes a whole stream into a mono go-audio integer
// buffer holding 16-bit samples.
func (d *Decoder) DecodeIntBuffer(input []byte) (*audio.IntBuffer, error) {
	samples, err := d.Decode(input)
	if err != nil {
		return nil, err
	}

	return &audio.IntBuffer{
		Format:         d.Format(),
		Data:           output.ToInt(samples),
		SourceBitDepth: 16,
	}, nil
}

// Format returns the go-audio format of decoded buffers.
func (d *Decoder) Format() *audio.Format {
	return &audio.Format{
		NumChannels: 1,
		SampleRate:  int(d.config.SampleRate),
	}
}
