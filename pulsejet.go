package pulsejet

import (
	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// SampleTag is the four-byte tag at the start of every stream.
const SampleTag = "PLSJ"

// Codec version produced by compatible encoders.
const (
	CodecVersionMajor = 0
	CodecVersionMinor = 1
)

// Format constants. These must match the encoder exactly.
const (
	FrameSize               = tables.FrameSize
	NumShortWindowsPerFrame = tables.NumShortWindowsPerFrame
	LongWindowSize          = tables.LongWindowSize
	ShortWindowSize         = tables.ShortWindowSize
	NumBands                = tables.NumBands
	NumTotalBins            = tables.NumTotalBins
)

// BandToNumBins returns the per-band bin allocation of a frame.
func BandToNumBins() [NumBands]int {
	return tables.BandToNumBins
}

// WindowMode selects the block size and window envelope of a frame.
type WindowMode = tables.WindowMode

// Window modes.
const (
	WindowModeLong  = tables.WindowModeLong
	WindowModeShort = tables.WindowModeShort
	WindowModeStart = tables.WindowModeStart
	WindowModeStop  = tables.WindowModeStop
)

// DefaultSampleRate is the sample rate reported on go-audio buffers when
// Config.SampleRate is zero. Streams carry no rate of their own.
const DefaultSampleRate = 44100

// Config contains decoder configuration options.
type Config struct {
	SampleRate uint32      // Rate reported on decoded buffers
	Noise      NoiseSource // Noise fill source; nil uses GlobalNoise
}

// Header contains the fixed fields at the start of a stream.
type Header struct {
	Tag          string // Four-byte sample tag
	VersionMajor uint16 // Codec major version
	VersionMinor uint16 // Codec minor version
	FrameCount   uint16 // Stored frame count
}

// NumSamples returns the number of samples the stream decodes to.
func (h Header) NumSamples() int {
	return int(h.FrameCount) * FrameSize
}
