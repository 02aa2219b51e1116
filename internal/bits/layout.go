package bits

import (
	"encoding/binary"
	"fmt"

	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// Stream header geometry.
const (
	// TagSize is the size of the leading sample tag.
	TagSize = 4

	// VersionSize is the size of the codec version field.
	VersionSize = 4

	// HeaderSize is the size of tag, version and frame count together.
	HeaderSize = TagSize + VersionSize + 2

	frameCountOffset = TagSize + VersionSize
)

// Layout holds the three read cursors of an encoded stream.
//
// Each cursor starts at its region:
//   - WindowModes: one byte per decoded frame
//   - Bins: NumTotalBins signed bytes per decoded frame
//   - Energies: one residual byte per (frame, subframe, band), up to the end
//     of the stream
type Layout struct {
	StoredFrameCount int // Frame count stored in the header

	WindowModes *Cursor
	Bins        *Cursor
	Energies    *Cursor
}

// ReadFrameCount reads the stored frame count from a stream header.
func ReadFrameCount(data []byte) (int, error) {
	if len(data) < HeaderSize {
		return 0, fmt.Errorf("%w: header needs %d bytes, stream has %d",
			ErrTruncated, HeaderSize, len(data))
	}
	return int(binary.LittleEndian.Uint16(data[frameCountOffset:])), nil
}

// ParseLayout splits an encoded stream into its regions.
//
// The header, window-mode and bin regions have fixed sizes given by the
// frame count and are checked up front. The energy region's size depends on
// the window modes, so its end is only enforced as it is read.
func ParseLayout(data []byte) (*Layout, error) {
	storedFrameCount, err := ReadFrameCount(data)
	if err != nil {
		return nil, err
	}

	// One extra frame is decoded; its lead-in is trimmed from the output.
	numFrames := storedFrameCount + 1

	windowModeStart := HeaderSize
	binStart := windowModeStart + numFrames
	energyStart := binStart + numFrames*tables.NumTotalBins

	if len(data) < energyStart {
		return nil, fmt.Errorf("%w: %d frames need %d bytes before energies, stream has %d",
			ErrTruncated, numFrames, energyStart, len(data))
	}

	return &Layout{
		StoredFrameCount: storedFrameCount,
		WindowModes:      NewCursor("window mode", data, windowModeStart, binStart),
		Bins:             NewCursor("bin", data, binStart, energyStart),
		Energies:         NewCursor("energy", data, energyStart, len(data)),
	}, nil
}

// NumFrames returns the number of frames to decode, including the extra
// leading frame.
func (l *Layout) NumFrames() int {
	return l.StoredFrameCount + 1
}

// NumSamples returns the number of output samples.
func (l *Layout) NumSamples() int {
	return l.StoredFrameCount * tables.FrameSize
}
