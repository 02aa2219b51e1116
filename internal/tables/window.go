// Package tables window.go defines frame geometry and window modes.
package tables

import "strconv"

// Frame geometry.
const (
	// FrameSize is the number of output samples per frame.
	FrameSize = 1024

	// NumShortWindowsPerFrame is the subframe count of a short-window frame.
	NumShortWindowsPerFrame = 8

	// LongWindowSize is the IMDCT output length of a long block.
	LongWindowSize = FrameSize * 2

	// ShortWindowSize is the IMDCT output length of a short block.
	ShortWindowSize = LongWindowSize / NumShortWindowsPerFrame
)

// WindowMode selects the block size and window envelope of a frame.
type WindowMode uint8

// Window modes as stored in the stream.
const (
	WindowModeLong  WindowMode = 0 // One long block
	WindowModeShort WindowMode = 1 // Eight short blocks
	WindowModeStart WindowMode = 2 // Long block closing into short blocks
	WindowModeStop  WindowMode = 3 // Long block opening from short blocks
)

var windowModeNames = [...]string{"Long", "Short", "Start", "Stop"}

// String returns the mode name, or "WindowMode(n)" for unknown values.
func (m WindowMode) String() string {
	if int(m) < len(windowModeNames) {
		return windowModeNames[m]
	}
	return "WindowMode(" + strconv.Itoa(int(m)) + ")"
}
