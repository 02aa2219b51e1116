// Package filterbank implements pulsejet synthesis (IMDCT + windowing + overlap-add).
package filterbank

import (
	"github.com/llehouerou/go-pulsejet/internal/mdct"
	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// Subframes describes how a frame is split into transform blocks.
type Subframes struct {
	Count        int // Number of subframes (1 or 8)
	WindowSize   int // IMDCT output length of each subframe
	WindowOffset int // Offset of the first subframe within the frame
}

// SubframesFor returns the subframe configuration of a window mode.
// Every mode other than Short uses a single long block.
func SubframesFor(mode tables.WindowMode) Subframes {
	if mode == tables.WindowModeShort {
		return Subframes{
			Count:        tables.NumShortWindowsPerFrame,
			WindowSize:   tables.ShortWindowSize,
			WindowOffset: tables.LongWindowSize/4 - tables.ShortWindowSize/4,
		}
	}
	return Subframes{
		Count:      1,
		WindowSize: tables.LongWindowSize,
	}
}

// Offset returns the position of subframe i relative to the frame start.
// Consecutive subframes overlap by half a window.
func (s Subframes) Offset(i int) int {
	return s.WindowOffset + i*s.WindowSize/2
}

// FilterBank holds precomputed windows and a reusable transform buffer.
type FilterBank struct {
	windows   map[tables.WindowMode][]float32
	longTable []float32 // Fallback for unknown modes

	transfBuf []float32 // LongWindowSize samples of IMDCT output
}

// NewFilterBank creates a FilterBank with windows for every mode.
func NewFilterBank() *FilterBank {
	long := windowTable(tables.LongWindowSize, tables.WindowModeLong)
	return &FilterBank{
		windows: map[tables.WindowMode][]float32{
			tables.WindowModeLong:  long,
			tables.WindowModeShort: windowTable(tables.ShortWindowSize, tables.WindowModeShort),
			tables.WindowModeStart: windowTable(tables.LongWindowSize, tables.WindowModeStart),
			tables.WindowModeStop:  windowTable(tables.LongWindowSize, tables.WindowModeStop),
		},
		longTable: long,
		transfBuf: make([]float32, tables.LongWindowSize),
	}
}

// Window returns the precomputed window for mode.
func (fb *FilterBank) Window(mode tables.WindowMode) []float32 {
	if w, ok := fb.windows[mode]; ok {
		return w
	}
	return fb.longTable
}

// Synthesize transforms one subframe of spectral bins, applies the window of
// mode and adds the result into out starting at frameOffset +
// sub.Offset(index).
//
// out is accumulated into, never overwritten; overlapping halves of
// neighbouring blocks sum to the reconstructed signal. out must extend at
// least sub.WindowSize samples past the subframe position.
func (fb *FilterBank) Synthesize(spec []float32, mode tables.WindowMode, sub Subframes,
	index, frameOffset int, out []float32) {

	block := fb.transfBuf[:sub.WindowSize]
	mdct.IMDCT(spec, block)

	window := fb.Window(mode)
	dst := out[frameOffset+sub.Offset(index):]
	dst = dst[:sub.WindowSize]
	for n, v := range block {
		dst[n] += v * window[n]
	}
}
