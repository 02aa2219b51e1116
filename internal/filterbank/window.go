// Package filterbank window.go defines the window envelopes of each mode.
package filterbank

import (
	"math"

	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// VorbisWindow evaluates the power-complementary window
// sin(pi/2 * sin^2(pi*x/size)) at x = nPlusHalf.
func VorbisWindow(nPlusHalf float64, size int) float64 {
	sineWindow := math.Sin(math.Pi / float64(size) * nPlusHalf)
	return math.Sin(math.Pi / 2.0 * sineWindow * sineWindow)
}

// Transition offsets of the short-window slopes inside a long block.
const (
	startSlopeOffset = tables.LongWindowSize*3/4 - tables.ShortWindowSize/4
	stopSlopeOffset  = tables.LongWindowSize/4 - tables.ShortWindowSize/4
	shortSlopeLength = tables.ShortWindowSize / 2
)

// MDCTWindow returns the window value at sample n of a block of the given
// size and mode.
//
// Start blocks keep the long rising half, hold 1.0, fall along a short
// window slope and end in zeros. Stop blocks mirror that. Long, Short and
// unknown modes use VorbisWindow at the block size.
func MDCTWindow(n, size int, mode tables.WindowMode) float64 {
	nPlusHalf := float64(n) + 0.5

	switch mode {
	case tables.WindowModeStart:
		switch {
		case n >= startSlopeOffset+shortSlopeLength:
			return 0.0
		case n >= startSlopeOffset:
			return 1.0 - VorbisWindow(nPlusHalf-startSlopeOffset, tables.ShortWindowSize)
		case n >= tables.LongWindowSize/2:
			return 1.0
		}
	case tables.WindowModeStop:
		switch {
		case n < stopSlopeOffset:
			return 0.0
		case n < stopSlopeOffset+shortSlopeLength:
			return VorbisWindow(nPlusHalf-stopSlopeOffset, tables.ShortWindowSize)
		case n < tables.LongWindowSize/2:
			return 1.0
		}
	}

	return VorbisWindow(nPlusHalf, size)
}

// windowTable precomputes MDCTWindow over a whole block.
func windowTable(size int, mode tables.WindowMode) []float32 {
	w := make([]float32, size)
	for n := range w {
		w[n] = float32(MDCTWindow(n, size, mode))
	}
	return w
}
