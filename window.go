package pulsejet

import "github.com/llehouerou/go-pulsejet/internal/filterbank"

// VorbisWindow evaluates sin(pi/2 * sin^2(pi*nPlusHalf/size)).
func VorbisWindow(nPlusHalf float64, size int) float64 {
	return filterbank.VorbisWindow(nPlusHalf, size)
}

// MDCTWindow returns the synthesis window at sample n of a block of the
// given size and mode.
func MDCTWindow(n, size int, mode WindowMode) float64 {
	return filterbank.MDCTWindow(n, size, mode)
}
