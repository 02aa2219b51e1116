// Package tables contains the fixed pulsejet format tables.
// This file provides the band layout and its lookup functions.
package tables

import (
	"errors"
	"fmt"
)

// ErrBandLayout indicates that a band's bin count does not divide evenly
// among the subframes of a frame.
var ErrBandLayout = errors.New("tables: band bin count not divisible by subframe count")

// Band layout constants.
const (
	// NumBands is the number of independently energy-coded bands per subframe.
	NumBands = 20

	// NumTotalBins is the number of quantized bins stored per frame.
	NumTotalBins = 856
)

// BandToNumBins is the number of bins allotted to each band across a whole
// frame. A short-window frame splits each band's bins evenly among its
// subframes.
var BandToNumBins = [NumBands]int{
	8, 8, 8, 8, 8, 8, 8, 8, 16, 16, 24, 32, 32, 40, 48, 64, 80, 120, 144, 176,
}

// GetNumBins returns the number of bins of band in one of numSubframes
// subframes.
// Returns ErrBandLayout if band is out of range or its bins do not split
// evenly.
func GetNumBins(band, numSubframes int) (int, error) {
	if band < 0 || band >= NumBands {
		return 0, fmt.Errorf("%w: band %d out of range", ErrBandLayout, band)
	}
	if numSubframes <= 0 || BandToNumBins[band]%numSubframes != 0 {
		return 0, fmt.Errorf("%w: band %d has %d bins, %d subframes",
			ErrBandLayout, band, BandToNumBins[band], numSubframes)
	}
	return BandToNumBins[band] / numSubframes, nil
}
