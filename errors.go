package pulsejet

import (
	"errors"
	"fmt"

	"github.com/llehouerou/go-pulsejet/internal/bits"
	"github.com/llehouerou/go-pulsejet/internal/tables"
)

// Error represents a pulsejet decoder error code.
type Error int

// Error codes.
const (
	ErrNone                     Error = 0
	ErrTruncatedStream          Error = 1
	ErrInvalidBandConfiguration Error = 2
	ErrInvalidTag               Error = 3
	ErrUnsupportedVersion       Error = 4
	ErrNilDecoder               Error = 5
	ErrNilBuffer                Error = 6
)

var errMessages = [...]string{
	"No error",
	"Truncated stream",
	"Invalid band configuration",
	"Invalid sample tag",
	"Unsupported codec version",
	"Decoder is nil",
	"Input buffer is nil",
}

// Error implements the error interface.
func (e Error) Error() string {
	return GetErrorMessage(e)
}

// GetErrorMessage returns the message for an error code.
func GetErrorMessage(code Error) string {
	if code >= 0 && int(code) < len(errMessages) {
		return errMessages[code]
	}
	return "unknown error"
}

// classify tags an internal error with its public code. The result matches
// both the code and the original error under errors.Is.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bits.ErrTruncated):
		return fmt.Errorf("%w: %w", ErrTruncatedStream, err)
	case errors.Is(err, tables.ErrBandLayout):
		return fmt.Errorf("%w: %w", ErrInvalidBandConfiguration, err)
	default:
		return err
	}
}
