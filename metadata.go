package pulsejet

import (
	"encoding/binary"
	"fmt"

	"github.com/llehouerou/go-pulsejet/internal/bits"
)

// ReadHeader parses the fixed header fields of a stream without checking
// them.
//
// Layout (little-endian):
//   - bytes 0-3: sample tag
//   - bytes 4-5: codec major version
//   - bytes 6-7: codec minor version
//   - bytes 8-9: stored frame count
func ReadHeader(input []byte) (Header, error) {
	if input == nil {
		return Header{}, ErrNilBuffer
	}

	frameCount, err := bits.ReadFrameCount(input)
	if err != nil {
		return Header{}, classify(err)
	}

	return Header{
		Tag:          string(input[:bits.TagSize]),
		VersionMajor: binary.LittleEndian.Uint16(input[bits.TagSize:]),
		VersionMinor: binary.LittleEndian.Uint16(input[bits.TagSize+2:]),
		FrameCount:   uint16(frameCount),
	}, nil
}

// CheckSample reads the header and verifies that the stream carries the
// pulsejet tag and a version this decoder understands.
//
// The major version must match. Before 1.0 every minor version is
// incompatible with the others, so the minor version must match too.
//
// Decode does not call CheckSample; callers that accept untrusted input
// should.
func CheckSample(input []byte) (Header, error) {
	hdr, err := ReadHeader(input)
	if err != nil {
		return Header{}, err
	}

	if hdr.Tag != SampleTag {
		return hdr, fmt.Errorf("%w: %q", ErrInvalidTag, hdr.Tag)
	}
	if !versionSupported(hdr.VersionMajor, hdr.VersionMinor) {
		return hdr, fmt.Errorf("%w: %d.%d, decoder supports %d.%d",
			ErrUnsupportedVersion, hdr.VersionMajor, hdr.VersionMinor,
			CodecVersionMajor, CodecVersionMinor)
	}
	return hdr, nil
}

func versionSupported(major, minor uint16) bool {
	if major != CodecVersionMajor {
		return false
	}
	if CodecVersionMajor == 0 && minor != CodecVersionMinor {
		return false
	}
	return true
}
