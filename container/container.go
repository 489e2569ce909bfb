package container

// The on-disk save container ("packed" form) is a 24-byte header followed by
// a gzip stream of the actual payload.  The header is a 16-byte GUID magic
// plus an 8-byte version stamp which the game apparently never checks beyond
// "is one present".

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

const HEADER_SIZE = 24

// First 16 bytes of every packed global.dat
var packed_magic = []byte{
	0xF9, 0x53, 0x8B, 0x83, 0x1F, 0x36, 0x32, 0x43,
	0xBA, 0xAE, 0x0D, 0x17, 0x86, 0x5D, 0x08, 0x54,
}

// Observed stamp from a real file.  Opaque to us; downstream only needs *a*
// valid-looking stamp to be present.
var version_stamp = []byte{0xC2, 0x32, 0x0B, 0x72, 0x66, 0x00, 0x00, 0x00}

var ErrFormat = errors.New("missing packed-container magic")

// CorruptContainerError means the header looked right but the compressed
// payload didn't inflate.
type CorruptContainerError struct {
	Err error
}

func (e *CorruptContainerError) Error() string {
	return fmt.Sprintf("corrupt container: %v", e.Err)
}

func (e *CorruptContainerError) Unwrap() error {
	return e.Err
}

// Is_packed reports whether data starts with the packed-container magic.
// Anything too short to hold the magic is simply not packed.
func Is_packed(data []byte) bool {
	if len(data) < len(packed_magic) {
		return false
	}
	return bytes.Equal(data[:len(packed_magic)], packed_magic)
}

// Unpack strips the 24-byte header and inflates the rest.
func Unpack(data []byte) ([]byte, error) {
	if !Is_packed(data) || len(data) < HEADER_SIZE {
		return nil, ErrFormat
	}

	zr, err := gzip.NewReader(bytes.NewReader(data[HEADER_SIZE:]))
	if err != nil {
		return nil, &CorruptContainerError{err}
	}
	defer zr.Close()

	payload, err := io.ReadAll(zr)
	if err != nil {
		return nil, &CorruptContainerError{err}
	}

	return payload, nil
}

// Pack deflates a payload and prepends a reconstructed header.
// Unpack(Pack(x)) returns x byte for byte; the compressed bytes themselves
// are not guaranteed to match any particular original file.
func Pack(payload []byte) ([]byte, error) {
	out := &bytes.Buffer{}
	out.Write(packed_magic)
	out.Write(version_stamp)

	zw := gzip.NewWriter(out)
	if _, err := zw.Write(payload); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
