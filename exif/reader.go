package exif

import (
	"encoding/binary"
	"fmt"
)

// reader provides random-access reads of unsigned integers from an immutable
// byte buffer. Segment-level JPEG fields are always big-endian; TIFF-internal
// fields use the byte order detected from the TIFF header, so every read takes
// the order explicitly.
type reader struct {
	data []byte
}

func (r reader) uint8(offset int64) (uint8, error) {
	if err := r.check(offset, 1); err != nil {
		return 0, err
	}
	return r.data[offset], nil
}

func (r reader) uint16(byteOrder binary.ByteOrder, offset int64) (uint16, error) {
	if err := r.check(offset, 2); err != nil {
		return 0, err
	}
	return byteOrder.Uint16(r.data[offset : offset+2]), nil
}

func (r reader) uint32(byteOrder binary.ByteOrder, offset int64) (uint32, error) {
	if err := r.check(offset, 4); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(r.data[offset : offset+4]), nil
}

func (r reader) check(offset, size int64) error {
	if offset < 0 {
		return fmt.Errorf("negative offset not allowed: %d", offset)
	}
	if offset+size > int64(len(r.data)) {
		return fmt.Errorf("read of %d bytes at offset %d exceeds buffer length %d", size, offset, len(r.data))
	}
	return nil
}
