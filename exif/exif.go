// Package exif extracts the orientation value from the Exif metadata embedded
// in a JPEG byte stream, so that callers can correct display rotation and
// mirroring without re-encoding pixel data.
package exif

import (
	"encoding/binary"
	"fmt"
)

// Code is an Exif orientation value as stored in the orientation entry of the
// first IFD. The meaning of the 8 standard values is defined by the TIFF
// specification; values outside 1..8 are returned verbatim, without
// validation.
type Code int

// Unknown means no usable orientation could be determined: the stream carries
// no Exif segment, or its first IFD has no orientation entry.
const Unknown Code = -1

func (c Code) String() string {
	switch c {
	case Unknown:
		return "unknown"
	case 1:
		return "normal"
	case 2:
		return "flip horizontal"
	case 3:
		return "rotate 180°"
	case 4:
		return "flip vertical"
	case 5:
		return "transpose"
	case 6:
		return "rotate 90°"
	case 7:
		return "transverse"
	case 8:
		return "rotate 270°"
	}
	return fmt.Sprintf("orientation(%d)", int(c))
}

// Parser extracts orientation metadata from a single immutable byte buffer.
// It holds no state across calls and may be used from multiple goroutines as
// long as the buffer is not mutated underneath it.
type Parser struct {
	r     reader
	warnf func(format string, args ...any)
}

type Option func(*Parser)

// WithWarnFunc injects an observer for diagnostics on the recoverable path,
// such as a missing Exif segment. Diagnostics never accompany an error: they
// explain why the result is Unknown.
func WithWarnFunc(warnf func(format string, args ...any)) Option {
	return func(p *Parser) {
		p.warnf = warnf
	}
}

func NewParser(data []byte, opts ...Option) *Parser {
	p := &Parser{
		r:     reader{data: data},
		warnf: func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Orientation is a convenience wrapper around NewParser(data).Orientation().
func Orientation(data []byte) (Code, error) {
	return NewParser(data).Orientation()
}

// Orientation returns the orientation stored in the buffer's Exif metadata.
//
// Structural violations of the JPEG or TIFF format are returned as errors.
// The absence of optional structure is not an error: a stream without an Exif
// segment, or whose first IFD has no orientation entry, yields Unknown.
func (p *Parser) Orientation() (Code, error) {
	if err := p.validateSignature(); err != nil {
		return Unknown, err
	}

	tiffHeader, ok, err := p.findTIFFHeader()
	if err != nil {
		return Unknown, err
	}
	if !ok {
		return Unknown, nil
	}

	byteOrder, ifd0, err := p.readTIFFHeader(tiffHeader)
	if err != nil {
		return Unknown, err
	}

	code, ok, err := p.resolveOrientation(byteOrder, ifd0)
	if err != nil {
		return Unknown, err
	}
	if !ok {
		return Unknown, nil
	}

	return code, nil
}

// validateSignature confirms the buffer starts with the JPEG start-of-image
// marker.
func (p *Parser) validateSignature() error {
	value, err := p.r.uint16(binary.BigEndian, 0)
	if err != nil {
		return err
	}
	if value != StartOfImage {
		return invalidSignature(value)
	}

	return nil
}

// resolveOrientation scans the IFD at position for the orientation entry and
// reads its raw value: the first 2 bytes of the entry's value field, decoded
// with the detected byte order. The value is passed through unvalidated.
func (p *Parser) resolveOrientation(byteOrder binary.ByteOrder, position int64) (Code, bool, error) {
	walker, err := newIFDWalker(p.r, byteOrder, position)
	if err != nil {
		return Unknown, false, err
	}

	for {
		entry, ok, err := walker.next()
		if err != nil {
			return Unknown, false, err
		}
		if !ok {
			break
		}
		if entry.Tag != OrientationTag {
			continue
		}

		value, err := p.r.uint16(byteOrder, walker.entriesStart+entry.Offset+entryValue)
		if err != nil {
			return Unknown, false, err
		}

		return Code(value), true, nil
	}

	p.warnf("no orientation entry among the %d entries of the first IFD", walker.entries)
	return Unknown, false, nil
}
