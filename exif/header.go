package exif

import "encoding/binary"

// readTIFFHeader detects the byte order of the TIFF structure starting at
// offset, validates its endian assertion and returns the detected order along
// with the absolute position of the first IFD.
func (p *Parser) readTIFFHeader(offset int64) (binary.ByteOrder, int64, error) {
	value, err := p.r.uint16(binary.BigEndian, offset)
	if err != nil {
		return nil, 0, err
	}
	byteOrder := readEndianness(value)

	magicNumber, err := p.r.uint16(byteOrder, offset+2)
	if err != nil {
		return nil, 0, err
	}
	if magicNumber != MagicNumber {
		return nil, 0, invalidMagicNumber(magicNumber)
	}

	// The IFD offset is relative to the start of the TIFF header.
	distance, err := p.r.uint32(byteOrder, offset+4)
	if err != nil {
		return nil, 0, err
	}

	return byteOrder, offset + int64(distance), nil
}

// readEndianness maps the byte-order field of a TIFF header to a byte order.
// Only the Intel marker selects little-endian: any other value, Motorola or
// not, is read as big-endian and left for the endian assertion to reject.
func readEndianness(value uint16) binary.ByteOrder {
	if value == IntelByteOrder {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
