package exif

import "encoding/binary"

// findTIFFHeader walks the marker segments following the start-of-image
// marker, looking for the first Exif APP1 segment. It returns the offset of
// the TIFF header carried by that segment, or ok=false when the stream holds
// no usable Exif segment.
//
// Segment markers and lengths are always big-endian, regardless of the byte
// order the TIFF structure declares for itself.
func (p *Parser) findTIFFHeader() (int64, bool, error) {
	position := int64(markerStart)
	// A position leaving no room for a full marker and length pair is past the
	// last segment the buffer can hold: the scan is over, not in error.
	for position+4 <= int64(len(p.r.data)) {
		marker, err := p.r.uint16(binary.BigEndian, position)
		if err != nil {
			return 0, false, err
		}

		if marker == MarkerApp1 {
			identifier, err := p.r.uint32(binary.BigEndian, position+4)
			if err != nil {
				return 0, false, err
			}
			if identifier != ExifIdentifier {
				p.warnf("APP1 segment at offset %d does not carry an Exif payload: 0x%X", position, identifier)
				return 0, false, nil
			}
			return position + tiffHeaderStart, true, nil
		}

		// The length field counts its own 2 bytes but not the marker's.
		length, err := p.r.uint16(binary.BigEndian, position+2)
		if err != nil {
			return 0, false, err
		}

		next := position + 2 + int64(length)
		if next <= position {
			// The advance is at least 2 bytes, so this cannot trigger; it keeps
			// the scan strictly monotonic no matter what the length field holds.
			return 0, false, nil
		}
		position = next
	}

	p.warnf("no Exif segment in %d bytes", len(p.r.data))
	return 0, false, nil
}
