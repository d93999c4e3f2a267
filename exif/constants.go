package exif

const (
	// StartOfImage is the marker every JPEG stream must begin with
	StartOfImage = 0xFFD8
	// MarkerApp1 is the marker of the APP1 application segment, which carries Exif metadata
	MarkerApp1 = 0xFFE1

	// ExifIdentifier is the value of the 4 ASCII bytes ("Exif") identifying an APP1 payload as Exif
	ExifIdentifier = 0x45786966

	// IntelByteOrder is the TIFF standard value to indicate Intel byte ordering (aka little-endian)
	IntelByteOrder = 0x4949
	// MotorolaByteOrder is the TIFF standard value to indicate Motorola byte ordering (aka big-endian)
	MotorolaByteOrder = 0x4D4D

	// MagicNumber is the endian assertion constant of a TIFF header, once decoded with the detected byte order
	MagicNumber = 0x002A

	// OrientationTag is the ID of the IFD entry holding the image orientation
	OrientationTag = 0x0112
)

const (
	// markerStart is the offset of the first segment marker, right after the start-of-image marker
	markerStart = 2
	// tiffHeaderStart is the offset of the TIFF header relative to its APP1 segment marker:
	// 2 marker bytes, 2 length bytes, 4 identifier bytes, 2 padding bytes
	tiffHeaderStart = 10

	// entrySize is the size of an IFD entry, in bytes
	entrySize = 12

	// Field offsets within an IFD entry

	entryTag   = 0
	entryType  = 2
	entryCount = 4
	entryValue = 8
)
