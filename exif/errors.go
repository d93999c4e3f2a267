package exif

import "fmt"

// ErrFormat reports a structural violation of the JPEG or TIFF format. It
// aborts the whole operation: a stream failing these checks carries no
// trustworthy Exif data.
type ErrFormat struct {
	message string
}

func (e ErrFormat) Error() string {
	return e.message
}

func invalidSignature(value uint16) ErrFormat {
	return ErrFormat{message: fmt.Sprintf("not a JPEG stream: expected start-of-image 0x%X, got 0x%X", StartOfImage, value)}
}

func invalidMagicNumber(value uint16) ErrFormat {
	return ErrFormat{message: fmt.Sprintf("not a TIFF structure: expected endian assertion 0x%X, got 0x%X", MagicNumber, value)}
}
