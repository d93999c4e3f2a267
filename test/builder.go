package test

import "encoding/binary"

type endianness interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Builder assembles synthetic JPEG/Exif byte streams for tests. Values are
// appended using the current byte order, which can be switched mid-stream:
// JPEG segment fields are always big-endian, while TIFF-internal fields
// follow the byte order under test.
type Builder struct {
	byteOrder endianness
	buffer    []byte
}

func NewBuilder() *Builder {
	return &Builder{
		byteOrder: binary.BigEndian,
		buffer:    make([]byte, 0),
	}
}

// BigEndian switches the byte order used by subsequent appends.
func (b *Builder) BigEndian() *Builder {
	b.byteOrder = binary.BigEndian

	return b
}

// LittleEndian switches the byte order used by subsequent appends.
func (b *Builder) LittleEndian() *Builder {
	b.byteOrder = binary.LittleEndian

	return b
}

func (b *Builder) WithBytes(values ...byte) *Builder {
	b.buffer = append(b.buffer, values...)

	return b
}

func (b *Builder) WithString(value string) *Builder {
	b.buffer = append(b.buffer, []byte(value)...)

	return b
}

func (b *Builder) WithUints16(values ...uint16) *Builder {
	for _, value := range values {
		b.buffer = b.byteOrder.AppendUint16(b.buffer, value)
	}

	return b
}

func (b *Builder) WithUints32(values ...uint32) *Builder {
	for _, value := range values {
		b.buffer = b.byteOrder.AppendUint32(b.buffer, value)
	}

	return b
}

func (b *Builder) Build() []byte {
	return b.buffer
}
