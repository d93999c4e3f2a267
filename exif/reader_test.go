package exif

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReader(t *testing.T) {
	r := reader{data: []byte{0x01, 0x02, 0x03, 0x04}}

	value8, err := r.uint8(3)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x04, value8)

	value16, err := r.uint16(binary.BigEndian, 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x0203, value16)

	value16, err = r.uint16(binary.LittleEndian, 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x0302, value16)

	value32, err := r.uint32(binary.BigEndian, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x01020304, value32)

	value32, err = r.uint32(binary.LittleEndian, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 0x04030201, value32)
}

func TestReader_OutOfBounds(t *testing.T) {
	r := reader{data: []byte{0x01, 0x02, 0x03, 0x04}}

	_, err := r.uint8(4)
	assert.Error(t, err)

	_, err = r.uint16(binary.BigEndian, 3)
	assert.Error(t, err)

	_, err = r.uint32(binary.BigEndian, 1)
	assert.Error(t, err)

	_, err = r.uint16(binary.BigEndian, -1)
	assert.Error(t, err)
}
