package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fourBytes [4]byte

func TestReadValueShortSource(t *testing.T) {
	assert := assert.New(t)
	var out fourBytes
	ok := ReadValue([]byte{1, 2, 3}, &out)
	assert.False(ok)
	assert.Equal(fourBytes{}, out)
}

func TestReadValueRoundTrip(t *testing.T) {
	assert := assert.New(t)
	src := []byte{1, 2, 3, 4, 5}
	var out fourBytes
	ok := ReadValue(src, &out)
	assert.True(ok)
	assert.Equal(fourBytes{1, 2, 3, 4}, out)
}

func TestWriteValueShortDest(t *testing.T) {
	assert := assert.New(t)
	val := fourBytes{9, 9, 9, 9}
	dst := make([]byte, 2)
	ok := WriteValue(&val, dst)
	assert.False(ok)
}

func TestWriteValueRoundTrip(t *testing.T) {
	assert := assert.New(t)
	val := fourBytes{1, 2, 3, 4}
	dst := make([]byte, 6)
	ok := WriteValue(&val, dst)
	assert.True(ok)
	assert.Equal([]byte{1, 2, 3, 4, 0, 0}, dst)
}

func TestSafePointerCastReadTooShort(t *testing.T) {
	assert := assert.New(t)
	p := SafePointerCastRead[fourBytes]([]byte{1, 2})
	assert.Nil(p)
}

func TestSafePointerCastReadView(t *testing.T) {
	assert := assert.New(t)
	buf := []byte{1, 2, 3, 4, 5}
	p := SafePointerCastRead[fourBytes](buf)
	if assert.NotNil(p) {
		assert.Equal(fourBytes{1, 2, 3, 4}, *p)
	}
}

func TestBigLittleEndianRoundTrip(t *testing.T) {
	assert := assert.New(t)
	be := BigEndian32(0x01020304)
	assert.Equal(uint32(0x01020304), ReadBigEndian32(be[:]))
	le := LittleEndian32(0x01020304)
	assert.Equal(uint32(0x01020304), ReadLittleEndian32(le[:]))
	assert.NotEqual(be, le)
}
