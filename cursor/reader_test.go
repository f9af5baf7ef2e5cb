package cursor

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPixels(n int) []uint32 {
	p := make([]uint32, n)
	for i := range p {
		p[i] = uint32(i) * 0x01010101
	}
	return p
}

func encodeImages(t *testing.T, images ...Image) []byte {
	t.Helper()

	f := NewFile()
	for _, m := range images {
		require.NoError(t, f.Add(m))
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, f))

	return b.Bytes()
}

func TestDecodeRoundTrip(t *testing.T) {
	images := []Image{
		NewImage(16, 16, 16, 2, 3, 0, testPixels(16*16)),
		NewImage(32, 32, 32, 4, 6, 50, testPixels(32*32)),
	}

	decoded, err := Decode(bytes.NewReader(encodeImages(t, images...)))
	require.NoError(t, err)

	assert.Equal(t, images, decoded)
}

func TestIdentityScaleRoundTrip(t *testing.T) {
	m := NewImage(24, 24, 24, 5, 7, 100, testPixels(24*24))

	scaled, err := Scale(m, 1)
	require.NoError(t, err)

	decoded, err := Decode(bytes.NewReader(encodeImages(t, scaled)))
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	assert.Equal(t, m, decoded[0])
}

func TestDecodeConfig(t *testing.T) {
	f := NewFile()
	for _, size := range []uint32{16, 24, 32} {
		require.NoError(t, f.Add(NewImage(size, size, size, 0, 0, 0, testPixels(int(size*size)))))
	}

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, f))

	config, err := DecodeConfig(b)
	require.NoError(t, err)

	assert.Equal(t, []uint32{16, 24, 32}, config.Sizes)
}

func TestDecodeNotXcursor(t *testing.T) {
	for _, content := range []string{
		"",
		"Xcu",
		"this is not a cursor file",
		"\x89PNG\r\n\x1a\n\x00\x00\x00\x00\x00\x00\x00\x00",
	} {
		_, err := Decode(strings.NewReader(content))
		assert.ErrorIs(t, err, ErrFormat, "%q", content)
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := encodeImages(t, NewImage(8, 8, 8, 0, 0, 0, testPixels(64)))

	for _, n := range []int{len(data) - 5, 40, 20} {
		_, err := Decode(bytes.NewReader(data[:n]))
		assert.ErrorIs(t, err, ErrFormat, "truncated to %d bytes", n)
	}
}

func TestDecodeSkipsCommentChunks(t *testing.T) {
	b := new(bytes.Buffer)
	b.WriteString(magic)
	for _, v := range []uint32{
		headerByteLength, fileVersion, 2,
		0xfffe0001, 1, 40, // comment entry
		imageChunkType, 1, 64,
		20, 0xfffe0001, 1, 1, 4, // comment chunk
	} {
		require.NoError(t, binary.Write(b, binary.LittleEndian, v))
	}
	b.WriteString("test")
	for _, v := range []uint32{
		imageChunkHeaderLength, imageChunkType, 1, imageChunkVersion, 1, 1, 0, 0, 0,
		0xdeadbeef,
	} {
		require.NoError(t, binary.Write(b, binary.LittleEndian, v))
	}

	images, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, images, 1)

	assert.Equal(t, uint32(1), images[0].Width)
	assert.Equal(t, []uint32{0xdeadbeef}, images[0].Pixels)
}

func TestDecodeBadDimensions(t *testing.T) {
	data := encodeImages(t, NewImage(8, 8, 8, 0, 0, 0, testPixels(64)))

	// Rewrite the chunk's width field to something implausible
	binary.LittleEndian.PutUint32(data[28+16:], 0x8000)

	_, err := Decode(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrFormat)
}
