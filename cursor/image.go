package cursor

import "fmt"

// Image is a single cursor image. Size is the nominal dimension used
// to pick between variants and is conventionally equal to one of Width
// or Height. Pixels holds one packed 32-bit word per pixel in
// row-major order; the package copies these words verbatim and
// attaches no meaning to their channel layout.
type Image struct {
	Size   uint32
	Width  uint32
	Height uint32
	XHot   uint32
	YHot   uint32
	Delay  uint32
	Pixels []uint32
}

// NewImage returns an Image with the given geometry and pixels. It
// panics if the pixel count does not match width times height; by the
// time an Image is constructed its geometry has been derived from
// already-decoded input, so a mismatch is a bug rather than bad input.
func NewImage(size, width, height, xhot, yhot, delay uint32, pixels []uint32) Image {
	if uint64(width)*uint64(height) != uint64(len(pixels)) {
		panic(fmt.Sprintf("cursor: image dimensions (%dx%d = %d) do not match the number of pixels given (%d)",
			width, height, uint64(width)*uint64(height), len(pixels)))
	}

	return Image{
		Size:   size,
		Width:  width,
		Height: height,
		XHot:   xhot,
		YHot:   yhot,
		Delay:  delay,
		Pixels: pixels,
	}
}

// byteLength returns the number of bytes the encoded chunk will
// occupy; nine 32-bit header fields plus four bytes per pixel.
func (m Image) byteLength() (uint32, error) {
	length := imageChunkHeaderLength + uint64(len(m.Pixels))*4
	if length > 0xffffffff {
		return 0, errTooLarge
	}
	return uint32(length), nil
}
