package cursor

import "math/bits"

func mul(a, b uint32) (uint32, error) {
	hi, lo := bits.Mul32(a, b)
	if hi != 0 {
		return 0, errTooLarge
	}
	return lo, nil
}

// Scale returns a copy of m enlarged by the given integer factor using
// nearest-neighbor replication: every source pixel becomes a
// factor-by-factor block of identical pixels and the nominal size,
// dimensions and hotspot are multiplied to match. The frame delay is
// unchanged. The factor must be at least 1; a factor of 1 returns an
// identical copy. An error is returned if any scaled field or the
// scaled pixel count no longer fits in 32 bits.
func Scale(m Image, factor uint32) (Image, error) {
	size, err := mul(m.Size, factor)
	if err != nil {
		return Image{}, err
	}
	width, err := mul(m.Width, factor)
	if err != nil {
		return Image{}, err
	}
	height, err := mul(m.Height, factor)
	if err != nil {
		return Image{}, err
	}
	xhot, err := mul(m.XHot, factor)
	if err != nil {
		return Image{}, err
	}
	yhot, err := mul(m.YHot, factor)
	if err != nil {
		return Image{}, err
	}
	count, err := mul(width, height)
	if err != nil {
		return Image{}, err
	}

	pixels := make([]uint32, 0, count)
	for y := 0; y < int(m.Height); y++ {
		row := m.Pixels[y*int(m.Width) : (y+1)*int(m.Width)]
		for i := uint32(0); i < factor; i++ {
			for _, pixel := range row {
				for j := uint32(0); j < factor; j++ {
					pixels = append(pixels, pixel)
				}
			}
		}
	}

	return NewImage(size, width, height, xhot, yhot, m.Delay, pixels), nil
}
