package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrFormat reports content that is not a usable Xcursor file. Every
// decode failure caused by the input bytes wraps it, so callers can
// match with errors.Is when deciding whether to skip a file.
var ErrFormat = errors.New("cursor: not an Xcursor file")

var (
	errTruncated = fmt.Errorf("%w: truncated", ErrFormat)
	errBadChunk  = fmt.Errorf("%w: invalid image chunk", ErrFormat)
)

// Config holds what can be learned from a file's table of contents
// without decoding any pixel data.
type Config struct {
	// Nominal size of each image, in table of contents order.
	Sizes []uint32
}

type decoder struct {
	data []byte
	off  int

	images []Image
	config Config
}

func (d *decoder) uint32() (uint32, error) {
	if len(d.data)-d.off < 4 {
		return 0, errTruncated
	}
	v := binary.LittleEndian.Uint32(d.data[d.off:])
	d.off += 4
	return v, nil
}

func (d *decoder) seek(position uint64) error {
	if position > uint64(len(d.data)) {
		return errTruncated
	}
	d.off = int(position)
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	var err error
	if d.data, err = io.ReadAll(r); err != nil {
		return err
	}

	if len(d.data) < headerByteLength || string(d.data[:len(magic)]) != magic {
		return ErrFormat
	}
	d.off = len(magic)

	header, err := d.uint32()
	if err != nil {
		return err
	}
	if header < headerByteLength {
		return ErrFormat
	}
	if _, err := d.uint32(); err != nil { // file version, ignored like libXcursor
		return err
	}
	ntoc, err := d.uint32()
	if err != nil {
		return err
	}

	// The table of contents starts wherever the header claims to end
	if err := d.seek(uint64(header)); err != nil {
		return err
	}
	if uint64(ntoc)*tocEntryByteLength > uint64(len(d.data)-d.off) {
		return errTruncated
	}

	toc := make([]tocEntry, ntoc)
	for i := range toc {
		if toc[i].entryType, err = d.uint32(); err != nil {
			return err
		}
		if toc[i].subtype, err = d.uint32(); err != nil {
			return err
		}
		if toc[i].position, err = d.uint32(); err != nil {
			return err
		}
	}

	for _, entry := range toc {
		// Skip comment chunks and anything else we don't understand
		if entry.entryType != imageChunkType {
			continue
		}

		if configOnly {
			d.config.Sizes = append(d.config.Sizes, entry.subtype)
			continue
		}

		m, err := d.decodeImage(entry)
		if err != nil {
			return err
		}
		d.images = append(d.images, m)
	}

	return nil
}

func (d *decoder) decodeImage(entry tocEntry) (Image, error) {
	if err := d.seek(uint64(entry.position)); err != nil {
		return Image{}, err
	}

	header, err := d.uint32()
	if err != nil {
		return Image{}, err
	}
	chunkType, err := d.uint32()
	if err != nil {
		return Image{}, err
	}
	subtype, err := d.uint32()
	if err != nil {
		return Image{}, err
	}
	if _, err := d.uint32(); err != nil { // chunk version
		return Image{}, err
	}
	if header < imageChunkHeaderLength || chunkType != entry.entryType || subtype != entry.subtype {
		return Image{}, errBadChunk
	}

	width, err := d.uint32()
	if err != nil {
		return Image{}, err
	}
	height, err := d.uint32()
	if err != nil {
		return Image{}, err
	}
	xhot, err := d.uint32()
	if err != nil {
		return Image{}, err
	}
	yhot, err := d.uint32()
	if err != nil {
		return Image{}, err
	}
	delay, err := d.uint32()
	if err != nil {
		return Image{}, err
	}

	if width > maxDimension || height > maxDimension {
		return Image{}, errBadChunk
	}

	// Pixels start wherever the chunk header claims to end
	if err := d.seek(uint64(entry.position) + uint64(header)); err != nil {
		return Image{}, err
	}

	count := int(width) * int(height)
	if len(d.data)-d.off < count*4 {
		return Image{}, errTruncated
	}

	pixels := make([]uint32, count)
	for i := range pixels {
		pixels[i] = binary.LittleEndian.Uint32(d.data[d.off+i*4:])
	}
	d.off += count * 4

	return NewImage(subtype, width, height, xhot, yhot, delay, pixels), nil
}

// Decode reads an Xcursor file from r and returns every image it
// contains in table of contents order.
func Decode(r io.Reader) ([]Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.images, nil
}

// DecodeConfig returns the nominal sizes of the images in an Xcursor
// file without decoding any pixel data.
func DecodeConfig(r io.Reader) (Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return Config{}, err
	}
	return d.config, nil
}
