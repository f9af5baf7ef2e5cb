package cursor

import (
	"encoding/binary"
	"errors"
	"io"
)

var errTooLarge = errors.New("cursor: file too large")

type tocEntry struct {
	entryType uint32
	subtype   uint32
	position  uint32
}

// File accumulates cursor images ahead of encoding. Images are added
// with Add and serialized with Encode; once added an image can neither
// be removed nor reordered.
type File struct {
	toc    []tocEntry
	chunks []Image

	// Absolute position the next added chunk will land at, kept
	// correct for the table of contents as it stands now.
	nextChunkPosition uint32
}

// NewFile returns an empty file. The first chunk lands immediately
// after the header and the single table of contents entry that will
// describe it.
func NewFile() *File {
	return &File{
		nextChunkPosition: headerByteLength + tocEntryByteLength,
	}
}

// Len returns the number of images added so far.
func (f *File) Len() int {
	return len(f.chunks)
}

// Add appends an image to the file. The new table of contents entry
// pushes everything behind the table a further entry length into the
// file, so the position of every chunk recorded so far shifts with it.
// The new entry itself records the position its own chunk will occupy.
func (f *File) Add(m Image) error {
	length, err := m.byteLength()
	if err != nil {
		return err
	}

	next := uint64(f.nextChunkPosition) + tocEntryByteLength + uint64(length)
	if next > 0xffffffff {
		return errTooLarge
	}

	for i := range f.toc {
		f.toc[i].position += tocEntryByteLength
	}

	f.toc = append(f.toc, tocEntry{
		entryType: imageChunkType,
		subtype:   m.Size,
		position:  f.nextChunkPosition,
	})
	f.chunks = append(f.chunks, m)
	f.nextChunkPosition = uint32(next)

	return nil
}

type encoder struct {
	w io.Writer
}

func (e *encoder) writeUint32(vs ...uint32) error {
	var b [4]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint32(b[:], v)
		if _, err := e.w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) encode(f *File) error {
	if _, err := io.WriteString(e.w, magic); err != nil {
		return err
	}
	if err := e.writeUint32(headerByteLength, fileVersion, uint32(len(f.toc))); err != nil {
		return err
	}

	for _, entry := range f.toc {
		if err := e.writeUint32(entry.entryType, entry.subtype, entry.position); err != nil {
			return err
		}
	}

	for _, m := range f.chunks {
		if err := e.writeUint32(imageChunkHeaderLength, imageChunkType, m.Size, imageChunkVersion,
			m.Width, m.Height, m.XHot, m.YHot, m.Delay); err != nil {
			return err
		}
		if err := binary.Write(e.w, binary.LittleEndian, m.Pixels); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes f to w in Xcursor format. This is a single forward
// pass; the positions recorded by Add are already final so nothing
// needs patching afterwards. The first write error aborts the encode,
// leaving whatever was written so far on w.
func Encode(w io.Writer, f *File) error {
	e := encoder{w: w}
	return e.encode(f)
}
