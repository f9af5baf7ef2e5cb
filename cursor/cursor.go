/*
Package cursor implements an Xcursor decoder and encoder.

An Xcursor file holds one or more images of the same cursor, usually at
different nominal sizes. The file starts with a 16 byte header holding
the magic "Xcur", the header byte length, a file version and the number
of table of contents entries. The table of contents follows
immediately; each entry is three 32-bit words giving a chunk type, a
subtype and the absolute byte position of that chunk within the file.
An image chunk carries nine 32-bit header fields (chunk header length,
type, subtype, version, width, height, hotspot coordinates and frame
delay) followed by one packed 32-bit word per pixel in row-major order.
All integers are little-endian.
*/
package cursor

const (
	magic = "Xcur"

	headerByteLength   = 16
	tocEntryByteLength = 12
	fileVersion        = 0x00010000

	imageChunkType         = 0xFFFD0002
	imageChunkHeaderLength = 36
	imageChunkVersion      = 1

	// libXcursor refuses any image larger than this per side
	maxDimension = 0x7fff
)
