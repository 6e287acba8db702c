package multiboot2

import (
	"encoding/binary"
	"errors"
)

// TagType identifies the kind of a boot information tag.
type TagType uint32

// Tag types this package understands. The full catalog belongs to the
// outer traversal that walks the boot information region tag by tag.
const (
	TagTypeEnd            TagType = 0
	TagTypeCmdline        TagType = 1
	TagTypeBootLoaderName TagType = 2
	TagTypeACPIOld        TagType = 14
	TagTypeACPINew        TagType = 15
)

// TagHeaderSize is the byte length of the fixed prefix every tag starts with.
const TagHeaderSize = 8

var (
	ErrShortBuffer = errors.New("buffer too short for tag header")
	ErrWrongType   = errors.New("unexpected tag type")
)

// TagHeader is the 8-byte prefix common to every tag: a type identifier and
// the total tag size in bytes, header included. Well-formed tags always have
// Size >= TagHeaderSize.
type TagHeader struct {
	Type TagType
	Size uint32
}

func NewTagHeader(typ TagType, size uint32) TagHeader {
	return TagHeader{Type: typ, Size: size}
}

// ParseTagHeader reads the header at the start of buf; zero copy.
// No validation of the declared size happens here: rejecting malformed
// headers is the outer traversal's job.
func ParseTagHeader(buf []byte) (TagHeader, error) {
	if len(buf) < TagHeaderSize {
		return TagHeader{}, ErrShortBuffer
	}
	h := TagHeader{}
	h.Type = TagType(binary.LittleEndian.Uint32(buf[0:]))
	h.Size = binary.LittleEndian.Uint32(buf[4:])
	return h, nil
}

// EncodeTo appends the wire encoding of h to buf and returns the extended
// slice.
func (h TagHeader) EncodeTo(buf []byte) []byte {
	var scratch [TagHeaderSize]byte
	binary.LittleEndian.PutUint32(scratch[0:], uint32(h.Type))
	binary.LittleEndian.PutUint32(scratch[4:], h.Size)
	return append(buf, scratch[:]...)
}
