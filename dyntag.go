package multiboot2

import (
	"fmt"
	"math"
)

// PayloadLen computes the trailing payload byte count of a tag kind from its
// header alone. Implementations must be pure and must not read any bytes
// beyond the header.
type PayloadLen func(TagHeader) int

// TrailingBytes is the payload rule for string-bearing tags: every byte
// after the header belongs to the payload.
//
// It panics when the declared size is smaller than the header itself. That
// is a contract violation by the outer traversal, which must bounds-check
// every tag against the enclosing region before offering it to a typed view.
func TrailingBytes(h TagHeader) int {
	if h.Size < TagHeaderSize {
		panic(fmt.Sprintf("multiboot2: declared tag size %d smaller than the tag header", h.Size))
	}
	// keep the result non-negative on 32-bit targets, where int(h.Size)
	// could wrap; a tag this large cannot sit in a validated region
	if h.Size > math.MaxInt32 {
		panic(fmt.Sprintf("multiboot2: declared tag size %d overflows the payload extent", h.Size))
	}
	return int(h.Size) - TagHeaderSize
}

// FixedLayout is the payload rule for fixed-layout tags: the concrete type's
// own field layout fully determines its extent, so there is nothing dynamic
// to compute.
func FixedLayout(TagHeader) int { return 0 }

// Tag is a non-owning view over a single tag: the header plus its trailing
// payload, clamped so accessors never read outside [0, header.Size) relative
// to the tag start. The backing memory stays valid for the view's lifetime
// by caller contract; the view itself never copies.
type Tag struct {
	hdr TagHeader
	buf []byte
}

// ViewTag reinterprets the start of buf as one tag, using plen to measure
// the trailing payload. buf must hold at least the computed extent; the
// outer traversal guarantees that for any tag it hands out.
func ViewTag(buf []byte, plen PayloadLen) (Tag, error) {
	hdr, err := ParseTagHeader(buf)
	if err != nil {
		return Tag{}, err
	}
	end := TagHeaderSize + plen(hdr)
	if end > len(buf) {
		return Tag{}, fmt.Errorf("tag extent %d out of bounds (%d bytes available)", end, len(buf))
	}
	return Tag{hdr: hdr, buf: buf[:end]}, nil
}

func (t Tag) Header() TagHeader { return t.hdr }

// Payload returns the trailing payload bytes; no copy.
func (t Tag) Payload() []byte { return t.buf[TagHeaderSize:] }

// Bytes returns the full header+payload encoding of the tag; no copy.
func (t Tag) Bytes() []byte { return t.buf }
