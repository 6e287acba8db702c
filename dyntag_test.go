package multiboot2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrailingBytes(t *testing.T) {
	assert.Equal(t, 6, TrailingBytes(TagHeader{Type: TagTypeBootLoaderName, Size: 14}))
	assert.Equal(t, 0, TrailingBytes(TagHeader{Type: TagTypeBootLoaderName, Size: TagHeaderSize}))
}

func TestTrailingBytesPanicsOnUndersizedTag(t *testing.T) {
	// size < header means the outer traversal skipped its bounds check
	require.Panics(t, func() { TrailingBytes(TagHeader{Size: 7}) })
}

func TestTrailingBytesPanicsOnOversizedTag(t *testing.T) {
	// sizes past MaxInt32 would wrap the extent negative on 32-bit
	// targets; same contract violation, same assertion
	require.Panics(t, func() { TrailingBytes(TagHeader{Size: math.MaxUint32}) })
	require.Panics(t, func() { TrailingBytes(TagHeader{Size: math.MaxInt32 + 1}) })
}

func TestFixedLayout(t *testing.T) {
	assert.Equal(t, 0, FixedLayout(TagHeader{Size: 4096}))
}

func TestViewTagClampsToDeclaredSize(t *testing.T) {
	raw := BuildStringTag(TagTypeBootLoaderName, []byte("hello"))
	// trailing garbage beyond the declared size must stay invisible
	raw = append(raw, 0xde, 0xad)

	tag, err := ViewTag(raw, TrailingBytes)
	require.NoError(t, err)
	assert.Equal(t, uint32(14), tag.Header().Size)
	assert.Len(t, tag.Bytes(), 14)
	assert.Equal(t, []byte("hello\x00"), tag.Payload())
}

func TestViewTagRejectsTruncatedBuffer(t *testing.T) {
	raw := BuildStringTag(TagTypeBootLoaderName, []byte("hello"))
	_, err := ViewTag(raw[:10], TrailingBytes)
	require.Error(t, err)
}

func TestViewTagRejectsShortHeader(t *testing.T) {
	_, err := ViewTag([]byte{0x02, 0x00}, TrailingBytes)
	require.ErrorIs(t, err, ErrShortBuffer)
}
