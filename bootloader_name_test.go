package multiboot2

import (
	"encoding/binary"
	"strings"
	"testing"
	"testing/quick"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const grubName = "GRUB 2.02~beta3-5"

// makeNameTagBytes hand-builds the wire encoding of a bootloader name tag,
// independent of the library's own encoder.
func makeNameTagBytes(name string) []byte {
	size := uint32(TagHeaderSize + len(name) + 1)
	buf := make([]byte, 0, size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(TagTypeBootLoaderName))
	buf = binary.LittleEndian.AppendUint32(buf, size)
	buf = append(buf, name...)
	return append(buf, 0)
}

func TestViewBootLoaderName(t *testing.T) {
	raw := makeNameTagBytes("hello")

	tag, err := ViewBootLoaderName(raw)
	require.NoError(t, err)
	assert.Equal(t, TagTypeBootLoaderName, tag.Header().Type)
	assert.Equal(t, uint32(14), tag.Header().Size)

	name, err := tag.Name()
	require.NoError(t, err)
	assert.Equal(t, "hello", name)
}

func TestViewBootLoaderNameWrongType(t *testing.T) {
	raw := BuildStringTag(TagTypeCmdline, []byte("root=/dev/sda1"))
	_, err := ViewBootLoaderName(raw)
	require.ErrorIs(t, err, ErrWrongType)
}

func TestNewBootLoaderNameTag(t *testing.T) {
	tag := NewBootLoaderNameTag(grubName)
	assert.Equal(t, makeNameTagBytes(grubName), tag.Bytes())

	name, err := tag.Name()
	require.NoError(t, err)
	assert.Equal(t, grubName, name)

	// bigger messages too
	long := strings.Repeat("AbCdEfGhUjK YEAH", 42)
	name, err = NewBootLoaderNameTag(long).Name()
	require.NoError(t, err)
	assert.Equal(t, long, name)
}

func TestNameBytesZeroCopy(t *testing.T) {
	tag := NewBootLoaderNameTag(grubName)
	assert.Equal(t, []byte(grubName), tag.NameBytes())
}

func TestBuildStringTagTerminatorRules(t *testing.T) {
	// no terminator in the content: one gets appended
	raw := BuildStringTag(TagTypeBootLoaderName, []byte("abc"))
	hdr, err := ParseTagHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(TagHeaderSize+3+1), hdr.Size)
	assert.Equal(t, []byte("abc\x00"), raw[TagHeaderSize:])

	// content already terminated: no double terminator
	raw = BuildStringTag(TagTypeBootLoaderName, []byte("abc\x00"))
	hdr, err = ParseTagHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(TagHeaderSize+4), hdr.Size)
	assert.Equal(t, []byte("abc\x00"), raw[TagHeaderSize:])

	// empty content still gets its terminator
	raw = BuildStringTag(TagTypeBootLoaderName, nil)
	hdr, err = ParseTagHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(TagHeaderSize+1), hdr.Size)
	assert.Equal(t, []byte{0x00}, raw[TagHeaderSize:])
}

func TestRoundTripQuick(t *testing.T) {
	roundTrips := func(s string) bool {
		s = strings.ReplaceAll(s, "\x00", "")
		name, err := NewBootLoaderNameTag(s).Name()
		return err == nil && name == s
	}
	if err := quick.Check(roundTrips, &quick.Config{}); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestBuildStringTagGolden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "bootloader_name", BuildStringTag(TagTypeBootLoaderName, []byte(grubName)))
}

func BenchmarkViewName(b *testing.B) {
	raw := makeNameTagBytes(grubName)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tag, err := ViewBootLoaderName(raw)
		if err != nil {
			b.Fatal(err)
		}
		if len(tag.NameBytes()) != len(grubName) {
			b.Fatal("error: name length mismatch")
		}
	}
	b.SetBytes(int64(len(raw)))
}

func BenchmarkBuildStringTag(b *testing.B) {
	content := []byte(grubName)
	b.ReportAllocs()
	var out []byte
	for i := 0; i < b.N; i++ {
		out = BuildStringTag(TagTypeBootLoaderName, content)
	}
	b.SetBytes(int64(len(out)))
}
