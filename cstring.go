package multiboot2

import (
	"fmt"
	"unicode/utf8"

	"github.com/rawbytedev/multiboot2/internal/common"
)

// InvalidUTF8Error reports the first malformed byte sequence in a tag's
// string payload. Offset is relative to the start of the payload.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at payload byte %d", e.Offset)
}

// DecodeCString decodes the null-terminated UTF-8 string at the start of
// payload. Bytes after the first null are ignored; the outer container pads
// tags to 8-byte boundaries and that padding lands here. A payload with no
// terminator at all is accepted whole when it is valid UTF-8.
func DecodeCString(payload []byte) (string, error) {
	raw := common.CString(payload)
	if err := validUTF8(raw); err != nil {
		return "", err
	}
	return string(raw), nil
}

// validUTF8 walks b rune by rune so the error carries the exact offset of
// the first invalid sequence.
func validUTF8(b []byte) error {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return &InvalidUTF8Error{Offset: i}
		}
		i += size
	}
	return nil
}
