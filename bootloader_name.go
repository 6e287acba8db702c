package multiboot2

import "github.com/rawbytedev/multiboot2/internal/common"

// BootLoaderNameTag views a bootloader name tag (type 2). The payload is a
// null-terminated UTF-8 string naming the loader that booted the kernel,
// e.g. "GRUB 2.02~beta3-5".
type BootLoaderNameTag struct {
	Tag
}

// ViewBootLoaderName reinterprets the start of buf as a bootloader name tag.
func ViewBootLoaderName(buf []byte) (BootLoaderNameTag, error) {
	t, err := ViewTag(buf, TrailingBytes)
	if err != nil {
		return BootLoaderNameTag{}, err
	}
	if t.Header().Type != TagTypeBootLoaderName {
		return BootLoaderNameTag{}, ErrWrongType
	}
	return BootLoaderNameTag{Tag: t}, nil
}

// NewBootLoaderNameTag builds a bootloader name tag for name. Decoding the
// result yields name back exactly.
func NewBootLoaderNameTag(name string) BootLoaderNameTag {
	buf := BuildStringTag(TagTypeBootLoaderName, []byte(name))
	// Builder output is well-formed by construction.
	t, _ := ViewTag(buf, TrailingBytes)
	return BootLoaderNameTag{Tag: t}
}

// Name returns the loader name without its terminator, validating UTF-8
// lazily at call time.
func (t BootLoaderNameTag) Name() (string, error) {
	return DecodeCString(t.Payload())
}

// NameBytes returns the raw name bytes without terminator, padding or UTF-8
// validation; no copy.
func (t BootLoaderNameTag) NameBytes() []byte {
	return common.CString(t.Payload())
}
