package multiboot2

import "github.com/rawbytedev/multiboot2/internal/common"

// BuildStringTag materializes a complete string-bearing tag: header, then
// content, then a single terminator. If content already ends with a null
// byte none is added, so building never double-terminates. The returned
// buffer is freshly allocated and exclusively owned by the caller.
//
// Content is assumed to be valid UTF-8 text by contract; it is not
// re-validated here.
func BuildStringTag(typ TagType, content []byte) []byte {
	size := TagHeaderSize + len(content)
	needTerm := len(content) == 0 || content[len(content)-1] != common.Terminator
	if needTerm {
		size++
	}
	buf := make([]byte, 0, size)
	buf = NewTagHeader(typ, uint32(size)).EncodeTo(buf)
	buf = append(buf, content...)
	if needTerm {
		buf = append(buf, common.Terminator)
	}
	return buf
}
