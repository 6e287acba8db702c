package multiboot2

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/rawbytedev/multiboot2/internal/common"
)

// Field offsets within an RSDP tag, relative to the tag start. The ACPI
// structure follows the multiboot header verbatim, so each offset below is
// the firmware-defined offset plus TagHeaderSize.
const (
	rsdpSignatureOff = TagHeaderSize
	rsdpChecksumOff  = rsdpSignatureOff + 8
	rsdpOEMIDOff     = rsdpChecksumOff + 1
	rsdpRevisionOff  = rsdpOEMIDOff + 6
	rsdpRSDTAddrOff  = rsdpRevisionOff + 1

	rsdpLengthOff      = rsdpRSDTAddrOff + 4
	rsdpXSDTAddrOff    = rsdpLengthOff + 4
	rsdpExtChecksumOff = rsdpXSDTAddrOff + 8
	rsdpReservedOff    = rsdpExtChecksumOff + 1

	// ACPI-defined byte counts, header excluded.
	rsdpV1ACPILen = 20
	rsdpV2ACPILen = 36

	rsdpV1TagSize = TagHeaderSize + rsdpV1ACPILen
	rsdpV2TagSize = TagHeaderSize + rsdpV2ACPILen
)

// RSDPSignature is the marker every root pointer structure must carry in its
// first eight bytes. It is not null-terminated.
const RSDPSignature = "RSD PTR "

// ErrLengthExceedsRegion means an RSDP v2 tag declared an ACPI length whose
// checksum range would read past the caller-validated window. The length
// field is bootloader-controlled and must never drive a read on its own.
var ErrLengthExceedsRegion = errors.New("rsdp: declared length exceeds available region")

// RSDPv1Tag views a tag carrying a verbatim copy of the ACPI 1.0 Root System
// Description Pointer (type 14). The checksum and signature should be
// verified before the physical address inside is trusted.
type RSDPv1Tag struct {
	Tag
}

// ViewRSDPv1 reinterprets the start of buf as an RSDP v1 tag.
func ViewRSDPv1(buf []byte) (RSDPv1Tag, error) {
	t, err := viewFixed(buf, TagTypeACPIOld, rsdpV1TagSize)
	if err != nil {
		return RSDPv1Tag{}, err
	}
	return RSDPv1Tag{Tag: t}, nil
}

// Signature returns the 8-byte "RSD PTR " marker as a string.
func (t RSDPv1Tag) Signature() (string, error) {
	return fixedString(t.buf[rsdpSignatureOff:rsdpChecksumOff])
}

func (t RSDPv1Tag) Checksum() uint8 { return t.buf[rsdpChecksumOff] }

// OEMID returns the OEM-supplied identification string.
func (t RSDPv1Tag) OEMID() (string, error) {
	return fixedString(t.buf[rsdpOEMIDOff:rsdpRevisionOff])
}

func (t RSDPv1Tag) Revision() uint8 { return t.buf[rsdpRevisionOff] }

// RSDTAddress returns the physical address of the RSDT table.
func (t RSDPv1Tag) RSDTAddress() uint32 {
	return binary.LittleEndian.Uint32(t.buf[rsdpRSDTAddrOff:])
}

// ChecksumIsValid sums the 20 ACPI-defined bytes, header excluded, with
// 8-bit wraparound. The structure is authentic iff the sum is zero.
func (t RSDPv1Tag) ChecksumIsValid() bool {
	return common.Sum8(t.buf[TagHeaderSize:rsdpV1TagSize]) == 0
}

// NewRSDPv1Tag encodes an RSDP v1 tag from its ACPI fields. The checksum is
// written verbatim; nothing is validated at build time.
func NewRSDPv1Tag(signature [8]byte, checksum uint8, oemID [6]byte, revision uint8, rsdtAddr uint32) RSDPv1Tag {
	buf := make([]byte, 0, rsdpV1TagSize)
	buf = NewTagHeader(TagTypeACPIOld, rsdpV1TagSize).EncodeTo(buf)
	buf = append(buf, signature[:]...)
	buf = append(buf, checksum)
	buf = append(buf, oemID[:]...)
	buf = append(buf, revision)
	buf = binary.LittleEndian.AppendUint32(buf, rsdtAddr)
	return RSDPv1Tag{Tag: Tag{hdr: TagHeader{Type: TagTypeACPIOld, Size: rsdpV1TagSize}, buf: buf}}
}

// RSDPv2Tag views a tag carrying a copy of the RSDP as defined by ACPI 2.0
// and later (type 15). It extends the v1 layout with a self-declared length,
// the 64-bit XSDT address and an extended checksum covering the whole
// structure.
type RSDPv2Tag struct {
	Tag
}

// ViewRSDPv2 reinterprets the start of buf as an RSDP v2 tag.
func ViewRSDPv2(buf []byte) (RSDPv2Tag, error) {
	t, err := viewFixed(buf, TagTypeACPINew, rsdpV2TagSize)
	if err != nil {
		return RSDPv2Tag{}, err
	}
	return RSDPv2Tag{Tag: t}, nil
}

// Signature returns the 8-byte "RSD PTR " marker as a string.
func (t RSDPv2Tag) Signature() (string, error) {
	return fixedString(t.buf[rsdpSignatureOff:rsdpChecksumOff])
}

func (t RSDPv2Tag) Checksum() uint8 { return t.buf[rsdpChecksumOff] }

// OEMID returns the OEM-supplied identification string.
func (t RSDPv2Tag) OEMID() (string, error) {
	return fixedString(t.buf[rsdpOEMIDOff:rsdpRevisionOff])
}

func (t RSDPv2Tag) Revision() uint8 { return t.buf[rsdpRevisionOff] }

// RSDTAddress returns the physical address of the RSDT table.
func (t RSDPv2Tag) RSDTAddress() uint32 {
	return binary.LittleEndian.Uint32(t.buf[rsdpRSDTAddrOff:])
}

// Length returns the ACPI structure's self-declared total byte count,
// header excluded. Bootloader-controlled; treat as untrusted.
func (t RSDPv2Tag) Length() uint32 {
	return binary.LittleEndian.Uint32(t.buf[rsdpLengthOff:])
}

// XSDTAddress returns the physical address of the XSDT table.
func (t RSDPv2Tag) XSDTAddress() uint64 {
	return binary.LittleEndian.Uint64(t.buf[rsdpXSDTAddrOff:])
}

// ExtChecksum returns the checksum byte covering the entire structure,
// both checksum fields included.
func (t RSDPv2Tag) ExtChecksum() uint8 { return t.buf[rsdpExtChecksumOff] }

// ChecksumIsValid sums Length() ACPI-defined bytes, header excluded, with
// 8-bit wraparound; the structure is authentic iff the sum is zero. When the
// declared length reaches past the caller-validated window the read is
// refused with ErrLengthExceedsRegion instead.
func (t RSDPv2Tag) ChecksumIsValid() (bool, error) {
	end := TagHeaderSize + int(t.Length())
	if end > len(t.buf) {
		return false, ErrLengthExceedsRegion
	}
	return common.Sum8(t.buf[TagHeaderSize:end]) == 0, nil
}

// NewRSDPv2Tag encodes an RSDP v2 tag from its ACPI fields. Checksums are
// written verbatim; nothing is validated at build time.
func NewRSDPv2Tag(signature [8]byte, checksum uint8, oemID [6]byte, revision uint8,
	rsdtAddr uint32, length uint32, xsdtAddr uint64, extChecksum uint8) RSDPv2Tag {
	buf := make([]byte, 0, rsdpV2TagSize)
	buf = NewTagHeader(TagTypeACPINew, rsdpV2TagSize).EncodeTo(buf)
	buf = append(buf, signature[:]...)
	buf = append(buf, checksum)
	buf = append(buf, oemID[:]...)
	buf = append(buf, revision)
	buf = binary.LittleEndian.AppendUint32(buf, rsdtAddr)
	buf = binary.LittleEndian.AppendUint32(buf, length)
	buf = binary.LittleEndian.AppendUint64(buf, xsdtAddr)
	buf = append(buf, extChecksum)
	buf = append(buf, 0, 0, 0) // reserved
	return RSDPv2Tag{Tag: Tag{hdr: TagHeader{Type: TagTypeACPINew, Size: rsdpV2TagSize}, buf: buf}}
}

// viewFixed builds the view for a fixed-layout tag: the type's own layout
// determines the extent, so the window is the declared size clamped to the
// bytes the caller actually validated, and must cover at least the fixed
// part.
func viewFixed(buf []byte, typ TagType, fixedSize int) (Tag, error) {
	hdr, err := ParseTagHeader(buf)
	if err != nil {
		return Tag{}, err
	}
	if hdr.Type != typ {
		return Tag{}, ErrWrongType
	}
	win := len(buf)
	if s := int(hdr.Size); s < win {
		win = s
	}
	if win < fixedSize {
		return Tag{}, fmt.Errorf("tag needs %d bytes, have %d", fixedSize, win)
	}
	return Tag{hdr: hdr, buf: buf[:win]}, nil
}

// fixedString validates a fixed-width, non-null-terminated field as UTF-8.
func fixedString(b []byte) (string, error) {
	if err := validUTF8(b); err != nil {
		return "", err
	}
	return string(b), nil
}
