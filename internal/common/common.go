package common

import "bytes"

// Terminator is the trailing null byte of string-bearing tag payloads.
// Builder and decoder both consume this single definition so round-trips
// hold structurally.
const Terminator byte = 0x00

// CString returns the bytes of payload strictly before its first null byte.
// A payload with no terminator is returned whole: bootloaders in the wild
// omit the trailing null in some configurations even though the protocol
// asks for it.
func CString(payload []byte) []byte {
	if i := bytes.IndexByte(payload, Terminator); i >= 0 {
		return payload[:i]
	}
	return payload
}

// Sum8 adds the bytes of b with 8-bit wraparound. An ACPI table range is
// authentic iff it sums to zero.
func Sum8(b []byte) byte {
	var sum byte
	for _, c := range b {
		sum += c
	}
	return sum
}
