package common

import "encoding/binary"

// Little-endian field helpers. All on-disk integers in this module are
// little-endian.

// AppendUint16 appends v to dst.
func AppendUint16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendUint32 appends v to dst.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// Uint16 reads a little-endian uint16 at off. ok is false if the slice is too short.
func Uint16(data []byte, off int) (v uint16, ok bool) {
	if off < 0 || off+2 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint16(data[off:]), true
}

// Uint32 reads a little-endian uint32 at off. ok is false if the slice is too short.
func Uint32(data []byte, off int) (v uint32, ok bool) {
	if off < 0 || off+4 > len(data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[off:]), true
}
