// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"encoding/binary"
	"math/bits"
)

const (
	// ByteOrderBigEndian is the "MM" marker at the start of a big-endian TIFF.
	ByteOrderBigEndian = 0x4d4d
	// ByteOrderLittleEndian is the "II" marker at the start of a little-endian TIFF.
	ByteOrderLittleEndian = 0x4949

	// Magic is the value the second header field must normalize to.
	Magic = 42
)

var hostIsBigEndian = binary.NativeEndian.Uint16([]byte{0x00, 0x01}) == 0x0001

// ToHostUint16 converts raw, a 16-bit field read from the file in host byte order,
// to its host order value given the byte order declared by the file.
func ToHostUint16(fileIsBigEndian bool, raw uint16) uint16 {
	if fileIsBigEndian == hostIsBigEndian {
		return raw
	}
	return bits.ReverseBytes16(raw)
}

// ToHostUint32 is the 32-bit variant of ToHostUint16.
func ToHostUint32(fileIsBigEndian bool, raw uint32) uint32 {
	if fileIsBigEndian == hostIsBigEndian {
		return raw
	}
	return bits.ReverseBytes32(raw)
}

// ByteOrderFor returns the binary.ByteOrder matching the file's declared order.
func ByteOrderFor(fileIsBigEndian bool) binary.ByteOrder {
	if fileIsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// isBigEndianMarker reports whether the header's byte order field, read as
// raw host order bytes, is the "MM" marker. Both markers are palindromes,
// so no normalization is needed.
func isBigEndianMarker(raw uint16) bool {
	return raw == ByteOrderBigEndian
}
