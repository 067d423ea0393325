// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"bytes"
	"encoding/binary"
)

// BuildEntry is a directory entry in host order, used to build test files.
type BuildEntry struct {
	Tag   uint16
	Type  uint16
	Count uint32
	Value uint32
}

// BuildIFD is the list of entries of one IFD.
type BuildIFD []BuildEntry

// BuildTIFF encodes a TIFF in the given byte order with the IFDs laid out
// back to back directly after the header.
func BuildTIFF(order binary.ByteOrder, ifds ...BuildIFD) []byte {
	var buf bytes.Buffer
	w := func(v any) {
		if err := binary.Write(&buf, order, v); err != nil {
			panic(err)
		}
	}

	if order == binary.BigEndian {
		buf.WriteString("MM")
	} else {
		buf.WriteString("II")
	}
	w(uint16(Magic))
	first := uint32(0)
	if len(ifds) > 0 {
		first = IFDOffsetOf(ifds, 0)
	}
	w(first)

	for i, ifd := range ifds {
		w(uint16(len(ifd)))
		for _, e := range ifd {
			w(e)
		}
		var next uint32
		if i < len(ifds)-1 {
			next = IFDOffsetOf(ifds, i+1)
		}
		w(next)
	}

	return buf.Bytes()
}

// IFDOffsetOf returns the offset BuildTIFF places IFD i at.
func IFDOffsetOf(ifds []BuildIFD, i int) uint32 {
	offset := uint32(headerSize)
	for _, ifd := range ifds[:i] {
		offset += 2 + uint32(len(ifd))*entrySize + 4
	}
	return offset
}

// NextPointerOffsetOf returns the position of IFD i's next IFD pointer.
func NextPointerOffsetOf(ifds []BuildIFD, i int) uint32 {
	return IFDOffsetOf(ifds, i) + 2 + uint32(len(ifds[i]))*entrySize
}

// EntriesOf returns the normalized entries of d.
func EntriesOf(d *IFD) BuildIFD {
	var entries BuildIFD
	for _, e := range d.entries {
		entries = append(entries, BuildEntry{Tag: e.Tag(), Type: e.Type(), Count: e.Count(), Value: e.ValueOffset()})
	}
	return entries
}
