// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import "encoding/binary"

// Header is the 8-byte TIFF header.
type Header struct {
	// ByteOrder is the byte order marker, ByteOrderBigEndian or, for any other
	// value, little-endian.
	ByteOrder uint16
	// Magic is the normalized universe field, always 42.
	Magic uint16
	// FirstIFD is the normalized offset of IFD0.
	FirstIFD uint32
}

// BigEndian reports whether the file's multi-byte fields are big-endian.
func (h Header) BigEndian() bool {
	return isBigEndianMarker(h.ByteOrder)
}

// Tiff is the directory structure of one TIFF file.
// It is immutable once loaded.
type Tiff struct {
	name   string
	header Header
	ifds   []*IFD
}

// Name returns the name the Tiff was loaded with, typically the file path.
func (t *Tiff) Name() string {
	return t.name
}

// Header returns the file header.
func (t *Tiff) Header() Header {
	return t.header
}

// BigEndian reports whether the file is big-endian.
func (t *Tiff) BigEndian() bool {
	return t.header.BigEndian()
}

// ByteOrder returns the file's byte order.
func (t *Tiff) ByteOrder() binary.ByteOrder {
	return ByteOrderFor(t.BigEndian())
}

// NumIFDs returns the length of the IFD chain.
func (t *Tiff) NumIFDs() int {
	return len(t.ifds)
}

// IFD returns the i'th IFD in chain order, IFD0 first.
func (t *Tiff) IFD(i int) *IFD {
	return t.ifds[i]
}

// IFDs returns the IFD chain in order.
func (t *Tiff) IFDs() []*IFD {
	ifds := make([]*IFD, len(t.ifds))
	copy(ifds, t.ifds)
	return ifds
}
