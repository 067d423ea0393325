// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"encoding/binary"
	"fmt"
)

const entrySize = 12

// DirectoryEntry is one IFD entry header.
//
// An entry is represented in 12 bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the data type
//   - 4 bytes for the number of values of the specified type
//   - 4 bytes for the value itself, if it fits, otherwise for a pointer to
//     another location where the data may be found
//
// The fields are kept as stored on disk; the accessors normalize them to host
// byte order. The value is never dereferenced.
type DirectoryEntry struct {
	tag         uint16
	typ         uint16
	count       uint32
	valueOffset uint32

	bigEndian bool
}

func decodeEntry(b []byte, fileIsBigEndian bool) DirectoryEntry {
	return DirectoryEntry{
		tag:         binary.NativeEndian.Uint16(b[0:2]),
		typ:         binary.NativeEndian.Uint16(b[2:4]),
		count:       binary.NativeEndian.Uint32(b[4:8]),
		valueOffset: binary.NativeEndian.Uint32(b[8:12]),
		bigEndian:   fileIsBigEndian,
	}
}

// Tag returns the tag ID.
func (e DirectoryEntry) Tag() uint16 {
	return ToHostUint16(e.bigEndian, e.tag)
}

// Type returns the field type code, e.g. 2 for ASCII.
func (e DirectoryEntry) Type() uint16 {
	return ToHostUint16(e.bigEndian, e.typ)
}

// Count returns the number of values of Type.
func (e DirectoryEntry) Count() uint32 {
	return ToHostUint32(e.bigEndian, e.count)
}

// ValueOffset returns the value/offset field as a 32-bit integer.
// For values shorter than 4 bytes only the leading bytes are significant.
func (e DirectoryEntry) ValueOffset() uint32 {
	return ToHostUint32(e.bigEndian, e.valueOffset)
}

// RawTag returns the tag field exactly as read from the file.
func (e DirectoryEntry) RawTag() uint16 {
	return e.tag
}

// ValueSize returns the byte length of the entry's values, 0 for unknown types.
// Values of at most 4 bytes are stored in the value/offset field itself.
func (e DirectoryEntry) ValueSize() uint64 {
	return uint64(FieldType(e.Type()).Size()) * uint64(e.Count())
}

func (e DirectoryEntry) String() string {
	return fmt.Sprintf("%s (0x%04x) %s count=%d size=%d value/offset=%d", TagName(e.Tag()), e.Tag(), FieldType(e.Type()), e.Count(), e.ValueSize(), e.ValueOffset())
}

// IFD is an Image File Directory.
type IFD struct {
	offset  uint32
	entries []DirectoryEntry
	rawNext uint32

	bigEndian bool
}

// Offset returns the absolute file offset the IFD was read from.
func (d *IFD) Offset() uint32 {
	return d.offset
}

// Len returns the number of entries.
func (d *IFD) Len() int {
	return len(d.entries)
}

// Entry returns the i'th entry in file order.
func (d *IFD) Entry(i int) DirectoryEntry {
	return d.entries[i]
}

// Entries returns a copy of the entries in file order.
func (d *IFD) Entries() []DirectoryEntry {
	entries := make([]DirectoryEntry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// RawNextOffset returns the next IFD offset exactly as read from the file.
func (d *IFD) RawNextOffset() uint32 {
	return d.rawNext
}

// NextOffset returns the offset of the next IFD, 0 if this is the last one.
func (d *IFD) NextOffset() uint32 {
	return ToHostUint32(d.bigEndian, d.rawNext)
}

func readIFD(sr *streamReader, fileIsBigEndian bool, offset uint32, limitNumEntries int) (*IFD, error) {
	pos := int64(offset)
	if err := sr.seek(pos); err != nil {
		return nil, newFormatError(StageIFD, pos, err)
	}

	rawCount, err := sr.read2E()
	if err != nil {
		return nil, newFormatError(StageIFD, pos, shortReadAs(ErrTruncatedHeader, err))
	}

	// The count is untrusted; check it before allocating anything.
	count := int(ToHostUint16(fileIsBigEndian, rawCount))
	if count > limitNumEntries {
		return nil, newFormatError(StageIFD, pos, fmt.Errorf("%w: %d exceeds limit %d", ErrTooManyEntries, count, limitNumEntries))
	}
	if need, avail := int64(count)*entrySize, sr.remaining(pos+2); need > avail {
		return nil, newFormatError(StageIFD, pos, fmt.Errorf("%w: %d entries need %d bytes, %d available", ErrTruncatedEntries, count, need, avail))
	}

	entries, err := sr.readEntries(count, fileIsBigEndian)
	if err != nil {
		return nil, newFormatError(StageIFD, pos, shortReadAs(ErrTruncatedEntries, err))
	}

	rawNext, err := sr.read4E()
	if err != nil {
		return nil, newFormatError(StageIFD, pos, shortReadAs(ErrTruncatedNextPointer, err))
	}

	return &IFD{
		offset:    offset,
		entries:   entries,
		rawNext:   rawNext,
		bigEndian: fileIsBigEndian,
	}, nil
}

// shortReadAs maps a short read to sentinel and wraps any other read error in it.
func shortReadAs(sentinel, err error) error {
	if err == errShortRead {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
