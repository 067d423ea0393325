// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

type pooledBytes struct {
	b []byte
}

var bytesPool = &sync.Pool{
	New: func() any {
		return &pooledBytes{
			b: make([]byte, 1024),
		}
	},
}

func getBytes(length int) *pooledBytes {
	pb := bytesPool.Get().(*pooledBytes)
	if length > cap(pb.b) {
		pb.b = make([]byte, length)
	}
	pb.b = pb.b[:length]
	return pb
}

func putBytes(pb *pooledBytes) {
	pb.b = pb.b[:0]
	bytesPool.Put(pb)
}

var errShortRead = errors.New("short read")

// streamReader is a wrapper around a ReadSeeker that reads raw TIFF fields.
// Multi-byte fields are returned in host byte order exactly as stored; callers
// normalize them with ToHostUint16 and ToHostUint32.
// Note that this is not thread safe.
type streamReader struct {
	r    io.ReadSeeker
	size int64

	buf [4]byte
}

func newStreamReader(r io.ReadSeeker) (*streamReader, error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeek, err)
	}
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeek, err)
	}
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeek, err)
	}
	return &streamReader{r: r, size: size}, nil
}

func (e *streamReader) pos() int64 {
	n, _ := e.r.Seek(0, io.SeekCurrent)
	return n
}

// remaining returns the number of bytes between pos and the end of the source.
func (e *streamReader) remaining(pos int64) int64 {
	if pos >= e.size {
		return 0
	}
	return e.size - pos
}

func (e *streamReader) seek(pos int64) error {
	if pos < 0 || pos > e.size {
		return ErrSeek
	}
	if _, err := e.r.Seek(pos, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w", ErrSeek, err)
	}
	return nil
}

func (e *streamReader) readFull(b []byte) error {
	_, err := io.ReadFull(e.r, b)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errShortRead
	}
	return err
}

func (e *streamReader) read2E() (uint16, error) {
	const n = 2
	if err := e.readFull(e.buf[:n]); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint16(e.buf[:n]), nil
}

func (e *streamReader) read4E() (uint32, error) {
	const n = 4
	if err := e.readFull(e.buf[:n]); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(e.buf[:n]), nil
}

// readEntries reads count contiguous 12-byte directory entries.
func (e *streamReader) readEntries(count int, fileIsBigEndian bool) ([]DirectoryEntry, error) {
	if count == 0 {
		return nil, nil
	}
	pb := getBytes(count * entrySize)
	defer putBytes(pb)

	if err := e.readFull(pb.b); err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, count)
	for i := range entries {
		entries[i] = decodeEntry(pb.b[i*entrySize:(i+1)*entrySize], fileIsBigEndian)
	}
	return entries, nil
}
