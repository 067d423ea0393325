// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"
)

const headerSize = 8

// Options contains the options for Load and LoadFiles.
type Options struct {
	// LimitNumEntries is the maximum entry count accepted for a single IFD.
	// The count is read from the file and is not trusted.
	// Default value is 5000.
	LimitNumEntries int

	// LimitNumIFDs is the maximum length of the IFD chain.
	// Default value is 1000.
	LimitNumIFDs int

	// Concurrency is the number of files LoadFiles loads in parallel.
	// Results are always collected in input order.
	// Default value is 1.
	Concurrency int

	// Timeout is the maximum time spent loading a single file.
	// If set to 0, loading will not time out.
	// After ErrTimeout the load may still be reading the source in the
	// background, so the reader must not be reused.
	Timeout time.Duration

	// Warnf will be called for each file that fails to load in LoadFiles.
	Warnf func(string, ...any)
}

func (o Options) withDefaults() Options {
	const (
		defaultLimitNumEntries = 5000
		defaultLimitNumIFDs    = 1000
	)

	if o.LimitNumEntries <= 0 {
		o.LimitNumEntries = defaultLimitNumEntries
	}
	if o.LimitNumIFDs <= 0 {
		o.LimitNumIFDs = defaultLimitNumIFDs
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.Warnf == nil {
		o.Warnf = func(string, ...any) {}
	}
	return o
}

// Load reads the header and the complete IFD chain from r.
// The header is read from the current position of r; IFD offsets are
// absolute positions in r. name is recorded on the returned Tiff.
//
// Load either returns a fully populated Tiff or an error, never both.
// It does not close r.
func Load(r io.ReadSeeker, name string, opts Options) (*Tiff, error) {
	if r == nil {
		return nil, errors.New("no reader provided")
	}
	opts = opts.withDefaults()

	if opts.Timeout <= 0 {
		return load(r, name, opts)
	}

	type result struct {
		t   *Tiff
		err error
	}

	resc := make(chan result, 1)
	go func() {
		t, err := load(r, name, opts)
		resc <- result{t, err}
	}()

	select {
	case <-time.After(opts.Timeout):
		return nil, fmt.Errorf("%w after %s", ErrTimeout, opts.Timeout)
	case res := <-resc:
		return res.t, res.err
	}
}

func load(r io.ReadSeeker, name string, opts Options) (*Tiff, error) {
	sr, err := newStreamReader(r)
	if err != nil {
		return nil, newFormatError(StageHeader, 0, err)
	}

	start := sr.pos()
	var b [headerSize]byte
	if err := sr.readFull(b[:]); err != nil {
		return nil, newFormatError(StageHeader, start, shortReadAs(ErrTruncatedHeader, err))
	}

	// The byte order marker decides how everything else is normalized,
	// so it is compared directly.
	byteOrder := binary.NativeEndian.Uint16(b[0:2])
	bigEndian := isBigEndianMarker(byteOrder)

	magic := ToHostUint16(bigEndian, binary.NativeEndian.Uint16(b[2:4]))
	if magic != Magic {
		return nil, newFormatError(StageMagic, start+2, fmt.Errorf("%w: got %d", ErrBadMagic, magic))
	}

	header := Header{
		ByteOrder: byteOrder,
		Magic:     magic,
		FirstIFD:  ToHostUint32(bigEndian, binary.NativeEndian.Uint32(b[4:8])),
	}

	if int64(header.FirstIFD) < start+headerSize {
		return nil, newFormatError(StageHeader, start+4, fmt.Errorf("%w: first IFD offset %d overlaps the header", ErrSeek, header.FirstIFD))
	}

	var ifds []*IFD
	visited := make(map[uint32]bool)

	for offset := header.FirstIFD; offset != 0; {
		if visited[offset] {
			return nil, newFormatError(StageChain, int64(offset), ErrIFDCycle)
		}
		if len(ifds) >= opts.LimitNumIFDs {
			return nil, newFormatError(StageChain, int64(offset), fmt.Errorf("%w: limit %d", ErrTooManyIFDs, opts.LimitNumIFDs))
		}
		visited[offset] = true

		ifd, err := readIFD(sr, bigEndian, offset, opts.LimitNumEntries)
		if err != nil {
			return nil, err
		}
		ifds = append(ifds, ifd)

		offset = ifd.NextOffset()
	}

	return &Tiff{
		name:   name,
		header: header,
		ifds:   ifds,
	}, nil
}
