// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader is returned when the file header or an IFD's entry count is cut short.
	ErrTruncatedHeader = errors.New("truncated header")
	// ErrTruncatedEntries is returned when an IFD holds fewer entries than its count claims.
	ErrTruncatedEntries = errors.New("truncated directory entries")
	// ErrTruncatedNextPointer is returned when the next IFD offset cannot be read.
	ErrTruncatedNextPointer = errors.New("truncated next IFD pointer")
	// ErrSeek is returned when an IFD offset points outside the file.
	ErrSeek = errors.New("seek out of range")
	// ErrBadMagic is returned when the header's universe field is not 42.
	ErrBadMagic = errors.New("bad magic number")
	// ErrTooManyEntries is returned when an IFD's entry count exceeds Options.LimitNumEntries.
	ErrTooManyEntries = errors.New("too many directory entries")
	// ErrTooManyIFDs is returned when the IFD chain exceeds Options.LimitNumIFDs.
	ErrTooManyIFDs = errors.New("too many IFDs")
	// ErrIFDCycle is returned when the IFD chain points back to an already visited IFD.
	ErrIFDCycle = errors.New("IFD chain cycle")
	// ErrFileOpen is returned when an input file cannot be opened.
	ErrFileOpen = errors.New("open failed")
	// ErrTimeout is returned when loading a file exceeds Options.Timeout.
	ErrTimeout = errors.New("timed out")

	// ErrStopWalking is a sentinel error to signal that the walk should stop.
	ErrStopWalking = errors.New("stop walking")
)

// Stage identifies the step of loading a TIFF at which an error occurred.
type Stage int

const (
	StageHeader Stage = iota
	StageMagic
	StageIFD
	StageChain
)

func (s Stage) String() string {
	switch s {
	case StageHeader:
		return "header"
	case StageMagic:
		return "magic"
	case StageIFD:
		return "IFD"
	case StageChain:
		return "IFD chain"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// FormatError is returned when the TIFF structure is malformed.
// It wraps one of the sentinel errors above.
type FormatError struct {
	Stage  Stage
	Offset int64
	Err    error
}

func newFormatError(stage Stage, offset int64, err error) *FormatError {
	return &FormatError{Stage: stage, Offset: offset, Err: err}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tiffsec: %s at offset %d: %v", e.Stage, e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsInvalidFormat reports whether err was caused by a malformed TIFF.
func IsInvalidFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// FileError associates an error with the input file it occurred in.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
