// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

// A little-endian TIFF with one IFD holding a SecurityClassification entry.
var classified = []byte{
	'I', 'I', 0x2a, 0x00, 0x08, 0x00, 0x00, 0x00,
	0x01, 0x00,
	0x12, 0x92, 0x02, 0x00, 0x02, 0x00, 0x00, 0x00, 0x43, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// A big-endian TIFF with one IFD holding only ImageWidth.
var plain = []byte{
	'M', 'M', 0x00, 0x2a, 0x00, 0x00, 0x00, 0x08,
	0x00, 0x01,
	0x01, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

func runCmd(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunUsage(t *testing.T) {
	c := qt.New(t)

	for _, args := range [][]string{{"-h"}, {"-nosuchflag", "a.tif"}} {
		code, stdout, stderr := runCmd(args...)
		c.Assert(code, qt.Equals, 0)
		c.Assert(stdout, qt.Contains, "Usage: tiffsec [-h] [-j N] [-v] [-strict] file.tiff...")
		c.Assert(stdout, qt.Contains, "-strict")
		c.Assert(stderr, qt.Equals, "")
	}
}

func TestRunReport(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()

	a := filepath.Join(dir, "a.tif")
	b := filepath.Join(dir, "b.tif")
	c.Assert(os.WriteFile(a, classified, 0o644), qt.IsNil)
	c.Assert(os.WriteFile(b, plain, 0o644), qt.IsNil)

	code, stdout, stderr := runCmd("-j", "2", a, b)
	c.Assert(code, qt.Equals, 0)
	c.Assert(stderr, qt.Equals, "")
	c.Assert(stdout, qt.Equals, a+": SecurityClassification tag: 0x02\n"+b+": SecurityClassification NOT found\n")

	code, stdout, _ = runCmd()
	c.Assert(code, qt.Equals, 0)
	c.Assert(stdout, qt.Equals, "")
}

func TestRunVerbose(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()

	a := filepath.Join(dir, "a.tif")
	c.Assert(os.WriteFile(a, classified, 0o644), qt.IsNil)

	code, stdout, stderr := runCmd("-v", a)
	c.Assert(code, qt.Equals, 0)
	c.Assert(stdout, qt.Equals, a+`: little-endian, 1 IFD(s)
  IFD0 at 8: 1 entries, next 0
    SecurityClassification (0x9212) ASCII count=2 size=2 value/offset=67
`+a+": SecurityClassification tag: 0x02\n")
	c.Assert(stderr, qt.Equals, "1 file(s) given, 1 loaded, 1 with SecurityClassification\n")
}

func TestRunFailures(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()

	missing := filepath.Join(dir, "missing.tif")
	truncated := filepath.Join(dir, "truncated.tif")
	ok := filepath.Join(dir, "ok.tif")
	c.Assert(os.WriteFile(truncated, classified[:15], 0o644), qt.IsNil)
	c.Assert(os.WriteFile(ok, plain, 0o644), qt.IsNil)

	code, stdout, stderr := runCmd(missing, truncated, ok)
	c.Assert(code, qt.Equals, 0)
	c.Assert(stdout, qt.Equals, ok+": SecurityClassification NOT found\n")
	c.Assert(stderr, qt.Contains, "Error: "+missing+": open failed")
	c.Assert(stderr, qt.Contains, "Error: "+truncated+": tiffsec: IFD at offset 8: truncated directory entries")

	code, _, _ = runCmd("-strict", missing, ok)
	c.Assert(code, qt.Equals, 1)

	code, _, _ = runCmd("-strict", ok)
	c.Assert(code, qt.Equals, 0)
}

// dumpFailingWriter fails on the IFD dump lines only.
type dumpFailingWriter struct {
	bytes.Buffer
}

func (w *dumpFailingWriter) Write(p []byte) (int, error) {
	if strings.Contains(string(p), "IFD") {
		return 0, errors.New("dump write failed")
	}
	return w.Buffer.Write(p)
}

func TestRunVerboseWriteError(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()

	a := filepath.Join(dir, "a.tif")
	c.Assert(os.WriteFile(a, classified, 0o644), qt.IsNil)

	var stdout dumpFailingWriter
	var stderr bytes.Buffer
	code := run([]string{"-v", a}, &stdout, &stderr)
	c.Assert(code, qt.Equals, 1)
	c.Assert(stderr.String(), qt.Equals, "Error: dump write failed\n")
	c.Assert(stdout.String(), qt.Equals, "")
}
