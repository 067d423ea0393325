// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"fmt"
	"io"
)

// Match is a directory entry carrying the tag searched for.
type Match struct {
	// IFD is the index of the IFD in the chain, 0 for IFD0.
	IFD int
	// Entry is the index of the entry within the IFD.
	Entry int
	// Type is the entry's field type code.
	Type uint16
	// Count is the entry's value count.
	Count uint32
}

// FindTag returns every entry in t whose tag is tag, in chain order and
// then entry order.
func FindTag(t *Tiff, tag uint16) []Match {
	var matches []Match
	for i, ifd := range t.ifds {
		for j, e := range ifd.entries {
			if e.Tag() == tag {
				matches = append(matches, Match{IFD: i, Entry: j, Type: e.Type(), Count: e.Count()})
			}
		}
	}
	return matches
}

// HasSecurityClassification reports whether any IFD in t has a
// SecurityClassification entry.
func HasSecurityClassification(t *Tiff) bool {
	return len(FindTag(t, TagSecurityClassification)) > 0
}

// ScanResult is the outcome of scanning one TIFF for a tag.
type ScanResult struct {
	Name    string
	Tag     uint16
	Matches []Match
}

// Found reports whether the tag was found at least once.
func (r ScanResult) Found() bool {
	return len(r.Matches) > 0
}

// Scan runs FindTag on every TIFF in c, in collection order.
func Scan(c *Collection, tag uint16) []ScanResult {
	results := make([]ScanResult, 0, c.Len())
	c.ForEach(func(t *Tiff) error {
		results = append(results, ScanResult{Name: t.Name(), Tag: tag, Matches: FindTag(t, tag)})
		return nil
	})
	return results
}

// WriteReport writes one line per match, or a single line stating the tag
// was not found, for each result.
func WriteReport(w io.Writer, results []ScanResult) error {
	for _, r := range results {
		name := TagName(r.Tag)
		if !r.Found() {
			if _, err := fmt.Fprintf(w, "%s: %s NOT found\n", r.Name, name); err != nil {
				return err
			}
			continue
		}
		for _, m := range r.Matches {
			if _, err := fmt.Fprintf(w, "%s: %s tag: 0x%02x\n", r.Name, name, m.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteDump writes every entry of every IFD in t.
func WriteDump(w io.Writer, t *Tiff) error {
	order := "little-endian"
	if t.BigEndian() {
		order = "big-endian"
	}
	if _, err := fmt.Fprintf(w, "%s: %s, %d IFD(s)\n", t.Name(), order, t.NumIFDs()); err != nil {
		return err
	}
	for i, ifd := range t.ifds {
		if _, err := fmt.Fprintf(w, "  IFD%d at %d: %d entries, next %d\n", i, ifd.Offset(), ifd.Len(), ifd.NextOffset()); err != nil {
			return err
		}
		for _, e := range ifd.entries {
			if _, err := fmt.Fprintf(w, "    %s\n", e); err != nil {
				return err
			}
		}
	}
	return nil
}
