// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

// Collection is an insertion ordered set of loaded TIFFs.
// The zero value is ready to use. It is not safe for concurrent Add.
type Collection struct {
	tiffs []*Tiff
}

// Add appends t.
func (c *Collection) Add(t *Tiff) {
	c.tiffs = append(c.tiffs, t)
}

// Len returns the number of TIFFs.
func (c *Collection) Len() int {
	return len(c.tiffs)
}

// All returns the TIFFs in insertion order.
func (c *Collection) All() []*Tiff {
	tiffs := make([]*Tiff, len(c.tiffs))
	copy(tiffs, c.tiffs)
	return tiffs
}

// ForEach calls f for each TIFF in insertion order.
// If f returns ErrStopWalking, iteration stops and ForEach returns nil.
// Any other error stops iteration and is returned.
func (c *Collection) ForEach(f func(t *Tiff) error) error {
	for _, t := range c.tiffs {
		if err := f(t); err != nil {
			if err == ErrStopWalking {
				return nil
			}
			return err
		}
	}
	return nil
}
