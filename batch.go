// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffsec

import (
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
)

type loadResult struct {
	t   *Tiff
	err error
}

// LoadFiles loads each file in paths into a new Collection, in input order.
//
// A file that cannot be opened or parsed is skipped and reported through
// opts.Warnf; the returned error is then a *multierror.Error holding one
// *FileError per failed file. The Collection is always non-nil and holds
// every file that loaded.
func LoadFiles(paths []string, opts Options) (*Collection, error) {
	opts = opts.withDefaults()

	results := make([]loadResult, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for range min(opts.Concurrency, len(paths)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				t, err := loadFile(paths[i], opts)
				results[i] = loadResult{t: t, err: err}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	c := &Collection{}
	var errs *multierror.Error
	for i, res := range results {
		if res.err != nil {
			ferr := &FileError{Path: paths[i], Err: res.err}
			opts.Warnf("%s", ferr)
			errs = multierror.Append(errs, ferr)
			continue
		}
		c.Add(res.t)
	}

	return c, errs.ErrorOrNil()
}

func loadFile(path string, opts Options) (*Tiff, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileOpen, err)
	}
	defer f.Close()

	return Load(f, path, opts)
}
