// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command tiffsec reports whether TIFF files carry the SecurityClassification tag.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bep/tiffsec"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tiffsec", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	concurrency := fs.Int("j", 1, "number of files to load in parallel")
	verbose := fs.Bool("v", false, "dump every IFD entry and print a summary")
	strict := fs.Bool("strict", false, "exit with status 1 if any file fails to load")

	if err := fs.Parse(args); err != nil {
		// -h and unknown flags both end here.
		fmt.Fprintln(stdout, "Usage: tiffsec [-h] [-j N] [-v] [-strict] file.tiff...")
		fs.SetOutput(stdout)
		fs.PrintDefaults()
		return 0
	}

	logger := log.New(stderr, "Error: ", 0)

	paths := fs.Args()
	tiffs, err := tiffsec.LoadFiles(paths, tiffsec.Options{
		Concurrency: *concurrency,
		Warnf:       logger.Printf,
	})

	if *verbose {
		if err := tiffs.ForEach(func(t *tiffsec.Tiff) error {
			return tiffsec.WriteDump(stdout, t)
		}); err != nil {
			logger.Print(err)
			return 1
		}
	}

	results := tiffsec.Scan(tiffs, tiffsec.TagSecurityClassification)
	if err := tiffsec.WriteReport(stdout, results); err != nil {
		logger.Print(err)
		return 1
	}

	if *verbose {
		var found int
		for _, r := range results {
			if r.Found() {
				found++
			}
		}
		p := message.NewPrinter(language.English)
		p.Fprintf(stderr, "%d file(s) given, %d loaded, %d with %s\n",
			len(paths), tiffs.Len(), found, tiffsec.TagName(tiffsec.TagSecurityClassification))
	}

	if *strict && err != nil {
		return 1
	}
	return 0
}
