package main

import (
	"flag"
	"fmt"
	"os"

	"spare/internal/histogram"
	"spare/internal/render"
	"spare/internal/spare"
)

func main() {
	defaults := spare.DefaultConfig()

	var (
		flagText     string
		flagSnippets string
		flagSheet    string
		flagColumn   string
		flagSegments int
		flagLegacy   bool
		flagNoLex    bool
		flagOut      string
	)
	flag.StringVar(&flagText, "text", "", "path to the corpus text file")
	flag.StringVar(&flagSnippets, "snippets", "", "path to the snippet workbook (xlsx)")
	flag.StringVar(&flagSheet, "sheet", defaults.Sheet, "workbook sheet holding the snippets")
	flag.StringVar(&flagColumn, "column", defaults.Column, "column header of the snippet cells")
	flag.IntVar(&flagSegments, "segments", defaults.Segments, "number of text segments to bin into")
	flag.BoolVar(&flagLegacy, "legacy-bins", false, "use the legacy inclusive segment boundaries")
	flag.BoolVar(&flagNoLex, "no-lexicon", false, "skip spatial-indicator vocabulary validation")
	flag.StringVar(&flagOut, "out", "spare.html", "chart output path, or - for a text table on stdout")
	flag.Parse()

	if flagText == "" || flagSnippets == "" {
		fmt.Fprintln(os.Stderr, "usage: spare -text <corpus.txt> -snippets <snippets.xlsx> [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := defaults
	cfg.TextPath = flagText
	cfg.WorkbookPath = flagSnippets
	cfg.Sheet = flagSheet
	cfg.Column = flagColumn
	cfg.Segments = flagSegments
	if flagLegacy {
		cfg.Boundary = histogram.BoundaryLegacy
	}
	if flagNoLex {
		cfg.Lexicon = nil
	}

	report, err := spare.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Corpus: %d chars\n", report.TextLen)
	fmt.Printf("Snippets: %d, indicators located: %d\n", report.Snippets, len(report.Locations))
	fmt.Printf("Segments: %d (%s boundaries)\n", len(report.Histogram.Bins), report.Histogram.Mode)

	if flagOut == "-" {
		if err := render.Table(report.Histogram, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Create(flagOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := render.Chart(report.Histogram, f); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Chart written to %s\n", flagOut)
}
