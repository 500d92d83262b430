package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"spare/internal/histogram"
	"spare/internal/spare"
)

// The synthetic corpus carries punctuation and a newline that cleaning must
// strip before the snippets can match. Indicator offsets below are worked out
// by hand against the cleaned text (103 chars).
const rawCorpus = "Alice was beginning to get very tired of sitting by her sister on\n" +
	"the bank, and she peeped into the book."

var snippets = []string{
	"get very tired of sitting",
	"of sitting by her sister",
	"the bank and she peeped",
}

var (
	wantOffsets = []int{49, 63, 90}
	wantWords   = []string{"by", "on", "into"}
)

// TestCase pairs a pipeline configuration with the expected per-segment counts.
type TestCase struct {
	Name     string
	Segments int
	Boundary histogram.BoundaryMode
	Counts   []int
}

var cases = []TestCase{
	{"four segments, half-open", 4, histogram.BoundaryHalfOpen, []int{0, 1, 1, 1}},
	{"four segments, legacy", 4, histogram.BoundaryLegacy, []int{0, 1, 1, 1}},
	{"two segments, half-open", 2, histogram.BoundaryHalfOpen, []int{1, 2}},
}

func main() {
	fmt.Println("SpaRe Pipeline Verification")
	fmt.Println("===========================")
	fmt.Println()

	dir, err := os.MkdirTemp("", "spare-verify-*")
	if err != nil {
		fmt.Printf("Error creating temp dir: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(dir)

	textPath, wbPath, err := writeFixture(dir)
	if err != nil {
		fmt.Printf("Error writing fixture: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, tc := range cases {
		cfg := spare.DefaultConfig()
		cfg.TextPath = textPath
		cfg.WorkbookPath = wbPath
		cfg.Segments = tc.Segments
		cfg.Boundary = tc.Boundary

		report, err := spare.Run(cfg)
		if err != nil {
			fmt.Printf("FAIL %s: %v\n", tc.Name, err)
			failed++
			continue
		}

		if !checkReport(tc, report) {
			failed++
			continue
		}
		fmt.Printf("PASS %s\n", tc.Name)
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d cases failed\n", failed, len(cases))
		os.Exit(1)
	}
	fmt.Printf("All %d cases passed\n", len(cases))
}

func checkReport(tc TestCase, report *spare.Report) bool {
	if len(report.Locations) != len(wantOffsets) {
		fmt.Printf("FAIL %s: located %d indicators, want %d\n",
			tc.Name, len(report.Locations), len(wantOffsets))
		return false
	}
	for i, loc := range report.Locations {
		if loc.Indicator != wantOffsets[i] || loc.Word != wantWords[i] {
			fmt.Printf("FAIL %s: location %d = offset %d word %q, want %d %q\n",
				tc.Name, i, loc.Indicator, loc.Word, wantOffsets[i], wantWords[i])
			return false
		}
	}

	for i, b := range report.Histogram.Bins {
		if b.Count != tc.Counts[i] {
			fmt.Printf("FAIL %s: segment %d count = %d, want %d\n",
				tc.Name, b.Segment, b.Count, tc.Counts[i])
			return false
		}
	}
	if report.Histogram.Total() != len(wantOffsets) {
		fmt.Printf("FAIL %s: histogram total = %d, want %d\n",
			tc.Name, report.Histogram.Total(), len(wantOffsets))
		return false
	}
	return true
}

func writeFixture(dir string) (textPath, wbPath string, err error) {
	textPath = filepath.Join(dir, "corpus.txt")
	if err = os.WriteFile(textPath, []byte(rawCorpus), 0644); err != nil {
		return "", "", err
	}

	f := excelize.NewFile()
	defer f.Close()
	if _, err = f.NewSheet("finalList"); err != nil {
		return "", "", err
	}
	if err = f.SetSheetRow("finalList", "A1", &[]any{"context [5:]"}); err != nil {
		return "", "", err
	}
	for i, s := range snippets {
		cell, cerr := excelize.CoordinatesToCellName(1, i+2)
		if cerr != nil {
			return "", "", cerr
		}
		if err = f.SetSheetRow("finalList", cell, &[]any{s}); err != nil {
			return "", "", err
		}
	}

	wbPath = filepath.Join(dir, "snippets.xlsx")
	if err = f.SaveAs(wbPath); err != nil {
		return "", "", err
	}
	return textPath, wbPath, nil
}
