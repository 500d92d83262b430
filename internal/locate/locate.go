package locate

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// Location records where one snippet matched and the indicator it anchors.
// Offsets are byte offsets into the cleaned text.
type Location struct {
	Snippet   string
	Start     int    // offset of the snippet's first character
	Length    int    // snippet length
	Indicator int    // offset of the indicator word, one past the snippet
	Word      string // the indicator word found there
}

// Result holds the locations in snippet input order plus the distinct
// indicator offsets as a bitmap for rank-based counting.
type Result struct {
	Locations []Location
	Offsets   *roaring.Bitmap
}

// Locate finds the first occurrence of each snippet in text and derives the
// indicator offset one character past it. Snippets are processed in input
// order, every one of them including the last. A snippet absent from the
// text, a snippet with nothing following it, an indicator word outside the
// lexicon, or two snippets deriving the same offset are explicit errors;
// no sentinel offset ever reaches the output. A nil lexicon disables the
// vocabulary check.
func Locate(text string, snippets []string, lex *Lexicon) (*Result, error) {
	res := &Result{Offsets: roaring.New()}

	for i, snip := range snippets {
		start := strings.Index(text, snip)
		if start < 0 {
			return nil, fmt.Errorf("snippet %d %q not found in text", i+1, snip)
		}

		indicator := start + len(snip) + 1
		if indicator >= len(text) {
			return nil, fmt.Errorf("snippet %d %q has no word following it", i+1, snip)
		}

		word := wordAt(text, indicator)
		if lex != nil && !lex.Contains(strings.ToLower(word)) {
			return nil, fmt.Errorf("snippet %d %q anchors %q at offset %d, not a known spatial indicator",
				i+1, snip, word, indicator)
		}

		if !res.Offsets.CheckedAdd(uint32(indicator)) {
			return nil, fmt.Errorf("snippet %d %q derives offset %d already claimed by an earlier snippet",
				i+1, snip, indicator)
		}

		res.Locations = append(res.Locations, Location{
			Snippet:   snip,
			Start:     start,
			Length:    len(snip),
			Indicator: indicator,
			Word:      word,
		})
	}

	return res, nil
}

// wordAt returns the run of non-space characters starting at offset.
func wordAt(text string, offset int) string {
	end := strings.IndexByte(text[offset:], ' ')
	if end < 0 {
		return text[offset:]
	}
	return text[offset : offset+end]
}
