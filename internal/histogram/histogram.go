package histogram

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// BoundaryMode selects how segment boundaries are drawn.
type BoundaryMode int

const (
	// BoundaryHalfOpen bins offsets into [start, end) ranges, the last
	// segment absorbing any remainder up to the text length.
	BoundaryHalfOpen BoundaryMode = iota

	// BoundaryLegacy keeps output parity with earlier SpaRe analyses:
	// segment 1 spans [0, chunkLen], segment k>1 spans
	// [chunkLen*k+(k-1)-chunkLen, chunkLen*k+(k-1)]. Consecutive ranges
	// are disjoint and gap-free, so counts still sum to the located total,
	// but the later segments extend past the end of the text.
	BoundaryLegacy
)

func (m BoundaryMode) String() string {
	switch m {
	case BoundaryHalfOpen:
		return "half-open"
	case BoundaryLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Bin is one segment of the text with its indicator count. End is exclusive
// in half-open mode and inclusive in legacy mode.
type Bin struct {
	Segment int // 1-based index
	Start   int
	End     int
	Count   int
}

// Histogram is the per-segment indicator frequency distribution. Bins are
// ordered by segment index and every index 1..N is present, zero counts
// included.
type Histogram struct {
	Bins    []Bin
	Mode    BoundaryMode
	TextLen int
}

// Total returns the sum of all bin counts.
func (h *Histogram) Total() int {
	total := 0
	for _, b := range h.Bins {
		total += b.Count
	}
	return total
}

// Build bins the indicator offsets into n equal-length segments of a text
// textLen characters long. The chunk length is ceil(textLen/n).
func Build(offsets *roaring.Bitmap, textLen, n int, mode BoundaryMode) (*Histogram, error) {
	if n < 1 {
		return nil, fmt.Errorf("segment count must be positive, got %d", n)
	}
	if textLen < 0 {
		return nil, fmt.Errorf("text length must be non-negative, got %d", textLen)
	}

	chunkLen := (textLen + n - 1) / n

	h := &Histogram{
		Bins:    make([]Bin, 0, n),
		Mode:    mode,
		TextLen: textLen,
	}

	for k := 1; k <= n; k++ {
		var start, end, count int
		switch mode {
		case BoundaryLegacy:
			if k == 1 {
				end = chunkLen
			} else {
				end = chunkLen*k + (k - 1)
			}
			start = end - chunkLen
			count = countRange(offsets, start, end)
		default:
			start = (k - 1) * chunkLen
			end = k * chunkLen
			if start > textLen {
				start = textLen
			}
			if end > textLen {
				end = textLen
			}
			count = countRange(offsets, start, end-1)
		}
		h.Bins = append(h.Bins, Bin{Segment: k, Start: start, End: end, Count: count})
	}

	return h, nil
}

// countRange counts offsets in [start, end], both ends inclusive, using the
// bitmap's rank index.
func countRange(offsets *roaring.Bitmap, start, end int) int {
	if offsets == nil || end < start || end < 0 {
		return 0
	}
	if start < 0 {
		start = 0
	}
	c := offsets.Rank(uint32(end))
	if start > 0 {
		c -= offsets.Rank(uint32(start - 1))
	}
	return int(c)
}
