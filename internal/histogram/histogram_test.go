package histogram

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
)

func bitmapOf(offsets ...uint32) *roaring.Bitmap {
	return roaring.BitmapOf(offsets...)
}

func TestBuild_AllSegmentsPresent(t *testing.T) {
	h, err := Build(bitmapOf(), 100, 10, BoundaryHalfOpen)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(h.Bins) != 10 {
		t.Fatalf("got %d bins, want 10", len(h.Bins))
	}
	for i, b := range h.Bins {
		if b.Segment != i+1 {
			t.Errorf("bin[%d].Segment = %d, want %d", i, b.Segment, i+1)
		}
		if b.Count != 0 {
			t.Errorf("bin[%d].Count = %d, want 0", i, b.Count)
		}
	}
}

func TestBuild_CountsSumToCardinality(t *testing.T) {
	offsets := bitmapOf(0, 1, 12, 47, 48, 99, 100, 101, 102)
	for _, mode := range []BoundaryMode{BoundaryHalfOpen, BoundaryLegacy} {
		h, err := Build(offsets, 103, 7, mode)
		if err != nil {
			t.Fatalf("Build(%v) error: %v", mode, err)
		}
		if got, want := h.Total(), int(offsets.GetCardinality()); got != want {
			t.Errorf("%v mode: total = %d, want %d", mode, got, want)
		}
	}
}

func TestBuild_RemainderAbsorbedByLastSegment(t *testing.T) {
	// 10 chars into 3 segments: chunkLen = ceil(10/3) = 4, so the last
	// half-open segment is shorter, [8, 10).
	h, err := Build(bitmapOf(9), 10, 3, BoundaryHalfOpen)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(h.Bins) != 3 {
		t.Fatalf("got %d bins, want 3", len(h.Bins))
	}
	last := h.Bins[2]
	if last.Start != 8 || last.End != 10 {
		t.Errorf("last bin spans [%d, %d), want [8, 10)", last.Start, last.End)
	}
	if last.Count != 1 {
		t.Errorf("last bin count = %d, want 1", last.Count)
	}
}

func TestBuild_MoreSegmentsThanChars(t *testing.T) {
	h, err := Build(bitmapOf(0, 2), 3, 5, BoundaryHalfOpen)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(h.Bins) != 5 {
		t.Fatalf("got %d bins, want 5", len(h.Bins))
	}
	if h.Total() != 2 {
		t.Errorf("total = %d, want 2", h.Total())
	}
}

func TestBuild_CatSatScenario(t *testing.T) {
	// "the cat sat on the mat": 22 chars, indicator at 12, two segments.
	// chunkLen = 11, so offset 12 lands in segment 2 under both modes.
	for _, mode := range []BoundaryMode{BoundaryHalfOpen, BoundaryLegacy} {
		h, err := Build(bitmapOf(12), 22, 2, mode)
		if err != nil {
			t.Fatalf("Build(%v) error: %v", mode, err)
		}
		if h.Bins[0].Count != 0 || h.Bins[1].Count != 1 {
			t.Errorf("%v mode: counts = {1:%d, 2:%d}, want {1:0, 2:1}",
				mode, h.Bins[0].Count, h.Bins[1].Count)
		}
	}
}

func TestBuild_BoundaryOffsetModeDifference(t *testing.T) {
	// Offset 11 with chunkLen 11: half-open [0,11) excludes it from
	// segment 1, the legacy inclusive [0,11] claims it.
	offsets := bitmapOf(11)

	h, err := Build(offsets, 22, 2, BoundaryHalfOpen)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if h.Bins[0].Count != 0 || h.Bins[1].Count != 1 {
		t.Errorf("half-open: counts = {1:%d, 2:%d}, want {1:0, 2:1}",
			h.Bins[0].Count, h.Bins[1].Count)
	}

	h, err = Build(offsets, 22, 2, BoundaryLegacy)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if h.Bins[0].Count != 1 || h.Bins[1].Count != 0 {
		t.Errorf("legacy: counts = {1:%d, 2:%d}, want {1:1, 2:0}",
			h.Bins[0].Count, h.Bins[1].Count)
	}
}

func TestBuild_LegacyBoundaries(t *testing.T) {
	// chunkLen = 11. Legacy segment 2 must span [12, 23]: the legacy
	// scheme shifts each boundary by one extra character per segment.
	h, err := Build(bitmapOf(), 22, 2, BoundaryLegacy)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if h.Bins[0].Start != 0 || h.Bins[0].End != 11 {
		t.Errorf("legacy bin 1 spans [%d, %d], want [0, 11]", h.Bins[0].Start, h.Bins[0].End)
	}
	if h.Bins[1].Start != 12 || h.Bins[1].End != 23 {
		t.Errorf("legacy bin 2 spans [%d, %d], want [12, 23]", h.Bins[1].Start, h.Bins[1].End)
	}
}

func TestBuild_InvalidSegmentCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Build(bitmapOf(), 100, n, BoundaryHalfOpen); err == nil {
			t.Errorf("expected error for n = %d", n)
		}
	}
}

func TestBuild_EmptyText(t *testing.T) {
	h, err := Build(bitmapOf(), 0, 4, BoundaryHalfOpen)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(h.Bins) != 4 || h.Total() != 0 {
		t.Errorf("got %d bins with total %d, want 4 empty bins", len(h.Bins), h.Total())
	}
}
