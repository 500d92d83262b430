package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"spare/internal/histogram"
)

const chartTitle = "Frequency distribution of Spatial Indicators"

// Chart renders the histogram as a self-contained HTML bar chart. It consumes
// the histogram through its ordered bins only, so the backend stays swappable.
func Chart(h *histogram.Histogram, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: chartTitle}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: fmt.Sprintf("Total characters in text divided into %d segments", len(h.Bins)),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Frequency of SpIns per segment",
		}),
	)

	x := make([]int, len(h.Bins))
	series := make([]opts.BarData, len(h.Bins))
	for i, b := range h.Bins {
		x[i] = b.Segment
		series[i] = opts.BarData{Value: b.Count}
	}
	bar.SetXAxis(x).AddSeries("SpIns", series)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// Table writes a plain-text rendering of the histogram: one line per segment
// with its character range, count, and a bar of hash marks.
func Table(h *histogram.Histogram, w io.Writer) error {
	closing := ")"
	if h.Mode == histogram.BoundaryLegacy {
		closing = "]"
	}

	if _, err := fmt.Fprintf(w, "segment  range            count\n"); err != nil {
		return err
	}
	for _, b := range h.Bins {
		_, err := fmt.Fprintf(w, "%7d  [%6d, %6d%s  %5d %s\n",
			b.Segment, b.Start, b.End, closing, b.Count, strings.Repeat("#", b.Count))
		if err != nil {
			return err
		}
	}
	return nil
}
