package spare

import (
	"spare/internal/corpus"
	"spare/internal/histogram"
	"spare/internal/locate"
	"spare/internal/snippet"
)

// Config carries every input of the pipeline. Nothing is hard-coded: paths,
// sheet and column names, and the segment count are all explicit so synthetic
// fixtures can drive the whole run.
type Config struct {
	TextPath     string
	WorkbookPath string
	Sheet        string
	Column       string
	Segments     int
	Boundary     histogram.BoundaryMode
	Lexicon      *locate.Lexicon // nil disables indicator validation
}

// DefaultConfig carries the study defaults: 50 segments, sheet "finalList",
// column "context [5:]", the standard SpIn lexicon.
func DefaultConfig() Config {
	return Config{
		Sheet:    "finalList",
		Column:   "context [5:]",
		Segments: 50,
		Boundary: histogram.BoundaryHalfOpen,
		Lexicon:  locate.DefaultLexicon(),
	}
}

// Report is the outcome of one analysis run.
type Report struct {
	TextLen   int
	Snippets  int
	Locations []locate.Location
	Histogram *histogram.Histogram
}

// Run executes the pipeline stages in order: clean the corpus, load the
// snippet workbook, locate the indicators, bin them into segments. Any stage
// failure aborts the run with a wrapped error; there are no partial results.
func Run(cfg Config) (*Report, error) {
	text, err := corpus.Load(cfg.TextPath)
	if err != nil {
		return nil, err
	}

	snippets, err := snippet.FromWorkbook(cfg.WorkbookPath, cfg.Sheet, cfg.Column)
	if err != nil {
		return nil, err
	}

	res, err := locate.Locate(text, snippets, cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	h, err := histogram.Build(res.Offsets, len(text), cfg.Segments, cfg.Boundary)
	if err != nil {
		return nil, err
	}

	return &Report{
		TextLen:   len(text),
		Snippets:  len(snippets),
		Locations: res.Locations,
		Histogram: h,
	}, nil
}
