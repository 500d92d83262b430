package locate

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/couchbase/vellum"
)

// defaultIndicators is the spatial-indicator vocabulary: prepositions that
// occur in prepositional phrases or phrasal verbs, plus the demonstratives
// "here" and "there".
var defaultIndicators = []string{
	"back", "across", "against", "along", "around", "at", "behind", "below",
	"besides", "by", "down", "from", "in", "into", "near", "of", "off", "on",
	"out", "outside", "over", "through", "to", "towards", "under",
	"underneath", "up", "here", "there",
}

// Lexicon is a set of known spatial-indicator words backed by an FST.
type Lexicon struct {
	fst *vellum.FST
}

// NewLexicon builds a lexicon from the given words. Duplicates and empty
// strings are ignored.
func NewLexicon(words []string) (*Lexicon, error) {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	var buf bytes.Buffer
	b, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lexicon builder: %w", err)
	}

	var prev string
	for _, w := range sorted {
		if w == "" || w == prev {
			continue
		}
		if err := b.Insert([]byte(w), 0); err != nil {
			return nil, fmt.Errorf("failed to insert %q into lexicon: %w", w, err)
		}
		prev = w
	}
	if err := b.Close(); err != nil {
		return nil, err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon fst: %w", err)
	}

	return &Lexicon{fst: fst}, nil
}

// DefaultLexicon builds the standard spatial-indicator vocabulary.
func DefaultLexicon() *Lexicon {
	lex, err := NewLexicon(defaultIndicators)
	if err != nil {
		// The word list is static; building it cannot fail.
		panic(err)
	}
	return lex
}

// Contains reports whether word is in the lexicon.
func (l *Lexicon) Contains(word string) bool {
	_, ok, err := l.fst.Get([]byte(word))
	return err == nil && ok
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	return l.fst.Len()
}
