package corpus

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/edsrzf/mmap-go"
)

// ReadFile reads the whole corpus file into a string using a read-only mmap.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}
	if stat.Size() == 0 {
		return "", nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("failed to mmap corpus %s: %w", path, err)
	}
	text := string(data)
	if err := data.Unmap(); err != nil {
		return "", err
	}

	return text, nil
}

// Clean normalizes raw corpus text: Unicode letters and hyphens pass through,
// typographic apostrophes and all whitespace (newlines included) become
// spaces, everything else is dropped, and runs of spaces collapse to one.
func Clean(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := false
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || r == '-':
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r) || r == '’':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}

	return b.String()
}

// Load reads and cleans a corpus file in one step.
func Load(path string) (string, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return Clean(raw), nil
}
