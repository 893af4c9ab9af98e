// Package dict loads and queries the typo dictionary: a mapping from a
// lowercase misspelling to an ordered list of corrections. When an entry
// carries two or more fields, the final field is a free-text caveat
// explaining why the fix may not always apply, not a correction.
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	_ "embed"
)

//go:embed data/dictionary.txt
var embeddedDictionary string

// ErrEmptyDictionary reports a dictionary source with no usable entries.
// There is nothing useful the scanner can do without one, so callers treat
// this as fatal.
var ErrEmptyDictionary = errors.New("dictionary contains no entries")

// Dictionary is an immutable typo → corrections mapping. It is read-only
// after construction, so a single instance can be shared across goroutines
// scanning different files without locking.
type Dictionary struct {
	entries map[string][]string
}

// Load reads a dictionary file. Each line has the form
// typo->correction1,correction2,... and lines without the -> separator are
// skipped, which covers blanks and comments.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %s: %w", path, err)
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	return d, nil
}

// Parse reads dictionary entries from r.
func Parse(r io.Reader) (*Dictionary, error) {
	entries := make(map[string][]string)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		typo, rest, ok := strings.Cut(line, "->")
		if !ok {
			continue
		}
		typo = strings.TrimSpace(typo)
		if typo == "" {
			continue
		}
		corrections := strings.Split(rest, ",")
		for i, c := range corrections {
			corrections[i] = strings.TrimSpace(c)
		}
		entries[typo] = corrections
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmptyDictionary
	}
	return &Dictionary{entries: entries}, nil
}

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the embedded dictionary, parsed once per process.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		defaultDict, defaultErr = Parse(strings.NewReader(embeddedDictionary))
	})
	return defaultDict, defaultErr
}

// Lookup returns the correction list for a lowercase word, or nil when the
// word is not a known misspelling. Callers lowercase before calling; the
// dictionary source is assumed to already be lowercase.
func (d *Dictionary) Lookup(word string) []string {
	return d.entries[word]
}

// Len returns the number of known misspellings.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Corrections returns the deduplicated set of correction words across all
// entries, excluding caveat fields. Used to seed the fuzzy suggestion model.
func (d *Dictionary) Corrections() []string {
	seen := make(map[string]bool)
	var words []string
	for _, sugs := range d.entries {
		real := sugs
		if len(sugs) >= 2 {
			real = sugs[:len(sugs)-1]
		}
		for _, s := range real {
			s = strings.ToLower(s)
			if s != "" && !seen[s] {
				seen[s] = true
				words = append(words, s)
			}
		}
	}
	return words
}
