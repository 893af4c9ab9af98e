package dict

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// IgnoreList holds words that must never be reported, regardless of what
// the dictionary says. Matching is case-insensitive.
type IgnoreList struct {
	words map[string]bool
}

// LoadIgnore reads an ignore-list file: one word per line, blank lines and
// lines starting with # skipped.
func LoadIgnore(path string) (*IgnoreList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ignore list %s: %w", path, err)
	}
	defer f.Close()

	words := make(map[string]bool)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words[strings.ToLower(line)] = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading ignore list %s: %w", path, err)
	}
	return &IgnoreList{words: words}, nil
}

// Contains reports whether word is on the ignore list.
func (l *IgnoreList) Contains(word string) bool {
	if l == nil {
		return false
	}
	return l.words[strings.ToLower(word)]
}
