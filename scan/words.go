package scan

import (
	"regexp"
	"strings"
)

// wordPattern matches candidate words in free text: runs of three or more
// alphanumerics, optionally followed by an apostrophe suffix so that
// contractions like "wasn't" come out as one candidate.
var wordPattern = regexp.MustCompile(`(?i)[a-z0-9]{3,}(?:'[a-z]+)?`)

// Match is one extracted word and its byte offset within the scanned text.
type Match struct {
	Word   string
	Offset int
}

// Words extracts candidate words from free text (string contents, comments,
// inline markup) in left-to-right order.
func Words(text string) []Match {
	idx := wordPattern.FindAllStringIndex(text, -1)
	if idx == nil {
		return nil
	}
	matches := make([]Match, len(idx))
	for i, loc := range idx {
		matches[i] = Match{Word: text[loc[0]:loc[1]], Offset: loc[0]}
	}
	return matches
}

// IdentifierParts decomposes a compound identifier into its constituent
// words on camelCase, PascalCase, ACRONYMCase and snake_case boundaries:
// "parseHTMLFile" yields "parse", "HTML", "File". Segments are lowercase
// runs, or an uppercase letter followed by a lowercase run, or a run of
// uppercase letters that stops before an uppercase letter starting a new
// capitalized word. Anything else (underscores, digits) separates segments.
func IdentifierParts(s string) []string {
	var parts []string
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isLower(c):
			j := i + 1
			for j < len(s) && isLower(s[j]) {
				j++
			}
			parts = append(parts, s[i:j])
			i = j
		case isUpper(c):
			j := i + 1
			if j < len(s) && isLower(s[j]) {
				for j < len(s) && isLower(s[j]) {
					j++
				}
			} else {
				for j < len(s) && isUpper(s[j]) && !(j+1 < len(s) && isLower(s[j+1])) {
					j++
				}
			}
			parts = append(parts, s[i:j])
			i = j
		default:
			i++
		}
	}
	return parts
}

// looksCompound reports whether a free-text word resembles an embedded
// identifier: it contains an underscore or an uppercase letter after a
// lowercase one. Such words are re-segmented before dictionary lookup.
func looksCompound(s string) bool {
	if strings.ContainsRune(s, '_') {
		return true
	}
	seenLower := false
	for i := 0; i < len(s); i++ {
		if isLower(s[i]) {
			seenLower = true
		} else if isUpper(s[i]) && seenLower {
			return true
		}
	}
	return false
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
