package scan

import "strings"

// splitCaveat separates a correction list from its trailing caveat entry.
// A caveat only exists when the list has two or more entries.
func splitCaveat(sugs []string) (corrections []string, caveat string, hasCaveat bool) {
	if len(sugs) >= 2 {
		return sugs[:len(sugs)-1], sugs[len(sugs)-1], true
	}
	return sugs, "", false
}

// filterSuggestions reshapes a raw dictionary suggestion list for a match.
// In identifier context, corrections that could not stand alone as an
// identifier (an apostrophe, a hyphen, a space) are dropped; the caveat
// entry is exempt since it is prose, not a replacement. Returns nil when no
// real correction survives, which suppresses the finding entirely.
func filterSuggestions(sugs []string, identContext bool) []string {
	if !identContext {
		return sugs
	}
	corrections, caveat, hasCaveat := splitCaveat(sugs)
	var kept []string
	for _, c := range corrections {
		if isIdentifierWord(c) {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	if hasCaveat {
		kept = append(kept, caveat)
	}
	return kept
}

// isIdentifierWord reports whether every byte of s could appear in a bare
// identifier: ASCII alphanumerics, underscore, or bytes in the 0x7f-0xff
// range that extended identifier charsets allow.
func isIdentifierWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x7f || b == '_' || isLower(b) || isUpper(b) || b >= '0' && b <= '9' {
			continue
		}
		return false
	}
	return true
}

// SuggestionMessage renders a suggestion list as a human-readable message,
// recasing each correction to match the original word: an all-uppercase
// word uppercases the corrections, a capitalized word capitalizes them.
func SuggestionMessage(sugs []string, word string) string {
	corrections, caveat, hasCaveat := splitCaveat(sugs)

	var sb strings.Builder
	sb.WriteString("Did you mean ")
	for i, c := range corrections {
		if i > 0 {
			sb.WriteString(" or ")
		}
		sb.WriteByte('"')
		sb.WriteString(matchCase(c, word))
		sb.WriteByte('"')
	}
	sb.WriteByte('?')
	if hasCaveat {
		sb.WriteString(" : not always fixable: ")
		sb.WriteString(caveat)
	}
	return sb.String()
}

// matchCase recases correction to follow the case pattern of word.
func matchCase(correction, word string) string {
	if word == strings.ToUpper(word) && word != strings.ToLower(word) {
		return strings.ToUpper(correction)
	}
	if len(word) > 0 && isUpper(word[0]) {
		return capitalize(correction)
	}
	return correction
}

func capitalize(s string) string {
	if s == "" || !isLower(s[0]) {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
