package scan

import (
	"strings"

	"github.com/rubiojr/typofind/escape"
)

// ScanFile is the contract exposed to embedding hosts: scan one file's
// text given its tokenization, or in plain-text mode when spans is nil.
// The host decides per finding whether to suppress it (ignore lists) and
// owns all presentation.
func (s *Scanner) ScanFile(text string, spans []Span) []Finding {
	if spans == nil {
		return s.ScanText(text)
	}
	return s.ScanSpans(spans)
}

// ScanText scans free text with no token structure: the whole input is one
// inline-text span starting at line 1.
func (s *Scanner) ScanText(text string) []Finding {
	return s.ScanSpans([]Span{{Kind: InlineText, Text: text, Line: 1}})
}

// ScanSpans scans classified spans in order. Findings are emitted in span
// order and, within a span, in match order, so output is deterministic. A
// string span whose escapes cannot be decoded is skipped; the rest of the
// scan continues.
func (s *Scanner) ScanSpans(spans []Span) []Finding {
	var findings []Finding
	for _, sp := range spans {
		switch sp.Kind {
		case StringEscaped:
			decoded, err := escape.Decode(sp.Text, escape.DoubleQuoted)
			if err != nil {
				continue
			}
			counting := escape.DecodeCounting(sp.Text, escape.DoubleQuoted)
			findings = s.scanFreeText(findings, sp, decoded, counting)
		case StringRaw:
			// Single-quoted decoding never fails and has no escapes that
			// produce newlines, so the decoded text counts its own lines.
			decoded, _ := escape.Decode(sp.Text, escape.SingleQuoted)
			findings = s.scanFreeText(findings, sp, decoded, decoded)
		case Ident:
			findings = s.scanIdentifier(findings, sp)
		case InlineText, Comment:
			findings = s.scanFreeText(findings, sp, sp.Text, sp.Text)
		}
	}
	return findings
}

// scanFreeText extracts plain words from matchText and reports dictionary
// hits. countText is the line-counting twin of matchText: same byte layout,
// with newline-producing escapes marked. Both are the same string for spans
// that need no decoding.
func (s *Scanner) scanFreeText(findings []Finding, sp Span, matchText, countText string) []Finding {
	lc := newLineCounter(countText)
	for _, m := range Words(matchText) {
		sugs := s.dict.Lookup(strings.ToLower(m.Word))
		if sugs == nil {
			findings = s.scanCompoundWord(findings, sp, m, lc)
			continue
		}
		filtered := filterSuggestions(sugs, false)
		if filtered == nil {
			continue
		}
		findings = append(findings, Finding{
			Word:        m.Word,
			Kind:        sp.Kind,
			Line:        sp.Line + lc.linesBefore(m.Offset),
			Suggestions: filtered,
		})
	}
	return findings
}

// scanCompoundWord handles code-like words embedded in free text, e.g. a
// camelCase function name quoted in a comment. The word is re-segmented on
// identifier boundaries and each part is checked, but only when the
// decomposition yields at least two words; ordinary capitalized words would
// otherwise produce false positives.
func (s *Scanner) scanCompoundWord(findings []Finding, sp Span, m Match, lc *lineCounter) []Finding {
	if !looksCompound(m.Word) {
		return findings
	}
	parts := IdentifierParts(m.Word)
	if len(parts) < 2 {
		return findings
	}
	line := sp.Line + lc.linesBefore(m.Offset)
	for _, part := range parts {
		sugs := s.dict.Lookup(strings.ToLower(part))
		if sugs == nil {
			continue
		}
		filtered := filterSuggestions(sugs, false)
		if filtered == nil {
			continue
		}
		findings = append(findings, Finding{
			Word:        part,
			Kind:        sp.Kind,
			Line:        line,
			Suggestions: filtered,
		})
	}
	return findings
}

// scanIdentifier decomposes an identifier span and reports typos in its
// parts. Every part shares the span's start line; identifiers do not wrap
// lines, so no per-part offset tracking is needed. Suggestions that cannot
// replace an identifier word are filtered out, and a finding whose real
// corrections are all filtered is suppressed.
func (s *Scanner) scanIdentifier(findings []Finding, sp Span) []Finding {
	for _, part := range IdentifierParts(sp.Text) {
		sugs := s.dict.Lookup(strings.ToLower(part))
		if sugs == nil {
			continue
		}
		filtered := filterSuggestions(sugs, true)
		if filtered == nil {
			continue
		}
		findings = append(findings, Finding{
			Word:        part,
			Kind:        Ident,
			Line:        sp.Line,
			Suggestions: filtered,
		})
	}
	return findings
}
