// Package scan implements the tokenization-aware typo scanner. It consumes
// classified text spans produced by a tokenizer (or a whole file treated as
// plain text), extracts candidate words with rules that depend on the span
// kind, looks them up in the typo dictionary and reports findings with exact
// 1-based line numbers.
package scan

import "github.com/rubiojr/typofind/dict"

// Kind classifies a text span handed to the scanner.
type Kind int

const (
	// StringEscaped is a double-quoted style literal with the full escape
	// grammar. Raw text includes the surrounding quotes.
	StringEscaped Kind = iota
	// StringRaw is a single-quoted style literal where only the quote
	// character and backslash can be escaped.
	StringRaw
	// Ident is a code identifier, decomposed on case/underscore boundaries.
	Ident
	// InlineText is free text outside code, e.g. markup between code blocks.
	InlineText
	// Comment is a source comment, scanned as free text.
	Comment
)

// String returns a human-readable description of the span kind, used in
// finding reports.
func (k Kind) String() string {
	switch k {
	case StringEscaped:
		return "string literal"
	case StringRaw:
		return "raw string literal"
	case Ident:
		return "identifier"
	case InlineText:
		return "inline text"
	case Comment:
		return "comment"
	}
	return "unknown span"
}

// Span is one classified run of source text. Line is the 1-based line
// number where the span starts in the original file.
type Span struct {
	Kind Kind
	Text string
	Line int
}

// Finding is one reported candidate misspelling. Word keeps the original
// casing as found in the source. Suggestions is the filtered correction
// list; when it has two or more entries the final one is the dictionary's
// caveat note.
type Finding struct {
	Word        string
	Kind        Kind
	Line        int
	Suggestions []string
}

// Message renders the finding's suggestion text, e.g.
// `Did you mean "the"?`, recased to match the original word.
func (f Finding) Message() string {
	return SuggestionMessage(f.Suggestions, f.Word)
}

// Scanner scans spans for likely misspellings. It holds no per-scan state,
// so one Scanner may be shared by goroutines scanning different files.
type Scanner struct {
	dict *dict.Dictionary
}

// New returns a Scanner backed by d.
func New(d *dict.Dictionary) *Scanner {
	return &Scanner{dict: d}
}
