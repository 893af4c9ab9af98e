// Package tokenize splits source text into the classified spans the typo
// scanner consumes: string literals, comments and identifiers. It tracks
// double- and single-quoted string boundaries plus escape sequences byte by
// byte, so every span carries its exact 1-based start line.
//
// It is a deliberately small lexer for C-like and scripting languages: `#`
// and `//` start line comments, `/* */` delimits block comments, and
// identifier runs are taken wherever they appear outside strings and
// comments. It is not a full language front end; an embedding host with a
// real tokenizer can hand the scanner its own spans instead.
package tokenize

import "github.com/rubiojr/typofind/scan"

// Tokenize scans src and returns its spans in source order.
func Tokenize(src string) []scan.Span {
	t := &tokenizer{src: src, line: 1}
	t.run()
	return t.spans
}

type tokenizer struct {
	src   string
	pos   int
	line  int
	spans []scan.Span
}

func (t *tokenizer) run() {
	for t.pos < len(t.src) {
		ch := t.src[t.pos]
		switch {
		case ch == '"':
			t.scanString('"', scan.StringEscaped)
		case ch == '\'':
			t.scanString('\'', scan.StringRaw)
		case ch == '#':
			t.scanLineComment(t.pos)
		case ch == '/' && t.peek(1) == '/':
			t.scanLineComment(t.pos)
		case ch == '/' && t.peek(1) == '*':
			t.scanBlockComment()
		case isIdentStart(ch):
			t.scanIdentifier()
		default:
			if ch == '\n' {
				t.line++
			}
			t.pos++
		}
	}
}

func (t *tokenizer) peek(n int) byte {
	if t.pos+n >= len(t.src) {
		return 0
	}
	return t.src[t.pos+n]
}

// scanString consumes a quoted literal including both quotes. Escaped
// characters never terminate the literal; a real newline is allowed inside
// and advances the line count. An unterminated literal runs to end of input
// and is still emitted, since the decoder tolerates a missing close quote.
func (t *tokenizer) scanString(quote byte, kind scan.Kind) {
	start := t.pos
	startLine := t.line
	t.pos++ // opening quote
	escaped := false
	for t.pos < len(t.src) {
		ch := t.src[t.pos]
		if ch == '\n' {
			t.line++
		}
		t.pos++
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		if ch == quote {
			break
		}
	}
	t.spans = append(t.spans, scan.Span{Kind: kind, Text: t.src[start:t.pos], Line: startLine})
}

func (t *tokenizer) scanLineComment(start int) {
	for t.pos < len(t.src) && t.src[t.pos] != '\n' {
		t.pos++
	}
	t.spans = append(t.spans, scan.Span{Kind: scan.Comment, Text: t.src[start:t.pos], Line: t.line})
}

func (t *tokenizer) scanBlockComment() {
	start := t.pos
	startLine := t.line
	t.pos += 2 // consume /*
	for t.pos < len(t.src) {
		if t.src[t.pos] == '*' && t.peek(1) == '/' {
			t.pos += 2
			break
		}
		if t.src[t.pos] == '\n' {
			t.line++
		}
		t.pos++
	}
	t.spans = append(t.spans, scan.Span{Kind: scan.Comment, Text: t.src[start:t.pos], Line: startLine})
}

func (t *tokenizer) scanIdentifier() {
	start := t.pos
	for t.pos < len(t.src) && isIdentByte(t.src[t.pos]) {
		t.pos++
	}
	t.spans = append(t.spans, scan.Span{Kind: scan.Ident, Text: t.src[start:t.pos], Line: t.line})
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' ||
		b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= 0x7f
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || b >= '0' && b <= '9'
}
