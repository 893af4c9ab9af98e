// Package escape decodes escape sequences inside quoted string literals.
//
// Decoding exists for word matching, not for runtime fidelity: the scanner
// needs the characters a literal resolves to so that "rec\x69eve" and
// "recieve" match the same dictionary entry. Two quoting conventions are
// supported. Single-quoted literals only escape the quote character and the
// backslash itself; double-quoted literals carry the full C/PHP-style escape
// grammar including hex, octal and unicode forms.
package escape

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Quote identifies which quoting convention produced a string literal.
type Quote int

const (
	// SingleQuoted literals escape only \' and \\.
	SingleQuoted Quote = iota
	// DoubleQuoted literals support the full escape grammar.
	DoubleQuoted
)

// NewlinePlaceholder is the byte substituted for escape sequences that
// decode to a newline when decoding in counting mode. It is a single byte,
// the same width as a decoded newline, so byte offsets in counting output
// line up with offsets in fully decoded output. Line counting treats it as
// a line break; it never appears in decoded matching text.
const NewlinePlaceholder = '\x1a'

// ErrInvalidEscape reports a malformed escape sequence, e.g. a truncated
// hex or unicode escape. Callers skip the affected span and keep scanning.
var ErrInvalidEscape = errors.New("invalid escape sequence")

// Decode resolves the escape sequences in the raw source text of a string
// literal, surrounding quotes included, and returns the literal's runtime
// characters. Unknown escapes in double-quoted literals keep the backslash
// and the following character, matching PHP semantics.
func Decode(raw string, q Quote) (string, error) {
	return decode(raw, q, false)
}

// DecodeCounting is the newline-placeholder decode mode used for line
// counting. It decodes like Decode except that every escape sequence that
// would decode to a newline yields NewlinePlaceholder instead, and malformed
// escapes are passed through verbatim rather than failing. Real newline
// bytes present in the source are preserved as-is.
func DecodeCounting(raw string, q Quote) string {
	s, err := decode(raw, q, true)
	if err != nil {
		// Unreachable: counting mode never returns an error.
		return raw
	}
	return s
}

// stripQuotes removes the surrounding quote characters from a raw literal.
// Tokenizers hand over the token exactly as captured, so an unterminated
// literal may lack its closing quote.
func stripQuotes(raw string, q Quote) string {
	quote := byte('\'')
	if q == DoubleQuoted {
		quote = '"'
	}
	if len(raw) > 0 && raw[0] == quote {
		raw = raw[1:]
	}
	if len(raw) > 0 && raw[len(raw)-1] == quote {
		// An odd number of backslashes before the final quote means the
		// quote is escaped content, not a terminator.
		bs := 0
		for i := len(raw) - 2; i >= 0 && raw[i] == '\\'; i-- {
			bs++
		}
		if bs%2 == 0 {
			raw = raw[:len(raw)-1]
		}
	}
	return raw
}

func decode(raw string, q Quote, counting bool) (string, error) {
	src := stripQuotes(raw, q)
	if q == SingleQuoted {
		return decodeSingle(src), nil
	}
	return decodeDouble(src, counting)
}

// decodeSingle handles single-quoted literals: \' and \\ are the only
// escapes, every other backslash is a literal backslash.
func decodeSingle(src string) string {
	if !strings.ContainsRune(src, '\\') {
		return src
	}
	var sb strings.Builder
	sb.Grow(len(src))
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch == '\\' && i+1 < len(src) && (src[i+1] == '\'' || src[i+1] == '\\') {
			sb.WriteByte(src[i+1])
			i++
			continue
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

func decodeDouble(src string, counting bool) (string, error) {
	if !strings.ContainsRune(src, '\\') {
		return src, nil
	}
	var sb strings.Builder
	sb.Grow(len(src))
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		if i+1 >= len(src) {
			// Dangling backslash at end of literal.
			sb.WriteByte(ch)
			continue
		}
		i++
		switch esc := src[i]; esc {
		case 'n':
			writeNewline(&sb, counting)
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case 'f':
			sb.WriteByte('\f')
		case 'e':
			sb.WriteByte('\x1b')
		case '\\':
			sb.WriteByte('\\')
		case '$':
			sb.WriteByte('$')
		case '"':
			sb.WriteByte('"')
		case 'x':
			n, err := decodeHex(&sb, src, i, counting)
			if err != nil {
				if !counting {
					return "", err
				}
				sb.WriteString(`\x`)
				n = 0
			}
			i += n
		case 'u':
			n, err := decodeUnicode(&sb, src, i, counting)
			if err != nil {
				if !counting {
					return "", err
				}
				sb.WriteString(`\u`)
				n = 0
			}
			i += n
		case '0', '1', '2', '3', '4', '5', '6', '7':
			i += decodeOctal(&sb, src, i, counting)
		default:
			// Unknown escape: keep backslash and character.
			sb.WriteByte('\\')
			sb.WriteByte(esc)
		}
	}
	return sb.String(), nil
}

func writeNewline(sb *strings.Builder, counting bool) {
	if counting {
		sb.WriteByte(NewlinePlaceholder)
	} else {
		sb.WriteByte('\n')
	}
}

// decodeHex consumes up to two hex digits after \x. Returns the number of
// extra bytes consumed beyond the 'x'.
func decodeHex(sb *strings.Builder, src string, i int, counting bool) (int, error) {
	n := 0
	val := 0
	for n < 2 && i+1+n < len(src) && isHexDigit(src[i+1+n]) {
		val = val*16 + hexVal(src[i+1+n])
		n++
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: \\x with no hex digits", ErrInvalidEscape)
	}
	writeByteMaybeNewline(sb, byte(val), counting)
	return n, nil
}

// decodeOctal consumes one to three octal digits starting at src[i].
// Returns the number of extra bytes consumed beyond the first digit.
func decodeOctal(sb *strings.Builder, src string, i int, counting bool) int {
	n := 1
	val := int(src[i] - '0')
	for n < 3 && i+n < len(src) && src[i+n] >= '0' && src[i+n] <= '7' {
		val = val*8 + int(src[i+n]-'0')
		n++
	}
	writeByteMaybeNewline(sb, byte(val), counting)
	return n - 1
}

// decodeUnicode consumes a \u{HHHH} escape. Returns the number of extra
// bytes consumed beyond the 'u'.
func decodeUnicode(sb *strings.Builder, src string, i int, counting bool) (int, error) {
	if i+1 >= len(src) || src[i+1] != '{' {
		return 0, fmt.Errorf("%w: \\u not followed by {", ErrInvalidEscape)
	}
	j := i + 2
	val := 0
	digits := 0
	for j < len(src) && src[j] != '}' {
		if !isHexDigit(src[j]) {
			return 0, fmt.Errorf("%w: non-hex digit in \\u{...}", ErrInvalidEscape)
		}
		val = val*16 + hexVal(src[j])
		digits++
		if digits > 6 {
			return 0, fmt.Errorf("%w: \\u{...} escape too long", ErrInvalidEscape)
		}
		j++
	}
	if j >= len(src) {
		return 0, fmt.Errorf("%w: unterminated \\u{...} escape", ErrInvalidEscape)
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: empty \\u{} escape", ErrInvalidEscape)
	}
	if val > utf8.MaxRune {
		return 0, fmt.Errorf("%w: codepoint out of range in \\u{...}", ErrInvalidEscape)
	}
	if val == '\n' && counting {
		sb.WriteByte(NewlinePlaceholder)
	} else {
		sb.WriteRune(rune(val))
	}
	return j - i, nil
}

func writeByteMaybeNewline(sb *strings.Builder, b byte, counting bool) {
	if b == '\n' && counting {
		sb.WriteByte(NewlinePlaceholder)
		return
	}
	sb.WriteByte(b)
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
