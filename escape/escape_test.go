package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_DoubleQuotedBasics(t *testing.T) {
	out, err := Decode(`"hello world"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)

	out, err = Decode(`"tab\there"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "tab\there", out)

	out, err = Decode(`"a\nb\rc"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\rc", out)

	out, err = Decode(`"esc\e[0m"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "esc\x1b[0m", out)
}

func TestDecode_DoubleQuotedQuoteAndDollar(t *testing.T) {
	out, err := Decode(`"say \"hi\" for \$5"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, `say "hi" for $5`, out)
}

func TestDecode_UnknownEscapeKeptLiterally(t *testing.T) {
	// PHP keeps the backslash for escapes it does not recognize.
	out, err := Decode(`"a\qb"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, `a\qb`, out)
}

func TestDecode_Hex(t *testing.T) {
	out, err := Decode(`"rec\x69eve"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "recieve", out)

	// Single hex digit is valid when the next byte is not a hex digit.
	out, err = Decode(`"\x9!"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "\t!", out)
}

func TestDecode_Octal(t *testing.T) {
	out, err := Decode(`"\101\102\103"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)

	// One digit is enough.
	out, err = Decode(`"\0x"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "\x00x", out)
}

func TestDecode_Unicode(t *testing.T) {
	out, err := Decode(`"\u{48}\u{69}"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "Hi", out)

	out, err = Decode(`"\u{1F600}"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", out)
}

func TestDecode_InvalidEscapes(t *testing.T) {
	cases := []string{
		`"\xzz"`,
		`"\u48"`,
		`"\u{48"`,
		`"\u{}"`,
		`"\u{zz}"`,
		`"\u{110000}"`,
	}
	for _, raw := range cases {
		_, err := Decode(raw, DoubleQuoted)
		require.Error(t, err, "raw %q", raw)
		assert.ErrorIs(t, err, ErrInvalidEscape, "raw %q", raw)
	}
}

func TestDecode_SingleQuoted(t *testing.T) {
	out, err := Decode(`'it\'s \n literal'`, SingleQuoted)
	require.NoError(t, err)
	assert.Equal(t, `it's \n literal`, out)

	out, err = Decode(`'back\\slash'`, SingleQuoted)
	require.NoError(t, err)
	assert.Equal(t, `back\slash`, out)
}

func TestDecode_TrailingEscapedBackslash(t *testing.T) {
	out, err := Decode(`"a\\"`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, `a\`, out)
}

func TestDecode_UnterminatedLiteral(t *testing.T) {
	// The tokenizer may hand over a literal missing its closing quote.
	out, err := Decode(`"open`, DoubleQuoted)
	require.NoError(t, err)
	assert.Equal(t, "open", out)
}

func TestDecodeCounting_NewlineEscapesBecomePlaceholder(t *testing.T) {
	out := DecodeCounting(`"line1\nline2"`, DoubleQuoted)
	assert.Equal(t, "line1"+string(rune(NewlinePlaceholder))+"line2", out)

	// Hex, octal and unicode spellings of newline count too.
	out = DecodeCounting(`"a\x0ab\012c\u{A}d"`, DoubleQuoted)
	assert.Equal(t, "a\x1ab\x1ac\x1ad", out)
}

func TestDecodeCounting_SameLengthAsDecode(t *testing.T) {
	cases := []string{
		`"line1\nline2"`,
		`"tab\there\u{48}"`,
		`"\101\102\x41"`,
		"\"real\nnewline\"",
	}
	for _, raw := range cases {
		decoded, err := Decode(raw, DoubleQuoted)
		require.NoError(t, err)
		counting := DecodeCounting(raw, DoubleQuoted)
		assert.Equal(t, len(decoded), len(counting), "raw %q", raw)
	}
}

func TestDecodeCounting_NeverFails(t *testing.T) {
	// Malformed escapes come through verbatim in counting mode.
	out := DecodeCounting(`"bad\xzz"`, DoubleQuoted)
	assert.Equal(t, `bad\xzz`, out)

	out = DecodeCounting(`"bad\u{48"`, DoubleQuoted)
	assert.Contains(t, out, `\u`)
}

func TestDecodeCounting_RealNewlinesPreserved(t *testing.T) {
	out := DecodeCounting("\"a\nb\"", DoubleQuoted)
	assert.Equal(t, "a\nb", out)
}
