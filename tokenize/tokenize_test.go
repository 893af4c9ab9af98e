package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubiojr/typofind/scan"
)

func kinds(spans []scan.Span) []scan.Kind {
	out := make([]scan.Kind, len(spans))
	for i, sp := range spans {
		out[i] = sp.Kind
	}
	return out
}

func TestTokenize_Identifiers(t *testing.T) {
	spans := Tokenize("foo = barBaz + qux_v2")
	require.Len(t, spans, 3)
	assert.Equal(t, "foo", spans[0].Text)
	assert.Equal(t, "barBaz", spans[1].Text)
	assert.Equal(t, "qux_v2", spans[2].Text)
	for _, sp := range spans {
		assert.Equal(t, scan.Ident, sp.Kind)
		assert.Equal(t, 1, sp.Line)
	}
}

func TestTokenize_DoubleQuotedString(t *testing.T) {
	spans := Tokenize(`x = "hello \"there\" world"`)
	require.Len(t, spans, 2)
	assert.Equal(t, scan.Ident, spans[0].Kind)
	assert.Equal(t, scan.StringEscaped, spans[1].Kind)
	assert.Equal(t, `"hello \"there\" world"`, spans[1].Text)
}

func TestTokenize_SingleQuotedString(t *testing.T) {
	spans := Tokenize(`y = 'it\'s raw'`)
	require.Len(t, spans, 2)
	assert.Equal(t, scan.StringRaw, spans[1].Kind)
	assert.Equal(t, `'it\'s raw'`, spans[1].Text)
}

func TestTokenize_LineComments(t *testing.T) {
	spans := Tokenize("a\n# hash comment\nb\n// slash comment\n")
	require.Len(t, spans, 4)
	assert.Equal(t, []scan.Kind{scan.Ident, scan.Comment, scan.Ident, scan.Comment}, kinds(spans))
	assert.Equal(t, "# hash comment", spans[1].Text)
	assert.Equal(t, 2, spans[1].Line)
	assert.Equal(t, "// slash comment", spans[3].Text)
	assert.Equal(t, 4, spans[3].Line)
}

func TestTokenize_BlockComment(t *testing.T) {
	spans := Tokenize("x /* one\ntwo */ y")
	require.Len(t, spans, 3)
	assert.Equal(t, scan.Comment, spans[1].Kind)
	assert.Equal(t, "/* one\ntwo */", spans[1].Text)
	assert.Equal(t, 1, spans[1].Line)
	// y follows the comment's embedded newline.
	assert.Equal(t, "y", spans[2].Text)
	assert.Equal(t, 2, spans[2].Line)
}

func TestTokenize_CommentMarkersInsideStrings(t *testing.T) {
	spans := Tokenize(`u = "http://example.com # not a comment"`)
	require.Len(t, spans, 2)
	assert.Equal(t, scan.StringEscaped, spans[1].Kind)
}

func TestTokenize_StringSpanningLines(t *testing.T) {
	spans := Tokenize("\"first\nsecond\"\nafter")
	require.Len(t, spans, 2)
	assert.Equal(t, scan.StringEscaped, spans[0].Kind)
	assert.Equal(t, 1, spans[0].Line)
	assert.Equal(t, "after", spans[1].Text)
	assert.Equal(t, 3, spans[1].Line)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	spans := Tokenize(`"open ended`)
	require.Len(t, spans, 1)
	assert.Equal(t, `"open ended`, spans[0].Text)
}

func TestTokenize_DollarVariables(t *testing.T) {
	spans := Tokenize(`$userName = 1;`)
	require.Len(t, spans, 1)
	assert.Equal(t, "$userName", spans[0].Text)
	assert.Equal(t, scan.Ident, spans[0].Kind)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  \n\t\n"))
}
