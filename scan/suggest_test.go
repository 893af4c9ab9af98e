package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSuggestions_FreeTextPassthrough(t *testing.T) {
	sugs := []string{"wasn't", "contraction reason"}
	assert.Equal(t, sugs, filterSuggestions(sugs, false))
}

func TestFilterSuggestions_IdentifierDropsPunctuation(t *testing.T) {
	// The only real correction has an apostrophe: suppress the finding.
	assert.Nil(t, filterSuggestions([]string{"wasn't", "contraction reason"}, true))

	// A valid alternative survives, caveat retained.
	got := filterSuggestions([]string{"won't", "wont", "disable if a noun"}, true)
	assert.Equal(t, []string{"wont", "disable if a noun"}, got)

	// Single correction without caveat is still filtered.
	assert.Nil(t, filterSuggestions([]string{"a lot"}, true))
	assert.Equal(t, []string{"the"}, filterSuggestions([]string{"the"}, true))
}

func TestIsIdentifierWord(t *testing.T) {
	assert.True(t, isIdentifierWord("receive"))
	assert.True(t, isIdentifierWord("with_underscore"))
	assert.True(t, isIdentifierWord("Mixed42"))
	assert.True(t, isIdentifierWord("caf\xc3\xa9"))
	assert.False(t, isIdentifierWord("wasn't"))
	assert.False(t, isIdentifierWord("a lot"))
	assert.False(t, isIdentifierWord("re-do"))
	assert.False(t, isIdentifierWord(""))
}

func TestSuggestionMessage_Lowercase(t *testing.T) {
	msg := SuggestionMessage([]string{"the"}, "teh")
	assert.Equal(t, `Did you mean "the"?`, msg)
}

func TestSuggestionMessage_Capitalized(t *testing.T) {
	msg := SuggestionMessage([]string{"the"}, "Teh")
	assert.Equal(t, `Did you mean "The"?`, msg)
}

func TestSuggestionMessage_AllCaps(t *testing.T) {
	msg := SuggestionMessage([]string{"receive"}, "RECIEVE")
	assert.Equal(t, `Did you mean "RECEIVE"?`, msg)
}

func TestSuggestionMessage_MultipleAndCaveat(t *testing.T) {
	msg := SuggestionMessage([]string{"won't", "wont", "disable if using wont as a noun"}, "wont")
	assert.Equal(t, `Did you mean "won't" or "wont"? : not always fixable: disable if using wont as a noun`, msg)
}

func TestMatchCase(t *testing.T) {
	assert.Equal(t, "the", matchCase("the", "teh"))
	assert.Equal(t, "The", matchCase("the", "Teh"))
	assert.Equal(t, "THE", matchCase("the", "TEH"))
	// Numeric-only originals stay unchanged.
	assert.Equal(t, "the", matchCase("the", "123"))
}
