package dict

import (
	"strings"

	"github.com/sajari/fuzzy"
)

// Suggester proposes corrections for words that are not exact dictionary
// misspellings, using a fuzzy model trained on the dictionary's correction
// vocabulary. It backs the `typofind suggest` command; the scanner itself
// only ever does exact lookups.
type Suggester struct {
	dict  *Dictionary
	model *fuzzy.Model
}

// NewSuggester trains a fuzzy model on d's corrections.
func NewSuggester(d *Dictionary) *Suggester {
	model := fuzzy.NewModel()
	// Depth 2 keeps training time reasonable while still catching
	// two-edit typos.
	model.SetDepth(2)
	model.SetThreshold(1)
	for _, w := range d.Corrections() {
		model.TrainWord(w)
	}
	return &Suggester{dict: d, model: model}
}

// Suggest returns correction candidates for word. An exact dictionary hit
// wins; otherwise the fuzzy model proposes nearby correction words.
func (s *Suggester) Suggest(word string) []string {
	lower := strings.ToLower(word)
	if sugs := s.dict.Lookup(lower); sugs != nil {
		if len(sugs) >= 2 {
			return sugs[:len(sugs)-1]
		}
		return sugs
	}
	if best := s.model.SpellCheck(lower); best != "" && best != lower {
		return []string{best}
	}
	var out []string
	for _, c := range s.model.Suggestions(lower, false) {
		if c != lower {
			out = append(out, c)
		}
	}
	return out
}
