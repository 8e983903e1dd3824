package tokenlist

import (
	"github.com/tranvictor/jarvis-tokens/tokens"
)

const (
	SectionEnabled  = "enabled"
	SectionDisabled = "disabled"
	SectionAll      = "tokens"
)

// Classifier maps a token to the key of the section it is listed in.
type Classifier func(t tokens.Token) string

// ByEnabled splits tokens into SectionEnabled and SectionDisabled.
func ByEnabled(t tokens.Token) string {
	if t.Disabled {
		return SectionDisabled
	}
	return SectionEnabled
}

// Flat puts every token in a single SectionAll section.
func Flat(tokens.Token) string {
	return SectionAll
}

type Section struct {
	Key    string
	Tokens []tokens.Token
}

func (s Section) Len() int {
	return len(s.Tokens)
}

// FilterResult is the sectioned list of tokens matching Query. Callers must
// treat it as read only, the projection may hand the same result out again.
type FilterResult struct {
	Query    string
	Sections []Section
}

// Len returns the number of tokens across all sections.
func (r FilterResult) Len() int {
	n := 0
	for _, s := range r.Sections {
		n += s.Len()
	}
	return n
}

// Tokens flattens the sections in display order.
func (r FilterResult) Tokens() []tokens.Token {
	result := make([]tokens.Token, 0, r.Len())
	for _, s := range r.Sections {
		result = append(result, s.Tokens...)
	}
	return result
}
