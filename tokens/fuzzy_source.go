package tokens

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxFuzzyMatches = 10

type FuzzySource []Token

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf(
		"%s_%s_%s",
		self[i].Symbol,
		strings.Replace(self[i].Name, " ", "_", -1),
		self[i].Address,
	)
}

// FindTokens returns at most 10 tokens of source best matching input along
// with their fuzzy scores.
func FindTokens(input string, source FuzzySource) ([]Token, []int) {
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []Token{}
	scores := []int{}
	for i := 0; i < maxFuzzyMatches && i < len(matches); i++ {
		result = append(result, source[matches[i].Index])
		scores = append(scores, matches[i].Score)
	}
	return result, scores
}

// FindToken resolves input to a single token. A hex address must match
// exactly, anything else goes through the fuzzy matcher.
func FindToken(input string, source FuzzySource) (Token, error) {
	if addr, err := NormalizeAddress(input); err == nil {
		if i := IndexOf(source, addr); i >= 0 {
			return source[i], nil
		}
		return Token{}, fmt.Errorf("%w: '%s'", ErrNotFound, addr)
	}
	matches, _ := FindTokens(input, source)
	if len(matches) == 0 {
		return Token{}, fmt.Errorf("%w: no token is found with '%s'", ErrNotFound, input)
	}
	return matches[0], nil
}
