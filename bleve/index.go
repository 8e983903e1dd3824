// Package bleve keeps an in-memory full-text index of the token list. It
// complements the fuzzy matcher of the tokens package with typo tolerance:
// "tethr" still finds Tether USD.
package bleve

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"

	"github.com/tranvictor/jarvis-tokens/tokens"
)

const maxHits = 10

type TokenIndex struct {
	index  bleve.Index
	tokens map[string]tokens.Token
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = en.AnalyzerName

	defaultMapping := bleve.NewDocumentMapping()
	defaultMapping.AddFieldMappingsAt("symbol", textFieldMapping)
	defaultMapping.AddFieldMappingsAt("name", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = defaultMapping
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	return indexMapping
}

// NewTokenIndex indexes list in memory, documents are keyed by address.
func NewTokenIndex(list []tokens.Token) (*TokenIndex, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	ti := &TokenIndex{
		index:  index,
		tokens: map[string]tokens.Token{},
	}
	if err = ti.indexTokens(list); err != nil {
		index.Close()
		return nil, err
	}
	return ti, nil
}

func (ti *TokenIndex) indexTokens(list []tokens.Token) error {
	batch := ti.index.NewBatch()
	batchCount := 0
	for _, t := range list {
		err := batch.Index(t.Address, map[string]interface{}{
			"symbol": t.Symbol,
			"name":   t.Name,
		})
		if err != nil {
			return fmt.Errorf("indexing token %s failed: %w", t.Address, err)
		}
		ti.tokens[t.Address] = t
		batchCount++

		if batchCount >= 1000 {
			if err = ti.index.Batch(batch); err != nil {
				return err
			}
			batch = ti.index.NewBatch()
			batchCount = 0
		}
	}
	// flush the last batch
	if batchCount > 0 {
		return ti.index.Batch(batch)
	}
	return nil
}

// Search returns the best hits for input with their scores, a phrase match
// or a term within one edit of input.
func (ti *TokenIndex) Search(input string) ([]tokens.Token, []int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return []tokens.Token{}, []int{}, nil
	}
	matchQuery := bleve.NewMatchPhraseQuery(input)
	fuzzyQuery := bleve.NewFuzzyQuery(strings.ToLower(input))
	fuzzyQuery.Fuzziness = 1
	query := bleve.NewDisjunctionQuery(matchQuery, fuzzyQuery)
	request := bleve.NewSearchRequestOptions(query, maxHits, 0, false)
	searchResults, err := ti.index.Search(request)
	if err != nil {
		return nil, nil, fmt.Errorf("token index search failed: %w", err)
	}

	results := []tokens.Token{}
	scores := []int{}
	for _, hit := range searchResults.Hits {
		t, found := ti.tokens[hit.ID]
		if !found {
			continue
		}
		results = append(results, t)
		scores = append(scores, int(hit.Score*1000000))
	}
	return results, scores, nil
}

func (ti *TokenIndex) Close() error {
	return ti.index.Close()
}
