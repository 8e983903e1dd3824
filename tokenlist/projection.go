// Package tokenlist projects the tracked token list onto what an "edit
// tokens" screen displays: the tokens matching the committed search query,
// grouped in sections, behind count and item accessors any presentation
// layer can adapt to.
package tokenlist

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/tranvictor/jarvis-tokens/tokens"
)

var ErrOutOfRange = errors.New("index out of range")

// Projection holds a snapshot of the token source and the last computed
// FilterResult. The filtered view only depends on the source and the query,
// results are memoized on (source version, query).
type Projection struct {
	mu           sync.RWMutex
	classify     Classifier
	sectionOrder []string
	store        tokens.Store

	source  []tokens.Token
	version uint64

	last        *FilterResult
	lastVersion uint64
}

type Option func(*Projection)

// WithSectionOrder pins the order of the given section keys. Pinned sections
// are always present, even when empty, so their index is stable. Other keys
// follow in order of first appearance.
func WithSectionOrder(keys ...string) Option {
	return func(p *Projection) {
		p.sectionOrder = append([]string{}, keys...)
	}
}

// WithStore forwards UpdateToken mutations to store before applying them to
// the projection source.
func WithStore(store tokens.Store) Option {
	return func(p *Projection) {
		p.store = store
	}
}

func NewProjection(classify Classifier, opts ...Option) *Projection {
	if classify == nil {
		classify = Flat
	}
	p := &Projection{classify: classify}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetSource replaces the token source. The last result is kept until the
// next ApplyFilter.
func (p *Projection) SetSource(source []tokens.Token) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = append([]tokens.Token{}, source...)
	p.version++
}

func (p *Projection) Source() []tokens.Token {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]tokens.Token{}, p.source...)
}

// ApplyFilter computes the tokens whose symbol or name contains query,
// ignoring case, and makes it the last result. An empty query matches every
// token. Order within and across sections follows the source order.
func (p *Projection) ApplyFilter(query string) FilterResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last != nil && p.lastVersion == p.version && p.last.Query == query {
		return *p.last
	}
	result := p.filterLocked(query)
	p.last = &result
	p.lastVersion = p.version
	return result
}

func (p *Projection) filterLocked(query string) FilterResult {
	fold := cases.Fold()
	needle := fold.String(query)

	index := map[string]int{}
	sections := []Section{}
	for _, key := range p.sectionOrder {
		if _, found := index[key]; found {
			continue
		}
		index[key] = len(sections)
		sections = append(sections, Section{Key: key, Tokens: []tokens.Token{}})
	}

	for _, t := range p.source {
		if needle != "" &&
			!strings.Contains(fold.String(t.Symbol), needle) &&
			!strings.Contains(fold.String(t.Name), needle) {
			continue
		}
		key := p.classify(t)
		i, found := index[key]
		if !found {
			i = len(sections)
			index[key] = i
			sections = append(sections, Section{Key: key, Tokens: []tokens.Token{}})
		}
		sections[i].Tokens = append(sections[i].Tokens, t)
	}
	return FilterResult{Query: query, Sections: sections}
}

// LastResult returns the last computed result, false when ApplyFilter was
// never called.
func (p *Projection) LastResult() (FilterResult, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.last == nil {
		return FilterResult{}, false
	}
	return *p.last, true
}

func (p *Projection) NumberOfSections() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.numberOfSectionsLocked()
}

func (p *Projection) sectionLocked(section int) (Section, error) {
	if p.last == nil || section < 0 || section >= len(p.last.Sections) {
		return Section{}, fmt.Errorf("%w: section %d of %d", ErrOutOfRange, section, p.numberOfSectionsLocked())
	}
	return p.last.Sections[section], nil
}

func (p *Projection) numberOfSectionsLocked() int {
	if p.last == nil {
		return 0
	}
	return len(p.last.Sections)
}

func (p *Projection) SectionTitle(section int) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, err := p.sectionLocked(section)
	if err != nil {
		return "", err
	}
	return s.Key, nil
}

func (p *Projection) RowCount(section int) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, err := p.sectionLocked(section)
	if err != nil {
		return 0, err
	}
	return s.Len(), nil
}

func (p *Projection) ItemAt(section, row int) (tokens.Token, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, err := p.sectionLocked(section)
	if err != nil {
		return tokens.Token{}, err
	}
	if row < 0 || row >= s.Len() {
		return tokens.Token{}, fmt.Errorf("%w: row %d of %d in section %d", ErrOutOfRange, row, s.Len(), section)
	}
	return s.Tokens[row], nil
}

// UpdateToken applies action to the source token with address. It doesn't
// recompute the filtered view: call ApplyFilter again to see the change.
// When the address isn't in the source, tokens.ErrNotFound is returned and
// nothing changes.
func (p *Projection) UpdateToken(address string, action tokens.Action) (tokens.Token, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	address = strings.ToLower(strings.TrimSpace(address))
	i := tokens.IndexOf(p.source, address)
	if i < 0 {
		return tokens.Token{}, fmt.Errorf("%w: '%s'", tokens.ErrNotFound, address)
	}
	updated := action.Apply(p.source[i])
	if p.store != nil {
		stored, err := p.store.Update(address, action)
		if err != nil {
			return tokens.Token{}, err
		}
		updated = stored
	}
	p.source[i] = updated
	p.version++
	return updated, nil
}
