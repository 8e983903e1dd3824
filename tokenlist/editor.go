package tokenlist

import (
	"sync"

	"github.com/tranvictor/jarvis-tokens/search"
	"github.com/tranvictor/jarvis-tokens/tokens"
)

// Editor wires a search Dispatcher to a Projection the way the edit tokens
// screen does: raw edits go through the debouncer, every committed query
// reloads the store, reapplies the filter and hands the result to the update
// listener.
type Editor struct {
	mu         sync.Mutex
	store      tokens.Store
	extra      []tokens.Token
	dispatcher *search.Dispatcher
	projection *Projection
	query      string
	onUpdate   func(FilterResult)
}

type EditorOption func(*Editor)

// WithPinnedTokens lists tokens ahead of the store content, typically the
// native currency of the current network which is not stored.
func WithPinnedTokens(pinned ...tokens.Token) EditorOption {
	return func(e *Editor) {
		e.extra = append([]tokens.Token{}, pinned...)
	}
}

func NewEditor(store tokens.Store, dispatcher *search.Dispatcher, projection *Projection, opts ...EditorOption) *Editor {
	e := &Editor{
		store:      store,
		dispatcher: dispatcher,
		projection: projection,
	}
	for _, opt := range opts {
		opt(e)
	}
	dispatcher.OnCommit(e.commit)
	return e
}

// OnUpdate registers the listener receiving every recomputed result.
func (e *Editor) OnUpdate(listener func(FilterResult)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onUpdate = listener
}

func (e *Editor) Projection() *Projection {
	return e.projection
}

// Search feeds a raw query edit to the dispatcher.
func (e *Editor) Search(query string) {
	e.dispatcher.Submit(query)
}

// Refresh reloads the store and reapplies the last committed query right
// away.
func (e *Editor) Refresh() FilterResult {
	e.mu.Lock()
	query := e.query
	e.mu.Unlock()
	return e.apply(query)
}

// Flush commits a pending search immediately.
func (e *Editor) Flush() bool {
	return e.dispatcher.Flush()
}

// SetEnabled toggles a token switch. The store is updated and the last
// committed query reapplied.
func (e *Editor) SetEnabled(address string, enabled bool) (tokens.Token, error) {
	e.mu.Lock()
	token, err := e.store.Update(address, tokens.Disable(!enabled))
	e.mu.Unlock()
	if err != nil {
		return tokens.Token{}, err
	}
	e.Refresh()
	return token, nil
}

func (e *Editor) Close() {
	e.dispatcher.Close()
}

func (e *Editor) commit(query string) {
	e.mu.Lock()
	e.query = query
	e.mu.Unlock()
	e.apply(query)
}

func (e *Editor) apply(query string) FilterResult {
	e.mu.Lock()
	e.projection.SetSource(append(append([]tokens.Token{}, e.extra...), e.store.Tokens()...))
	result := e.projection.ApplyFilter(query)
	listener := e.onUpdate
	e.mu.Unlock()

	if listener != nil {
		listener(result)
	}
	return result
}
