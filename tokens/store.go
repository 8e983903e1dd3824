package tokens

import (
	"fmt"
	"strings"
	"sync"
)

// Store owns the ordered list of tracked tokens. Callers only read the list
// and request mutations, they never own persistence.
type Store interface {
	Tokens() []Token
	Update(address string, action Action) (Token, error)
}

// MemoryStore is a Store kept entirely in memory. It is used in tests and
// anywhere the token list comes from somewhere else.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens []Token
}

func NewMemoryStore(tokens ...Token) *MemoryStore {
	return &MemoryStore{
		tokens: append([]Token{}, tokens...),
	}
}

func (s *MemoryStore) Tokens() []Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Token{}, s.tokens...)
}

func (s *MemoryStore) Update(address string, action Action) (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateTokens(s.tokens, address, action)
}

func (s *MemoryStore) Add(token Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens, err := addToken(s.tokens, token)
	if err != nil {
		return err
	}
	s.tokens = tokens
	return nil
}

// IndexOf returns the position of address in tokens or -1.
func IndexOf(tokens []Token, address string) int {
	address = strings.ToLower(strings.TrimSpace(address))
	for i, t := range tokens {
		if t.Address == address {
			return i
		}
	}
	return -1
}

// updateTokens applies action in place to the token with address.
func updateTokens(tokens []Token, address string, action Action) (Token, error) {
	i := IndexOf(tokens, address)
	if i < 0 {
		return Token{}, fmt.Errorf("%w: '%s'", ErrNotFound, address)
	}
	tokens[i] = action.Apply(tokens[i])
	return tokens[i], nil
}

func addToken(tokens []Token, token Token) ([]Token, error) {
	addr, err := NormalizeAddress(token.Address)
	if err != nil {
		return tokens, err
	}
	token.Address = addr
	if IndexOf(tokens, addr) >= 0 {
		return tokens, fmt.Errorf("%w: '%s'", ErrDuplicated, addr)
	}
	return append(tokens, token), nil
}
