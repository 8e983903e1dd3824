package tokens

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/go-homedir"
)

// DefaultTokensPath is where the token list lives unless told otherwise. The
// leading ~ is expanded when the store is opened.
const DefaultTokensPath = "~/.jarvis/tokens.json"

type tokenFile struct {
	Tokens []Token `json:"tokens"`
}

// FileStore is a Store backed by a json file. The whole list is rewritten on
// every mutation, token lists are small.
type FileStore struct {
	mu     sync.Mutex
	path   string
	tokens []Token
}

// NewFileStore loads the token list at path. When the file doesn't exist yet
// it is created with DefaultTokens. A leading ~ in path is expanded.
func NewFileStore(path string) (*FileStore, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding %s failed: %w", path, err)
	}
	path = expandedPath
	s := &FileStore{path: path}
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.tokens = DefaultTokens()
		if err = s.persist(); err != nil {
			return nil, fmt.Errorf("creating token list at %s failed: %w", path, err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading tokens from %s failed: %w", path, err)
	}
	f := tokenFile{}
	if err = json.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parsing tokens from %s failed: %w", path, err)
	}
	for i, t := range f.Tokens {
		addr, err := NormalizeAddress(t.Address)
		if err != nil {
			return nil, fmt.Errorf("token #%d in %s: %w", i, path, err)
		}
		f.Tokens[i].Address = addr
		if err = f.Tokens[i].Validate(); err != nil {
			return nil, fmt.Errorf("token #%d in %s: %w", i, path, err)
		}
	}
	s.tokens = f.Tokens
	return s, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) persist() error {
	jsonData, err := json.MarshalIndent(tokenFile{Tokens: s.tokens}, "", "  ")
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, jsonData, 0644)
}

func (s *FileStore) Tokens() []Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Token{}, s.tokens...)
}

func (s *FileStore) Update(address string, action Action) (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := IndexOf(s.tokens, address)
	if i < 0 {
		return Token{}, fmt.Errorf("%w: '%s'", ErrNotFound, address)
	}
	old := s.tokens[i]
	updated, _ := updateTokens(s.tokens, address, action)
	if err := s.persist(); err != nil {
		s.tokens[i] = old
		return Token{}, fmt.Errorf("persisting tokens to %s failed: %w", s.path, err)
	}
	return updated, nil
}

func (s *FileStore) Add(token Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens, err := addToken(s.tokens, token)
	if err != nil {
		return err
	}
	old := s.tokens
	s.tokens = tokens
	if err = s.persist(); err != nil {
		s.tokens = old
		return fmt.Errorf("persisting tokens to %s failed: %w", s.path, err)
	}
	return nil
}
