package store

import (
	"context"
	"sync"
)

type memoryTokenStorage struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewMemoryTokenStorage returns a process-local [TokenStorage]. The token is
// lost when the process exits.
func NewMemoryTokenStorage() TokenStorage {
	return &memoryTokenStorage{tokens: make(map[string]string)}
}

func (m *memoryTokenStorage) Load(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	token, ok := m.tokens[TokenKey]
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (m *memoryTokenStorage) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens[TokenKey] = token
	return nil
}

func (m *memoryTokenStorage) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.tokens, TokenKey)
	return nil
}
