package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/fieldops/installation-service/internal/auth"
)

// SessionStoreMock is an in-memory auth.SessionStore.
type SessionStoreMock struct {
	mu       sync.RWMutex
	sessions map[string]string

	// SaveErr, when set, is returned from Save to exercise failure paths.
	SaveErr error
}

var _ auth.SessionStore = (*SessionStoreMock)(nil)

// NewSessionStoreMock creates an empty session store.
func NewSessionStoreMock() *SessionStoreMock {
	return &SessionStoreMock{sessions: make(map[string]string)}
}

func (m *SessionStoreMock) Save(_ context.Context, tokenID, userID string, _ time.Duration) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[tokenID] = userID
	return nil
}

func (m *SessionStoreMock) Exists(_ context.Context, tokenID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[tokenID]
	return ok, nil
}

func (m *SessionStoreMock) Revoke(_ context.Context, tokenID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, tokenID)
	return nil
}

// Count reports live sessions.
func (m *SessionStoreMock) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
