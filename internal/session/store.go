// Package session keeps the logged-in user across screens and restarts.
package session

import (
	"sync"

	"github.com/studybuddy/studybuddy/internal/model"
)

// Store persists the session between runs.
type Store interface {
	// Load returns the saved session and whether one exists
	Load() (model.Session, bool, error)
	Save(sess model.Session) error
	Clear() error
}

// MemoryStore keeps the session for the life of the process
type MemoryStore struct {
	mu   sync.Mutex
	sess model.Session
	set  bool
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the held session and whether one was saved
func (m *MemoryStore) Load() (model.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess, m.set, nil
}

// Save holds sess until Clear
func (m *MemoryStore) Save(sess model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = sess
	m.set = true
	return nil
}

// Clear forgets the held session
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = model.Session{}
	m.set = false
	return nil
}
