package cart

import "sync"

// Manager keys cart stores by session ID. Carts live for the lifetime of the
// process; nothing is persisted, so a restart or an expired cookie simply
// starts a fresh cart.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

// NewManager creates an empty session registry
func NewManager() *Manager {
	return &Manager{
		stores: make(map[string]*Store),
	}
}

// Get returns the cart for the given session, creating it on first use
func (m *Manager) Get(sessionID string) *Store {
	m.mu.RLock()
	store, exists := m.stores[sessionID]
	m.mu.RUnlock()
	if exists {
		return store
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if store, exists := m.stores[sessionID]; exists {
		return store
	}
	store = NewStore()
	m.stores[sessionID] = store
	return store
}

// Drop tears down a session's cart
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}

// Len reports how many session carts are live
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stores)
}
