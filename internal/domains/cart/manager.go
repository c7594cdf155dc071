package cart

import "sync"

// Manager tracks one cart per conversational session. Carts are created
// lazily and dropped when the session ends.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{
		carts: make(map[string]*Cart),
	}
}

// GetOrCreate returns the session's cart, creating it on first use.
func (m *Manager) GetOrCreate(sessionID string) *Cart {
	m.mu.RLock()
	c, exists := m.carts[sessionID]
	m.mu.RUnlock()
	if exists {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// re-check, another goroutine may have created it
	if c, exists := m.carts[sessionID]; exists {
		return c
	}
	c = New()
	m.carts[sessionID] = c
	return c
}

// Drop discards a session's cart.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
}

// Count returns the number of live session carts.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.carts)
}
