package cursor

import "sync"

// Manager owns the primary selection for an editor session.
// Thread-safe, though tag navigation itself is single-owner.
type Manager struct {
	mu      sync.RWMutex
	primary Selection
}

// NewManager creates a manager with a cursor at offset 0.
func NewManager() *Manager {
	return &Manager{}
}

// Primary returns the primary selection.
func (m *Manager) Primary() Selection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.primary
}

// SetPrimary replaces the primary selection.
func (m *Manager) SetPrimary(sel Selection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.primary = sel
}

// HasSelection returns true if the primary selection has extent.
func (m *Manager) HasSelection() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.primary.IsEmpty()
}
