package store

import (
	"sync"

	"github.com/google/uuid"
)

// CartManager hands out per-visitor carts keyed by an opaque cart ID. Carts
// live in memory only; a restart starts every visitor with an empty cart.
type CartManager struct {
	mu    sync.RWMutex
	carts map[string]*CartStore
}

func NewCartManager() *CartManager {
	return &CartManager{carts: make(map[string]*CartStore)}
}

// Create registers a fresh empty cart and returns its ID.
func (m *CartManager) Create() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.carts[id] = NewCartStore()
	m.mu.Unlock()
	return id
}

// Get returns the cart for an ID, or nil when the ID is unknown.
func (m *CartManager) Get(id string) *CartStore {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.carts[id]
}
