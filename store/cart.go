package store

import (
	"sync"

	"github.com/korbahq/korba-app/models"
)

// CartLine is one entry in a cart: a menu item and the quantity selected.
// Quantity is always >= 1; a line that would reach zero is removed instead.
type CartLine struct {
	ItemID   string          `json:"item_id"`
	Item     models.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// CartStore owns the ordered line collection for one visitor. Lines keep
// insertion order and there is at most one line per item ID. All methods are
// safe for concurrent use.
type CartStore struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// AddItem appends a new line with quantity 1, or increments the existing line
// for the same item. It never fails.
func (s *CartStore) AddItem(item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ItemID == item.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, CartLine{ItemID: item.ID, Item: item, Quantity: 1})
}

// UpdateQuantity sets the quantity for an existing line. A quantity of zero or
// less removes the line. Unknown IDs are a silent no-op.
func (s *CartStore) UpdateQuantity(itemID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(itemID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the line for itemID; no-op if absent.
func (s *CartStore) RemoveItem(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(itemID)
}

func (s *CartStore) removeLocked(itemID string) {
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Snapshot returns the ordered lines together with both totals, all read
// under one lock so the three values describe the same cart state.
func (s *CartStore) Snapshot() (lines []CartLine, totalItems, totalPrice int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines = make([]CartLine, len(s.lines))
	copy(lines, s.lines)
	for _, line := range s.lines {
		totalItems += line.Quantity
		totalPrice += line.Item.Price * line.Quantity
	}
	return lines, totalItems, totalPrice
}

// Lines returns a snapshot copy of the ordered lines.
func (s *CartStore) Lines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of all line quantities.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines, in rupees.
func (s *CartStore) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, line := range s.lines {
		total += line.Item.Price * line.Quantity
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}
