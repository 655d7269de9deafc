// Package cart holds the per-session shopping bag. State lives for the
// process lifetime only; there is no persistence guarantee for a bag.
package cart

import (
	"sync"

	"storefront-service/internal/products"
)

// Item is a cart line: a product snapshot taken at add time plus a quantity.
// The snapshot is not re-synced if the product later changes in the catalog.
type Item struct {
	ID       string  `json:"id"` // equal to the source product id
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Store keeps one bag per session id, guarded by a single lock. Line order
// within a bag is insertion order.
type Store struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Item)}
}

// Add inserts a line with quantity 1, or increments the existing line for the
// same product. At most one line per product id.
func (s *Store) Add(sessionID string, p products.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity++
			return
		}
	}
	s.carts[sessionID] = append(items, Item{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Quantity: 1,
	})
}

// UpdateQuantity applies a signed delta to the line's quantity. A resulting
// quantity of zero or less removes the line entirely. No-op when the product
// is not in the bag.
func (s *Store) UpdateQuantity(sessionID, productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID != productID {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
		}
		return
	}
}

// Remove deletes the line unconditionally. No-op when absent.
func (s *Store) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == productID {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// Clear empties the bag. Checkout never calls this; the bag survives the
// checkout deep link on purpose.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Items returns a copy of the bag in insertion order.
func (s *Store) Items(sessionID string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.carts[sessionID]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Total is derived, never stored: the sum of price times quantity over the
// current lines. Empty bag totals zero.
func (s *Store) Total(sessionID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, it := range s.carts[sessionID] {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
