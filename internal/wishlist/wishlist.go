// Package wishlist holds the per-session saved products. Entries are product
// snapshots with set semantics: no duplicates, no quantity.
package wishlist

import (
	"sync"

	"storefront-service/internal/products"
)

// CartAdder is the one cart capability move-to-cart needs.
type CartAdder interface {
	Add(sessionID string, p products.Product)
}

// Store keeps one wishlist per session id. Entry order is insertion order.
type Store struct {
	mu    sync.RWMutex
	lists map[string][]products.Product
}

func NewStore() *Store {
	return &Store{lists: make(map[string][]products.Product)}
}

// Toggle adds the product if absent and removes it if present. Returns true
// when the product ended up in the wishlist.
func (s *Store) Toggle(sessionID string, p products.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[sessionID]
	for i := range list {
		if list[i].ID == p.ID {
			s.lists[sessionID] = append(list[:i], list[i+1:]...)
			return false
		}
	}
	s.lists[sessionID] = append(list, p)
	return true
}

// Remove deletes the entry unconditionally. No-op when absent.
func (s *Store) Remove(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[sessionID]
	for i := range list {
		if list[i].ID == productID {
			s.lists[sessionID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// MoveToCart removes the product from the wishlist and adds it to the cart
// within the same user interaction. The product may be wishlisted again later.
func (s *Store) MoveToCart(sessionID string, p products.Product, cart CartAdder) {
	s.Remove(sessionID, p.ID)
	cart.Add(sessionID, p)
}

// Items returns a copy of the wishlist in insertion order.
func (s *Store) Items(sessionID string) []products.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[sessionID]
	out := make([]products.Product, len(list))
	copy(out, list)
	return out
}

// Contains reports wishlist membership for the product.
func (s *Store) Contains(sessionID, productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.lists[sessionID] {
		if p.ID == productID {
			return true
		}
	}
	return false
}
