package store

import (
	"sync"

	"github.com/InstitutoJogaJuntoOrg/website-qa-front/internal/models"
)

// ProductStore holds the current full product list in memory. It is the
// single source of truth for catalog contents on the page; handlers
// receive it explicitly, there is no package-level instance.
//
// Replace is last-writer-wins: a refresh that finishes late overwrites
// whatever arrived in between. That matches the page's behavior, where
// no in-flight fetch is ever cancelled.
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make([]models.Product, 0)}
}

// Replace swaps the entire store contents for the given list.
func (s *ProductStore) Replace(products []models.Product) {
	copied := make([]models.Product, len(products))
	copy(copied, products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = copied
}

// Snapshot returns a copy of the current list, in catalog order.
// Callers may keep or mutate the result freely.
func (s *ProductStore) Snapshot() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len reports how many products are currently held.
func (s *ProductStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}
