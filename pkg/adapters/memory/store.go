// Package memory provides the in-memory Domain Store backend.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/canopy/pkg/domain"
)

// Store implements ports.Store in memory.
// Safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	products    []domain.Product
	cart        []domain.CartItem
	submissions []domain.Submission
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// SeedProducts replaces the catalog. The slice is copied so the caller cannot
// mutate store state afterwards.
func (s *Store) SeedProducts(ctx context.Context, products []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product(nil), products...)
	return nil
}

// Products returns a copy of the catalog.
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...), nil
}

// Product resolves a product by ID.
func (s *Store) Product(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// SetProductStock updates availability in place.
func (s *Store) SetProductStock(ctx context.Context, id string, inStock bool) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].InStock = inStock
			copied := s.products[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// CartItems returns a copy of the cart.
func (s *Store) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartItem(nil), s.cart...), nil
}

// AddCartItem increments an existing entry or appends a new one.
func (s *Store) AddCartItem(ctx context.Context, productID string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, domain.CartItem{ProductID: productID, Quantity: 1})
	}
	return append([]domain.CartItem(nil), s.cart...), nil
}

// RemoveCartItem removes all entries matching productID. Idempotent.
func (s *Store) RemoveCartItem(ctx context.Context, productID string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.cart = kept
	return append([]domain.CartItem(nil), s.cart...), nil
}

// AppendSubmission stores a submission. The fields map is copied.
func (s *Store) AppendSubmission(ctx context.Context, sub domain.Submission) error {
	copied := sub
	copied.Fields = make(map[string]string, len(sub.Fields))
	for k, v := range sub.Fields {
		copied.Fields[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, copied)
	return nil
}

// Submissions returns all submissions in insertion order.
func (s *Store) Submissions(ctx context.Context) ([]domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Submission(nil), s.submissions...), nil
}
