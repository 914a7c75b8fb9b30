// Package redis provides a Redis-backed Domain Store, for deployments where
// the catalog and cart must survive process restarts.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/canopy/pkg/domain"
)

// Store implements ports.Store using Redis. Collections are stored as JSON:
// products and cart as single values, submissions as a list (append-only).
//
// Read-modify-write sequences on the cart are not atomic at the Redis level;
// the dispatch engine serializes all writers, so a single canopy process per
// keyspace is assumed.
type Store struct {
	client *backend.Client
	prefix string
}

type Option func(*Store)

// WithPrefix sets the key prefix for all collections.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "canopy:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) productsKey() string    { return s.prefix + "products" }
func (s *Store) cartKey() string        { return s.prefix + "cart" }
func (s *Store) submissionsKey() string { return s.prefix + "submissions" }

// SeedProducts replaces the catalog.
func (s *Store) SeedProducts(ctx context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to marshal products: %w", err)
	}
	if err := s.client.Set(ctx, s.productsKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	return nil
}

// Products returns the full catalog.
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	return s.loadProducts(ctx)
}

// Product resolves a product by ID.
func (s *Store) Product(ctx context.Context, id string) (*domain.Product, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			copied := p
			return &copied, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// SetProductStock updates availability and persists the catalog.
func (s *Store) SetProductStock(ctx context.Context, id string, inStock bool) (*domain.Product, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			products[i].InStock = inStock
			if err := s.SeedProducts(ctx, products); err != nil {
				return nil, err
			}
			copied := products[i]
			return &copied, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// CartItems returns the current cart.
func (s *Store) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	return s.loadCart(ctx)
}

// AddCartItem increments an existing entry or appends a new one.
func (s *Store) AddCartItem(ctx context.Context, productID string) ([]domain.CartItem, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, domain.CartItem{ProductID: productID, Quantity: 1})
	}
	if err := s.saveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveCartItem removes all entries matching productID. Idempotent.
func (s *Store) RemoveCartItem(ctx context.Context, productID string) ([]domain.CartItem, error) {
	cart, err := s.loadCart(ctx)
	if err != nil {
		return nil, err
	}
	kept := make([]domain.CartItem, 0, len(cart))
	for _, item := range cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if err := s.saveCart(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// AppendSubmission pushes a submission onto the append-only list.
func (s *Store) AppendSubmission(ctx context.Context, sub domain.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}
	if err := s.client.RPush(ctx, s.submissionsKey(), data).Err(); err != nil {
		return fmt.Errorf("failed to append submission: %w", err)
	}
	return nil
}

// Submissions returns all submissions in insertion order.
func (s *Store) Submissions(ctx context.Context) ([]domain.Submission, error) {
	raw, err := s.client.LRange(ctx, s.submissionsKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	subs := make([]domain.Submission, 0, len(raw))
	for _, item := range raw {
		var sub domain.Submission
		if err := json.Unmarshal([]byte(item), &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal submission: %w", err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) loadProducts(ctx context.Context) ([]domain.Product, error) {
	val, err := s.client.Get(ctx, s.productsKey()).Result()
	if err != nil {
		if err == backend.Nil {
			return []domain.Product{}, nil
		}
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products: %w", err)
	}
	return products, nil
}

func (s *Store) loadCart(ctx context.Context) ([]domain.CartItem, error) {
	val, err := s.client.Get(ctx, s.cartKey()).Result()
	if err != nil {
		if err == backend.Nil {
			return []domain.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	var cart []domain.CartItem
	if err := json.Unmarshal([]byte(val), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return cart, nil
}

func (s *Store) saveCart(ctx context.Context, cart []domain.CartItem) error {
	if cart == nil {
		cart = []domain.CartItem{}
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.client.Set(ctx, s.cartKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
