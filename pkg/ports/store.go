package ports

import (
	"context"

	"github.com/aretw0/canopy/pkg/domain"
)

// Store defines the interface for the Domain Store: the process-wide
// collections of products, cart items, and form submissions.
//
// Implementations must be safe for concurrent use. The Dispatcher is the only
// writer; views and audits only read.
type Store interface {
	// SeedProducts replaces the catalog. Called once at process start.
	SeedProducts(ctx context.Context, products []domain.Product) error

	// Products returns the full catalog.
	Products(ctx context.Context) ([]domain.Product, error)

	// Product resolves a product by ID.
	// Returns domain.ErrProductNotFound if the ID does not resolve.
	Product(ctx context.Context, id string) (*domain.Product, error)

	// SetProductStock updates a product's availability in place and returns
	// the updated product. Returns domain.ErrProductNotFound if the ID does
	// not resolve.
	SetProductStock(ctx context.Context, id string, inStock bool) (*domain.Product, error)

	// CartItems returns the current cart.
	CartItems(ctx context.Context) ([]domain.CartItem, error)

	// AddCartItem increments the quantity of an existing entry or appends a
	// new entry with quantity 1, then returns the resulting cart.
	AddCartItem(ctx context.Context, productID string) ([]domain.CartItem, error)

	// RemoveCartItem removes all entries matching productID and returns the
	// resulting cart. Removing an absent product is not an error.
	RemoveCartItem(ctx context.Context, productID string) ([]domain.CartItem, error)

	// AppendSubmission stores a form submission. Submissions are append-only.
	AppendSubmission(ctx context.Context, sub domain.Submission) error

	// Submissions returns all stored submissions in insertion order.
	Submissions(ctx context.Context) ([]domain.Submission, error)
}
