package canopy

import (
	"context"
	"log/slog"

	"github.com/aretw0/canopy/internal/dispatch"
	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/pkg/adapters/memory"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
	"github.com/aretw0/canopy/pkg/views"
	"github.com/aretw0/canopy/pkg/widget"
)

// Version is the library version. Overridable at build time via -ldflags.
var Version = "0.1.0"

// Engine is the high-level entry point for the Canopy library. It wraps the
// Domain Store and the action dispatcher behind one API so hosts can embed
// the widget engine without assembling the pieces themselves.
type Engine struct {
	store       ports.Store
	dispatcher  ports.Dispatcher
	broadcaster ports.Broadcaster
	hooks       domain.LifecycleHooks
	logger      *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithStore injects a custom Store, bypassing the default in-memory backend.
func WithStore(s ports.Store) Option {
	return func(e *Engine) {
		if s != nil {
			e.store = s
		}
	}
}

// WithBroadcaster sets the event sink for post-commit notifications.
func WithBroadcaster(b ports.Broadcaster) Option {
	return func(e *Engine) {
		if b != nil {
			e.broadcaster = b
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New initializes a Canopy Engine. Without options it runs on an in-memory
// store with events discarded.
func New(opts ...Option) *Engine {
	e := &Engine{
		store:       memory.NewStore(),
		broadcaster: ports.NopBroadcaster{},
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dispatcher = dispatch.New(e.store,
		dispatch.WithLogger(e.logger),
		dispatch.WithBroadcaster(e.broadcaster),
		dispatch.WithHooks(e.hooks),
	)
	return e
}

// Seed replaces the product catalog.
func (e *Engine) Seed(ctx context.Context, products []domain.Product) error {
	return e.store.SeedProducts(ctx, products)
}

// Dispatch applies a widget action. See ports.Dispatcher for the error
// contract.
func (e *Engine) Dispatch(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchResult, error) {
	return e.dispatcher.Dispatch(ctx, req)
}

// Store exposes the underlying Domain Store.
func (e *Engine) Store() ports.Store {
	return e.store
}

// Dispatcher exposes the underlying action dispatcher.
func (e *Engine) Dispatcher() ports.Dispatcher {
	return e.dispatcher
}

// ProductListWidget builds the catalog widget from current state.
func (e *Engine) ProductListWidget(ctx context.Context) (widget.Node, error) {
	products, err := e.store.Products(ctx)
	if err != nil {
		return widget.Node{}, err
	}
	return views.ProductList(products), nil
}

// CartWidget builds the shopping cart widget from current state.
func (e *Engine) CartWidget(ctx context.Context) (widget.Node, error) {
	items, err := e.store.CartItems(ctx)
	if err != nil {
		return widget.Node{}, err
	}
	products, err := e.store.Products(ctx)
	if err != nil {
		return widget.Node{}, err
	}
	return views.Cart(items, products), nil
}

// ContactFormWidget builds the demo-request form widget.
func (e *Engine) ContactFormWidget() widget.Node {
	return views.ContactForm()
}
