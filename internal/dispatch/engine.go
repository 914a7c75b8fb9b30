package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/canopy/internal/logging"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
	"github.com/aretw0/canopy/pkg/views"
	"github.com/aretw0/canopy/pkg/widget"
)

// Engine applies widget actions against the Domain Store. It is the only
// writer: every mutate-then-rebuild sequence runs under a single mutex so a
// returned widget always reflects the state it mutated.
type Engine struct {
	store       ports.Store
	broadcaster ports.Broadcaster
	hooks       domain.LifecycleHooks
	logger      *slog.Logger

	mu  sync.Mutex
	seq atomic.Int64
}

var _ ports.Dispatcher = (*Engine)(nil)

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
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

// WithHooks installs observability callbacks.
func WithHooks(h domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// New creates an Engine over the given store. Events are discarded unless a
// broadcaster is provided.
func New(store ports.Store, opts ...Option) *Engine {
	e := &Engine{
		store:       store,
		broadcaster: ports.NopBroadcaster{},
		logger:      logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// actionParams is the decoded shape of Action.Parameters across the dispatch
// vocabulary. Unknown keys are ignored.
type actionParams struct {
	ProductID string `mapstructure:"productId"`
	InStock   bool   `mapstructure:"inStock"`
}

func decodeParams(a *widget.Action) (actionParams, error) {
	var p actionParams
	if a.Parameters == nil {
		return p, nil
	}
	if err := mapstructure.Decode(a.Parameters, &p); err != nil {
		return p, &widget.ActionError{Reason: "malformed parameters: " + err.Error()}
	}
	return p, nil
}

// Dispatch validates and routes an action. A non-nil error means the dispatch
// was rejected and the store is untouched; an unknown action name yields a
// failure result with a nil error.
func (e *Engine) Dispatch(ctx context.Context, req domain.DispatchRequest) (result *domain.DispatchResult, err error) {
	start := time.Now()
	defer func() {
		if e.hooks.OnDispatch == nil {
			return
		}
		name := ""
		if req.Action != nil {
			name = req.Action.Name
		}
		e.hooks.OnDispatch(ctx, &domain.DispatchEvent{
			Action:   name,
			Success:  err == nil && result != nil && result.Success,
			Duration: time.Since(start),
		})
	}()

	if verr := widget.ValidateAction(req.Action); verr != nil {
		return nil, verr
	}

	e.logger.Info("processing action", "action", req.Action.Name, "item_id", req.ItemID)

	switch req.Action.Name {
	case domain.ActionViewProductDetails:
		return e.viewProductDetails(ctx, req)
	case domain.ActionAddToCart:
		return e.addToCart(ctx, req)
	case domain.ActionRemoveFromCart:
		return e.removeFromCart(ctx, req)
	case domain.ActionSubmitContactForm:
		return e.submitContactForm(ctx, req)
	case domain.ActionUpdateInventory:
		return e.updateInventory(ctx, req)
	default:
		e.logger.Warn("unknown action received", "action", req.Action.Name)
		return &domain.DispatchResult{
			Success: false,
			Error:   "Unknown action: " + req.Action.Name,
		}, nil
	}
}

func (e *Engine) viewProductDetails(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchResult, error) {
	params, err := decodeParams(req.Action)
	if err != nil {
		return nil, err
	}
	id := params.ProductID
	if id == "" {
		id = req.ItemID
	}

	product, err := e.store.Product(ctx, id)
	if err != nil {
		return nil, err
	}
	w := views.ProductDetail(*product)

	e.broadcast(ctx, domain.EventProductViewed, map[string]any{"productId": id})

	return &domain.DispatchResult{
		Success: true,
		Message: "Product details retrieved",
		Data:    &domain.DispatchData{Product: product, Widget: &w},
	}, nil
}

func (e *Engine) addToCart(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchResult, error) {
	params, err := decodeParams(req.Action)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.store.Product(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.InStock {
		return nil, fmt.Errorf("product %s: %w", product.ID, domain.ErrProductOutOfStock)
	}

	items, err := e.store.AddCartItem(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	w, err := e.cartWidget(ctx, items)
	if err != nil {
		return nil, err
	}

	e.broadcast(ctx, domain.EventCartUpdated, map[string]any{
		"cart":  items,
		"total": domain.TotalQuantity(items),
	})

	return &domain.DispatchResult{
		Success: true,
		Message: product.Name + " added to cart",
		Data:    &domain.DispatchData{Widget: w, CartTotal: len(items)},
	}, nil
}

func (e *Engine) removeFromCart(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchResult, error) {
	params, err := decodeParams(req.Action)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Removing an unknown or already-removed product is a no-op, not an
	// error: the client may race its own removals.
	items, err := e.store.RemoveCartItem(ctx, params.ProductID)
	if err != nil {
		return nil, err
	}
	w, err := e.cartWidget(ctx, items)
	if err != nil {
		return nil, err
	}

	e.broadcast(ctx, domain.EventCartUpdated, map[string]any{"cart": items})

	return &domain.DispatchResult{
		Success: true,
		Message: "Item removed from cart",
		Data:    &domain.DispatchData{Widget: w, CartTotal: len(items)},
	}, nil
}

func (e *Engine) submitContactForm(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchResult, error) {
	var missing []string
	for _, field := range []string{"user_name", "reason"} {
		if req.FormData[field] == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingFieldsError{Fields: missing}
	}

	fields := make(map[string]string, len(req.FormData))
	for k, v := range req.FormData {
		clean, err := widget.SanitizeInput(v)
		if err != nil {
			return nil, fmt.Errorf("form field %q: %w", k, err)
		}
		fields[k] = clean
	}

	sub := domain.Submission{
		ID:        e.nextSubmissionID(),
		Fields:    fields,
		Timestamp: time.Now().UTC(),
		Status:    domain.SubmissionPending,
	}
	if err := e.store.AppendSubmission(ctx, sub); err != nil {
		return nil, err
	}
	w := views.SuccessMessage()

	e.broadcast(ctx, domain.EventFormSubmitted, sub)

	return &domain.DispatchResult{
		Success: true,
		Message: "Contact form submitted successfully",
		Data:    &domain.DispatchData{Widget: &w, SubmissionID: sub.ID},
	}, nil
}

func (e *Engine) updateInventory(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchResult, error) {
	params, err := decodeParams(req.Action)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	product, err := e.store.SetProductStock(ctx, params.ProductID, params.InStock)
	if err != nil {
		// An unresolved product is silently skipped; the caller still gets a
		// generic success. Kept for wire compatibility with existing clients.
		if errors.Is(err, domain.ErrProductNotFound) {
			e.logger.Debug("inventory update for unknown product", "product_id", params.ProductID)
			return &domain.DispatchResult{
				Success: true,
				Message: "Action processed successfully",
			}, nil
		}
		return nil, err
	}

	e.broadcast(ctx, domain.EventInventoryUpdated, map[string]any{
		"productId": product.ID,
		"inStock":   product.InStock,
	})

	return &domain.DispatchResult{
		Success: true,
		Message: "Inventory updated",
		Data:    &domain.DispatchData{Product: product},
	}, nil
}

func (e *Engine) cartWidget(ctx context.Context, items []domain.CartItem) (*widget.Node, error) {
	products, err := e.store.Products(ctx)
	if err != nil {
		return nil, err
	}
	w := views.Cart(items, products)
	return &w, nil
}

// nextSubmissionID produces IDs unique within the process even when two
// submissions land in the same millisecond.
func (e *Engine) nextSubmissionID() string {
	return fmt.Sprintf("sub_%d_%d", time.Now().UnixMilli(), e.seq.Add(1))
}

func (e *Engine) broadcast(ctx context.Context, t domain.EventType, payload any) {
	ev := domain.Event{Type: t, Payload: payload, Timestamp: time.Now().UTC()}
	e.broadcaster.Broadcast(ctx, ev)
	if e.hooks.OnBroadcast != nil {
		e.hooks.OnBroadcast(ctx, &ev)
	}
}
