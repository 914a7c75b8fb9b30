package dispatch_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/internal/dispatch"
	"github.com/aretw0/canopy/pkg/adapters/memory"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/widget"
)

type captureBroadcaster struct {
	mu     sync.Mutex
	events []domain.Event
}

func (b *captureBroadcaster) Broadcast(_ context.Context, ev domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, ev)
}

func (b *captureBroadcaster) types() []domain.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	types := make([]domain.EventType, 0, len(b.events))
	for _, ev := range b.events {
		types = append(types, ev.Type)
	}
	return types
}

func newTestEngine(t *testing.T) (*dispatch.Engine, *memory.Store, *captureBroadcaster) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.SeedProducts(context.Background(), []domain.Product{
		{ID: "prod_1", Name: "Ergo Chair 2", Price: "$499", Image: "https://example.com/1.jpg", Description: "Chair", InStock: true, Category: "furniture"},
		{ID: "prod_2", Name: "Standing Desk Pro", Price: "$899", Image: "https://example.com/2.jpg", Description: "Desk", InStock: false, Category: "furniture"},
	}))
	bc := &captureBroadcaster{}
	return dispatch.New(store, dispatch.WithBroadcaster(bc)), store, bc
}

func customAction(name string, params map[string]any) *widget.Action {
	return widget.NewAction(name, params)
}

func TestDispatchViewProductDetails(t *testing.T) {
	engine, _, bc := newTestEngine(t)

	result, err := engine.Dispatch(context.Background(), domain.DispatchRequest{
		Action: customAction(domain.ActionViewProductDetails, map[string]any{"productId": "prod_1"}),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Product details retrieved", result.Message)
	require.NotNil(t, result.Data)
	require.NotNil(t, result.Data.Product)
	assert.Equal(t, "prod_1", result.Data.Product.ID)
	require.NotNil(t, result.Data.Widget)
	require.NoError(t, widget.Validate(result.Data.Widget))
	assert.Contains(t, bc.types(), domain.EventProductViewed)
}

func TestDispatchViewProductDetailsItemIDFallback(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	result, err := engine.Dispatch(context.Background(), domain.DispatchRequest{
		Action: customAction(domain.ActionViewProductDetails, nil),
		ItemID: "prod_1",
	})

	require.NoError(t, err)
	assert.Equal(t, "prod_1", result.Data.Product.ID)
}

func TestDispatchViewUnknownProduct(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	_, err := engine.Dispatch(context.Background(), domain.DispatchRequest{
		Action: customAction(domain.ActionViewProductDetails, map[string]any{"productId": "nope"}),
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDispatchAddToCartTwiceIncrements(t *testing.T) {
	engine, store, bc := newTestEngine(t)
	ctx := context.Background()
	req := domain.DispatchRequest{
		Action: customAction(domain.ActionAddToCart, map[string]any{"productId": "prod_1"}),
	}

	first, err := engine.Dispatch(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Ergo Chair 2 added to cart", first.Message)
	assert.Equal(t, 1, first.Data.CartTotal)

	second, err := engine.Dispatch(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Data.CartTotal, "same product stays one line item")

	items, err := store.CartItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	assert.Equal(t,
		[]domain.EventType{domain.EventCartUpdated, domain.EventCartUpdated},
		bc.types())
}

func TestDispatchAddOutOfStockLeavesCartUntouched(t *testing.T) {
	engine, store, bc := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Dispatch(ctx, domain.DispatchRequest{
		Action: customAction(domain.ActionAddToCart, map[string]any{"productId": "prod_2"}),
	})

	assert.ErrorIs(t, err, domain.ErrProductOutOfStock)

	items, serr := store.CartItems(ctx)
	require.NoError(t, serr)
	assert.Empty(t, items)
	assert.Empty(t, bc.types())
}

func TestDispatchRemoveFromCartIsIdempotent(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Dispatch(ctx, domain.DispatchRequest{
		Action: customAction(domain.ActionAddToCart, map[string]any{"productId": "prod_1"}),
	})
	require.NoError(t, err)

	remove := domain.DispatchRequest{
		Action: customAction(domain.ActionRemoveFromCart, map[string]any{"productId": "prod_1"}),
	}
	first, err := engine.Dispatch(ctx, remove)
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Equal(t, 0, first.Data.CartTotal)

	second, err := engine.Dispatch(ctx, remove)
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.Equal(t, "Item removed from cart", second.Message)
}

func TestDispatchSubmitContactForm(t *testing.T) {
	engine, store, bc := newTestEngine(t)
	ctx := context.Background()

	result, err := engine.Dispatch(ctx, domain.DispatchRequest{
		Action: customAction(domain.ActionSubmitContactForm, nil),
		FormData: map[string]string{
			"user_name": "Ada Lovelace",
			"email":     "ada@example.com",
			"reason":    "demo",
		},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Data.SubmissionID, "sub_"))
	require.NotNil(t, result.Data.Widget)
	assert.Equal(t, "success-message", result.Data.Widget.Key)

	subs, serr := store.Submissions(ctx)
	require.NoError(t, serr)
	require.Len(t, subs, 1)
	assert.Equal(t, domain.SubmissionPending, subs[0].Status)
	assert.Equal(t, "Ada Lovelace", subs[0].Fields["user_name"])

	assert.Contains(t, bc.types(), domain.EventFormSubmitted)
}

func TestDispatchSubmitContactFormMissingFields(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Dispatch(ctx, domain.DispatchRequest{
		Action:   customAction(domain.ActionSubmitContactForm, nil),
		FormData: map[string]string{"email": "ada@example.com"},
	})

	var missing *domain.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.ElementsMatch(t, []string{"user_name", "reason"}, missing.Fields)

	subs, serr := store.Submissions(ctx)
	require.NoError(t, serr)
	assert.Empty(t, subs)
}

func TestDispatchSubmitContactFormSanitizes(t *testing.T) {
	engine, store, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := engine.Dispatch(ctx, domain.DispatchRequest{
		Action: customAction(domain.ActionSubmitContactForm, nil),
		FormData: map[string]string{
			"user_name": "<script>alert(1)</script>",
			"reason":    "general",
		},
	})
	require.NoError(t, err)

	subs, serr := store.Submissions(ctx)
	require.NoError(t, serr)
	require.Len(t, subs, 1)
	assert.NotContains(t, subs[0].Fields["user_name"], "<script>")
}

func TestDispatchUpdateInventory(t *testing.T) {
	engine, store, bc := newTestEngine(t)
	ctx := context.Background()

	result, err := engine.Dispatch(ctx, domain.DispatchRequest{
		Action: customAction(domain.ActionUpdateInventory, map[string]any{"productId": "prod_2", "inStock": true}),
	})

	require.NoError(t, err)
	assert.Equal(t, "Inventory updated", result.Message)
	require.NotNil(t, result.Data.Product)
	assert.True(t, result.Data.Product.InStock)

	p, serr := store.Product(ctx, "prod_2")
	require.NoError(t, serr)
	assert.True(t, p.InStock)

	assert.Contains(t, bc.types(), domain.EventInventoryUpdated)
}

func TestDispatchUpdateInventoryUnknownProductIsSilent(t *testing.T) {
	engine, _, bc := newTestEngine(t)

	result, err := engine.Dispatch(context.Background(), domain.DispatchRequest{
		Action: customAction(domain.ActionUpdateInventory, map[string]any{"productId": "nope", "inStock": true}),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Nil(t, result.Data)
	assert.Empty(t, bc.types())
}

func TestDispatchUnknownActionIsFailureNotError(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	result, err := engine.Dispatch(context.Background(), domain.DispatchRequest{
		Action: customAction("teleport", nil),
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown action: teleport", result.Error)
}

func TestDispatchRejectsMalformedAction(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	cases := map[string]*widget.Action{
		"nil action":   nil,
		"missing name": {Type: widget.ActionCustom},
		"bad type":     {Type: "weird", Name: "x"},
	}
	for name, action := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := engine.Dispatch(context.Background(), domain.DispatchRequest{Action: action})
			var actionErr *widget.ActionError
			assert.ErrorAs(t, err, &actionErr)
		})
	}
}

func TestDispatchInvokesHooks(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.SeedProducts(context.Background(), []domain.Product{
		{ID: "prod_1", Name: "Chair", Price: "$499", InStock: true},
	}))

	var dispatched []*domain.DispatchEvent
	engine := dispatch.New(store, dispatch.WithHooks(domain.LifecycleHooks{
		OnDispatch: func(_ context.Context, ev *domain.DispatchEvent) {
			dispatched = append(dispatched, ev)
		},
	}))

	_, err := engine.Dispatch(context.Background(), domain.DispatchRequest{
		Action: customAction(domain.ActionAddToCart, map[string]any{"productId": "prod_1"}),
	})
	require.NoError(t, err)

	require.Len(t, dispatched, 1)
	assert.Equal(t, domain.ActionAddToCart, dispatched[0].Action)
	assert.True(t, dispatched[0].Success)
}
