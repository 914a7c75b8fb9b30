package canopy_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/widget"
)

func TestEngineEndToEnd(t *testing.T) {
	eng := canopy.New()
	ctx := context.Background()

	require.NoError(t, eng.Seed(ctx, []domain.Product{
		{ID: "prod_1", Name: "Ergo Chair 2", Price: "$499", Image: "https://example.com/1.jpg", InStock: true, Category: "furniture"},
	}))

	list, err := eng.ProductListWidget(ctx)
	require.NoError(t, err)
	require.NoError(t, widget.Validate(&list))
	assert.Equal(t, widget.KindListView, list.Kind)

	result, err := eng.Dispatch(ctx, domain.DispatchRequest{
		Action: widget.NewAction(domain.ActionAddToCart, map[string]any{"productId": "prod_1"}),
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	cart, err := eng.CartWidget(ctx)
	require.NoError(t, err)
	require.NoError(t, widget.Validate(&cart))
	assert.Equal(t, "shopping-cart-filled", cart.Key)

	form := eng.ContactFormWidget()
	require.NoError(t, widget.Validate(&form))
}

func TestEngineWithCustomStoreAndBroadcaster(t *testing.T) {
	var events []domain.Event
	eng := canopy.New(canopy.WithBroadcaster(broadcasterFunc(func(ev domain.Event) {
		events = append(events, ev)
	})))
	ctx := context.Background()

	require.NoError(t, eng.Seed(ctx, []domain.Product{
		{ID: "p1", Name: "Lamp", Price: "$25", InStock: true},
	}))

	_, err := eng.Dispatch(ctx, domain.DispatchRequest{
		Action: widget.NewAction(domain.ActionAddToCart, map[string]any{"productId": "p1"}),
	})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, domain.EventCartUpdated, events[0].Type)
}

type broadcasterFunc func(domain.Event)

func (f broadcasterFunc) Broadcast(_ context.Context, ev domain.Event) { f(ev) }
