package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
)

// RunStoreContract runs a suite of tests to verify that a Store
// implementation adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	seed := []domain.Product{
		{ID: "prod_1", Name: "Ergo Chair 2", Price: "$499", InStock: true, Category: "furniture"},
		{ID: "prod_2", Name: "Standing Desk Pro", Price: "$899", InStock: false, Category: "furniture"},
	}

	t.Run("Seed and Lookup", func(t *testing.T) {
		require.NoError(t, store.SeedProducts(ctx, seed))

		products, err := store.Products(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 2)

		p, err := store.Product(ctx, "prod_1")
		require.NoError(t, err)
		assert.Equal(t, "Ergo Chair 2", p.Name)

		_, err = store.Product(ctx, "prod_missing")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Stock Update", func(t *testing.T) {
		require.NoError(t, store.SeedProducts(ctx, seed))

		updated, err := store.SetProductStock(ctx, "prod_2", true)
		require.NoError(t, err)
		assert.True(t, updated.InStock)

		p, err := store.Product(ctx, "prod_2")
		require.NoError(t, err)
		assert.True(t, p.InStock)

		_, err = store.SetProductStock(ctx, "prod_missing", true)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("Cart Increment and Remove", func(t *testing.T) {
		require.NoError(t, store.SeedProducts(ctx, seed))

		cart, err := store.AddCartItem(ctx, "prod_1")
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].Quantity)

		cart, err = store.AddCartItem(ctx, "prod_1")
		require.NoError(t, err)
		require.Len(t, cart, 1, "repeat add must increment, not append")
		assert.Equal(t, 2, cart[0].Quantity)

		cart, err = store.RemoveCartItem(ctx, "prod_1")
		require.NoError(t, err)
		assert.Empty(t, cart)

		// Removing again is a no-op, not an error.
		cart, err = store.RemoveCartItem(ctx, "prod_1")
		require.NoError(t, err)
		assert.Empty(t, cart)
	})

	t.Run("Submissions Append Only", func(t *testing.T) {
		before, err := store.Submissions(ctx)
		require.NoError(t, err)

		sub := domain.Submission{
			ID:        "sub_contract_1",
			Fields:    map[string]string{"user_name": "Ada", "reason": "demo"},
			Timestamp: time.Now().UTC(),
			Status:    domain.SubmissionPending,
		}
		require.NoError(t, store.AppendSubmission(ctx, sub))

		after, err := store.Submissions(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		last := after[len(after)-1]
		assert.Equal(t, "sub_contract_1", last.ID)
		assert.Equal(t, "Ada", last.Fields["user_name"])
		assert.Equal(t, domain.SubmissionPending, last.Status)
	})
}
