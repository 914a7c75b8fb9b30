package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/adapters/redis"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
)

func newTestClient(t *testing.T) *backend.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisStore_Contract(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ports.RunStoreContract(t, store)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err = store.SeedProducts(ctx, []domain.Product{
		{ID: "prod_1", Name: "Ergo Chair 2", Price: "$499", InStock: true},
	})
	require.NoError(t, err)

	assert.True(t, mr.Exists("custom:app:products"), "Expected key with custom prefix to exist")

	products, err := store.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestRedisStore_EmptyCollections(t *testing.T) {
	store := redis.NewFromClient(newTestClient(t))
	ctx := context.Background()

	// Fresh keyspace: every collection reads as empty, not as an error.
	products, err := store.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	cart, err := store.CartItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)

	subs, err := store.Submissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)

	_, err = store.Product(ctx, "prod_1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
