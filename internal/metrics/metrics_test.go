package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/internal/metrics"
	"github.com/aretw0/canopy/pkg/domain"
)

func TestHooksRecordDispatchesAndBroadcasts(t *testing.T) {
	reg := prometheus.NewRegistry()
	hooks := metrics.New(reg).Hooks()
	ctx := context.Background()

	hooks.OnDispatch(ctx, &domain.DispatchEvent{
		Action: domain.ActionAddToCart, Success: true, Duration: 5 * time.Millisecond,
	})
	hooks.OnDispatch(ctx, &domain.DispatchEvent{
		Action: domain.ActionAddToCart, Success: false, Duration: time.Millisecond,
	})
	hooks.OnBroadcast(ctx, &domain.Event{Type: domain.EventCartUpdated})

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]float64{}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			if m.GetCounter() != nil {
				byName[fam.GetName()] += m.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, 2.0, byName["canopy_actions_total"])
	assert.Equal(t, 1.0, byName["canopy_broadcasts_total"])
}
