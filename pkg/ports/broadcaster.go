package ports

import (
	"context"

	"github.com/aretw0/canopy/pkg/domain"
)

// Broadcaster pushes events to connected clients. Emission is fire-and-forget:
// implementations must not block the dispatch path, and a failed delivery
// never rolls back a mutation.
type Broadcaster interface {
	Broadcast(ctx context.Context, event domain.Event)
}

// NopBroadcaster discards all events.
type NopBroadcaster struct{}

func (NopBroadcaster) Broadcast(context.Context, domain.Event) {}
