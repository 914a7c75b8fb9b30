package domain

import (
	"context"
	"time"
)

// EventType names a broadcast event pushed to connected clients.
type EventType string

const (
	EventProductViewed    EventType = "product-viewed"
	EventCartUpdated      EventType = "cart-updated"
	EventFormSubmitted    EventType = "form-submitted"
	EventInventoryUpdated EventType = "inventory-updated"
)

// Event is a fire-and-forget notification emitted after a successful
// dispatch. Delivery failure never rolls back the mutation.
type Event struct {
	Type      EventType `json:"type"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// DispatchEvent describes one completed dispatch for observability hooks.
type DispatchEvent struct {
	Action   string        `json:"action"`
	Success  bool          `json:"success"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
// All hooks are optional; nil hooks are skipped.
type LifecycleHooks struct {
	OnDispatch  func(context.Context, *DispatchEvent)
	OnBroadcast func(context.Context, *Event)
}
