package ports

import (
	"context"

	"github.com/aretw0/canopy/pkg/domain"
)

// Dispatcher applies a widget action against the Domain Store and produces
// the response payload.
//
// A non-nil error signals a rejected dispatch (malformed action, failed
// precondition); the Store is left unmodified in that case. An unknown action
// name is not an error: it yields a failure DispatchResult so the boundary
// layer can answer 200 with success=false, matching the wire contract.
type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchResult, error)
}
