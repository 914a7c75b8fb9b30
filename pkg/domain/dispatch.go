package domain

import "github.com/aretw0/canopy/pkg/widget"

// Recognized action names. The dispatch vocabulary is closed: anything else
// yields a failure result naming the unknown action.
const (
	ActionViewProductDetails = "view_product_details"
	ActionAddToCart          = "add_to_cart"
	ActionRemoveFromCart     = "remove_from_cart"
	ActionSubmitContactForm  = "submit_contact_form"
	ActionUpdateInventory    = "update_inventory"
)

// DispatchRequest is the decoded request body handed to the Dispatcher by the
// HTTP layer.
type DispatchRequest struct {
	Action   *widget.Action    `json:"action"`
	ItemID   string            `json:"itemId,omitempty"`
	FormData map[string]string `json:"formData,omitempty"`
}

// DispatchResult is the outcome of a dispatched action, serialized back to
// the client as-is.
type DispatchResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Data    *DispatchData `json:"data,omitempty"`
}

// DispatchData carries the action-specific response payload. The widget, when
// present, always reflects post-mutation state.
type DispatchData struct {
	Widget       *widget.Node `json:"widget,omitempty"`
	Product      *Product     `json:"product,omitempty"`
	CartTotal    int          `json:"cartTotal,omitempty"`
	SubmissionID string       `json:"submissionId,omitempty"`
}
