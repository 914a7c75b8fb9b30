package widget

// ActionType categorizes the intent carried by an Action.
type ActionType string

const (
	ActionCustom   ActionType = "custom"
	ActionNavigate ActionType = "navigate"
	ActionSubmit   ActionType = "submit"
)

// Action is a named, parameterized intent emitted by a rendered widget and
// dispatched back to the server.
type Action struct {
	Type       ActionType     `json:"type" mapstructure:"type"`
	Name       string         `json:"name" mapstructure:"name"`
	Parameters map[string]any `json:"parameters,omitempty" mapstructure:"parameters"`
}

// NewAction builds a custom action. Most widget bindings use this form.
func NewAction(name string, params map[string]any) *Action {
	return &Action{
		Type:       ActionCustom,
		Name:       name,
		Parameters: params,
	}
}

// ValidateAction checks the action contract: a known type, a non-empty name.
// Parameters are structurally enforced by the typed field; a non-mapping
// payload is rejected at the JSON decode boundary.
func ValidateAction(a *Action) error {
	if a == nil {
		return &ActionError{Reason: "action must not be nil"}
	}
	if a.Type == "" {
		return &ActionError{Reason: "action must have a type"}
	}
	switch a.Type {
	case ActionCustom, ActionNavigate, ActionSubmit:
	default:
		return &ActionError{Reason: "invalid action type: " + string(a.Type)}
	}
	if a.Name == "" {
		return &ActionError{Reason: "action must have a name"}
	}
	return nil
}
