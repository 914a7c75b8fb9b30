package widget

import "fmt"

// SchemaError reports a structural validation failure: an unknown kind or a
// missing required field. Path locates the failing node within the tree
// ("children[2].children[0]"); an empty path means the root.
type SchemaError struct {
	Path   string
	Kind   Kind
	Reason string
}

func (e *SchemaError) Error() string {
	loc := "widget"
	if e.Path != "" {
		loc = e.Path
	}
	if e.Kind != "" {
		return fmt.Sprintf("%s: %s widget %s", loc, e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s: %s", loc, e.Reason)
}

// ActionError reports a malformed action: missing type or name, or an
// unrecognized type.
type ActionError struct {
	Reason string
}

func (e *ActionError) Error() string {
	return "action: " + e.Reason
}
