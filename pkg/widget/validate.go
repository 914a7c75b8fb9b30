package widget

import "fmt"

// Validate checks the tree against the schema, depth-first pre-order.
// It is fail-fast: the first structural defect aborts the walk and the
// returned *SchemaError names the failing node's path. Advisory concerns
// (accessibility, size) are deliberately separate; see AuditAccessibility
// and AuditSize.
func Validate(n *Node) error {
	return validateNode(n, "")
}

func validateNode(n *Node, path string) error {
	if n == nil {
		return &SchemaError{Path: path, Reason: "widget must not be nil"}
	}
	if n.Kind == "" {
		return &SchemaError{Path: path, Reason: "widget must have a kind"}
	}
	if !ValidKind(n.Kind) {
		return &SchemaError{Path: path, Reason: fmt.Sprintf("invalid widget kind: %q", n.Kind)}
	}

	if err := validateRequired(n, path); err != nil {
		return err
	}

	// Event bindings must each carry a valid action.
	bindings := []struct {
		name   string
		action *Action
	}{
		{"onClickAction", n.OnClickAction},
		{"onSubmitAction", n.OnSubmitAction},
		{"onChangeAction", n.OnChangeAction},
	}
	for _, b := range bindings {
		if b.action == nil {
			continue
		}
		if err := ValidateAction(b.action); err != nil {
			return &SchemaError{
				Path:   path,
				Kind:   n.Kind,
				Reason: fmt.Sprintf("has invalid %s: %v", b.name, err),
			}
		}
	}

	for i := range n.Children {
		if err := validateNode(&n.Children[i], childPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

func validateRequired(n *Node, path string) error {
	fail := func(reason string) error {
		return &SchemaError{Path: path, Kind: n.Kind, Reason: reason}
	}

	switch n.Kind {
	case KindButton:
		if n.Label == "" {
			return fail("must have a label")
		}
	case KindForm:
		if n.OnSubmitAction == nil {
			return fail("must have an onSubmitAction")
		}
	case KindImage:
		if n.Src == "" {
			return fail("must have a src")
		}
	case KindIcon:
		if n.Name == "" {
			return fail("must have a name")
		}
	case KindText, KindTitle, KindCaption, KindMarkdown:
		// Editable text fields carry no static value.
		if n.Value == "" && n.Editable == nil {
			return fail("must have a value")
		}
	case KindSelect:
		if n.Name == "" {
			return fail("must have a name")
		}
		if n.Options == nil {
			return fail("must have an options array")
		}
	}
	return nil
}

func childPath(parent string, i int) string {
	if parent == "" {
		return fmt.Sprintf("children[%d]", i)
	}
	return fmt.Sprintf("%s.children[%d]", parent, i)
}
