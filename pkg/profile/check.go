package profile

import (
	"fmt"
	"strings"

	"github.com/aretw0/canopy/pkg/widget"
)

// Check is the outcome of a single named verification.
type Check struct {
	Name    string `json:"description"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Summary aggregates the checks run against one tree.
type Summary struct {
	Total    int      `json:"total"`
	Passed   int      `json:"passed"`
	Failed   int      `json:"failed"`
	Warnings []string `json:"warnings"`
	Checks   []Check  `json:"checks"`
}

// Success reports whether every check passed.
func (s *Summary) Success() bool {
	return s.Failed == 0
}

func (s *Summary) record(name string, passed bool, message string) {
	s.Total++
	if passed {
		s.Passed++
	} else {
		s.Failed++
	}
	s.Checks = append(s.Checks, Check{Name: name, Passed: passed, Message: message})
}

func (s *Summary) warn(message string) {
	s.Warnings = append(s.Warnings, message)
}

// TestWidget runs the full verification battery against a tree: structure,
// accessibility, action bindings, payload size, and recommended properties.
// Structure failures hard-fail; accessibility and size issues accumulate as
// warnings alongside their check result.
func TestWidget(n *widget.Node) *Summary {
	s := &Summary{}

	if err := widget.Validate(n); err != nil {
		s.record("Widget structure is valid", false, err.Error())
	} else {
		s.record("Widget structure is valid", true, "Widget structure is valid")
	}

	a11y := widget.AuditAccessibility(n)
	if a11y.Compliant {
		s.record("Widget meets accessibility standards", true, "All accessibility checks passed")
	} else {
		msg := "Accessibility issues: " + strings.Join(a11y.Issues, ", ")
		s.record("Widget meets accessibility standards", false, msg)
		s.warn("Accessibility issues found: " + strings.Join(a11y.Issues, ", "))
	}

	invalid := invalidBindings(n)
	if len(invalid) == 0 {
		s.record("All widget actions are valid", true, "All actions are valid")
	} else {
		s.record("All widget actions are valid", false,
			"Invalid actions found: "+strings.Join(invalid, ", "))
	}

	size := widget.JSONSize(n)
	if size > widget.SoftSizeLimit {
		s.record("Widget performance is acceptable", false,
			fmt.Sprintf("Widget size: %d bytes", size))
		s.warn(fmt.Sprintf("Widget JSON is %d bytes (>%d recommended)", size, widget.SoftSizeLimit))
	} else {
		s.record("Widget performance is acceptable", true,
			fmt.Sprintf("Widget size: %d bytes", size))
	}

	missing := missingRecommended(n, "")
	if len(missing) == 0 {
		s.record("Recommended properties are present", true, "All recommended properties present")
	} else {
		for _, m := range missing {
			s.warn("Missing recommended property: " + m)
		}
		s.record("Recommended properties are present", true,
			"Recommended properties missing: "+strings.Join(missing, ", "))
	}

	return s
}

func invalidBindings(n *widget.Node) []string {
	if n == nil {
		return nil
	}
	var found []string
	if n.OnClickAction != nil && widget.ValidateAction(n.OnClickAction) != nil {
		found = append(found, fmt.Sprintf("Invalid onClickAction in %s", n.Kind))
	}
	if n.OnSubmitAction != nil && widget.ValidateAction(n.OnSubmitAction) != nil {
		found = append(found, fmt.Sprintf("Invalid onSubmitAction in %s", n.Kind))
	}
	if n.OnChangeAction != nil && widget.ValidateAction(n.OnChangeAction) != nil {
		found = append(found, fmt.Sprintf("Invalid onChangeAction in %s", n.Kind))
	}
	for i := range n.Children {
		found = append(found, invalidBindings(&n.Children[i])...)
	}
	return found
}

func missingRecommended(n *widget.Node, path string) []string {
	if n == nil {
		return nil
	}
	var missing []string
	if n.Kind == widget.KindImage && n.Alt == "" {
		missing = append(missing, path+"image missing alt text")
	}
	if n.Kind == widget.KindButton && n.Label == "" {
		missing = append(missing, path+"button missing label")
	}
	for i := range n.Children {
		childPrefix := fmt.Sprintf("%schildren[%d].", path, i)
		missing = append(missing, missingRecommended(&n.Children[i], childPrefix)...)
	}
	return missing
}
