package widget

import "fmt"

// Advisory thresholds. Exceeding them never fails Validate; the audits below
// surface them as warnings so the caller can choose policy.
const (
	MaxDepth      = 10
	MaxChildren   = 50
	HardSizeLimit = 100_000
	SoftSizeLimit = 50_000
)

// AccessibilityReport is the outcome of AuditAccessibility.
type AccessibilityReport struct {
	Compliant bool     `json:"compliant"`
	Issues    []string `json:"issues"`
}

// SizeReport is the outcome of AuditSize.
type SizeReport struct {
	Warnings []string `json:"warnings"`
	JSONSize int      `json:"jsonSize"`
}

// AuditAccessibility walks the whole tree collecting accessibility gaps.
// Unlike Validate it never aborts: structural validity is a hard gate,
// accessibility is advisory.
func AuditAccessibility(n *Node) AccessibilityReport {
	issues := auditAccessibilityNode(n, "", nil)
	return AccessibilityReport{
		Compliant: len(issues) == 0,
		Issues:    issues,
	}
}

func auditAccessibilityNode(n *Node, path string, issues []string) []string {
	if n == nil {
		return issues
	}
	at := func(msg string) string {
		if path == "" {
			return msg
		}
		return path + ": " + msg
	}

	switch n.Kind {
	case KindImage:
		if n.Alt == "" {
			issues = append(issues, at("image missing alt text"))
		}
	case KindButton:
		if isBlank(n.Label) {
			issues = append(issues, at("button missing descriptive label"))
		}
	case KindText:
		if n.Editable != nil && n.Editable.Placeholder == "" {
			issues = append(issues, at("form input missing placeholder text"))
		}
	}

	for i := range n.Children {
		issues = auditAccessibilityNode(&n.Children[i], childPath(path, i), issues)
	}
	return issues
}

// AuditSize computes the serialized size and flags excessive nesting and
// fan-out. Accumulating, advisory only.
func AuditSize(n *Node) SizeReport {
	var report SizeReport
	if n == nil {
		return report
	}

	report.JSONSize = JSONSize(n)

	if depth := maxTreeDepth(n, 0); depth > MaxDepth {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("excessive nesting: depth %d exceeds %d levels", depth, MaxDepth))
	}
	report.Warnings = auditFanOut(n, "", report.Warnings)

	if report.JSONSize > HardSizeLimit {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("widget JSON is very large (%d bytes > %d)", report.JSONSize, HardSizeLimit))
	} else if report.JSONSize > SoftSizeLimit {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("widget JSON is large (%d bytes > %d recommended)", report.JSONSize, SoftSizeLimit))
	}
	return report
}

func maxTreeDepth(n *Node, depth int) int {
	max := depth
	for i := range n.Children {
		if d := maxTreeDepth(&n.Children[i], depth+1); d > max {
			max = d
		}
	}
	return max
}

func auditFanOut(n *Node, path string, warnings []string) []string {
	if len(n.Children) > MaxChildren {
		loc := "widget"
		if path != "" {
			loc = path
		}
		warnings = append(warnings,
			fmt.Sprintf("%s: too many direct children (%d > %d)", loc, len(n.Children), MaxChildren))
	}
	for i := range n.Children {
		warnings = auditFanOut(&n.Children[i], childPath(path, i), warnings)
	}
	return warnings
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
