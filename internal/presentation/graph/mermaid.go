package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/canopy/pkg/widget"
)

// GenerateMermaid produces a Mermaid flowchart of a widget tree.
// It applies semantic styling:
// - Containers (card/listView/form): [[Subroutine]]
// - Interactive nodes (button, editable text, select, datePicker): [/Parallelogram/]
// - Default: [Rectangle]
// Action bindings are rendered as dashed edges to action nodes.
func GenerateMermaid(root *widget.Node) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if root != nil {
		writeNode(&sb, root, "w0")
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *widget.Node, id string) {
	opener, closer := "[", "]"
	switch {
	case widget.IsContainer(n.Kind):
		opener, closer = "[[", "]]"
	case isInteractive(n):
		opener, closer = "[/", "/]"
	}

	sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, nodeLabel(n), closer))

	bindings := []struct {
		name   string
		action *widget.Action
	}{
		{"click", n.OnClickAction},
		{"submit", n.OnSubmitAction},
		{"change", n.OnChangeAction},
	}
	for _, b := range bindings {
		if b.action == nil {
			continue
		}
		actionID := fmt.Sprintf("%s_%s", id, b.name)
		sb.WriteString(fmt.Sprintf("    %s -. %s .-> %s(\"%s\")\n", id, b.name, actionID, b.action.Name))
	}

	for i := range n.Children {
		childID := fmt.Sprintf("%s_%d", id, i)
		writeNode(sb, &n.Children[i], childID)
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", id, childID))
	}
}

func nodeLabel(n *widget.Node) string {
	label := string(n.Kind)
	switch {
	case n.Key != "":
		label = fmt.Sprintf("%s: %s", n.Kind, n.Key)
	case n.Label != "":
		label = fmt.Sprintf("%s: %s", n.Kind, n.Label)
	case n.Value != "":
		label = fmt.Sprintf("%s: %s", n.Kind, n.Value)
	case n.Editable != nil:
		label = fmt.Sprintf("%s: %s", n.Kind, n.Editable.Name)
	}
	return sanitizeMermaidLabel(label)
}

func isInteractive(n *widget.Node) bool {
	switch n.Kind {
	case widget.KindButton, widget.KindSelect, widget.KindDatePicker:
		return true
	case widget.KindText:
		return n.Editable != nil
	}
	return false
}

// sanitizeMermaidLabel strips characters that break Mermaid quoting.
func sanitizeMermaidLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
