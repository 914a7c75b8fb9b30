package dsl

import "github.com/aretw0/canopy/pkg/widget"

// NodeBuilder provides a fluent API for configuring a widget node.
type NodeBuilder struct {
	node widget.Node
}

// New starts a builder for an arbitrary kind. Prefer the kind-specific
// constructors (Card, Row, Text, ...) which set required fields up front.
func New(kind widget.Kind) *NodeBuilder {
	return &NodeBuilder{node: widget.Node{Kind: kind}}
}

// Key sets the stable identity of the node.
func (n *NodeBuilder) Key(key string) *NodeBuilder {
	n.node.Key = key
	return n
}

// Size sets the size hint (sm, md, lg, xl, ...).
func (n *NodeBuilder) Size(size string) *NodeBuilder {
	n.node.Size = size
	return n
}

// Color sets the foreground color hint.
func (n *NodeBuilder) Color(color string) *NodeBuilder {
	n.node.Color = color
	return n
}

// Weight sets the font weight hint.
func (n *NodeBuilder) Weight(weight string) *NodeBuilder {
	n.node.Weight = weight
	return n
}

// TextAlign sets the text alignment hint.
func (n *NodeBuilder) TextAlign(align string) *NodeBuilder {
	n.node.TextAlign = align
	return n
}

// Theme sets the theme hint (light/dark).
func (n *NodeBuilder) Theme(theme string) *NodeBuilder {
	n.node.Theme = theme
	return n
}

// Background sets the background color hint.
func (n *NodeBuilder) Background(color string) *NodeBuilder {
	n.node.Background = color
	return n
}

// Padding sets the padding hint.
func (n *NodeBuilder) Padding(padding string) *NodeBuilder {
	n.node.Padding = padding
	return n
}

// Gap sets the spacing between children.
func (n *NodeBuilder) Gap(gap string) *NodeBuilder {
	n.node.Gap = gap
	return n
}

// Align sets cross-axis alignment.
func (n *NodeBuilder) Align(align string) *NodeBuilder {
	n.node.Align = align
	return n
}

// Justify sets main-axis distribution.
func (n *NodeBuilder) Justify(justify string) *NodeBuilder {
	n.node.Justify = justify
	return n
}

// Width sets the width hint.
func (n *NodeBuilder) Width(width string) *NodeBuilder {
	n.node.Width = width
	return n
}

// Height sets the height hint.
func (n *NodeBuilder) Height(height string) *NodeBuilder {
	n.node.Height = height
	return n
}

// Radius sets the corner radius hint.
func (n *NodeBuilder) Radius(radius string) *NodeBuilder {
	n.node.Radius = radius
	return n
}

// Fit sets the image fit mode.
func (n *NodeBuilder) Fit(fit string) *NodeBuilder {
	n.node.Fit = fit
	return n
}

// Spacing sets the spacing hint (dividers).
func (n *NodeBuilder) Spacing(spacing string) *NodeBuilder {
	n.node.Spacing = spacing
	return n
}

// Variant sets the visual variant (soft, outline, ghost, ...).
func (n *NodeBuilder) Variant(variant string) *NodeBuilder {
	n.node.Variant = variant
	return n
}

// Style sets the emphasis style (primary, secondary, ...).
func (n *NodeBuilder) Style(style string) *NodeBuilder {
	n.node.Style = style
	return n
}

// Flex sets the flex growth factor.
func (n *NodeBuilder) Flex(flex int) *NodeBuilder {
	n.node.Flex = flex
	return n
}

// MaxLines clamps text to a number of lines.
func (n *NodeBuilder) MaxLines(lines int) *NodeBuilder {
	n.node.MaxLines = lines
	return n
}

// Block makes the node span the full width.
func (n *NodeBuilder) Block() *NodeBuilder {
	n.node.Block = true
	return n
}

// Disabled marks an interactive node as inert.
func (n *NodeBuilder) Disabled(disabled bool) *NodeBuilder {
	n.node.Disabled = disabled
	return n
}

// Alt sets the accessibility text for an image.
func (n *NodeBuilder) Alt(alt string) *NodeBuilder {
	n.node.Alt = alt
	return n
}

// OnClick binds an action to clicks.
func (n *NodeBuilder) OnClick(a *widget.Action) *NodeBuilder {
	n.node.OnClickAction = a
	return n
}

// OnSubmit binds an action to form submission.
func (n *NodeBuilder) OnSubmit(a *widget.Action) *NodeBuilder {
	n.node.OnSubmitAction = a
	return n
}

// OnChange binds an action to value changes.
func (n *NodeBuilder) OnChange(a *widget.Action) *NodeBuilder {
	n.node.OnChangeAction = a
	return n
}

// Children appends child nodes in order.
func (n *NodeBuilder) Children(children ...*NodeBuilder) *NodeBuilder {
	for _, c := range children {
		n.node.Children = append(n.node.Children, c.node)
	}
	return n
}

// ChildNodes appends already-built nodes in order.
func (n *NodeBuilder) ChildNodes(nodes ...widget.Node) *NodeBuilder {
	n.node.Children = append(n.node.Children, nodes...)
	return n
}

// Build returns the underlying widget.Node.
func (n *NodeBuilder) Build() widget.Node {
	return n.node
}
