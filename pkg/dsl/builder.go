package dsl

import "github.com/aretw0/canopy/pkg/widget"

// Kind-specific constructors. Each one sets the fields the Validator
// requires for that kind, so trees built through this package start valid.

// Card starts a card container.
func Card(key string) *NodeBuilder {
	return New(widget.KindCard).Key(key)
}

// ListView starts a listView container.
func ListView(key string) *NodeBuilder {
	return New(widget.KindListView).Key(key)
}

// ListViewItem starts a listViewItem.
func ListViewItem(key string) *NodeBuilder {
	return New(widget.KindListViewItem).Key(key)
}

// Form starts a form container bound to a submit action.
func Form(onSubmit *widget.Action) *NodeBuilder {
	return New(widget.KindForm).OnSubmit(onSubmit)
}

// Row starts a horizontal layout node.
func Row() *NodeBuilder {
	return New(widget.KindRow)
}

// Col starts a vertical layout node.
func Col() *NodeBuilder {
	return New(widget.KindCol)
}

// Box starts a generic box node.
func Box() *NodeBuilder {
	return New(widget.KindBox)
}

// Text creates a static text node.
func Text(value string) *NodeBuilder {
	b := New(widget.KindText)
	b.node.Value = value
	return b
}

// EditableText creates a text input field.
func EditableText(e widget.Editable) *NodeBuilder {
	b := New(widget.KindText)
	b.node.Editable = &e
	return b
}

// Title creates a title node.
func Title(value string) *NodeBuilder {
	b := New(widget.KindTitle)
	b.node.Value = value
	return b
}

// Caption creates a caption node.
func Caption(value string) *NodeBuilder {
	b := New(widget.KindCaption)
	b.node.Value = value
	return b
}

// Markdown creates a markdown node.
func Markdown(value string) *NodeBuilder {
	b := New(widget.KindMarkdown)
	b.node.Value = value
	return b
}

// Badge creates a badge with a label.
func Badge(label string) *NodeBuilder {
	b := New(widget.KindBadge)
	b.node.Label = label
	return b
}

// Button creates a button with a label.
func Button(label string) *NodeBuilder {
	b := New(widget.KindButton)
	b.node.Label = label
	return b
}

// Image creates an image node. Alt text is part of the signature because the
// accessibility audit flags images without it.
func Image(src, alt string) *NodeBuilder {
	b := New(widget.KindImage)
	b.node.Src = src
	b.node.Alt = alt
	return b
}

// Icon creates an icon node.
func Icon(name string) *NodeBuilder {
	b := New(widget.KindIcon)
	b.node.Name = name
	return b
}

// Divider creates a divider node.
func Divider() *NodeBuilder {
	return New(widget.KindDivider)
}

// Spacer creates a spacer node.
func Spacer() *NodeBuilder {
	return New(widget.KindSpacer)
}

// Select creates a select node with named options.
func Select(name string, options ...widget.SelectOption) *NodeBuilder {
	b := New(widget.KindSelect)
	b.node.Name = name
	if options == nil {
		options = []widget.SelectOption{}
	}
	b.node.Options = options
	return b
}

// DatePicker creates a datePicker node.
func DatePicker(name string) *NodeBuilder {
	b := New(widget.KindDatePicker)
	b.node.Name = name
	return b
}
