package widget

// Kind identifies the widget variant. The set is closed: the renderer on the
// client side only understands these tags.
type Kind string

// Container kinds. Containers carry children and define layout scope.
const (
	KindCard     Kind = "card"
	KindListView Kind = "listView"
	KindForm     Kind = "form"
)

// Component kinds.
const (
	KindBadge        Kind = "badge"
	KindBox          Kind = "box"
	KindRow          Kind = "row"
	KindCol          Kind = "col"
	KindButton       Kind = "button"
	KindCaption      Kind = "caption"
	KindDatePicker   Kind = "datePicker"
	KindDivider      Kind = "divider"
	KindIcon         Kind = "icon"
	KindImage        Kind = "image"
	KindListViewItem Kind = "listViewItem"
	KindMarkdown     Kind = "markdown"
	KindSelect       Kind = "select"
	KindSpacer       Kind = "spacer"
	KindText         Kind = "text"
	KindTitle        Kind = "title"
	KindTransition   Kind = "transition"
)

// Node is a single node of the widget tree sent to the chat client.
// The zero value is not a valid widget; Kind is mandatory.
//
// Fields are a union over all kinds. Which ones are required depends on the
// kind (see FieldsFor); the rest are optional presentation hints that the
// renderer may ignore.
type Node struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key,omitempty"`

	// Content fields.
	Value    string         `json:"value,omitempty"`
	Label    string         `json:"label,omitempty"`
	Src      string         `json:"src,omitempty"`
	Alt      string         `json:"alt,omitempty"`
	Name     string         `json:"name,omitempty"`
	Options  []SelectOption `json:"options,omitempty"`
	Editable *Editable      `json:"editable,omitempty"`

	// Layout and styling hints.
	Size       string `json:"size,omitempty"`
	Color      string `json:"color,omitempty"`
	Weight     string `json:"weight,omitempty"`
	TextAlign  string `json:"textAlign,omitempty"`
	Theme      string `json:"theme,omitempty"`
	Background string `json:"background,omitempty"`
	Padding    string `json:"padding,omitempty"`
	Gap        string `json:"gap,omitempty"`
	Align      string `json:"align,omitempty"`
	Justify    string `json:"justify,omitempty"`
	Width      string `json:"width,omitempty"`
	Height     string `json:"height,omitempty"`
	Radius     string `json:"radius,omitempty"`
	Fit        string `json:"fit,omitempty"`
	Spacing    string `json:"spacing,omitempty"`
	Variant    string `json:"variant,omitempty"`
	Style      string `json:"style,omitempty"`
	Flex       int    `json:"flex,omitempty"`
	MaxLines   int    `json:"maxLines,omitempty"`
	Block      bool   `json:"block,omitempty"`
	Disabled   bool   `json:"disabled,omitempty"`

	Children []Node `json:"children,omitempty"`

	// Event bindings. Each binding, when present, must be a valid Action.
	OnClickAction  *Action `json:"onClickAction,omitempty"`
	OnSubmitAction *Action `json:"onSubmitAction,omitempty"`
	OnChangeAction *Action `json:"onChangeAction,omitempty"`
}

// SelectOption is one entry of a select widget. Order is significant.
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Editable marks a text widget as an input field and configures it.
type Editable struct {
	Name         string `json:"name"`
	Placeholder  string `json:"placeholder,omitempty"`
	Required     bool   `json:"required,omitempty"`
	AutoComplete string `json:"autoComplete,omitempty"`
	Pattern      string `json:"pattern,omitempty"`
}
