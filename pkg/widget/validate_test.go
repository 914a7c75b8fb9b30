package widget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/widget"
)

func TestValidateNilWidget(t *testing.T) {
	err := widget.Validate(nil)

	var schemaErr *widget.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "widget: widget must not be nil", err.Error())
}

func TestValidateMissingKind(t *testing.T) {
	err := widget.Validate(&widget.Node{})
	assert.EqualError(t, err, "widget: widget must have a kind")
}

func TestValidateUnknownKind(t *testing.T) {
	err := widget.Validate(&widget.Node{Kind: "carousel"})

	var schemaErr *widget.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Reason, `invalid widget kind: "carousel"`)
}

func TestValidateRequiredFields(t *testing.T) {
	cases := map[string]struct {
		node   widget.Node
		reason string
	}{
		"button without label": {
			node:   widget.Node{Kind: widget.KindButton},
			reason: "must have a label",
		},
		"form without submit binding": {
			node:   widget.Node{Kind: widget.KindForm},
			reason: "must have an onSubmitAction",
		},
		"image without src": {
			node:   widget.Node{Kind: widget.KindImage},
			reason: "must have a src",
		},
		"icon without name": {
			node:   widget.Node{Kind: widget.KindIcon},
			reason: "must have a name",
		},
		"text without value": {
			node:   widget.Node{Kind: widget.KindText},
			reason: "must have a value",
		},
		"select without name": {
			node:   widget.Node{Kind: widget.KindSelect, Options: []widget.SelectOption{}},
			reason: "must have a name",
		},
		"select without options": {
			node:   widget.Node{Kind: widget.KindSelect, Name: "reason"},
			reason: "must have an options array",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := widget.Validate(&tc.node)
			var schemaErr *widget.SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tc.reason, schemaErr.Reason)
		})
	}
}

func TestValidateEditableTextNeedsNoValue(t *testing.T) {
	node := widget.Node{Kind: widget.KindText, Editable: &widget.Editable{Name: "email"}}
	assert.NoError(t, widget.Validate(&node))
}

func TestValidateFailsFastWithChildPath(t *testing.T) {
	node := widget.Node{
		Kind: widget.KindCard,
		Children: []widget.Node{
			{Kind: widget.KindText, Value: "ok"},
			{Kind: widget.KindRow, Children: []widget.Node{
				{Kind: widget.KindButton}, // first defect
				{Kind: "bogus"},           // never reached
			}},
		},
	}

	err := widget.Validate(&node)

	var schemaErr *widget.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "children[1].children[0]", schemaErr.Path)
	assert.Equal(t, widget.KindButton, schemaErr.Kind)
}

func TestValidateRejectsInvalidBinding(t *testing.T) {
	node := widget.Node{
		Kind:          widget.KindButton,
		Label:         "Buy",
		OnClickAction: &widget.Action{Type: widget.ActionCustom}, // no name
	}

	err := widget.Validate(&node)

	var schemaErr *widget.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Reason, "has invalid onClickAction")
}

func TestValidateActionContract(t *testing.T) {
	assert.Error(t, widget.ValidateAction(nil))
	assert.Error(t, widget.ValidateAction(&widget.Action{Name: "x"}))
	assert.Error(t, widget.ValidateAction(&widget.Action{Type: "weird", Name: "x"}))
	assert.Error(t, widget.ValidateAction(&widget.Action{Type: widget.ActionCustom}))
	assert.NoError(t, widget.ValidateAction(widget.NewAction("add_to_cart", nil)))
	assert.NoError(t, widget.ValidateAction(&widget.Action{Type: widget.ActionNavigate, Name: "go"}))
}

func TestDecodeValidatesAtTheBoundary(t *testing.T) {
	node, err := widget.Decode([]byte(`{"kind":"card","key":"c","children":[{"kind":"text","value":"hi"}]}`))
	require.NoError(t, err)
	assert.Equal(t, widget.KindCard, node.Kind)

	_, err = widget.Decode([]byte(`{"kind":"button"}`))
	assert.Error(t, err)

	_, err = widget.Decode([]byte(`{not json`))
	assert.Error(t, err)
}
