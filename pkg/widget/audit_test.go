package widget_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/widget"
)

func TestAuditAccessibilityAccumulatesAllIssues(t *testing.T) {
	node := widget.Node{
		Kind: widget.KindCard,
		Children: []widget.Node{
			{Kind: widget.KindImage, Src: "https://example.com/a.jpg"},
			{Kind: widget.KindButton, Label: "   "},
			{Kind: widget.KindText, Editable: &widget.Editable{Name: "email"}},
		},
	}

	// Structurally valid but not compliant: the two concerns are separate.
	require.NoError(t, widget.Validate(&node))

	report := widget.AuditAccessibility(&node)

	assert.False(t, report.Compliant)
	require.Len(t, report.Issues, 3)
	assert.Equal(t, "children[0]: image missing alt text", report.Issues[0])
	assert.Equal(t, "children[1]: button missing descriptive label", report.Issues[1])
	assert.Equal(t, "children[2]: form input missing placeholder text", report.Issues[2])
}

func TestAuditAccessibilityCompliantTree(t *testing.T) {
	node := widget.Node{
		Kind: widget.KindCard,
		Children: []widget.Node{
			{Kind: widget.KindImage, Src: "https://example.com/a.jpg", Alt: "A product"},
			{Kind: widget.KindButton, Label: "Buy"},
		},
	}

	report := widget.AuditAccessibility(&node)

	assert.True(t, report.Compliant)
	assert.Empty(t, report.Issues)
}

func TestAuditSizeFlagsDeepNesting(t *testing.T) {
	node := widget.Node{Kind: widget.KindText, Value: "leaf"}
	for i := 0; i < 12; i++ {
		node = widget.Node{Kind: widget.KindBox, Children: []widget.Node{node}}
	}

	report := widget.AuditSize(&node)

	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "excessive nesting")
}

func TestAuditSizeFlagsFanOut(t *testing.T) {
	children := make([]widget.Node, widget.MaxChildren+1)
	for i := range children {
		children[i] = widget.Node{Kind: widget.KindText, Value: "x"}
	}
	node := widget.Node{Kind: widget.KindListView, Children: children}

	report := widget.AuditSize(&node)

	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "too many direct children")
}

func TestAuditSizeFlagsLargePayload(t *testing.T) {
	node := widget.Node{
		Kind:  widget.KindText,
		Value: strings.Repeat("a", widget.SoftSizeLimit+1),
	}

	report := widget.AuditSize(&node)

	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "recommended")
	assert.Greater(t, report.JSONSize, widget.SoftSizeLimit)
}

func TestSanitizeInput(t *testing.T) {
	clean, err := widget.SanitizeInput("  <b>Hello & 'world'</b>  ")
	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;Hello &amp; &#x27;world&#x27;&lt;&#x2F;b&gt;", clean)

	_, err = widget.SanitizeInput(strings.Repeat("x", widget.DefaultMaxInputSize+1))
	assert.ErrorIs(t, err, widget.ErrInputTooLarge)

	_, err = widget.SanitizeInput(string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, widget.ErrInvalidUTF8)
}

func TestValidColor(t *testing.T) {
	valid := []string{"", "#fff", "#2563eb", "rgb(255, 0, 0)", "rgba(0,0,0,0.5)", "red", "Transparent"}
	for _, c := range valid {
		assert.True(t, widget.ValidColor(c), "expected %q to be valid", c)
	}

	invalid := []string{"#12", "#12345g", "rgb(1,2)", "blurple", "url(x)"}
	for _, c := range invalid {
		assert.False(t, widget.ValidColor(c), "expected %q to be invalid", c)
	}
}

func TestThemeColorValid(t *testing.T) {
	assert.True(t, widget.ThemeColor{Light: "#ffffff", Dark: "#111827"}.Valid())
	assert.False(t, widget.ThemeColor{Light: "#ffffff", Dark: "nope"}.Valid())
}
