package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/canopy/pkg/widget"
)

// WidgetInfo identifies the tree a report was produced for.
type WidgetInfo struct {
	Kind widget.Kind `json:"kind"`
	Key  string      `json:"key"`
	Size int         `json:"size"`
}

// Recommendation is an actionable followup derived from check results.
type Recommendation struct {
	Level   string `json:"type"`
	Message string `json:"message"`
}

// Report bundles the structural checks and the interaction inventory of a
// single tree into one reviewable document.
type Report struct {
	Widget          WidgetInfo         `json:"widget"`
	Structure       *Summary           `json:"structure"`
	Interactions    *InteractionReport `json:"interactions"`
	Timestamp       time.Time          `json:"timestamp"`
	Recommendations []Recommendation   `json:"recommendations"`
}

// RunReport runs the verification battery and interaction scan on a tree
// and derives recommendations from the outcome.
func RunReport(n *widget.Node) *Report {
	structure := TestWidget(n)
	interactions := Interactions(n)

	key := "unnamed"
	if n != nil && n.Key != "" {
		key = n.Key
	}
	var kind widget.Kind
	if n != nil {
		kind = n.Kind
	}

	return &Report{
		Widget: WidgetInfo{
			Kind: kind,
			Key:  key,
			Size: widget.JSONSize(n),
		},
		Structure:       structure,
		Interactions:    interactions,
		Timestamp:       time.Now().UTC(),
		Recommendations: recommend(structure, interactions),
	}
}

func recommend(structure *Summary, interactions *InteractionReport) []Recommendation {
	var recs []Recommendation
	if structure.Failed > 0 {
		recs = append(recs, Recommendation{
			Level:   "error",
			Message: "Fix structure validation errors before deployment",
		})
	}
	if len(structure.Warnings) > 0 {
		recs = append(recs, Recommendation{
			Level:   "warning",
			Message: "Address accessibility and performance warnings",
		})
	}
	if !interactions.HasInteractions() {
		recs = append(recs, Recommendation{
			Level:   "info",
			Message: "Consider adding interactive elements for better user engagement",
		})
	}
	if interactions.Total > 10 {
		recs = append(recs, Recommendation{
			Level:   "performance",
			Message: "Many interactions detected, consider simplifying the UI",
		})
	}
	return recs
}

// Markdown renders the report for terminal display.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Widget Report: %s\n\n", r.Widget.Key)
	fmt.Fprintf(&b, "- **Kind:** %s\n", r.Widget.Kind)
	fmt.Fprintf(&b, "- **Size:** %d bytes\n", r.Widget.Size)
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", r.Timestamp.Format(time.RFC3339))

	fmt.Fprintf(&b, "## Checks (%d passed, %d failed)\n\n", r.Structure.Passed, r.Structure.Failed)
	for _, c := range r.Structure.Checks {
		mark := "PASS"
		if !c.Passed {
			mark = "FAIL"
		}
		fmt.Fprintf(&b, "- `%s` %s: %s\n", mark, c.Name, c.Message)
	}
	if len(r.Structure.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, w := range r.Structure.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	fmt.Fprintf(&b, "\n## Interactions (%d)\n\n", r.Interactions.Total)
	if r.Interactions.Total == 0 {
		b.WriteString("None.\n")
	}
	for _, i := range r.Interactions.Interactions {
		path := i.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(&b, "- **%s** on `%s` at `%s` -> `%s`\n", i.Trigger, i.Element, path, i.Action.Name)
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("\n## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- **%s**: %s\n", rec.Level, rec.Message)
		}
	}
	return b.String()
}
