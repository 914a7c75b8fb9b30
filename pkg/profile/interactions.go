package profile

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/widget"
)

// Interaction describes one action binding discovered in a tree.
type Interaction struct {
	Trigger string         `json:"type"`
	Element widget.Kind    `json:"element"`
	Path    string         `json:"path"`
	Action  *widget.Action `json:"action"`
}

// InteractionReport lists every binding in document order.
type InteractionReport struct {
	Total        int           `json:"total"`
	Interactions []Interaction `json:"interactions"`
}

// HasInteractions reports whether the tree binds any actions at all.
func (r *InteractionReport) HasInteractions() bool {
	return r.Total > 0
}

// Interactions walks a tree and collects every click, submit, and change
// binding along with the path of the node carrying it.
func Interactions(n *widget.Node) *InteractionReport {
	r := &InteractionReport{}
	collectInteractions(n, "", r)
	r.Total = len(r.Interactions)
	return r
}

func collectInteractions(n *widget.Node, path string, r *InteractionReport) {
	if n == nil {
		return
	}
	if n.OnClickAction != nil {
		r.Interactions = append(r.Interactions, Interaction{
			Trigger: "click", Element: n.Kind, Path: path, Action: n.OnClickAction,
		})
	}
	if n.OnSubmitAction != nil {
		r.Interactions = append(r.Interactions, Interaction{
			Trigger: "submit", Element: n.Kind, Path: path, Action: n.OnSubmitAction,
		})
	}
	if n.OnChangeAction != nil {
		r.Interactions = append(r.Interactions, Interaction{
			Trigger: "change", Element: n.Kind, Path: path, Action: n.OnChangeAction,
		})
	}
	for i := range n.Children {
		collectInteractions(&n.Children[i], fmt.Sprintf("%schildren[%d].", path, i), r)
	}
}
