package views

import (
	"fmt"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/dsl"
	"github.com/aretw0/canopy/pkg/widget"
)

// ProductPage renders one page of the catalog inside pager controls.
// products holds only the current page's slice; total is the full filtered
// count the pager reports against.
func ProductPage(products []domain.Product, page, perPage, total int) widget.Node {
	if total == 0 {
		return ProductList(nil)
	}
	items := make([]widget.Node, 0, len(products))
	for _, p := range products {
		items = append(items, productRow(p))
	}
	return PaginatedList(items, page, perPage, total)
}

// PaginatedList wraps pre-built item nodes in a card with pager controls.
// The footer is omitted entirely when everything fits on one page. Previous
// and Next are disabled at the bounds rather than hidden, so the row keeps
// its shape as the user pages.
func PaginatedList(items []widget.Node, page, perPage, total int) widget.Node {
	if perPage < 1 {
		perPage = 1
	}
	if page < 1 {
		page = 1
	}
	totalPages := (total + perPage - 1) / perPage

	card := dsl.Card("paginated-list").Size("lg").Children(
		dsl.ListView("paginated-items").ChildNodes(items...),
	)
	if totalPages <= 1 {
		return card.Build()
	}

	start := (page-1)*perPage + 1
	end := page * perPage
	if end > total {
		end = total
	}

	card.Children(
		dsl.Divider().Spacing("md"),
		dsl.Row().Justify("between").Align("center").Padding("md").Children(
			dsl.Text(fmt.Sprintf("Showing %d-%d of %d", start, end, total)).
				Size("sm").Color("#666"),
			dsl.Row().Gap("sm").Children(
				dsl.Button("Previous").Variant("outline").Size("sm").
					Disabled(page == 1).
					OnClick(widget.NewAction("paginate", map[string]any{"page": page - 1})),
				dsl.Text(fmt.Sprintf("%d / %d", page, totalPages)).Size("sm"),
				dsl.Button("Next").Variant("outline").Size("sm").
					Disabled(page == totalPages).
					OnClick(widget.NewAction("paginate", map[string]any{"page": page + 1})),
			),
		),
	)
	return card.Build()
}
