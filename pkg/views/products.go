package views

import (
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/dsl"
	"github.com/aretw0/canopy/pkg/widget"
)

// ProductList renders the catalog as a listView of product rows.
// An empty catalog produces a distinct empty-state card, never a listView
// with zero children.
func ProductList(products []domain.Product) widget.Node {
	if len(products) == 0 {
		return dsl.Card("empty-products").Size("md").Padding("lg").Children(
			dsl.Text("No products available").Size("md").Color("#666").TextAlign("center"),
		).Build()
	}

	list := dsl.ListView("product-list-dynamic").Theme("light")
	for _, p := range products {
		list.ChildNodes(productRow(p))
	}
	return list.Build()
}

func productRow(p domain.Product) widget.Node {
	return dsl.ListViewItem(p.ID).
		OnClick(widget.NewAction(domain.ActionViewProductDetails, map[string]any{"productId": p.ID})).
		Children(
			dsl.Row().Gap("md").Align("start").Padding("md").Children(
				dsl.Image(p.Image, p.Name).Width("80px").Height("80px").Radius("md").Fit("cover"),
				dsl.Col().Gap("sm").Flex(1).Children(
					dsl.Row().Justify("between").Align("start").Children(
						dsl.Title(p.Name).Size("md").Weight("semibold"),
						stockBadge(p).Size("sm"),
					),
					dsl.Text(p.Description).Size("sm").Color("#555").MaxLines(2),
					dsl.Row().Justify("between").Align("center").Children(
						dsl.Text(p.Price).Size("lg").Weight("bold").Color("#2563eb"),
						cartButton(p).Size("sm"),
					),
				),
			),
		).Build()
}

// ProductDetail renders a single product as a full detail card.
func ProductDetail(p domain.Product) widget.Node {
	return dsl.Card("product-detail-"+p.ID).Size("lg").Theme("light").
		Background("#ffffff").Padding("lg").Children(
		dsl.Row().Gap("lg").Align("start").Children(
			dsl.Image(p.Image, p.Name).Width("300px").Height("300px").Radius("lg").Fit("cover"),
			dsl.Col().Gap("md").Flex(1).Children(
				dsl.Row().Justify("between").Align("start").Children(
					dsl.Title(p.Name).Size("2xl").Weight("bold"),
					stockBadge(p),
				),
				dsl.Text(p.Description).Size("md").Color("#555"),
				dsl.Title(p.Price).Size("3xl").Color("#2563eb").Weight("bold"),
				dsl.Row().Gap("md").Children(
					cartButton(p).Style("primary").Size("lg").Block(),
				),
				dsl.Divider().Spacing("md"),
				dsl.Text("Product Details").Size("lg").Weight("semibold"),
				dsl.Col().Gap("xs").Children(
					detailRow("Category:", categoryOrDefault(p)),
					availabilityRow(p),
				),
			),
		),
	).Build()
}

func stockBadge(p domain.Product) *dsl.NodeBuilder {
	label, color := "Out of Stock", "danger"
	if p.InStock {
		label, color = "In Stock", "success"
	}
	return dsl.Badge(label).Color(color).Variant("soft")
}

// cartButton is the add-to-cart call to action; out-of-stock products get a
// disabled notify button instead.
func cartButton(p domain.Product) *dsl.NodeBuilder {
	label, action, style := "Notify Me", "notify_when_available", "secondary"
	if p.InStock {
		label, action, style = "Add to Cart", domain.ActionAddToCart, "primary"
	}
	return dsl.Button(label).Style(style).Disabled(!p.InStock).
		OnClick(widget.NewAction(action, map[string]any{"productId": p.ID}))
}

func detailRow(label, value string) *dsl.NodeBuilder {
	return dsl.Row().Justify("between").Children(
		dsl.Text(label).Size("sm").Weight("medium"),
		dsl.Text(value).Size("sm"),
	)
}

func availabilityRow(p domain.Product) *dsl.NodeBuilder {
	value, color := "Out of Stock", "#dc2626"
	if p.InStock {
		value, color = "In Stock", "#16a34a"
	}
	return dsl.Row().Justify("between").Children(
		dsl.Text("Availability:").Size("sm").Weight("medium"),
		dsl.Text(value).Size("sm").Color(color),
	)
}

func categoryOrDefault(p domain.Product) string {
	if p.Category == "" {
		return "General"
	}
	return p.Category
}
