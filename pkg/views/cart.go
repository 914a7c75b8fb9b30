package views

import (
	"fmt"
	"math"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/dsl"
	"github.com/aretw0/canopy/pkg/widget"
)

// TaxRate is the flat rate applied to the cart subtotal.
const TaxRate = 0.08

// Totals holds the monetary breakdown of a cart, rounded to cents.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// resolvedItem pairs a cart entry with its resolved product.
type resolvedItem struct {
	domain.CartItem
	Product domain.Product
}

// resolve joins cart items against the catalog, silently dropping entries
// whose productId no longer resolves or whose price is unparseable. A stale
// weak reference renders as "item unavailable", never as an error.
func resolve(items []domain.CartItem, products []domain.Product) []resolvedItem {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	resolved := make([]resolvedItem, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		if _, err := p.UnitPrice(); err != nil {
			continue
		}
		resolved = append(resolved, resolvedItem{CartItem: item, Product: p})
	}
	return resolved
}

// CartTotals computes subtotal, 8% tax, and total over resolvable items.
func CartTotals(items []domain.CartItem, products []domain.Product) Totals {
	var subtotal float64
	for _, item := range resolve(items, products) {
		price, _ := item.Product.UnitPrice()
		subtotal += price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: roundCents(subtotal),
		Tax:      roundCents(tax),
		Total:    roundCents(subtotal + tax),
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Cart renders the shopping cart with line items and totals.
// An empty cart produces a distinct empty-state card.
func Cart(items []domain.CartItem, products []domain.Product) widget.Node {
	if len(items) == 0 {
		return emptyCart()
	}

	resolved := resolve(items, products)
	totals := CartTotals(items, products)

	list := dsl.ListView("cart-items")
	for _, item := range resolved {
		list.ChildNodes(cartRow(item))
	}

	plural := "s"
	if len(items) == 1 {
		plural = ""
	}

	return dsl.Card("shopping-cart-filled").Size("lg").Theme("light").
		Background("#ffffff").Padding("lg").Children(
		dsl.Row().Justify("between").Align("center").Children(
			dsl.Title("Shopping Cart").Size("xl").Weight("bold"),
			dsl.Badge(fmt.Sprintf("%d item%s", len(items), plural)).Color("info").Variant("soft"),
		),
		dsl.Divider().Spacing("md"),
		list,
		dsl.Divider().Spacing("md"),
		dsl.Col().Gap("sm").Children(
			totalsRow("Subtotal:", money(totals.Subtotal)),
			totalsRow("Tax:", money(totals.Tax)),
			dsl.Divider().Spacing("sm"),
			dsl.Row().Justify("between").Children(
				dsl.Title("Total:").Size("lg").Weight("bold"),
				dsl.Title(money(totals.Total)).Size("lg").Weight("bold").Color("#2563eb"),
			),
		),
		dsl.Button("Proceed to Checkout").Style("primary").Size("lg").Block().
			OnClick(widget.NewAction("checkout", map[string]any{"total": money(totals.Total)})),
	).Build()
}

func emptyCart() widget.Node {
	return dsl.Card("empty-cart").Size("md").Theme("light").
		Background("#ffffff").Padding("lg").Children(
		dsl.Title("Shopping Cart").Size("xl").Weight("bold").TextAlign("center"),
		dsl.Divider().Spacing("md"),
		dsl.Text("Your cart is empty").Size("md").Color("#666").TextAlign("center"),
		dsl.Button("Continue Shopping").Style("primary").Variant("outline").Block().
			OnClick(widget.NewAction("continue_shopping", map[string]any{})),
	).Build()
}

func cartRow(item resolvedItem) widget.Node {
	return dsl.ListViewItem("cart-"+item.ProductID).Children(
		dsl.Row().Gap("md").Align("center").Padding("sm").Children(
			dsl.Image(item.Product.Image, item.Product.Name).
				Width("60px").Height("60px").Radius("md").Fit("cover"),
			dsl.Col().Gap("xs").Flex(1).Children(
				dsl.Text(item.Product.Name).Size("md").Weight("semibold"),
				dsl.Text(fmt.Sprintf("Quantity: %d", item.Quantity)).Size("sm").Color("#666"),
			),
			dsl.Col().Gap("xs").Align("end").Children(
				dsl.Text(item.Product.Price).Size("md").Weight("bold"),
				dsl.Button("Remove").Variant("ghost").Color("danger").Size("sm").
					OnClick(widget.NewAction(domain.ActionRemoveFromCart,
						map[string]any{"productId": item.ProductID})),
			),
		),
	).Build()
}

func totalsRow(label, value string) *dsl.NodeBuilder {
	return dsl.Row().Justify("between").Children(
		dsl.Text(label).Size("md"),
		dsl.Text(value).Size("md"),
	)
}
