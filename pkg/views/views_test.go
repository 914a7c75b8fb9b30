package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/dsl"
	"github.com/aretw0/canopy/pkg/views"
	"github.com/aretw0/canopy/pkg/widget"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "prod_1", Name: "Ergo Chair 2", Price: "$499", Image: "https://example.com/chair.jpg", Description: "A chair", InStock: true, Category: "furniture"},
		{ID: "prod_2", Name: "Standing Desk Pro", Price: "$899", Image: "https://example.com/desk.jpg", Description: "A desk", InStock: false, Category: "furniture"},
		{ID: "prod_3", Name: "Wireless Headphones", Price: "$299", Image: "https://example.com/phones.jpg", Description: "Headphones", InStock: true, Category: "electronics"},
	}
}

func TestProductListValidates(t *testing.T) {
	node := views.ProductList(sampleProducts())

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, widget.KindListView, node.Kind)
	assert.Len(t, node.Children, 3)
}

func TestProductListEmptyState(t *testing.T) {
	node := views.ProductList(nil)

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, widget.KindCard, node.Kind)
	assert.Equal(t, "empty-products", node.Key)
}

func TestProductDetailValidates(t *testing.T) {
	for _, p := range sampleProducts() {
		node := views.ProductDetail(p)
		require.NoError(t, widget.Validate(&node), "product %s", p.ID)
		assert.Equal(t, "product-detail-"+p.ID, node.Key)
	}
}

func TestProductDetailOutOfStockButton(t *testing.T) {
	node := views.ProductDetail(sampleProducts()[1])

	var notify *widget.Node
	var walk func(n *widget.Node)
	walk = func(n *widget.Node) {
		if n.Kind == widget.KindButton && n.Disabled {
			notify = n
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(&node)

	require.NotNil(t, notify, "out-of-stock product should render a disabled button")
	assert.Equal(t, "Notify Me", notify.Label)
}

func TestCartTotalsAppliesTax(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "prod_1", Quantity: 2},
		{ProductID: "prod_3", Quantity: 1},
	}

	totals := views.CartTotals(items, sampleProducts())

	assert.InDelta(t, 1297.00, totals.Subtotal, 0.001)
	assert.InDelta(t, 103.76, totals.Tax, 0.001)
	assert.InDelta(t, 1400.76, totals.Total, 0.001)
}

func TestCartTotalsSkipsDanglingReferences(t *testing.T) {
	items := []domain.CartItem{
		{ProductID: "prod_1", Quantity: 1},
		{ProductID: "gone", Quantity: 5},
	}

	totals := views.CartTotals(items, sampleProducts())

	assert.InDelta(t, 499.00, totals.Subtotal, 0.001)
}

func TestCartValidatesAndCounts(t *testing.T) {
	items := []domain.CartItem{{ProductID: "prod_1", Quantity: 2}}

	node := views.Cart(items, sampleProducts())

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, "shopping-cart-filled", node.Key)
}

func TestCartEmptyState(t *testing.T) {
	node := views.Cart(nil, sampleProducts())

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, "empty-cart", node.Key)
}

func TestContactFormValidates(t *testing.T) {
	node := views.ContactForm()

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, "contact-form-01", node.Key)

	names := map[string]bool{}
	var submit *widget.Action
	var walk func(n *widget.Node)
	walk = func(n *widget.Node) {
		if n.Editable != nil {
			names[n.Editable.Name] = true
		}
		if n.Kind == widget.KindSelect {
			names[n.Name] = true
		}
		if n.OnSubmitAction != nil {
			submit = n.OnSubmitAction
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(&node)

	for _, field := range []string{"user_name", "email", "reason", "message"} {
		assert.True(t, names[field], "form should contain field %q", field)
	}
	require.NotNil(t, submit)
	assert.Equal(t, domain.ActionSubmitContactForm, submit.Name)
}

func TestSuccessMessageValidates(t *testing.T) {
	node := views.SuccessMessage()

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, "success-message", node.Key)
}

func TestNotificationFallsBackToInfo(t *testing.T) {
	node := views.Notification("bogus", "Heads up", "Something happened")

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, "notification-info", node.Key)
}

func TestNotificationKindsValidate(t *testing.T) {
	kinds := []views.NotificationKind{
		views.NotifySuccess, views.NotifyError, views.NotifyWarning, views.NotifyInfo,
	}
	for _, kind := range kinds {
		node := views.Notification(kind, "Title", "Message")
		require.NoError(t, widget.Validate(&node), "kind %s", kind)
	}
}

func TestPaginatedListSinglePageOmitsPager(t *testing.T) {
	items := []widget.Node{dsl.ListViewItem("item-1").Children(dsl.Text("one")).Build()}

	node := views.PaginatedList(items, 1, 10, 1)

	require.NoError(t, widget.Validate(&node))
	require.Len(t, node.Children, 1)
	assert.Equal(t, widget.KindListView, node.Children[0].Kind)
}

func TestProductPageWrapsRows(t *testing.T) {
	node := views.ProductPage(sampleProducts()[:1], 1, 1, 3)

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, "paginated-list", node.Key)
	require.NotEmpty(t, node.Children)
	list := node.Children[0]
	assert.Equal(t, "paginated-items", list.Key)
	require.Len(t, list.Children, 1)
	assert.Equal(t, "prod_1", list.Children[0].Key)
}

func TestProductPageEmptyCatalog(t *testing.T) {
	node := views.ProductPage(nil, 1, 10, 0)

	require.NoError(t, widget.Validate(&node))
	assert.Equal(t, "empty-products", node.Key)
}

func TestPaginatedListDisablesBoundaryButtons(t *testing.T) {
	items := []widget.Node{dsl.ListViewItem("item-1").Children(dsl.Text("one")).Build()}

	node := views.PaginatedList(items, 1, 10, 25)
	require.NoError(t, widget.Validate(&node))

	var prev, next *widget.Node
	var walk func(n *widget.Node)
	walk = func(n *widget.Node) {
		if n.Kind == widget.KindButton {
			switch n.Label {
			case "Previous":
				prev = n
			case "Next":
				next = n
			}
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(&node)

	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.True(t, prev.Disabled, "Previous disabled on first page")
	assert.False(t, next.Disabled)
}
