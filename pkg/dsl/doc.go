/*
Package dsl provides a fluent API for composing widget trees in Go code.

It removes the struct-literal noise from view construction while keeping the
output a plain widget.Node. Constructors set the fields required by the
widget schema, so trees built here are valid by construction.

	cart := dsl.Card("shopping-cart").Size("lg").Padding("lg").Children(
	    dsl.Title("Shopping Cart").Size("xl").Weight("bold"),
	    dsl.Divider().Spacing("md"),
	    dsl.Button("Checkout").Style("primary").Block().
	        OnClick(widget.NewAction("checkout", nil)),
	).Build()
*/
package dsl
