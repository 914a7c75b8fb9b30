/*
Package canopy is a widget-tree engine for chat commerce surfaces: it builds
validated, JSON-serializable UI descriptions (product lists, carts, forms)
and dispatches the actions those widgets emit back against a shared Domain
Store.

# Concept

A widget is a tree of typed nodes (cards, rows, buttons, inputs) described as
data, never as rendered markup. The client renders the tree; interactions come
back as named actions which the engine validates, applies to the store, and
answers with a rebuilt widget reflecting the new state. This Hexagonal
Architecture keeps the core decoupled from adapters: the store can be
in-memory or Redis, and events fan out over any Broadcaster.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/canopy"
		"github.com/aretw0/canopy/pkg/domain"
		"github.com/aretw0/canopy/pkg/widget"
	)

	func main() {
		eng := canopy.New()
		ctx := context.Background()

		if err := eng.Seed(ctx, []domain.Product{
			{ID: "prod_1", Name: "Ergo Chair 2", Price: "$499", InStock: true},
		}); err != nil {
			log.Fatal(err)
		}

		result, err := eng.Dispatch(ctx, domain.DispatchRequest{
			Action: widget.NewAction("add_to_cart", map[string]any{"productId": "prod_1"}),
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println(result.Message)
	}

For the HTTP surface, see pkg/adapters/http; for fluent tree construction,
see pkg/dsl; for pre-ship audits, see pkg/profile.
*/
package canopy
