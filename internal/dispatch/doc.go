// Package dispatch implements the action engine behind POST /api/widget-action:
// validation, routing, store mutation, widget rebuild, and post-commit event
// broadcast.
package dispatch
