/*
Package ports defines the driven ports (interfaces) for the canopy engine.

These interfaces decouple the core logic from external implementations,
allowing the engine to work with various storage backends and transports.

# Key Interfaces

  - Store: the Domain Store holding products, cart items, and submissions.
  - Broadcaster: fire-and-forget event delivery to connected clients.
  - Dispatcher: the action state machine invoked by the HTTP boundary.
*/
package ports
