/*
Package domain contains the core domain models for the canopy engine.

It defines the commerce entities the widget server operates on, the dispatch
request/result contract, and the broadcast event vocabulary. This package is
kept pure and free of I/O or persistence concerns, following Hexagonal
Architecture principles.

# Key Entities

  - Product: a catalog entry, seeded at startup, stock-mutable.
  - CartItem: a weak reference to a product plus a quantity.
  - Submission: an append-only contact-form entry.
  - DispatchRequest / DispatchResult: the action-dispatch wire contract.
  - Event: a fire-and-forget broadcast emitted after successful mutations.
*/
package domain
