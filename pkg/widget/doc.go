// Package widget defines the widget tree served to the chat client and the
// engine that validates it.
//
// A widget tree is a tagged tree of Nodes. Each node carries a Kind from a
// closed enumeration, kind-specific fields, optional children, and optional
// event bindings (Actions). Trees built through this package's typed API are
// valid by construction; trees arriving as untyped JSON must go through
// Decode, which re-checks them against the schema table.
//
// Validation is deliberately split in two regimes:
//
//   - Validate is a hard gate: fail-fast, first structural defect wins, the
//     error names the failing node's path.
//   - AuditAccessibility and AuditSize are advisory: they walk the whole tree
//     and accumulate issues without ever failing the widget.
//
// The split mirrors how the findings are consumed: a structurally broken tree
// must never reach the client, while accessibility gaps and size warnings
// accompany an otherwise successful result.
package widget
