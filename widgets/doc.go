// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (boxed panes, aligned tables, stacks)
//
// Not allowed here:
// - key handling, widget state or fetch logic
package widgets
