// Package core contains app-wide contracts shared by the widgets.
//
// Allowed here:
// - key registry and default bindings, scoped per widget
// - theme palettes and the styles derived from them
//
// Not allowed here:
// - widget state, fetch logic or rendering of concrete views
package core
