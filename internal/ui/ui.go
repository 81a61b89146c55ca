// Package ui holds the contracts shared by terminal views.
package ui

// Renderable is anything that can draw itself as terminal text.
type Renderable interface {
	View() string
}
