package tui

import "time"

// toastTimeout is how long a toast stays on screen.
const toastTimeout = 3500 * time.Millisecond

// ExportDoneMsg reports the outcome of an SVG export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// ToastExpiredMsg dismisses the toast with the matching ID. Newer toasts
// ignore expiries of older ones.
type ToastExpiredMsg struct {
	ID int
}
