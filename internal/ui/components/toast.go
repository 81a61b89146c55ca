package components

import "github.com/charmbracelet/lipgloss"

// ToastLevel selects the colour and icon of a toast.
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastDanger
)

// Icon returns the glyph shown before the toast message.
func (l ToastLevel) Icon() string {
	switch l {
	case ToastSuccess:
		return "✓"
	case ToastWarning:
		return "⚠"
	case ToastDanger:
		return "✗"
	default:
		return "ℹ"
	}
}

// Toast is a one-line status notification.
type Toast struct {
	BaseComponent
	level   ToastLevel
	message string
}

// NewToast creates a toast.
func NewToast(level ToastLevel, message string) *Toast {
	return &Toast{BaseComponent: NewBaseComponent(), level: level, message: message}
}

// View renders the toast with the default context.
func (t *Toast) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the toast using the theme's registered level style.
func (t *Toast) ViewWithContext(ctx RenderContext) string {
	if t.message == "" {
		return ""
	}
	style := t.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(t.level); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return style.MaxWidth(ctx.AvailableWidth()).Render(t.level.Icon() + " " + t.message)
}

// WithStyle sets the base lipgloss style.
func (t *Toast) WithStyle(style lipgloss.Style) *Toast {
	t.SetStyle(style)
	return t
}

// Level returns the toast level.
func (t *Toast) Level() ToastLevel {
	return t.level
}

// Message returns the toast text.
func (t *Toast) Message() string {
	return t.message
}
