package components

import "github.com/charmbracelet/lipgloss"

// Header renders a chart title with an optional subtitle line.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header styled with the title typography.
func NewHeader(title string) *Header {
	h := &Header{BaseComponent: NewBaseComponent(), title: title}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

// View renders the header with the default context.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	if h.title == "" && h.subtitle == "" {
		return ""
	}
	title := h.ComputeStyle(ctx.Theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}
	subtitle := TypographyStyle(ctx.Theme, TypographyVariantSubtitle).Render(h.subtitle)
	if h.title == "" {
		return subtitle
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// WithSubtitle adds a subtitle line.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers replaces the header's style modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}
