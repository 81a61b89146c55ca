package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartkit/internal/ui"
)

// Card frames its children in a rounded border with horizontal padding.
type Card struct {
	BaseComponent
	title  string
	layout *Stack
}

// NewCard creates a card around children.
func NewCard(children ...ui.Renderable) *Card {
	c := &Card{BaseComponent: NewBaseComponent(), layout: VStack(children...)}
	c.SetAppliers(Border(BorderVariantRounded), PaddingX(SpacingSizeExtraSmall))
	return c
}

// View renders the card with the default context.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. A card whose children all render empty
// renders nothing, so no empty frame is drawn.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	inner := ctx.WithWidth(max(ctx.AvailableWidth()-style.GetHorizontalFrameSize(), 1))

	body := c.layout.ViewWithContext(inner)
	if body == "" {
		return ""
	}
	if c.title != "" {
		title := TypographyStyle(ctx.Theme, TypographyVariantEmphasis).Render(c.title)
		body = lipgloss.JoinVertical(lipgloss.Left, title, body)
	}
	return style.Render(body)
}

// WithTitle sets a bold first line.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithAppliers appends style modifiers to the card frame.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.layout.Add(children...)
	return c
}
