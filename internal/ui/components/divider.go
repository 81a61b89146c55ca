package components

import "strings"

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider spanning the context width.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent(), char: "─"}
	d.SetAppliers(Typography(TypographyVariantCaption))
	return d
}

// View renders the divider with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. An explicit width wins over the context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.AvailableWidth()
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithChar sets the rule character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}
