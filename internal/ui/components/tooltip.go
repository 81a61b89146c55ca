package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

// Tooltip renders the detail box for a focused category or slice.
type Tooltip struct {
	BaseComponent
	tooltip chart.Tooltip
}

// NewTooltip wraps a chart tooltip. A tooltip with no entries renders nothing.
func NewTooltip(tooltip chart.Tooltip) *Tooltip {
	t := &Tooltip{BaseComponent: NewBaseComponent(), tooltip: tooltip}
	t.SetAppliers(Border(BorderVariantRounded), PaddingX(SpacingSizeExtraSmall))
	return t
}

// View renders the tooltip with the default context.
func (t *Tooltip) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tooltip.
func (t *Tooltip) ViewWithContext(ctx RenderContext) string {
	if len(t.tooltip.Entries) == 0 {
		return ""
	}
	theme := ctx.Theme

	labelWidth := 0
	for _, e := range t.tooltip.Entries {
		labelWidth = max(labelWidth, lipgloss.Width(e.Label))
	}

	lines := []string{TypographyStyle(theme, TypographyVariantEmphasis).Render(t.tooltip.Label)}
	if t.tooltip.Detail != "" {
		lines = append(lines, TypographyStyle(theme, TypographyVariantCaption).Render(t.tooltip.Detail))
	}
	for _, e := range t.tooltip.Entries {
		lines = append(lines, Swatch(theme, e.Variant, 0)+" "+padRight(e.Label, labelWidth)+"  "+e.Formatted)
	}
	return t.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
