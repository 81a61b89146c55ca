package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

const swatchGlyph = "■"

// LegendItem is one swatch entry.
type LegendItem struct {
	Label     string
	Variant   chart.Variant
	TintIndex int
	// Value is printed after the label when set.
	Value string
}

// Legend lists swatches either wrapped on rows or one per line.
type Legend struct {
	BaseComponent
	items    []LegendItem
	vertical bool
	focus    int
}

// NewLegend creates a row-wrapped legend.
func NewLegend(items ...LegendItem) *Legend {
	return &Legend{BaseComponent: NewBaseComponent(), items: items, focus: -1}
}

// SeriesLegend builds legend items from resolved bar series.
func SeriesLegend(series []chart.GroupMeta) []LegendItem {
	items := make([]LegendItem, 0, len(series))
	for _, s := range series {
		label := s.Label
		if label == "" {
			label = s.ID
		}
		items = append(items, LegendItem{Label: label, Variant: s.Variant, TintIndex: s.TintIndex})
	}
	return items
}

// PieLegendItems builds legend items from a pie legend.
func PieLegendItems(entries []chart.LegendEntry) []LegendItem {
	items := make([]LegendItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, LegendItem{Label: e.Label, Variant: e.Variant, Value: e.Formatted})
	}
	return items
}

// Vertical lays items out one per line with values aligned.
func (l *Legend) Vertical() *Legend {
	l.vertical = true
	return l
}

// WithFocus marks the item at index. Negative values clear the mark.
func (l *Legend) WithFocus(index int) *Legend {
	l.focus = index
	return l
}

// View renders the legend with the default context.
func (l *Legend) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the legend.
func (l *Legend) ViewWithContext(ctx RenderContext) string {
	if len(l.items) == 0 {
		return ""
	}
	if l.vertical {
		return l.ComputeStyle(ctx.Theme).Render(l.column(ctx))
	}
	return l.ComputeStyle(ctx.Theme).Render(l.rows(ctx))
}

func (l *Legend) column(ctx RenderContext) string {
	labelWidth := 0
	for _, item := range l.items {
		labelWidth = max(labelWidth, lipgloss.Width(item.Label))
	}
	lines := make([]string, 0, len(l.items))
	for i, item := range l.items {
		line := focusMarker(i == l.focus) + Swatch(ctx.Theme, item.Variant, item.TintIndex) + " " + padRight(item.Label, labelWidth)
		if item.Value != "" {
			line += "  " + item.Value
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (l *Legend) rows(ctx RenderContext) string {
	width := ctx.AvailableWidth()
	var lines []string
	var current string
	for _, item := range l.items {
		entry := Swatch(ctx.Theme, item.Variant, item.TintIndex) + " " + item.Label
		if item.Value != "" {
			entry += " " + item.Value
		}
		switch {
		case current == "":
			current = entry
		case lipgloss.Width(current)+3+lipgloss.Width(entry) > width:
			lines = append(lines, current)
			current = entry
		default:
			current += "   " + entry
		}
	}
	lines = append(lines, current)
	return strings.Join(lines, "\n")
}

// Swatch renders the coloured legend glyph for a variant and tint.
func Swatch(theme Theme, variant chart.Variant, tint int) string {
	return lipgloss.NewStyle().Foreground(VariantShade(theme, variant, tint)).Render(swatchGlyph)
}

func focusMarker(focused bool) string {
	if focused {
		return "▸ "
	}
	return "  "
}

// padRight pads s with spaces to width display columns, truncating longer text.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return truncate(s, width)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
