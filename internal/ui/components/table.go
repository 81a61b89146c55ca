package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

// DataTable renders the accessible term/description list of a chart.
type DataTable struct {
	BaseComponent
	caption string
	rows    []chart.TableRow
}

// NewDataTable creates a table over rows.
func NewDataTable(rows []chart.TableRow) *DataTable {
	return &DataTable{BaseComponent: NewBaseComponent(), rows: rows}
}

// WithCaption sets a caption printed above the rows.
func (t *DataTable) WithCaption(caption string) *DataTable {
	t.caption = caption
	return t
}

// View renders the table with the default context.
func (t *DataTable) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every row; a table without rows renders nothing.
func (t *DataTable) ViewWithContext(ctx RenderContext) string {
	if len(t.rows) == 0 {
		return ""
	}
	termWidth := 0
	for _, row := range t.rows {
		termWidth = max(termWidth, lipgloss.Width(row.Term))
	}
	termWidth = min(termWidth, max(ctx.AvailableWidth()/2, 1))

	termStyle := TypographyStyle(ctx.Theme, TypographyVariantEmphasis)
	lines := make([]string, 0, len(t.rows)+1)
	if t.caption != "" {
		lines = append(lines, TypographyStyle(ctx.Theme, TypographyVariantCaption).Render(t.caption))
	}
	for _, row := range t.rows {
		lines = append(lines, termStyle.Render(padRight(row.Term, termWidth))+"  "+row.Description)
	}
	return t.ComputeStyle(ctx.Theme).Render(strings.Join(lines, "\n"))
}
