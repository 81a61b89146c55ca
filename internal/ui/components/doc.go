// Package components provides theme-aware terminal components for charts.
//
// Components are built on lipgloss and render to strings. Themes are
// immutable and travel through a RenderContext together with the available
// width:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme()).WithWidth(100)
//	out := components.NewBarChart(model).WithFocus(2).ViewWithContext(ctx)
//
// Layout primitives are Stack, Card, Text, Header and Divider. Chart
// components are BarChart, PieChart, Legend, Tooltip and DataTable; Toast
// shows transient status messages.
//
// Styling is composed from StyleFunc modifiers:
//
//	NewCard(child).WithAppliers(Background(PaletteSurface), PaddingX(SpacingSizeSmall))
//
// Every chart variant maps to a palette slot and a shade scale. Tint
// indexes step through that scale towards darker shades.
//
// A chart component whose model is empty renders the empty string, so
// containers built from it draw no frame either.
package components
