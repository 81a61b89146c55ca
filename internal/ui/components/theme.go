package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

const paletteShadeCount = 10

// PaletteShades is a Tailwind-style scale of 10 shades, lightest first.
type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

// NewPaletteShades creates a shade scale. Colors are ordered lightest to darkest.
func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

// Color returns the colour at shade, or "" when shade is out of range.
func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

// ColorPalette holds the shade scale behind every chart variant.
type ColorPalette struct {
	Slate  PaletteShades
	Blue   PaletteShades
	Violet PaletteShades
	Green  PaletteShades
	Amber  PaletteShades
	Teal   PaletteShades
	Red    PaletteShades
}

// Shades returns the scale backing variant. Unset variants use the primary scale.
func (cp ColorPalette) Shades(variant chart.Variant) PaletteShades {
	switch variant.OrDefault() {
	case chart.VariantAccent:
		return cp.Violet
	case chart.VariantSuccess:
		return cp.Green
	case chart.VariantWarning:
		return cp.Amber
	case chart.VariantSecondary:
		return cp.Teal
	case chart.VariantNeutral:
		return cp.Slate
	default:
		return cp.Blue
	}
}

// ColourSet is a semantic colour combination:
//
//   - Base: fill or brand colour
//   - OnBase: text that reads on Base
//   - Muted: subdued variant of Base
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Accent    ColourSet
	Success   ColourSet
	Warning   ColourSet
	Secondary ColourSet
	Neutral   ColourSet
	Danger    ColourSet
	Surface   ColourSet
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent    PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
)

// SlotForVariant maps a chart variant to its palette slot, falling back to primary.
func SlotForVariant(variant chart.Variant) PaletteSlot {
	switch variant.OrDefault() {
	case chart.VariantAccent:
		return PaletteAccent
	case chart.VariantSuccess:
		return PaletteSuccess
	case chart.VariantWarning:
		return PaletteWarning
	case chart.VariantSecondary:
		return PaletteSecondary
	case chart.VariantNeutral:
		return PaletteNeutral
	default:
		return PalettePrimary
	}
}

// SpacingSize enumerates supported spacing tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantCaption
	TypographyVariantEmphasis
)

// TypographyScale contains the typography presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Emphasis lipgloss.Style
}

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// VariantRegistry maps variants to styling strategies so themes can
// describe variant styling as data.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Modifications return new values.
type Theme struct {
	Name       string
	Palette    Palette
	Colors     ColorPalette
	Spacing    spacingTable
	Typography TypographyScale
	Variants   *VariantRegistry
	// Dark selects the Dark half of adaptive colours when rendering shaded bars.
	Dark bool
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary:   ColourSet{Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8")},
		Accent:    ColourSet{Base: ac("#8b5cf6", "#a78bfa"), OnBase: ac("#f8fafc", "#1e1b4b"), Muted: ac("#7c3aed", "#6d28d9")},
		Success:   ColourSet{Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d")},
		Warning:   ColourSet{Base: ac("#f59e0b", "#fbbf24"), OnBase: ac("#422006", "#422006"), Muted: ac("#d97706", "#b45309")},
		Secondary: ColourSet{Base: ac("#14b8a6", "#2dd4bf"), OnBase: ac("#042f2e", "#042f2e"), Muted: ac("#0d9488", "#0f766e")},
		Neutral:   ColourSet{Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155")},
		Danger:    ColourSet{Base: ac("#ef4444", "#f87171"), OnBase: ac("#f8fafc", "#450a0a"), Muted: ac("#dc2626", "#b91c1c")},
		Surface:   ColourSet{Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937")},
	}

	theme := Theme{
		Name:       "light",
		Palette:    palette,
		Colors:     defaultColors(),
		Spacing:    spacingTable{0, 1, 2, 3, 4},
		Typography: defaultTypography(palette),
	}
	theme.Variants = newThemeVariants()
	return theme
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"
	theme.Dark = true
	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	theme.Typography = defaultTypography(theme.Palette)
	theme.Variants = newThemeVariants()
	return theme
}

// ThemeByName resolves "light" or "dark"; anything else yields the default theme.
func ThemeByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "dark") {
		return DarkTheme()
	}
	return DefaultTheme()
}

func newThemeVariants() *VariantRegistry {
	variants := NewVariantRegistry()
	registerChartVariants(variants)
	registerToastVariants(variants)
	return variants
}

// registerChartVariants maps every chart variant to a swatch foreground.
func registerChartVariants(registry *VariantRegistry) {
	for _, v := range chart.VariantCycle {
		registry.Register(v, NewCompositeStrategy(Foreground(SlotForVariant(v))))
	}
}

func registerToastVariants(registry *VariantRegistry) {
	registry.Register(ToastInfo, NewCompositeStrategy(Background(PalettePrimary), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(ToastSuccess, NewCompositeStrategy(Background(PaletteSuccess), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(ToastWarning, NewCompositeStrategy(Background(PaletteWarning), PaddingX(SpacingSizeExtraSmall)))
	registry.Register(ToastDanger, NewCompositeStrategy(Background(PaletteDanger), PaddingX(SpacingSizeExtraSmall)))
}

func defaultColors() ColorPalette {
	shades := func(hex ...string) PaletteShades {
		colors := make([]lipgloss.Color, len(hex))
		for i, h := range hex {
			colors[i] = lipgloss.Color(h)
		}
		return NewPaletteShades(colors...)
	}
	return ColorPalette{
		Slate:  shades("#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"),
		Blue:   shades("#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"),
		Violet: shades("#f5f3ff", "#ede9fe", "#ddd6fe", "#c4b5fd", "#a78bfa", "#8b5cf6", "#7c3aed", "#6d28d9", "#5b21b6", "#4c1d95"),
		Green:  shades("#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"),
		Amber:  shades("#fffbeb", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#f59e0b", "#d97706", "#b45309", "#92400e", "#78350f"),
		Teal:   shades("#f0fdfa", "#ccfbf1", "#99f6e4", "#5eead4", "#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59", "#134e4a"),
		Red:    shades("#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"),
	}
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Caption:  body.Faint(true),
		Emphasis: body.Bold(true),
	}
}

// VariantColor returns the base colour of variant in theme.
func VariantColor(theme Theme, variant chart.Variant) lipgloss.AdaptiveColor {
	return SlotForVariant(variant)(theme.Palette).Base
}

// VariantShade returns the colour of variant darkened by tint steps.
// Tint 0 is the 500 shade in light themes and the 400 shade in dark ones.
func VariantShade(theme Theme, variant chart.Variant, tint int) lipgloss.Color {
	start := PaletteShade500
	if theme.Dark {
		start = PaletteShade400
	}
	if tint < 0 {
		tint = 0
	}
	shade := start + PaletteShade(tint)
	if shade > PaletteShade900 {
		shade = PaletteShade900
	}
	return theme.Colors.Shades(variant).Color(shade)
}

// TypographyStyle returns the typography preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantCaption:
		return typo.Caption
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Body
	}
}

// BorderForVariant returns the lipgloss border for variant.
func BorderForVariant(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return lipgloss.NormalBorder()
	case BorderVariantRounded:
		return lipgloss.RoundedBorder()
	case BorderVariantThick:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.Border{}
	}
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeSmall)
	}
	return table[index]
}

// Background applies a semantic background with its matching foreground.
//
//	toast := NewToast(ToastInfo, "saved").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border and colours it with the neutral slot.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(variant)).BorderForeground(theme.Palette.Neutral.Muted)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func MarginBottom(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MarginBottom(spacingLookup(theme.Spacing, size))
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
