// Package format builds chart value formatters from declarative specs.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/alexisbeaulieu97/chartkit/internal/chart"
)

// Style names a formatting strategy.
type Style string

const (
	StylePlain   Style = "plain"
	StyleNumber  Style = "number"
	StylePercent Style = "percent"
	StyleCompact Style = "compact"
)

// Styles lists every supported style.
var Styles = []Style{StylePlain, StyleNumber, StylePercent, StyleCompact}

// IsStyle reports whether name is a supported style. The empty name means plain.
func IsStyle(name string) bool {
	if name == "" {
		return true
	}
	for _, s := range Styles {
		if string(s) == name {
			return true
		}
	}
	return false
}

// Spec describes how chart values are turned into text.
type Spec struct {
	Style Style `yaml:"style,omitempty" json:"style,omitempty"`
	// Precision is the number of fractional digits. Nil selects the style default.
	Precision *int   `yaml:"precision,omitempty" json:"precision,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix    string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Locale    string `yaml:"locale,omitempty" json:"locale,omitempty"`
}

var compactUnits = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "k"},
}

// Key returns a canonical string identifying the formatter built from s.
// Equal keys yield formatters with identical output.
func (s Spec) Key() string {
	precision := "-"
	if s.Precision != nil {
		precision = strconv.Itoa(*s.Precision)
	}
	return strings.Join([]string{string(s.style()), precision, s.Prefix, s.Suffix, s.Locale}, "\x1f")
}

// Formatter builds the value formatter described by s.
func (s Spec) Formatter() (chart.ValueFormatter, error) {
	style := s.style()
	if !IsStyle(string(style)) {
		return nil, fmt.Errorf("unknown format style %q", style)
	}
	if s.Precision != nil && *s.Precision < 0 {
		return nil, fmt.Errorf("precision must be non-negative, got %d", *s.Precision)
	}

	tag := language.English
	if s.Locale != "" {
		parsed, err := language.Parse(s.Locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", s.Locale, err)
		}
		tag = parsed
	}
	printer := message.NewPrinter(tag)

	var core chart.ValueFormatter
	switch style {
	case StyleNumber:
		verb := fixedVerb(s.precision(0))
		core = func(v float64) string {
			return printer.Sprintf(verb, normalizeZero(v))
		}
	case StylePercent:
		verb := fixedVerb(s.precision(1))
		core = func(v float64) string {
			return printer.Sprintf(verb, normalizeZero(v*100)) + "%"
		}
	case StyleCompact:
		precision := s.precision(1)
		core = func(v float64) string {
			return compact(v, precision)
		}
	default:
		if s.Precision != nil {
			precision := *s.Precision
			core = func(v float64) string {
				return strconv.FormatFloat(normalizeZero(v), 'f', precision, 64)
			}
		} else {
			core = chart.DefaultFormatter
		}
	}

	if s.Prefix == "" && s.Suffix == "" {
		return core, nil
	}
	prefix, suffix := s.Prefix, s.Suffix
	return func(v float64) string {
		return prefix + core(v) + suffix
	}, nil
}

// MustFormatter is Formatter for specs known to be valid.
func (s Spec) MustFormatter() chart.ValueFormatter {
	f, err := s.Formatter()
	if err != nil {
		panic(err)
	}
	return f
}

func (s Spec) style() Style {
	if s.Style == "" {
		return StylePlain
	}
	return Style(strings.ToLower(string(s.Style)))
}

func (s Spec) precision(fallback int) int {
	if s.Precision == nil {
		return fallback
	}
	return *s.Precision
}

func fixedVerb(precision int) string {
	return fmt.Sprintf("%%.%df", precision)
}

// compact abbreviates v with k/M/B/T suffixes and drops trailing zero fractions.
func compact(v float64, precision int) string {
	abs := math.Abs(v)
	for _, unit := range compactUnits {
		if abs >= unit.threshold {
			return trimZeros(strconv.FormatFloat(v/unit.threshold, 'f', precision, 64)) + unit.suffix
		}
	}
	return trimZeros(strconv.FormatFloat(normalizeZero(v), 'f', precision, 64))
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func normalizeZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
