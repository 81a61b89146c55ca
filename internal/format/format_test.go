package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFormatterStyles(t *testing.T) {
	tests := []struct {
		name  string
		spec  Spec
		value float64
		want  string
	}{
		{"plain default", Spec{}, 1.5, "1.5"},
		{"plain precision", Spec{Precision: intPtr(2)}, 1.5, "1.50"},
		{"number groups digits", Spec{Style: StyleNumber}, 1234567, "1,234,567"},
		{"number precision", Spec{Style: StyleNumber, Precision: intPtr(2)}, 1234.5, "1,234.50"},
		{"number german locale", Spec{Style: StyleNumber, Locale: "de"}, 1234567, "1.234.567"},
		{"percent", Spec{Style: StylePercent}, 0.256, "25.6%"},
		{"compact thousands", Spec{Style: StyleCompact}, 1200, "1.2k"},
		{"compact millions", Spec{Style: StyleCompact}, 3400000, "3.4M"},
		{"compact drops zero fraction", Spec{Style: StyleCompact}, 2000, "2k"},
		{"compact negative", Spec{Style: StyleCompact}, -1500, "-1.5k"},
		{"compact small", Spec{Style: StyleCompact}, 42, "42"},
		{"prefix and suffix", Spec{Style: StyleNumber, Prefix: "$", Suffix: " USD"}, 1000, "$1,000 USD"},
		{"case insensitive style", Spec{Style: "Percent", Precision: intPtr(0)}, 0.5, "50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.spec.Formatter()
			require.NoError(t, err)
			assert.Equal(t, tt.want, f(tt.value))
		})
	}
}

func TestFormatterRejectsInvalidSpecs(t *testing.T) {
	_, err := Spec{Style: "roman"}.Formatter()
	assert.ErrorContains(t, err, "unknown format style")

	_, err = Spec{Precision: intPtr(-1)}.Formatter()
	assert.ErrorContains(t, err, "non-negative")

	_, err = Spec{Locale: "not a locale!"}.Formatter()
	assert.ErrorContains(t, err, "parse locale")

	assert.Panics(t, func() { Spec{Style: "roman"}.MustFormatter() })
}

func TestIsStyle(t *testing.T) {
	assert.True(t, IsStyle(""))
	assert.True(t, IsStyle("compact"))
	assert.False(t, IsStyle("roman"))
}

func TestKeyDistinguishesSpecs(t *testing.T) {
	assert.Equal(t, Spec{}.Key(), Spec{Style: StylePlain}.Key())
	assert.NotEqual(t, Spec{}.Key(), Spec{Precision: intPtr(0)}.Key())
	assert.NotEqual(t, Spec{Prefix: "$"}.Key(), Spec{Suffix: "$"}.Key())
}
