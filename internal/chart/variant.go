package chart

import "strings"

// Variant is one of the fixed visual styles used to colour a series or slice.
// The zero value means "not specified" and resolves to VariantPrimary.
type Variant uint8

const (
	VariantUnset Variant = iota
	VariantPrimary
	VariantAccent
	VariantSuccess
	VariantWarning
	VariantSecondary
	VariantNeutral
)

// VariantCycle is the round-robin order used when a caller does not pick a variant.
var VariantCycle = [...]Variant{
	VariantPrimary,
	VariantAccent,
	VariantSuccess,
	VariantWarning,
	VariantSecondary,
	VariantNeutral,
}

var variantNames = map[Variant]string{
	VariantPrimary:   "primary",
	VariantAccent:    "accent",
	VariantSuccess:   "success",
	VariantWarning:   "warning",
	VariantSecondary: "secondary",
	VariantNeutral:   "neutral",
}

// CycleVariant returns the variant assigned to the given structural position.
func CycleVariant(index int) Variant {
	n := len(VariantCycle)
	i := index % n
	if i < 0 {
		i += n
	}
	return VariantCycle[i]
}

// ParseVariant maps a variant name to a Variant. Unknown and empty names
// resolve to VariantPrimary.
func ParseVariant(name string) Variant {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if n == name {
			return v
		}
	}
	return VariantPrimary
}

// IsVariantName reports whether name is one of the known variant names.
func IsVariantName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range variantNames {
		if n == name {
			return true
		}
	}
	return false
}

// Valid reports whether v is a known, resolved variant.
func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// OrDefault returns v, or VariantPrimary when v is unset or unknown.
func (v Variant) OrDefault() Variant {
	if !v.Valid() {
		return VariantPrimary
	}
	return v
}

// Or returns v when it is valid and fallback otherwise.
func (v Variant) Or(fallback Variant) Variant {
	if v.Valid() {
		return v
	}
	return fallback
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return ""
}

// MarshalText encodes the variant name; an unset variant encodes as "".
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name. Empty input leaves the variant unset.
func (v *Variant) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*v = VariantUnset
		return nil
	}
	*v = ParseVariant(string(text))
	return nil
}
