package chart

import "strconv"

// ValueFormatter turns a numeric value into display text.
type ValueFormatter func(value float64) string

// DefaultFormatter renders the shortest decimal representation of value.
func DefaultFormatter(value float64) string {
	if value == 0 {
		// normalises negative zero
		value = 0
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func (f ValueFormatter) orDefault() ValueFormatter {
	if f == nil {
		return DefaultFormatter
	}
	return f
}
