package ast

import (
	"math"
	"strconv"
	"strings"
)

// Encode serializes an expression tree to canonical text: atoms in their
// natural decimal or verbatim form, lists space-separated between
// parentheses, no added whitespace or line breaks. String values are
// wrapped in double quotes with no escaping, so a string containing a
// double quote does not round-trip. For trees without Bool or Char values
// and without such strings, parsing the output yields a tree structurally
// equal to the input.
func Encode(e Expr) string {
	var b strings.Builder
	encode(&b, e)
	return b.String()
}

func encode(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case Char:
		b.WriteRune(rune(v))
	case Int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Float:
		b.WriteString(formatFloat(float64(v)))
	case String:
		b.WriteByte('"')
		b.WriteString(string(v))
		b.WriteByte('"')
	case Symbol:
		b.WriteString(string(v))
	case List:
		b.WriteByte('(')
		for i := range v {
			if i > 0 {
				b.WriteByte(' ')
			}
			encode(b, v[i])
		}
		b.WriteByte(')')
	}
}

// formatFloat renders f in its shortest form, forcing a ".0" suffix onto
// integral values so the text reads back as a float rather than an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(f, 0) && !math.IsNaN(f) {
		s += ".0"
	}
	return s
}
