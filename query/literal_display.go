package query

import (
	"strconv"

	"github.com/arnodel/spath/variant"
)

func displayLiteralValue(l Literal) string {
	return displayLiteral(l.Value)
}

func displayLiteral(v variant.Value) string {
	switch v.Kind() {
	case variant.Null:
		return "null"
	case variant.Bool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	case variant.String:
		s, _ := v.AsString()
		return strconv.Quote(s)
	case variant.Number:
		// variant.Value has no numeric accessor; fall back to the
		// diagnostics-only Stringer the literal constructors provide.
		if str, ok := v.(interface{ String() string }); ok {
			return str.String()
		}
		return "<number>"
	default:
		return "<value>"
	}
}
