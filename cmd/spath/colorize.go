package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/arnodel/spath/variant"
)

// colorizer holds the ANSI color code to use for each variant.Kind, the
// same shape as the teacher's token-based Colorizer but keyed on the kind
// of value being printed rather than a scanned scalar token.
type colorizer struct {
	kindColorCode [6][]byte
	resetCode     []byte
}

var defaultColorizer = colorizer{
	kindColorCode: [6][]byte{
		variant.Null:      []byte("\x1b[90m"),
		variant.Bool:      []byte("\x1b[33m"),
		variant.Number:    []byte("\x1b[36m"),
		variant.String:    []byte("\x1b[32m"),
		variant.ArrayKind: []byte("\x1b[0m"),
		variant.ObjectKind: []byte("\x1b[0m"),
	},
	resetCode: []byte("\x1b[0m"),
}

func colorizerFor(mode string) *colorizer {
	if colorDecision(mode, os.Stdout.Fd()) {
		return &defaultColorizer
	}
	return nil
}

// colorDecision applies --color's auto/always/never modes against fd,
// consulting go-isatty only in auto mode. Used for both the stdout value
// colorizer and the stderr diagnostic renderer, so a pipe on one stream
// doesn't need to imply the same on the other.
func colorDecision(mode string, fd uintptr) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(fd)
	}
}

// writeValue prints v as JSON-ish text, applying col's color codes to
// scalars when col is non-nil. It is a display helper for the CLI only -
// not a general-purpose encoder, so it makes no attempt at pretty-printing
// large documents.
func writeValue(w io.Writer, v variant.Value, col *colorizer) {
	switch v.Kind() {
	case variant.Null:
		writeScalar(w, col, variant.Null, "null")
	case variant.Bool:
		b, _ := v.AsBool()
		writeScalar(w, col, variant.Bool, strconv.FormatBool(b))
	case variant.Number:
		writeScalar(w, col, variant.Number, fmt.Sprint(numberText(v)))
	case variant.String:
		s, _ := v.AsString()
		writeScalar(w, col, variant.String, strconv.Quote(s))
	case variant.ArrayKind:
		arr, _ := v.AsArray()
		fmt.Fprint(w, "[")
		for i := 0; i < arr.Len(); i++ {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			writeValue(w, arr.Get(i), col)
		}
		fmt.Fprint(w, "]")
	case variant.ObjectKind:
		obj, _ := v.AsObject()
		fmt.Fprint(w, "{")
		for i, k := range obj.Keys() {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			val, _ := obj.Get(k)
			fmt.Fprintf(w, "%s: ", strconv.Quote(k))
			writeValue(w, val, col)
		}
		fmt.Fprint(w, "}")
	}
}

func writeScalar(w io.Writer, col *colorizer, kind variant.Kind, text string) {
	if col != nil {
		w.Write(col.kindColorCode[kind])
	}
	fmt.Fprint(w, text)
	if col != nil {
		w.Write(col.resetCode)
	}
}

// numberText renders a number Value using its diagnostics Stringer when
// available; every concrete variant.Value for Number kind implements one.
func numberText(v variant.Value) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return "0"
}
