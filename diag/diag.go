// Package diag renders SPath parse and evaluation errors against the
// original query text: a message, a byte span to underline, and an
// optional stack of context frames ("in filter expression", "in argument 2
// of match(...)"), in the teacher's plain fmt.Errorf style for the
// non-colorized path and adapted from colorizer.go for the colorized one
// (see cmd/spath/colorize.go, which supplies the colorizer implementation
// used by the CLI).
package diag

import (
	"fmt"
	"strings"

	"github.com/arnodel/spath/lexer"
)

// Span is a half-open byte range into the original query text.
type Span = lexer.Span

// Error is a parse or evaluation error anchored to a span of the original
// query text, with an optional stack of enclosing context frames recorded
// innermost-last (so Context[0] is the outermost frame, e.g. "parsing
// query", and the last entry is the most specific one active when the
// error was raised).
type Error struct {
	Message string
	Span    Span
	Source  string
	Context []string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Message)
	if e.Source != "" {
		b.WriteString("\n")
		b.WriteString(Render(e, false))
	}
	return b.String()
}

// WithContext returns a copy of e with frame appended as the new innermost
// context frame, so frames are pushed from the outermost to the innermost.
// The receiver is left unchanged.
func (e *Error) WithContext(frame string) *Error {
	next := *e
	next.Context = append(append([]string{}, e.Context...), frame)
	return &next
}

// New builds an Error with no context frames yet attached.
func New(message string, span Span, source string) *Error {
	return &Error{Message: message, Span: span, Source: source}
}

// Render formats e as a caret diagram under the offending span, e.g.:
//
//	$.store.book[?@.price <]
//	                       ^
//	expected a comparable expression, got ']'
//
// When color is true, the caret line is rendered in red using ANSI escape
// codes; the CLI is responsible for deciding (via isatty) whether to pass
// true.
func Render(e *Error, color bool) string {
	var b strings.Builder
	b.WriteString(e.Source)
	b.WriteString("\n")
	start := e.Span.Start
	if start > len(e.Source) {
		start = len(e.Source)
	}
	width := e.Span.End - e.Span.Start
	if width < 1 {
		width = 1
	}
	caretLine := strings.Repeat(" ", start) + strings.Repeat("^", width)
	if color {
		b.WriteString("\033[31m")
		b.WriteString(caretLine)
		b.WriteString("\033[0m")
	} else {
		b.WriteString(caretLine)
	}
	b.WriteString("\n")
	b.WriteString(e.Message)
	for i := len(e.Context) - 1; i >= 0; i-- {
		b.WriteString("\n  ")
		b.WriteString(e.Context[i])
	}
	return b.String()
}
