// Package path implements RFC 9535 §2.7 normalized paths: the canonical,
// re-parseable bracket-notation string SPath reports alongside each node in
// a LocatedNodeList result.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Element is one step of a normalized path: either a bracketed,
// single-quoted member name or a bracketed array index.
type Element struct {
	IsIndex bool
	Name    string
	Index   int64
}

// Name builds a member-name path element.
func Name(name string) Element { return Element{Name: name} }

// Index builds an array-index path element.
func Index(i int64) Element { return Element{IsIndex: true, Index: i} }

func (e Element) String() string {
	if e.IsIndex {
		return "[" + strconv.FormatInt(e.Index, 10) + "]"
	}
	return "['" + escapeName(e.Name) + "']"
}

// Path is a full normalized path: $ followed by zero or more Elements.
type Path struct {
	Elements []Element
}

// Root is the normalized path of the document root, "$".
var Root = Path{}

// Append returns a new Path with one more element appended.
func (p Path) Append(e Element) Path {
	elems := make([]Element, len(p.Elements)+1)
	copy(elems, p.Elements)
	elems[len(p.Elements)] = e
	return Path{Elements: elems}
}

// String renders the normalized path, e.g. $['store']['book'][0].
func (p Path) String() string {
	var b strings.Builder
	b.WriteString("$")
	for _, e := range p.Elements {
		b.WriteString(e.String())
	}
	return b.String()
}

// escapeName renders a member name as the content of a single-quoted
// bracket-notation string, per the RFC 9535 §2.7 escape table: a small set
// of control characters get a two-character escape, the quote character
// and backslash are escaped, every other code point (including non-ASCII)
// is copied through verbatim, and any other C0 control character is
// rendered as \u00XX.
func escapeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch r {
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
