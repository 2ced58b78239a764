package query

import (
	"strconv"
	"strings"
)

// String renders the query back to SPath syntax. It is not guaranteed to
// reproduce the original text byte for byte (literal quoting style is
// normalized to double quotes, for instance) but always reparses to an
// equivalent query - used in diagnostics and tests.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteString(q.RootNode.String())
	for _, seg := range q.Segments {
		seg.writeTo(&b)
	}
	return b.String()
}

func (seg Segment) writeTo(b *strings.Builder) {
	if seg.Descendant {
		b.WriteString("..")
	}
	if len(seg.Selectors) == 1 {
		if ns, ok := seg.Selectors[0].(NameSelector); ok && isPlainName(ns.Name) {
			if !seg.Descendant {
				b.WriteString(".")
			}
			b.WriteString(ns.Name)
			return
		}
		if _, ok := seg.Selectors[0].(WildcardSelector); ok {
			if !seg.Descendant {
				b.WriteString(".")
			}
			b.WriteString("*")
			return
		}
	}
	b.WriteString("[")
	for i, sel := range seg.Selectors {
		if i > 0 {
			b.WriteString(",")
		}
		writeSelector(b, sel)
	}
	b.WriteString("]")
}

func writeSelector(b *strings.Builder, sel Selector) {
	switch s := sel.(type) {
	case NameSelector:
		b.WriteString(strconv.Quote(s.Name))
	case WildcardSelector:
		b.WriteString("*")
	case IndexSelector:
		b.WriteString(strconv.FormatInt(s.Index, 10))
	case SliceSelector:
		if s.Start != nil {
			b.WriteString(strconv.FormatInt(*s.Start, 10))
		}
		b.WriteString(":")
		if s.End != nil {
			b.WriteString(strconv.FormatInt(*s.End, 10))
		}
		if s.Step != 1 {
			b.WriteString(":")
			b.WriteString(strconv.FormatInt(s.Step, 10))
		}
	case FilterSelector:
		b.WriteString("?")
		writeLogicalExpr(b, s.Condition)
	}
}

func writeLogicalExpr(b *strings.Builder, expr LogicalExpr) {
	switch e := expr.(type) {
	case OrExpr:
		writeLogicalExpr(b, e.Left)
		b.WriteString(" || ")
		writeLogicalExpr(b, e.Right)
	case AndExpr:
		for i, operand := range []LogicalExpr{e.Left, e.Right} {
			if i > 0 {
				b.WriteString(" && ")
			}
			if _, isOr := operand.(OrExpr); isOr {
				b.WriteString("(")
				writeLogicalExpr(b, operand)
				b.WriteString(")")
			} else {
				writeLogicalExpr(b, operand)
			}
		}
	case NotExpr:
		b.WriteString("!")
		switch e.Expr.(type) {
		case TestExpr, FunctionExpr:
			writeLogicalExpr(b, e.Expr)
		default:
			b.WriteString("(")
			writeLogicalExpr(b, e.Expr)
			b.WriteString(")")
		}
	case ComparisonExpr:
		writeComparable(b, e.Left)
		b.WriteString(" ")
		b.WriteString(e.Op.String())
		b.WriteString(" ")
		writeComparable(b, e.Right)
	case TestExpr:
		b.WriteString(e.Query.String())
	case FunctionExpr:
		writeFunctionExpr(b, e)
	}
}

func writeComparable(b *strings.Builder, c Comparable) {
	switch v := c.(type) {
	case Literal:
		b.WriteString(displayLiteralValue(v))
	case SingularQueryComparable:
		b.WriteString(v.Query.String())
	case FunctionComparable:
		writeFunctionExpr(b, v.Function)
	}
}

func writeFunctionExpr(b *strings.Builder, f FunctionExpr) {
	b.WriteString(f.Name)
	b.WriteString("(")
	for i, arg := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeFunctionArgument(b, arg)
	}
	b.WriteString(")")
}

func writeFunctionArgument(b *strings.Builder, arg FunctionArgument) {
	switch a := arg.(type) {
	case LiteralArgument:
		b.WriteString(displayLiteral(a.Value))
	case SingularQueryArgument:
		b.WriteString(a.Query.String())
	case FilterQueryArgument:
		b.WriteString(a.Query.String())
	case LogicalExprArgument:
		switch a.Expr.(type) {
		case FunctionExpr, NotExpr:
			writeLogicalExpr(b, a.Expr)
		default:
			b.WriteString("(")
			writeLogicalExpr(b, a.Expr)
			b.WriteString(")")
		}
	}
}

// String renders a singular query back to SPath syntax.
func (q *SingularQuery) String() string {
	var b strings.Builder
	b.WriteString(q.RootNode.String())
	for _, seg := range q.Segments {
		switch s := seg.(type) {
		case NameSegment:
			if isPlainName(s.Name) {
				b.WriteString(".")
				b.WriteString(s.Name)
			} else {
				b.WriteString("[")
				b.WriteString(strconv.Quote(s.Name))
				b.WriteString("]")
			}
		case IndexSegment:
			b.WriteString("[")
			b.WriteString(strconv.FormatInt(s.Index, 10))
			b.WriteString("]")
		}
	}
	return b.String()
}

func isPlainName(name string) bool {
	if name == "" || name == "true" || name == "false" || name == "null" {
		return false
	}
	for i, r := range name {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
