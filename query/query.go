// Package query defines the immutable abstract syntax tree a parsed SPath
// query compiles to. The shape follows the teacher's
// internal/jsonpath/ast/ast.go closely: a Query is a root marker plus a
// list of Segments, each holding one or more Selectors.
package query

// RootKind distinguishes an absolute query (anchored at $, the document
// root) from a relative query (anchored at @, the current node under
// evaluation inside a filter).
type RootKind int

const (
	Root    RootKind = iota // $
	Current                 // @
)

func (r RootKind) String() string {
	if r == Current {
		return "@"
	}
	return "$"
}

// Query is a full SPath query: a root plus zero or more segments applied
// left to right.
type Query struct {
	RootNode RootKind
	Segments []Segment
}

// IsSingular reports whether every segment of the query selects at most one
// child (name or index selectors only, no descendant segments, no
// wildcard/slice/filter selectors) - the condition RFC 9535 calls a
// singular query, required wherever a comparison operand must name exactly
// one node.
func (q *Query) IsSingular() bool {
	_, ok := q.AsSingularQuery()
	return ok
}

// AsSingularQuery converts the query to a SingularQuery if it qualifies,
// reporting false otherwise.
func (q *Query) AsSingularQuery() (*SingularQuery, bool) {
	segs := make([]SingularSegment, 0, len(q.Segments))
	for _, seg := range q.Segments {
		if seg.Descendant {
			return nil, false
		}
		if len(seg.Selectors) != 1 {
			return nil, false
		}
		switch sel := seg.Selectors[0].(type) {
		case NameSelector:
			segs = append(segs, NameSegment{Name: sel.Name})
		case IndexSelector:
			segs = append(segs, IndexSegment{Index: sel.Index})
		default:
			return nil, false
		}
	}
	return &SingularQuery{RootNode: q.RootNode, Segments: segs}, true
}

// SegmentType distinguishes a child segment (.x, [x], .*, [*], ...) from a
// descendant segment (..x, ..[x], ...).
type SegmentType int

const (
	ChildSegment      SegmentType = iota
	DescendantSegment
)

// Segment is one step of a query: a (possibly descendant) bracketed
// selection of one or more Selectors, unioned together.
type Segment struct {
	Descendant bool
	Selectors  []Selector
}

// Selector is the sum type of the five RFC 9535 selector kinds.
type Selector interface {
	isSelector()
}

// NameSelector selects a single named member of an object.
type NameSelector struct {
	Name string
}

// WildcardSelector selects every child of an array or object.
type WildcardSelector struct{}

// IndexSelector selects a single array element, possibly negative
// (counting from the end).
type IndexSelector struct {
	Index int64
}

// SliceSelector selects a sub-range of an array. Start/End are nil when
// omitted from the query text (defaulting per RFC 9535 depending on the
// sign of Step); Step defaults to 1.
type SliceSelector struct {
	Start *int64
	End   *int64
	Step  int64
}

// FilterSelector keeps only the children for which Condition evaluates
// truthy.
type FilterSelector struct {
	Condition LogicalExpr
}

func (NameSelector) isSelector()     {}
func (WildcardSelector) isSelector() {}
func (IndexSelector) isSelector()    {}
func (SliceSelector) isSelector()    {}
func (FilterSelector) isSelector()   {}

// SingularSegment is one step of a SingularQuery: a bare name or index.
type SingularSegment interface {
	isSingularSegment()
}

// NameSegment is a singular-query name step.
type NameSegment struct{ Name string }

// IndexSegment is a singular-query index step.
type IndexSegment struct{ Index int64 }

func (NameSegment) isSingularSegment()  {}
func (IndexSegment) isSingularSegment() {}

// SingularQuery is a query guaranteed to select at most one node: used as a
// filter-expression comparison operand and as a function's singular-query
// argument.
type SingularQuery struct {
	RootNode RootKind
	Segments []SingularSegment
}
