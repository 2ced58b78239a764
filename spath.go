package spath

import (
	"github.com/arnodel/spath/eval"
	"github.com/arnodel/spath/nodelist"
	"github.com/arnodel/spath/parser"
	"github.com/arnodel/spath/query"
	"github.com/arnodel/spath/registry"
	"github.com/arnodel/spath/variant"
)

// SPath is a parsed, ready-to-run query.
type SPath struct {
	query *query.Query
	eval  *eval.Evaluator
}

// NewDefaultRegistry returns a function registry populated with the
// built-in functions: length, count, value, match, search.
func NewDefaultRegistry() *registry.Registry {
	return registry.NewDefaultRegistry()
}

// Parse parses src using the default function registry.
func Parse(src string) (*SPath, error) {
	return Compile(src, NewDefaultRegistry())
}

// Compile parses src, validating any function calls it contains against
// reg, so that a custom registry's extra functions are available both at
// parse time (for argument-type checking) and at evaluation time.
func Compile(src string, reg *registry.Registry) (*SPath, error) {
	q, err := parser.Parse(src, reg)
	if err != nil {
		return nil, err
	}
	return &SPath{query: q, eval: eval.New(reg)}, nil
}

// Query runs the compiled query against root, returning the matched
// values in the order the query's segments and selectors produce them
// (with duplicates, if any selector produces them - see RFC 9535 on
// segments with overlapping selectors).
func (p *SPath) Query(root variant.Value) nodelist.NodeList {
	return p.eval.Query(p.query, root)
}

// QueryLocated runs the compiled query against root, returning each
// matched value together with its normalized path from the document root.
func (p *SPath) QueryLocated(root variant.Value) nodelist.LocatedNodeList {
	return p.eval.QueryLocated(p.query, root)
}

// String renders the compiled query back to SPath syntax.
func (p *SPath) String() string {
	return p.query.String()
}
