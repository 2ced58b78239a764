// Package eval implements the SPath query evaluator: a recursive,
// non-mutating tree walk over a variant.Value document guided by a
// query.Query. Unlike the teacher's transform/jsonpath/segmentrunner.go,
// which streams tokens through a one-pass item dispatcher, this walks a
// tree that can be read repeatedly - the execution model SPath requires
// (see DESIGN.md) - while keeping the same per-selector and per-segment
// ordering semantics the teacher's evaluator establishes.
package eval

import (
	"github.com/arnodel/spath/nodelist"
	"github.com/arnodel/spath/path"
	"github.com/arnodel/spath/query"
	"github.com/arnodel/spath/registry"
	"github.com/arnodel/spath/variant"
)

// Evaluator runs queries against a document using a fixed function
// registry. It holds no other state and is safe for concurrent use.
type Evaluator struct {
	reg *registry.Registry
}

// New returns an evaluator that dispatches function calls through reg.
func New(reg *registry.Registry) *Evaluator {
	return &Evaluator{reg: reg}
}

// QueryLocated runs q against root, returning every matching node together
// with its normalized path.
func (e *Evaluator) QueryLocated(q *query.Query, root variant.Value) nodelist.LocatedNodeList {
	return e.evalQuery(q, root, root)
}

// Query runs q against root, returning only the matched values.
func (e *Evaluator) Query(q *query.Query, root variant.Value) nodelist.NodeList {
	return e.evalQuery(q, root, root).Values()
}

func pickRoot(kind query.RootKind, root, current variant.Value) variant.Value {
	if kind == query.Current {
		return current
	}
	return root
}

func (e *Evaluator) evalQuery(q *query.Query, root, current variant.Value) nodelist.LocatedNodeList {
	start := pickRoot(q.RootNode, root, current)
	nodes := nodelist.LocatedNodeList{{Value: start, Path: path.Root}}
	for _, seg := range q.Segments {
		nodes = e.applySegment(seg, nodes, root)
	}
	return nodes
}

func (e *Evaluator) applySegment(seg query.Segment, nodes nodelist.LocatedNodeList, root variant.Value) nodelist.LocatedNodeList {
	var out nodelist.LocatedNodeList
	for _, n := range nodes {
		if seg.Descendant {
			out = append(out, e.applyDescendant(seg.Selectors, n, root)...)
		} else {
			out = append(out, e.applySelectors(seg.Selectors, n, root)...)
		}
	}
	return out
}

func (e *Evaluator) applySelectors(sels []query.Selector, n nodelist.LocatedNode, root variant.Value) nodelist.LocatedNodeList {
	var out nodelist.LocatedNodeList
	for _, sel := range sels {
		out = append(out, e.applySelector(sel, n, root)...)
	}
	return out
}

// applyDescendant visits n and every descendant of n in document order
// (pre-order: a node before its children, array elements and object
// members in their natural order), applying sels as a child segment at
// each visited node.
func (e *Evaluator) applyDescendant(sels []query.Selector, n nodelist.LocatedNode, root variant.Value) nodelist.LocatedNodeList {
	var out nodelist.LocatedNodeList
	var visit func(node nodelist.LocatedNode)
	visit = func(node nodelist.LocatedNode) {
		out = append(out, e.applySelectors(sels, node, root)...)
		if arr, ok := node.Value.AsArray(); ok {
			for i := 0; i < arr.Len(); i++ {
				visit(nodelist.LocatedNode{
					Value: arr.Get(i),
					Path:  node.Path.Append(path.Index(int64(i))),
				})
			}
			return
		}
		if obj, ok := node.Value.AsObject(); ok {
			for _, k := range obj.Keys() {
				v, _ := obj.Get(k)
				visit(nodelist.LocatedNode{
					Value: v,
					Path:  node.Path.Append(path.Name(k)),
				})
			}
		}
	}
	visit(n)
	return out
}
