// Package nodelist implements RFC 9535's NodeList and LocatedNodeList
// result types, plus the deduplication and singular-extraction rules the
// evaluator and public façade apply to them.
package nodelist

import (
	"fmt"

	"github.com/arnodel/spath/path"
	"github.com/arnodel/spath/variant"
)

// NodeList is the ordered, possibly-duplicated sequence of values a query
// selects, without path information.
type NodeList []variant.Value

// LocatedNode pairs a selected value with its normalized path from the
// document root.
type LocatedNode struct {
	Value variant.Value
	Path  path.Path
}

// LocatedNodeList is the ordered sequence of LocatedNodes a query selects.
type LocatedNodeList []LocatedNode

// Values projects away the path information.
func (l LocatedNodeList) Values() NodeList {
	nodes := make(NodeList, len(l))
	for i, n := range l {
		nodes[i] = n.Value
	}
	return nodes
}

// Dedup removes nodes that share a normalized path with an earlier node in
// the list, keeping the first occurrence and preserving order. This
// matters for descendant and union selectors, which can otherwise visit
// the same node twice (e.g. $..*..* or $[0,0]).
func (l LocatedNodeList) Dedup() LocatedNodeList {
	seen := make(map[string]bool, len(l))
	out := make(LocatedNodeList, 0, len(l))
	for _, n := range l {
		key := n.Path.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out
}

// AtMostOneError is returned by AtMostOne when a NodeList contains more
// than one node. Count is the number of nodes actually found.
type AtMostOneError struct {
	Count int
}

func (e *AtMostOneError) Error() string {
	return fmt.Sprintf("nodelist expected to contain at most one entry, but instead contains %d entries", e.Count)
}

// ExactlyOneError is returned by ExactlyOne when a NodeList does not
// contain exactly one node. Empty is true when the list had no nodes at
// all; otherwise Count holds the number of nodes found (always > 1).
type ExactlyOneError struct {
	Empty bool
	Count int
}

func (e *ExactlyOneError) Error() string {
	if e.Empty {
		return "nodelist expected to contain one entry, but is empty"
	}
	return fmt.Sprintf("nodelist expected to contain one entry, but instead contains %d entries", e.Count)
}

// AtMostOne extracts the at-most-one value from n, which may legally be
// empty. It fails only when n has more than one node.
func (n NodeList) AtMostOne() (variant.Value, error) {
	switch len(n) {
	case 0:
		return nil, nil
	case 1:
		return n[0], nil
	default:
		return nil, &AtMostOneError{Count: len(n)}
	}
}

// ExactlyOne extracts the one value from a single-element NodeList, or
// fails with an ExactlyOneError describing whether n was empty or had too
// many nodes.
func (n NodeList) ExactlyOne() (variant.Value, error) {
	switch len(n) {
	case 0:
		return nil, &ExactlyOneError{Empty: true}
	case 1:
		return n[0], nil
	default:
		return nil, &ExactlyOneError{Count: len(n)}
	}
}
