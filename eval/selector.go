package eval

import (
	"github.com/arnodel/spath/nodelist"
	"github.com/arnodel/spath/path"
	"github.com/arnodel/spath/query"
	"github.com/arnodel/spath/variant"
)

func (e *Evaluator) applySelector(sel query.Selector, n nodelist.LocatedNode, root variant.Value) nodelist.LocatedNodeList {
	switch s := sel.(type) {
	case query.NameSelector:
		obj, ok := n.Value.AsObject()
		if !ok {
			return nil
		}
		v, ok := obj.Get(s.Name)
		if !ok {
			return nil
		}
		return nodelist.LocatedNodeList{{Value: v, Path: n.Path.Append(path.Name(s.Name))}}

	case query.WildcardSelector:
		if arr, ok := n.Value.AsArray(); ok {
			out := make(nodelist.LocatedNodeList, 0, arr.Len())
			for i := 0; i < arr.Len(); i++ {
				out = append(out, nodelist.LocatedNode{Value: arr.Get(i), Path: n.Path.Append(path.Index(int64(i)))})
			}
			return out
		}
		if obj, ok := n.Value.AsObject(); ok {
			out := make(nodelist.LocatedNodeList, 0, obj.Len())
			for _, k := range obj.Keys() {
				v, _ := obj.Get(k)
				out = append(out, nodelist.LocatedNode{Value: v, Path: n.Path.Append(path.Name(k))})
			}
			return out
		}
		return nil

	case query.IndexSelector:
		arr, ok := n.Value.AsArray()
		if !ok {
			return nil
		}
		length := int64(arr.Len())
		idx := s.Index
		if idx < 0 {
			idx += length
		}
		if idx < 0 || idx >= length {
			return nil
		}
		return nodelist.LocatedNodeList{{Value: arr.Get(int(idx)), Path: n.Path.Append(path.Index(idx))}}

	case query.SliceSelector:
		arr, ok := n.Value.AsArray()
		if !ok {
			return nil
		}
		lower, upper, step := normalizeSlice(s, arr.Len())
		var out nodelist.LocatedNodeList
		if step > 0 {
			for i := lower; i < upper; i += step {
				out = append(out, nodelist.LocatedNode{Value: arr.Get(int(i)), Path: n.Path.Append(path.Index(i))})
			}
		} else if step < 0 {
			for i := lower; i > upper; i += step {
				out = append(out, nodelist.LocatedNode{Value: arr.Get(int(i)), Path: n.Path.Append(path.Index(i))})
			}
		}
		return out

	case query.FilterSelector:
		var out nodelist.LocatedNodeList
		if arr, ok := n.Value.AsArray(); ok {
			for i := 0; i < arr.Len(); i++ {
				child := arr.Get(i)
				if e.evalLogical(s.Condition, root, child) {
					out = append(out, nodelist.LocatedNode{Value: child, Path: n.Path.Append(path.Index(int64(i)))})
				}
			}
			return out
		}
		if obj, ok := n.Value.AsObject(); ok {
			for _, k := range obj.Keys() {
				v, _ := obj.Get(k)
				if e.evalLogical(s.Condition, root, v) {
					out = append(out, nodelist.LocatedNode{Value: v, Path: n.Path.Append(path.Name(k))})
				}
			}
			return out
		}
		return nil

	default:
		return nil
	}
}

// normalizeSlice implements RFC 9535 2.3.4.2.2's bounds normalization:
// negative Start/End count from the end of the array, and the iteration
// range and direction depend on the sign of Step (step == 0 selects
// nothing, left to the caller by returning bounds that make both loop
// forms above execute zero times).
func normalizeSlice(s query.SliceSelector, length int) (lower, upper, step int64) {
	step = s.Step
	n := int64(length)

	normalize := func(i int64) int64 {
		if i < 0 {
			return i + n
		}
		return i
	}

	if step > 0 {
		start, end := int64(0), n
		if s.Start != nil {
			start = clamp(normalize(*s.Start), 0, n)
		}
		if s.End != nil {
			end = clamp(normalize(*s.End), 0, n)
		}
		return start, end, step
	}
	if step < 0 {
		start, end := n-1, int64(-1)
		if s.Start != nil {
			start = clamp(normalize(*s.Start), -1, n-1)
		}
		if s.End != nil {
			end = clamp(normalize(*s.End), -1, n-1)
		}
		return start, end, step
	}
	return 0, 0, 0
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
