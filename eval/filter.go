package eval

import (
	"github.com/arnodel/spath/query"
	"github.com/arnodel/spath/registry"
	"github.com/arnodel/spath/variant"
)

func (e *Evaluator) evalLogical(expr query.LogicalExpr, root, current variant.Value) bool {
	switch ex := expr.(type) {
	case query.OrExpr:
		return e.evalLogical(ex.Left, root, current) || e.evalLogical(ex.Right, root, current)
	case query.AndExpr:
		return e.evalLogical(ex.Left, root, current) && e.evalLogical(ex.Right, root, current)
	case query.NotExpr:
		return !e.evalLogical(ex.Expr, root, current)
	case query.ComparisonExpr:
		left := e.evalComparable(ex.Left, root, current)
		right := e.evalComparable(ex.Right, root, current)
		return compare(left, ex.Op, right)
	case query.TestExpr:
		return len(e.evalQuery(ex.Query, root, current)) > 0
	case query.FunctionExpr:
		res, err := e.callFunction(ex, root, current)
		if err != nil {
			return false
		}
		return res.IsTruthy()
	default:
		return false
	}
}

// evalComparable resolves a Comparable to a Value, or nil for Nothing (an
// absent value - e.g. a singular query that selected no node).
func (e *Evaluator) evalComparable(c query.Comparable, root, current variant.Value) variant.Value {
	switch v := c.(type) {
	case query.Literal:
		return v.Value
	case query.SingularQueryComparable:
		val, ok := e.evalSingularQuery(v.Query, root, current)
		if !ok {
			return nil
		}
		return val
	case query.FunctionComparable:
		res, err := e.callFunction(v.Function, root, current)
		if err != nil {
			return nil
		}
		return res.Value
	default:
		return nil
	}
}

func (e *Evaluator) evalSingularQuery(sq *query.SingularQuery, root, current variant.Value) (variant.Value, bool) {
	v := pickRoot(sq.RootNode, root, current)
	for _, seg := range sq.Segments {
		switch s := seg.(type) {
		case query.NameSegment:
			obj, ok := v.AsObject()
			if !ok {
				return nil, false
			}
			v, ok = obj.Get(s.Name)
			if !ok {
				return nil, false
			}
		case query.IndexSegment:
			arr, ok := v.AsArray()
			if !ok {
				return nil, false
			}
			length := int64(arr.Len())
			idx := s.Index
			if idx < 0 {
				idx += length
			}
			if idx < 0 || idx >= length {
				return nil, false
			}
			v = arr.Get(int(idx))
		}
	}
	return v, true
}

// compare implements RFC 9535's six comparison operators. A nil operand
// represents Nothing: Nothing == Nothing is true, Nothing compared against
// anything else with == is false, and every ordering comparison involving
// Nothing is false.
func compare(left variant.Value, op query.ComparisonOp, right variant.Value) bool {
	switch op {
	case query.OpEq:
		return valuesEqual(left, right)
	case query.OpNe:
		return !valuesEqual(left, right)
	case query.OpLt:
		return lessThan(left, right)
	case query.OpGt:
		return lessThan(right, left)
	case query.OpLe:
		return lessThan(left, right) || valuesEqual(left, right)
	case query.OpGe:
		return lessThan(right, left) || valuesEqual(left, right)
	default:
		return false
	}
}

func valuesEqual(left, right variant.Value) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	return variant.DeepEqual(left, right)
}

func lessThan(left, right variant.Value) bool {
	if left == nil || right == nil {
		return false
	}
	lt, ok := left.IsLessThan(right)
	return ok && lt
}

// callFunction evaluates every argument of fn against the current filter
// context and dispatches to the registered implementation.
func (e *Evaluator) callFunction(fn query.FunctionExpr, root, current variant.Value) (registry.Result, error) {
	def, ok := e.reg.Lookup(fn.Name)
	if !ok {
		return registry.Result{}, unknownFunctionError(fn.Name)
	}
	args := make([]registry.Result, len(fn.Args))
	for i, a := range fn.Args {
		res, err := e.evalFunctionArgument(a, def.ParamTypes[i], root, current)
		if err != nil {
			return registry.Result{}, err
		}
		args[i] = res
	}
	return def.Call(args)
}

// evalFunctionArgument evaluates one function-call argument to a Result.
// target is the callee's declared parameter type at that position: most
// argument shapes have one intrinsic Result type regardless of target, but
// a singular query is polymorphic (it may be read as a value, as an
// existence test, or as the nodelist of the one node it selects - or none),
// so it is built into whichever shape target calls for.
func (e *Evaluator) evalFunctionArgument(arg query.FunctionArgument, target registry.SPathType, root, current variant.Value) (registry.Result, error) {
	switch a := arg.(type) {
	case query.LiteralArgument:
		return registry.ValueResult(a.Value), nil
	case query.SingularQueryArgument:
		v, ok := e.evalSingularQuery(a.Query, root, current)
		switch target {
		case registry.NodesType:
			if !ok {
				return registry.NodesResult(nil), nil
			}
			return registry.NodesResult([]variant.Value{v}), nil
		case registry.LogicalType:
			return registry.LogicalResult(ok), nil
		default:
			if !ok {
				return registry.Nothing, nil
			}
			return registry.ValueResult(v), nil
		}
	case query.FilterQueryArgument:
		nodes := e.evalQuery(a.Query, root, current)
		return registry.NodesResult(nodes.Values()), nil
	case query.LogicalExprArgument:
		if nestedFn, ok := a.Expr.(query.FunctionExpr); ok {
			return e.callFunction(nestedFn, root, current)
		}
		return registry.LogicalResult(e.evalLogical(a.Expr, root, current)), nil
	default:
		return registry.Result{}, unknownFunctionError("")
	}
}
