package registry

import (
	"fmt"

	"github.com/arnodel/spath/query"
)

// ArgumentType reports the SPathType that arg is being asked to supply at
// a particular parameter position, given the callee's declared target type
// for that position. Most argument shapes have exactly one intrinsic type,
// but a singular query (e.g. @.a) is special: RFC 9535 allows it in
// ValueType, LogicalType, and NodesType position alike (as a value, as an
// existence test, and as the at-most-one-element nodelist it would select),
// so it converts to whatever the callee expects rather than to one fixed
// type - mirroring the original's FunctionArgType::converts_to.
func ArgumentType(arg query.FunctionArgument, reg *Registry, target SPathType) (SPathType, error) {
	switch a := arg.(type) {
	case query.LiteralArgument:
		return ValueType, nil
	case query.SingularQueryArgument:
		return target, nil
	case query.FilterQueryArgument:
		return NodesType, nil
	case query.LogicalExprArgument:
		return logicalExprType(a.Expr, reg)
	default:
		return 0, fmt.Errorf("unrecognised function argument %T", arg)
	}
}

// logicalExprType returns the static type a LogicalExpr produces when used
// as a function argument: a bare function call keeps that function's own
// declared result type (so a NodesType-returning function nested inside
// another call still offers a NodesType value), anything else is
// LogicalType.
func logicalExprType(expr query.LogicalExpr, reg *Registry) (SPathType, error) {
	if fe, ok := expr.(query.FunctionExpr); ok {
		def, ok := reg.Lookup(fe.Name)
		if !ok {
			return 0, fmt.Errorf("unknown function %q", fe.Name)
		}
		return def.ResultType, nil
	}
	return LogicalType, nil
}
