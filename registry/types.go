// Package registry implements the SPath function extension type system and
// the built-in function library (length, count, value, match, search). It
// is grounded on the teacher's transform/jsonpath/function.go (the
// registry map and ConvertsTo rule) and on
// _examples/other_examples/ea19e7b6_theory-jsonpath__spec-function.go.go
// for the split between parse-time argument validation and run-time
// evaluation, which the teacher's single-closure Run method does not have.
package registry

import "github.com/arnodel/spath/variant"

// SPathType is one of the three function-expression types RFC 9535 defines.
type SPathType int

const (
	ValueType SPathType = iota
	LogicalType
	NodesType
)

func (t SPathType) String() string {
	switch t {
	case ValueType:
		return "ValueType"
	case LogicalType:
		return "LogicalType"
	case NodesType:
		return "NodesType"
	default:
		return "unknown"
	}
}

// ConvertsTo reports whether a value of type t may be used where target is
// expected. Every type converts to itself; additionally a NodesType result
// converts to LogicalType by existence test (non-empty nodelist is true).
// No other conversion is allowed: in particular a ValueType never converts
// to LogicalType, and neither LogicalType nor ValueType convert to
// NodesType.
func (t SPathType) ConvertsTo(target SPathType) bool {
	if t == target {
		return true
	}
	return t == NodesType && target == LogicalType
}

// Result is an already-evaluated function argument or function result. At
// most one of Value/Logical/Nodes is meaningful, selected by Type. A
// ValueType Result with Value == nil represents Nothing (RFC 9535's
// absence-of-value, e.g. from a singular query that selected no node).
type Result struct {
	Type    SPathType
	Value   variant.Value
	Logical bool
	Nodes   []variant.Value
}

// Nothing is the ValueType Result representing absence of a value.
var Nothing = Result{Type: ValueType, Value: nil}

// ValueResult wraps a concrete value as a ValueType Result.
func ValueResult(v variant.Value) Result {
	return Result{Type: ValueType, Value: v}
}

// LogicalResult wraps a bool as a LogicalType Result.
func LogicalResult(b bool) Result {
	return Result{Type: LogicalType, Logical: b}
}

// NodesResult wraps a nodelist as a NodesType Result.
func NodesResult(nodes []variant.Value) Result {
	return Result{Type: NodesType, Nodes: nodes}
}

// IsTruthy converts any Result to its boolean existence/truth value, used
// when a function result is consulted in logical (test-expression)
// position: a ValueType result is truthy iff it is not Nothing, a
// LogicalType result is its own bool, a NodesType result is truthy iff
// non-empty.
func (r Result) IsTruthy() bool {
	switch r.Type {
	case ValueType:
		return r.Value != nil
	case LogicalType:
		return r.Logical
	case NodesType:
		return len(r.Nodes) > 0
	default:
		return false
	}
}
