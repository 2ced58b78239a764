package registry

import (
	"regexp"

	"github.com/arnodel/spath/variant"
)

var builtins = []*FunctionDef{
	lengthFunc,
	countFunc,
	valueFunc,
	matchFunc,
	searchFunc,
}

var lengthFunc = &FunctionDef{
	Name:       "length",
	ParamTypes: []SPathType{ValueType},
	ResultType: ValueType,
	Call: func(args []Result) (Result, error) {
		v := args[0].Value
		if v == nil {
			return Nothing, nil
		}
		if s, ok := v.AsString(); ok {
			return ValueResult(variant.Int(int64(len([]rune(s))))), nil
		}
		if a, ok := v.AsArray(); ok {
			return ValueResult(variant.Int(int64(a.Len()))), nil
		}
		if o, ok := v.AsObject(); ok {
			return ValueResult(variant.Int(int64(o.Len()))), nil
		}
		return Nothing, nil
	},
}

var countFunc = &FunctionDef{
	Name:       "count",
	ParamTypes: []SPathType{NodesType},
	ResultType: ValueType,
	Call: func(args []Result) (Result, error) {
		return ValueResult(variant.Int(int64(len(args[0].Nodes)))), nil
	},
}

var valueFunc = &FunctionDef{
	Name:       "value",
	ParamTypes: []SPathType{NodesType},
	ResultType: ValueType,
	Call: func(args []Result) (Result, error) {
		nodes := args[0].Nodes
		if len(nodes) != 1 {
			return Nothing, nil
		}
		return ValueResult(nodes[0]), nil
	},
}

var matchFunc = &FunctionDef{
	Name:       "match",
	ParamTypes: []SPathType{ValueType, ValueType},
	ResultType: LogicalType,
	Call: func(args []Result) (Result, error) {
		return LogicalResult(runRegexTest(args, compileMatch)), nil
	},
}

var searchFunc = &FunctionDef{
	Name:       "search",
	ParamTypes: []SPathType{ValueType, ValueType},
	ResultType: LogicalType,
	Call: func(args []Result) (Result, error) {
		return LogicalResult(runRegexTest(args, compileSearch)), nil
	},
}

func runRegexTest(args []Result, compile func(string) (*regexp.Regexp, error)) bool {
	if args[0].Value == nil || args[1].Value == nil {
		return false
	}
	subject, ok := args[0].Value.AsString()
	if !ok {
		return false
	}
	pattern, ok := args[1].Value.AsString()
	if !ok {
		return false
	}
	re, err := compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(subject)
}
