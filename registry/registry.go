package registry

import "fmt"

// FunctionDef is one entry of the function extension registry: its
// signature (used by the parser to validate calls statically) and its
// implementation (used by the evaluator once arguments are evaluated).
type FunctionDef struct {
	Name       string
	ParamTypes []SPathType
	ResultType SPathType

	// Call runs the function given already-evaluated arguments, one per
	// ParamTypes entry (the parser guarantees the arity and static type
	// match before the evaluator ever calls this).
	Call func(args []Result) (Result, error)
}

// Registry is a lookup table of function definitions, keyed by name.
type Registry struct {
	funcs map[string]*FunctionDef
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]*FunctionDef)}
}

// NewDefaultRegistry returns a registry pre-populated with the five
// built-in functions RFC 9535 defines: length, count, value, match, search.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range builtins {
		r.Register(def)
	}
	return r
}

// Register adds or replaces a function definition.
func (r *Registry) Register(def *FunctionDef) {
	r.funcs[def.Name] = def
}

// Lookup returns the definition for name, if registered.
func (r *Registry) Lookup(name string) (*FunctionDef, bool) {
	def, ok := r.funcs[name]
	return def, ok
}

// Arity returns the number of parameters name expects, for error messages.
func (r *Registry) Arity(name string) (int, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("unknown function %q", name)
	}
	return len(def.ParamTypes), nil
}
