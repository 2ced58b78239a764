// Package variant defines the backend-agnostic value model the query engine
// walks. A backend (package backend/json, backend/toml) only has to produce
// values satisfying these interfaces; everything above this layer -
// selectors, filters, functions - is written once against Value/Array/Object
// and never against a concrete document type.
package variant

// Kind classifies a Value the way the selectors and comparison operators
// need to distinguish them. It deliberately does not split Number into
// int/float: whether a backend represents 1 and 1.0 as distinct is a
// backend concern, resolved by Equal/IsLessThan, not by Kind.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	ArrayKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return "unknown"
	}
}

// Value is any node a query can land on: a scalar, an array or an object.
// Implementations must be safe to read repeatedly and from multiple
// goroutines - the evaluator never mutates a Value and may revisit one
// many times (e.g. once per branch of a union selector).
type Value interface {
	Kind() Kind

	// AsBool, AsString, AsArray and AsObject narrow the value to its
	// concrete shape. The bool result reports whether the narrowing
	// succeeded; on failure the first result is the zero value.
	AsBool() (bool, bool)
	AsString() (string, bool)
	AsArray() (Array, bool)
	AsObject() (Object, bool)

	// Equal implements RFC 9535 ComparisonExpr equality: type mismatches
	// are never equal, arrays/objects compare deeply, numbers compare by
	// mathematical value regardless of int/float representation.
	Equal(other Value) bool

	// IsLessThan implements RFC 9535 ordering: only defined between two
	// numbers or two strings. ok is false for any other pairing, in which
	// case the comparison result must be treated as "not less than".
	IsLessThan(other Value) (result bool, ok bool)
}

// Array is an ordered, 0-indexed sequence of values.
type Array interface {
	Len() int
	Get(i int) Value
}

// Object is an ordered mapping from string keys to values. Implementations
// must preserve the order in which keys first appeared in the source
// document: this is load-bearing for the query engine's document-order
// guarantees over object member selectors.
type Object interface {
	Len() int
	Keys() []string
	Get(key string) (Value, bool)
}

// IsTruthy reports whether a value participates as "existing" for the
// purposes of a filter's existence test. Every value - including false,
// zero and the empty string - is truthy in this sense; only the complete
// absence of a value (Nothing, see the eval package) is not.
func IsTruthy(v Value) bool {
	return v != nil
}

// DeepEqual walks two values structurally. It is used by Value
// implementations to satisfy Equal for Array/Object kinds without every
// backend re-implementing the recursion.
func DeepEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case ArrayKind:
		aa, _ := a.AsArray()
		bb, _ := b.AsArray()
		if aa.Len() != bb.Len() {
			return false
		}
		for i := 0; i < aa.Len(); i++ {
			if !DeepEqual(aa.Get(i), bb.Get(i)) {
				return false
			}
		}
		return true
	case ObjectKind:
		ao, _ := a.AsObject()
		bo, _ := b.AsObject()
		if ao.Len() != bo.Len() {
			return false
		}
		for _, k := range ao.Keys() {
			av, _ := ao.Get(k)
			bv, ok := bo.Get(k)
			if !ok || !DeepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return a.Equal(b)
	}
}
