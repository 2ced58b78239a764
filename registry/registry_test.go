package registry

import (
	"testing"

	"github.com/arnodel/spath/variant"
)

func TestLengthFunc(t *testing.T) {
	r := NewDefaultRegistry()
	def, ok := r.Lookup("length")
	if !ok {
		t.Fatal("length not registered")
	}
	res, err := def.Call([]Result{ValueResult(variant.String("hello"))})
	if err != nil {
		t.Fatal(err)
	}
	if res.Value == nil || !res.Value.Equal(variant.Int(5)) {
		t.Errorf("got %+v, want 5", res.Value)
	}

	res, err = def.Call([]Result{ValueResult(variant.Int(5))})
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != nil {
		t.Errorf("length of a number should be Nothing, got %+v", res.Value)
	}
}

func TestCountAndValueFuncs(t *testing.T) {
	r := NewDefaultRegistry()
	count, _ := r.Lookup("count")
	value, _ := r.Lookup("value")

	nodes := []variant.Value{variant.Int(1), variant.Int(2)}
	res, err := count.Call([]Result{NodesResult(nodes)})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Value.Equal(variant.Int(2)) {
		t.Errorf("count got %+v, want 2", res.Value)
	}

	res, err = value.Call([]Result{NodesResult(nodes)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Value != nil {
		t.Error("value() of a 2-node list should be Nothing")
	}

	res, err = value.Call([]Result{NodesResult(nodes[:1])})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Value.Equal(variant.Int(1)) {
		t.Errorf("value() of a 1-node list got %+v, want 1", res.Value)
	}
}

func TestMatchAndSearch(t *testing.T) {
	r := NewDefaultRegistry()
	match, _ := r.Lookup("match")
	search, _ := r.Lookup("search")

	res, err := match.Call([]Result{
		ValueResult(variant.String("abc")),
		ValueResult(variant.String("a.c")),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Logical {
		t.Error("expected match to succeed on full string")
	}

	res, _ = match.Call([]Result{
		ValueResult(variant.String("xabcx")),
		ValueResult(variant.String("a.c")),
	})
	if res.Logical {
		t.Error("match must anchor to the whole subject")
	}

	res, err = search.Call([]Result{
		ValueResult(variant.String("xabcx")),
		ValueResult(variant.String("a.c")),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Logical {
		t.Error("expected search to find a match as a substring")
	}
}

func TestDotExcludesNewline(t *testing.T) {
	r := NewDefaultRegistry()
	match, _ := r.Lookup("match")
	res, _ := match.Call([]Result{
		ValueResult(variant.String("a\nc")),
		ValueResult(variant.String("a.c")),
	})
	if res.Logical {
		t.Error("I-Regexp '.' must not match a newline")
	}
}
