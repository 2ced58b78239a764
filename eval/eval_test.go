package eval

import (
	"testing"

	"github.com/arnodel/spath/parser"
	"github.com/arnodel/spath/query"
	"github.com/arnodel/spath/registry"
	"github.com/arnodel/spath/variant"
)

func obj(keys []string, vals map[string]variant.Value) variant.Value {
	return variant.NewObject(keys, vals)
}

func arr(vals ...variant.Value) variant.Value {
	return variant.NewArray(vals)
}

func buildStore() variant.Value {
	book := func(title string, price float64) variant.Value {
		return obj([]string{"title", "price"}, map[string]variant.Value{
			"title": variant.String(title),
			"price": variant.Float(price),
		})
	}
	books := arr(book("Sword", 12.5), book("Saga", 8.99), book("Epic", 22.0))
	store := obj([]string{"book"}, map[string]variant.Value{"book": books})
	return obj([]string{"store"}, map[string]variant.Value{"store": store})
}

func mustParse(t *testing.T, reg *registry.Registry, q string) *query.Query {
	t.Helper()
	parsed, err := parser.Parse(q, reg)
	if err != nil {
		t.Fatalf("parse %q: %s", q, err)
	}
	return parsed
}

func TestChildAndWildcard(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	e := New(reg)
	root := buildStore()

	q := mustParse(t, reg, "$.store.book[*].title")
	got := e.Query(q, root)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	titles := []string{"Sword", "Saga", "Epic"}
	for i, v := range got {
		s, _ := v.AsString()
		if s != titles[i] {
			t.Errorf("result %d: got %q, want %q", i, s, titles[i])
		}
	}
}

func TestIndexAndSlice(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	e := New(reg)
	root := buildStore()

	q := mustParse(t, reg, "$.store.book[-1].title")
	got := e.Query(q, root)
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	s, _ := got[0].AsString()
	if s != "Epic" {
		t.Errorf("got %q, want Epic", s)
	}

	q = mustParse(t, reg, "$.store.book[1:]")
	got = e.Query(q, root)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
}

func TestFilterComparison(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	e := New(reg)
	root := buildStore()

	q := mustParse(t, reg, "$.store.book[?@.price < 10]")
	got := e.Query(q, root)
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
}

func TestDescendant(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	e := New(reg)
	root := buildStore()

	q := mustParse(t, reg, "$..title")
	got := e.Query(q, root)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
}

func TestFunctionLength(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	e := New(reg)
	root := buildStore()

	q := mustParse(t, reg, `$.store.book[?length(@.title) > 4]`)
	got := e.Query(q, root)
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1 (Sword)", len(got))
	}
}

func TestFunctionCountOverSingularQuery(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	e := New(reg)
	root := buildStore()

	q := mustParse(t, reg, `$.store.book[?count(@.title) == 1]`)
	got := e.Query(q, root)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3 (every book has a title)", len(got))
	}

	q = mustParse(t, reg, `$.store.book[?count(@.nonexistent) == 0]`)
	got = e.Query(q, root)
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3 (no book has a nonexistent field)", len(got))
	}
}

func TestLocatedNodesProduceNormalizedPaths(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	e := New(reg)
	root := buildStore()

	q := mustParse(t, reg, "$.store.book[0].title")
	got := e.QueryLocated(q, root)
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if want := "$['store']['book'][0]['title']"; got[0].Path.String() != want {
		t.Errorf("got path %q, want %q", got[0].Path.String(), want)
	}
}
