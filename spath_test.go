package spath

import (
	"testing"

	"github.com/arnodel/spath/variant"
)

func sampleDoc() variant.Value {
	book := func(title string, price float64) variant.Value {
		return variant.NewObject([]string{"title", "price"}, map[string]variant.Value{
			"title": variant.String(title),
			"price": variant.Float(price),
		})
	}
	books := variant.NewArray([]variant.Value{
		book("Sword", 12.5),
		book("Saga", 8.99),
	})
	store := variant.NewObject([]string{"book"}, map[string]variant.Value{"book": books})
	return variant.NewObject([]string{"store"}, map[string]variant.Value{"store": store})
}

func TestParseAndQuery(t *testing.T) {
	sp, err := Parse("$.store.book[?@.price < 10].title")
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	got := sp.Query(sampleDoc())
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	s, ok := got[0].AsString()
	if !ok || s != "Saga" {
		t.Errorf("got %v, want Saga", got[0])
	}
}

func TestParseRejectsBadSyntax(t *testing.T) {
	if _, err := Parse("store.book"); err == nil {
		t.Fatal("expected an error for a query missing its root identifier")
	}
}

func TestParseRejectsUnknownFunction(t *testing.T) {
	if _, err := Parse("$[?nosuchfunc(@.x)]"); err == nil {
		t.Fatal("expected an error for an unregistered function call")
	}
}

func TestQueryLocatedPaths(t *testing.T) {
	sp, err := Parse("$.store.book[*].title")
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	got := sp.QueryLocated(sampleDoc())
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	want := []string{"$['store']['book'][0]['title']", "$['store']['book'][1]['title']"}
	for i, n := range got {
		if n.Path.String() != want[i] {
			t.Errorf("result %d: got path %q, want %q", i, n.Path.String(), want[i])
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	sp, err := Parse("$.store.book[?@.price<10].title")
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if got, want := sp.String(), "$.store.book[?@.price < 10].title"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
