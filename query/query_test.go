package query

import "testing"

func TestAsSingularQuery(t *testing.T) {
	q := &Query{
		RootNode: Root,
		Segments: []Segment{
			{Selectors: []Selector{NameSelector{Name: "store"}}},
			{Selectors: []Selector{NameSelector{Name: "book"}}},
			{Selectors: []Selector{IndexSelector{Index: 0}}},
		},
	}
	sq, ok := q.AsSingularQuery()
	if !ok {
		t.Fatal("expected singular query")
	}
	if got, want := sq.String(), "$.store.book[0]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAsSingularQueryRejectsWildcard(t *testing.T) {
	q := &Query{
		RootNode: Root,
		Segments: []Segment{
			{Selectors: []Selector{WildcardSelector{}}},
		},
	}
	if _, ok := q.AsSingularQuery(); ok {
		t.Fatal("wildcard query must not be singular")
	}
}

func TestAsSingularQueryRejectsDescendant(t *testing.T) {
	q := &Query{
		RootNode: Root,
		Segments: []Segment{
			{Descendant: true, Selectors: []Selector{NameSelector{Name: "a"}}},
		},
	}
	if _, ok := q.AsSingularQuery(); ok {
		t.Fatal("descendant query must not be singular")
	}
}

func TestSingularQueryStringQuotesNonPlainName(t *testing.T) {
	sq := &SingularQuery{
		RootNode: Current,
		Segments: []SingularSegment{NameSegment{Name: "a b"}},
	}
	if got, want := sq.String(), `@["a b"]`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestQueryStringRoundTrip(t *testing.T) {
	q := &Query{
		RootNode: Root,
		Segments: []Segment{
			{Selectors: []Selector{WildcardSelector{}}},
			{Descendant: true, Selectors: []Selector{NameSelector{Name: "name"}}},
		},
	}
	if got, want := q.String(), "$.*..name"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
