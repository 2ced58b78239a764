package parser

import (
	"testing"

	"github.com/arnodel/spath/registry"
)

func TestParseAcceptsSingularQueryAsNodesTypeArgument(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	if _, err := Parse(`$.store.book[?count(@.title) == 1]`, reg); err != nil {
		t.Fatalf("count(@.title) should type-check: a singular query is a valid NodesType argument, got %s", err)
	}
}

func TestParseAcceptsSingularQueryAsValueTypeArgument(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	if _, err := Parse(`$.store.book[?match(@.title, 'S.*') || count(@.author) > 0]`, reg); err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}
}

func TestParseRejectsWrongArgumentCount(t *testing.T) {
	reg := registry.NewDefaultRegistry()
	if _, err := Parse(`$.store.book[?length(@.title, @.price) > 0]`, reg); err == nil {
		t.Fatal("expected a parse error for a function called with the wrong number of arguments")
	}
}
