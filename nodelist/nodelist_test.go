package nodelist

import (
	"testing"

	"github.com/arnodel/spath/path"
	"github.com/arnodel/spath/variant"
)

func TestDedup(t *testing.T) {
	p := path.Root.Append(path.Name("a"))
	l := LocatedNodeList{
		{Value: variant.Int(1), Path: p},
		{Value: variant.Int(1), Path: p},
		{Value: variant.Int(2), Path: path.Root.Append(path.Name("b"))},
	}
	out := l.Dedup()
	if len(out) != 2 {
		t.Fatalf("got %d nodes, want 2", len(out))
	}
}

func TestAtMostOne(t *testing.T) {
	v, err := NodeList{}.AtMostOne()
	if err != nil || v != nil {
		t.Errorf("got %v, %v, want nil, nil for an empty list", v, err)
	}
	v, err = NodeList{variant.Int(3)}.AtMostOne()
	if err != nil || !v.Equal(variant.Int(3)) {
		t.Errorf("got %v, %v", v, err)
	}
	_, err = NodeList{variant.Int(1), variant.Int(2)}.AtMostOne()
	if e, ok := err.(*AtMostOneError); !ok {
		t.Fatalf("got error of type %T, want *AtMostOneError", err)
	} else if e.Count != 2 {
		t.Errorf("got count %d, want 2", e.Count)
	}
}

func TestExactlyOne(t *testing.T) {
	_, err := NodeList{}.ExactlyOne()
	e, ok := err.(*ExactlyOneError)
	if !ok || !e.Empty {
		t.Errorf("expected an empty ExactlyOneError, got %v", err)
	}

	_, err = NodeList{variant.Int(1), variant.Int(2)}.ExactlyOne()
	e, ok = err.(*ExactlyOneError)
	if !ok || e.Empty || e.Count != 2 {
		t.Errorf("expected a more-than-one ExactlyOneError with count 2, got %v", err)
	}

	v, err := NodeList{variant.Int(3)}.ExactlyOne()
	if err != nil || !v.Equal(variant.Int(3)) {
		t.Errorf("got %v, %v", v, err)
	}
}
