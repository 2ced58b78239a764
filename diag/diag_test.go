package diag

import "testing"

func TestRenderPlain(t *testing.T) {
	e := New("unexpected end of input", Span{Start: 5, End: 6}, "$.a[")
	out := Render(e, false)
	if out == "" {
		t.Fatal("expected non-empty render")
	}
	if got := e.Error(); got == "" {
		t.Fatal("expected non-empty Error() string")
	}
}

func TestWithContext(t *testing.T) {
	e := New("bad token", Span{Start: 0, End: 1}, "$")
	e2 := e.WithContext("in segment 1")
	e3 := e2.WithContext("in filter expression")
	if len(e3.Context) != 2 {
		t.Fatalf("expected 2 context frames, got %d", len(e3.Context))
	}
	if len(e.Context) != 0 {
		t.Fatal("WithContext must not mutate the receiver")
	}
}
