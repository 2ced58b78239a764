package lexer

import "testing"

func collect(t *testing.T, src string) []Token {
	t.Helper()
	l := New(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %s", err)
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks
		}
	}
}

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestBasicQuery(t *testing.T) {
	toks := collect(t, "$.store.book[*].author")
	want := []Kind{Dollar, Dot, Name, Dot, Name, LBracket, Star, RBracket, Dot, Name, EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDescendantAndFilter(t *testing.T) {
	toks := collect(t, `$..book[?@.price < 10]`)
	want := []Kind{Dollar, DotDot, Name, LBracket, Question, At, Dot, Name, Lt, Int, RBracket, EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStringLiterals(t *testing.T) {
	toks := collect(t, `"hello \"world\""`)
	if toks[0].Kind != String || toks[0].StrValue != `hello "world"` {
		t.Errorf("got %+v", toks[0])
	}

	toks = collect(t, `'it''s'`)
	// A bare quote ends the string literal (escaping uses \', not
	// doubling), so this lexes as two adjacent string tokens: 'it' 's'.
	if toks[0].Kind != String || toks[0].StrValue != "it" {
		t.Errorf("expected string token 'it', got %+v", toks[0])
	}
	if toks[1].Kind != String || toks[1].StrValue != "s" {
		t.Errorf("expected string token 's', got %+v", toks[1])
	}
}

func TestSingleQuotedEscape(t *testing.T) {
	toks := collect(t, `'it\'s'`)
	if toks[0].Kind != String || toks[0].StrValue != "it's" {
		t.Errorf("got %+v", toks[0])
	}
}

func TestNumbersAndKeywords(t *testing.T) {
	toks := collect(t, `-1 1.5 1e10 1.5e-10 true false null`)
	want := []Kind{Int, Number, Number, Number, True, False, Null, EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestComparisonOperators(t *testing.T) {
	toks := collect(t, "== != <= >= < > && || !")
	want := []Kind{Eq, Ne, Le, Ge, Lt, Gt, And, Or, Not, EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	l := New("$.a#bc")
	l.pos = 3
	tok, err := l.Next()
	if err == nil {
		t.Fatal("expected error for unexpected character")
	}
	if err.Error() != "failed to recognize the rest tokens" {
		t.Errorf("got message %q, want %q", err.Error(), "failed to recognize the rest tokens")
	}
	want := Span{3, 6}
	if tok.Span != want {
		t.Errorf("got span %v, want %v (failing offset through end of input)", tok.Span, want)
	}
}
