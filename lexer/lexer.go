package lexer

import (
	"errors"
	"regexp"
	"strconv"
)

type rule struct {
	kind Kind
	re   *regexp.Regexp
}

// The table below is deliberately close to the teacher's own
// internal/jsonpath/parser/lexer.go: one regexp per token kind, tried in
// order at the current offset. Multi-character operators are listed before
// their single-character prefixes so '==' is never split into two '=' (an
// '=' token doesn't even exist, so this mostly matters for '&&'/'||' vs
// a stray '&'/'|', which are simply invalid).
var rules = []rule{
	{DotDot, regexp.MustCompile(`^\.\.`)},
	{Dot, regexp.MustCompile(`^\.`)},
	{And, regexp.MustCompile(`^&&`)},
	{Or, regexp.MustCompile(`^\|\|`)},
	{Eq, regexp.MustCompile(`^==`)},
	{Ne, regexp.MustCompile(`^!=`)},
	{Le, regexp.MustCompile(`^<=`)},
	{Ge, regexp.MustCompile(`^>=`)},
	{Not, regexp.MustCompile(`^!`)},
	{Lt, regexp.MustCompile(`^<`)},
	{Gt, regexp.MustCompile(`^>`)},
	{Dollar, regexp.MustCompile(`^\$`)},
	{At, regexp.MustCompile(`^@`)},
	{Star, regexp.MustCompile(`^\*`)},
	{LBracket, regexp.MustCompile(`^\[`)},
	{RBracket, regexp.MustCompile(`^\]`)},
	{LParen, regexp.MustCompile(`^\(`)},
	{RParen, regexp.MustCompile(`^\)`)},
	{Comma, regexp.MustCompile(`^,`)},
	{Colon, regexp.MustCompile(`^:`)},
	{Question, regexp.MustCompile(`^\?`)},
	{Number, regexp.MustCompile(`^-?\d+(\.\d+[eE][+-]?\d+|\.\d+|[eE][+-]?\d+)`)},
	{Int, regexp.MustCompile(`^-?\d+`)},
	{String, regexp.MustCompile(`^"(?:[^"\\]|\\.)*"`)},
	{String, regexp.MustCompile(`^'(?:[^'\\]|\\.)*'`)},
	{Name, regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)},
}

var whitespaceRe = regexp.MustCompile(`^[ \t\n\r]+`)

var keywords = map[string]Kind{
	"true":  True,
	"false": False,
	"null":  Null,
}

// Lexer scans a query string into a flat token stream.
type Lexer struct {
	src string
	pos int
}

// New returns a lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Pos returns the current byte offset into the source.
func (l *Lexer) Pos() int { return l.pos }

// Next scans and returns the next token. At end of input it returns a Kind
// EOF token forever; on a lexical error it returns a Kind Error token
// spanning from the failing offset through the end of input, along with a
// non-nil error.
func (l *Lexer) Next() (Token, error) {
	if m := whitespaceRe.FindStringIndex(l.src[l.pos:]); m != nil {
		l.pos += m[1]
	}
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Span: Span{l.pos, l.pos}}, nil
	}
	rest := l.src[l.pos:]
	for _, r := range rules {
		loc := r.re.FindStringIndex(rest)
		if loc == nil || loc[0] != 0 {
			continue
		}
		start := l.pos
		end := l.pos + loc[1]
		text := l.src[start:end]
		l.pos = end
		tok := Token{Kind: r.kind, Span: Span{start, end}, Text: text}
		if r.kind == Name {
			if kw, ok := keywords[text]; ok {
				tok.Kind = kw
			}
		}
		if r.kind == Int {
			if n, err := strconv.ParseInt(text, 10, 64); err == nil {
				tok.IntValue = n
			}
		}
		if r.kind == Number {
			if f, err := strconv.ParseFloat(text, 64); err == nil {
				tok.NumValue = f
			}
		}
		if r.kind == String {
			unescaped, err := unescapeString(text)
			if err != nil {
				return Token{Kind: Error, Span: tok.Span, Text: text}, err
			}
			tok.StrValue = unescaped
		}
		return tok, nil
	}
	return Token{Kind: Error, Span: Span{l.pos, len(l.src)}, Text: rest},
		errors.New("failed to recognize the rest tokens")
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	save := l.pos
	tok, err := l.Next()
	l.pos = save
	return tok, err
}
