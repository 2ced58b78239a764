// Package parser implements a hand-written recursive-descent parser from
// SPath query text to a query.Query tree. Its control flow is grounded on
// _examples/other_examples/07fc90a7_theory-jsonpath__parser-parse.go.go
// (single-token lookahead, a scan/unexpected idiom); its production names
// and the tree it builds follow the teacher's
// internal/jsonpath/parser/grammar.go and internal/jsonpath/ast/ast.go.
// See DESIGN.md for why this is hand-written rather than built on the
// teacher's arnodel/grammar dependency.
package parser

import (
	"fmt"

	"github.com/arnodel/spath/diag"
	"github.com/arnodel/spath/lexer"
	"github.com/arnodel/spath/query"
	"github.com/arnodel/spath/registry"
)

type parser struct {
	lex    *lexer.Lexer
	tok    lexer.Token
	src    string
	reg    *registry.Registry
}

// Parse parses a complete SPath query (a root-anchored query, i.e. one
// starting with '$') against the given function registry, used to
// validate function calls as they are parsed.
func Parse(src string, reg *registry.Registry) (*query.Query, error) {
	p := &parser{src: src, reg: reg, lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.Kind != lexer.Dollar {
		return nil, p.errorf("a query must start with '$'")
	}
	q, err := p.parseRootedQuery(query.Root)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != lexer.EOF {
		return nil, p.errorf("unexpected %s after query", p.tok.Kind)
	}
	return q, nil
}

func (p *parser) advance() error {
	tok, err := p.lex.Next()
	p.tok = tok
	if err != nil {
		return p.errorf("%s", err)
	}
	if tok.Kind == lexer.Error {
		return p.errorf("invalid token %q", tok.Text)
	}
	return nil
}

func (p *parser) errorf(format string, args ...any) *diag.Error {
	return diag.New(fmt.Sprintf(format, args...), p.tok.Span, p.src)
}

func (p *parser) expect(k lexer.Kind) error {
	if p.tok.Kind != k {
		return p.errorf("expected %s, got %s", k, p.tok.Kind)
	}
	return p.advance()
}

// parseRootedQuery consumes the root token ($ or @, already checked by the
// caller) and the segments that follow.
func (p *parser) parseRootedQuery(root query.RootKind) (*query.Query, error) {
	if err := p.advance(); err != nil { // consume '$' or '@'
		return nil, err
	}
	segs, err := p.parseSegments()
	if err != nil {
		return nil, err
	}
	return &query.Query{RootNode: root, Segments: segs}, nil
}

func (p *parser) parseSegments() ([]query.Segment, error) {
	var segs []query.Segment
	for {
		switch p.tok.Kind {
		case lexer.DotDot:
			if err := p.advance(); err != nil {
				return nil, err
			}
			sels, err := p.parseDescendantSelectors()
			if err != nil {
				return nil, err
			}
			segs = append(segs, query.Segment{Descendant: true, Selectors: sels})
		case lexer.Dot:
			if err := p.advance(); err != nil {
				return nil, err
			}
			sel, err := p.parseDotSelector()
			if err != nil {
				return nil, err
			}
			segs = append(segs, query.Segment{Selectors: []query.Selector{sel}})
		case lexer.LBracket:
			sels, err := p.parseBracketedSelection()
			if err != nil {
				return nil, err
			}
			segs = append(segs, query.Segment{Selectors: sels})
		default:
			return segs, nil
		}
	}
}

func (p *parser) parseDotSelector() (query.Selector, error) {
	switch p.tok.Kind {
	case lexer.Star:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return query.WildcardSelector{}, nil
	case lexer.Name:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return query.NameSelector{Name: name}, nil
	default:
		return nil, p.errorf("expected a name or '*' after '.', got %s", p.tok.Kind)
	}
}

// parseDescendantSelectors handles what follows '..': a bracketed
// selection, a wildcard, or a bare member name (note: no further '.' here,
// the ".." already supplies it).
func (p *parser) parseDescendantSelectors() ([]query.Selector, error) {
	switch p.tok.Kind {
	case lexer.LBracket:
		return p.parseBracketedSelection()
	case lexer.Star:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []query.Selector{query.WildcardSelector{}}, nil
	case lexer.Name:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		return []query.Selector{query.NameSelector{Name: name}}, nil
	default:
		return nil, p.errorf("expected a selector after '..', got %s", p.tok.Kind)
	}
}

func (p *parser) parseBracketedSelection() ([]query.Selector, error) {
	if err := p.expect(lexer.LBracket); err != nil {
		return nil, err
	}
	var sels []query.Selector
	for {
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		if p.tok.Kind == lexer.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(lexer.RBracket); err != nil {
		return nil, err
	}
	return sels, nil
}

func (p *parser) parseSelector() (query.Selector, error) {
	switch p.tok.Kind {
	case lexer.String:
		name := p.tok.StrValue
		if err := p.advance(); err != nil {
			return nil, err
		}
		return query.NameSelector{Name: name}, nil
	case lexer.Star:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return query.WildcardSelector{}, nil
	case lexer.Question:
		if err := p.advance(); err != nil {
			return nil, err
		}
		cond, err := p.parseLogicalExpr()
		if err != nil {
			return nil, err
		}
		return query.FilterSelector{Condition: cond}, nil
	case lexer.Colon:
		return p.parseSliceSelector(nil)
	case lexer.Int:
		n, err := parseIntText(p.tok.Text)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == lexer.Colon {
			return p.parseSliceSelector(&n)
		}
		return query.IndexSelector{Index: n}, nil
	default:
		return nil, p.errorf("expected a selector, got %s", p.tok.Kind)
	}
}

// parseSliceSelector is called with p.tok positioned at the ':' that
// follows an (optional, already-parsed) start index.
func (p *parser) parseSliceSelector(start *int64) (query.Selector, error) {
	if err := p.expect(lexer.Colon); err != nil {
		return nil, err
	}
	var end *int64
	if p.tok.Kind == lexer.Int {
		n, err := parseIntText(p.tok.Text)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		end = &n
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	step := int64(1)
	if p.tok.Kind == lexer.Colon {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == lexer.Int {
			n, err := parseIntText(p.tok.Text)
			if err != nil {
				return nil, p.errorf("%s", err)
			}
			step = n
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	return query.SliceSelector{Start: start, End: end, Step: step}, nil
}
