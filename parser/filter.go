package parser

import (
	"github.com/arnodel/spath/lexer"
	"github.com/arnodel/spath/query"
	"github.com/arnodel/spath/registry"
	"github.com/arnodel/spath/variant"
)

func (p *parser) parseLogicalExpr() (query.LogicalExpr, error) {
	return p.parseLogicalOrExpr()
}

func (p *parser) parseLogicalOrExpr() (query.LogicalExpr, error) {
	left, err := p.parseLogicalAndExpr()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == lexer.Or {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicalAndExpr()
		if err != nil {
			return nil, err
		}
		left = query.OrExpr{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseLogicalAndExpr() (query.LogicalExpr, error) {
	left, err := p.parseBasicExpr()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == lexer.And {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBasicExpr()
		if err != nil {
			return nil, err
		}
		left = query.AndExpr{Left: left, Right: right}
	}
	return left, nil
}

func isComparisonOp(k lexer.Kind) bool {
	switch k {
	case lexer.Eq, lexer.Ne, lexer.Lt, lexer.Le, lexer.Gt, lexer.Ge:
		return true
	default:
		return false
	}
}

func opFromToken(k lexer.Kind) query.ComparisonOp {
	switch k {
	case lexer.Eq:
		return query.OpEq
	case lexer.Ne:
		return query.OpNe
	case lexer.Lt:
		return query.OpLt
	case lexer.Le:
		return query.OpLe
	case lexer.Gt:
		return query.OpGt
	default:
		return query.OpGe
	}
}

// parseBasicExpr parses one of: paren-expr, comparison-expr, test-expr,
// per RFC 9535's basic-expr production. Rather than try each alternative
// and backtrack, it parses greedily - a leading '(' commits to paren-expr,
// a leading '$'/'@' or function call commits to a query/function-expr which
// is then either the left side of a comparison (if a comparison operator
// follows) or a bare existence/logical test (if not) - which this grammar
// supports without any backtracking since every alternative is distinguished
// by its first token or by what follows a fully-parsed query/function-expr.
func (p *parser) parseBasicExpr() (query.LogicalExpr, error) {
	negate := false
	if p.tok.Kind == lexer.Not {
		negate = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	switch p.tok.Kind {
	case lexer.LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseLogicalExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RParen); err != nil {
			return nil, err
		}
		return negated(inner, negate), nil

	case lexer.Dollar, lexer.At:
		root := query.Root
		if p.tok.Kind == lexer.At {
			root = query.Current
		}
		q, err := p.parseRootedQuery(root)
		if err != nil {
			return nil, err
		}
		if isComparisonOp(p.tok.Kind) {
			if negate {
				return nil, p.errorf("'!' cannot precede a comparison expression")
			}
			left, ok := comparableFromQuery(q)
			if !ok {
				return nil, p.errorf("the left side of a comparison must be a singular query")
			}
			return p.finishComparison(left)
		}
		return negated(query.TestExpr{Query: q}, negate), nil

	case lexer.Name:
		fn, err := p.parseFunctionExpr()
		if err != nil {
			return nil, err
		}
		if isComparisonOp(p.tok.Kind) {
			if negate {
				return nil, p.errorf("'!' cannot precede a comparison expression")
			}
			if fn.ResultType != registry.ValueType {
				return nil, p.errorf("function %q does not return a value and cannot be compared", fn.Name)
			}
			return p.finishComparison(query.FunctionComparable{Function: fn.Expr})
		}
		if fn.ResultType == registry.ValueType {
			return nil, p.errorf("function %q returns a value, not a boolean, and cannot be used as a test expression", fn.Name)
		}
		return negated(fn.Expr, negate), nil

	case lexer.String, lexer.Int, lexer.Number, lexer.True, lexer.False, lexer.Null:
		if negate {
			return nil, p.errorf("'!' cannot precede a comparison expression")
		}
		left, err := p.parseLiteralComparable()
		if err != nil {
			return nil, err
		}
		return p.finishComparison(left)

	default:
		return nil, p.errorf("expected a filter expression, got %s", p.tok.Kind)
	}
}

func negated(expr query.LogicalExpr, negate bool) query.LogicalExpr {
	if negate {
		return query.NotExpr{Expr: expr}
	}
	return expr
}

func (p *parser) finishComparison(left query.Comparable) (query.LogicalExpr, error) {
	if !isComparisonOp(p.tok.Kind) {
		return nil, p.errorf("expected a comparison operator, got %s", p.tok.Kind)
	}
	op := opFromToken(p.tok.Kind)
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseComparable()
	if err != nil {
		return nil, err
	}
	return query.ComparisonExpr{Left: left, Op: op, Right: right}, nil
}

// comparableFromQuery converts a just-parsed general query to a singular
// query comparable, failing if the query used any non-singular selector.
func comparableFromQuery(q *query.Query) (query.Comparable, bool) {
	sq, ok := q.AsSingularQuery()
	if !ok {
		return nil, false
	}
	return query.SingularQueryComparable{Query: sq}, true
}

func (p *parser) parseComparable() (query.Comparable, error) {
	switch p.tok.Kind {
	case lexer.String, lexer.Int, lexer.Number, lexer.True, lexer.False, lexer.Null:
		return p.parseLiteralComparable()
	case lexer.Dollar, lexer.At:
		root := query.Root
		if p.tok.Kind == lexer.At {
			root = query.Current
		}
		q, err := p.parseRootedQuery(root)
		if err != nil {
			return nil, err
		}
		left, ok := comparableFromQuery(q)
		if !ok {
			return nil, p.errorf("a comparison operand must be a singular query")
		}
		return left, nil
	case lexer.Name:
		fn, err := p.parseFunctionExpr()
		if err != nil {
			return nil, err
		}
		if fn.ResultType != registry.ValueType {
			return nil, p.errorf("function %q does not return a value and cannot be compared", fn.Name)
		}
		return query.FunctionComparable{Function: fn.Expr}, nil
	default:
		return nil, p.errorf("expected a comparable expression, got %s", p.tok.Kind)
	}
}

func (p *parser) parseLiteralComparable() (query.Comparable, error) {
	v, err := p.parseLiteralValue()
	if err != nil {
		return nil, err
	}
	return query.Literal{Value: v}, nil
}

func (p *parser) parseLiteralValue() (variant.Value, error) {
	switch p.tok.Kind {
	case lexer.String:
		v := variant.String(p.tok.StrValue)
		return v, p.advance()
	case lexer.Int:
		n, err := parseIntText(p.tok.Text)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		return variant.Int(n), p.advance()
	case lexer.Number:
		v, err := numberValue(p.tok.Text)
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		return v, p.advance()
	case lexer.True:
		return variant.Bool(true), p.advance()
	case lexer.False:
		return variant.Bool(false), p.advance()
	case lexer.Null:
		return variant.Nil, p.advance()
	default:
		return nil, p.errorf("expected a literal, got %s", p.tok.Kind)
	}
}

// parsedFunction bundles the parsed FunctionExpr with its statically known
// result type, since callers need the latter to validate where the call is
// used without looking the name up again.
type parsedFunction struct {
	Expr       query.FunctionExpr
	Name       string
	ResultType registry.SPathType
}

func (p *parser) parseFunctionExpr() (*parsedFunction, error) {
	name := p.tok.Text
	def, ok := p.reg.Lookup(name)
	if !ok {
		return nil, p.errorf("unknown function %q", name)
	}
	if err := p.advance(); err != nil { // consume function name
		return nil, err
	}
	if err := p.expect(lexer.LParen); err != nil {
		return nil, err
	}
	var args []query.FunctionArgument
	if p.tok.Kind != lexer.RParen {
		for {
			arg, err := p.parseFunctionArgument()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.tok.Kind == lexer.Comma {
				if err := p.advance(); err != nil {
					return nil, err
				}
				continue
			}
			break
		}
	}
	if err := p.expect(lexer.RParen); err != nil {
		return nil, err
	}
	if len(args) != len(def.ParamTypes) {
		return nil, p.errorf("function %q takes %d argument(s), got %d", name, len(def.ParamTypes), len(args))
	}
	for i, arg := range args {
		argType, err := registry.ArgumentType(arg, p.reg, def.ParamTypes[i])
		if err != nil {
			return nil, p.errorf("%s", err)
		}
		if !argType.ConvertsTo(def.ParamTypes[i]) {
			return nil, p.errorf("argument %d of %q has type %s, expected %s", i+1, name, argType, def.ParamTypes[i])
		}
	}
	return &parsedFunction{
		Expr:       query.FunctionExpr{Name: name, Args: args},
		Name:       name,
		ResultType: def.ResultType,
	}, nil
}

func (p *parser) parseFunctionArgument() (query.FunctionArgument, error) {
	switch p.tok.Kind {
	case lexer.String, lexer.Int, lexer.Number, lexer.True, lexer.False, lexer.Null:
		v, err := p.parseLiteralValue()
		if err != nil {
			return nil, err
		}
		return query.LiteralArgument{Value: v}, nil

	case lexer.Dollar, lexer.At:
		root := query.Root
		if p.tok.Kind == lexer.At {
			root = query.Current
		}
		q, err := p.parseRootedQuery(root)
		if err != nil {
			return nil, err
		}
		if sq, ok := q.AsSingularQuery(); ok {
			return query.SingularQueryArgument{Query: sq}, nil
		}
		return query.FilterQueryArgument{Query: q}, nil

	case lexer.Name:
		fn, err := p.parseFunctionExpr()
		if err != nil {
			return nil, err
		}
		return query.LogicalExprArgument{Expr: fn.Expr}, nil

	case lexer.Not, lexer.LParen:
		expr, err := p.parseLogicalExpr()
		if err != nil {
			return nil, err
		}
		return query.LogicalExprArgument{Expr: expr}, nil

	default:
		return nil, p.errorf("expected a function argument, got %s", p.tok.Kind)
	}
}
