// Package eval evaluates parsed ternary arithmetic expressions and
// decodes the discrete ternary opcode surface against the bigint
// kernel.
package eval

import (
	"context"

	"github.com/copyl-sys/ternary/internal/bigint"
	kerr "github.com/copyl-sys/ternary/internal/errors"
	"github.com/copyl-sys/ternary/internal/lexer"
	"github.com/copyl-sys/ternary/internal/parser"
)

// Interpreter walks a parsed expression tree, resolving each node
// against the shared kernel Context. It implements parser.Visitor so the
// tree itself stays free of any kernel dependency.
type Interpreter struct {
	goCtx context.Context
	kc    *bigint.Context
}

func NewInterpreter(goCtx context.Context, kc *bigint.Context) *Interpreter {
	return &Interpreter{goCtx: goCtx, kc: kc}
}

// Eval tokenizes, parses, and evaluates a single expression string,
// returning the resulting BigInt.
func Eval(goCtx context.Context, kc *bigint.Context, src string) (*bigint.BigInt, error) {
	tokens := lexer.NewScanner(src).ScanTokens()
	p := parser.New(tokens)
	tree := p.Parse()
	if len(p.Errors) > 0 {
		return nil, kerr.New(kerr.ParseError, "eval.Eval", p.Errors[0].Error())
	}
	it := NewInterpreter(goCtx, kc)
	v, err := tree.Accept(it)
	if err != nil {
		return nil, err
	}
	return v.(*bigint.BigInt), nil
}

func (it *Interpreter) VisitLiteral(e *parser.LiteralExpr) (interface{}, error) {
	switch e.Token.Type {
	case lexer.TokenTernaryLit:
		return bigint.Parse(it.kc.Config, e.Token.Lexeme, bigint.Ternary)
	case lexer.TokenBalancedLit:
		return bigint.Parse(it.kc.Config, e.Token.Lexeme, bigint.BalancedTernary)
	default:
		return nil, kerr.New(kerr.ParseError, "eval.VisitLiteral", "not a literal token")
	}
}

func (it *Interpreter) VisitUnary(e *parser.UnaryExpr) (interface{}, error) {
	rv, err := e.Right.Accept(it)
	if err != nil {
		return nil, err
	}
	r := rv.(*bigint.BigInt)
	return r.Neg(it.kc.Config)
}

func (it *Interpreter) VisitBinary(e *parser.BinaryExpr) (interface{}, error) {
	lv, err := e.Left.Accept(it)
	if err != nil {
		return nil, err
	}
	rv, err := e.Right.Accept(it)
	if err != nil {
		return nil, err
	}
	l, r := lv.(*bigint.BigInt), rv.(*bigint.BigInt)

	switch e.Op.Type {
	case lexer.TokenPlus:
		return bigint.Add(it.kc.Config, l, r)
	case lexer.TokenMinus:
		return bigint.Sub(it.kc.Config, l, r)
	case lexer.TokenStar:
		return bigint.Mul(it.goCtx, it.kc, l, r)
	case lexer.TokenSlash:
		q, _, err := bigint.DivMod(it.goCtx, it.kc, l, r)
		return q, err
	case lexer.TokenPercent:
		return bigint.Mod(it.goCtx, it.kc, l, r)
	case lexer.TokenAmp:
		return bigint.And(it.kc.Config, l, r)
	case lexer.TokenPipe:
		return bigint.Or(it.kc.Config, l, r)
	default:
		return nil, kerr.New(kerr.ParseError, "eval.VisitBinary", "unknown operator "+string(e.Op.Type))
	}
}
