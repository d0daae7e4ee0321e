// Package parser builds an expression tree from the lexer's token stream
// via recursive descent.
package parser

import "github.com/copyl-sys/ternary/internal/lexer"

// Expr is a node in the arithmetic expression tree. Visitor is supplied
// by the evaluator, which carries the kernel context the tree itself
// knows nothing about.
type Expr interface {
	Accept(v Visitor) (interface{}, error)
}

// Visitor evaluates an expression tree one node at a time.
type Visitor interface {
	VisitLiteral(e *LiteralExpr) (interface{}, error)
	VisitUnary(e *UnaryExpr) (interface{}, error)
	VisitBinary(e *BinaryExpr) (interface{}, error)
}

// LiteralExpr is a ternary or balanced-ternary numeric literal.
type LiteralExpr struct {
	Token lexer.Token
}

func (e *LiteralExpr) Accept(v Visitor) (interface{}, error) { return v.VisitLiteral(e) }

// UnaryExpr is a prefix operator applied to a single operand (only '-'
// is produced by the current grammar).
type UnaryExpr struct {
	Op    lexer.Token
	Right Expr
}

func (e *UnaryExpr) Accept(v Visitor) (interface{}, error) { return v.VisitUnary(e) }

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *BinaryExpr) Accept(v Visitor) (interface{}, error) { return v.VisitBinary(e) }
