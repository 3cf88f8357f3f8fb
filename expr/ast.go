// Package expr parses arithmetic expressions over integers and named
// variables into an abstract syntax tree, honoring the usual precedence
// and left associativity:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := '(' expr ')' | integer | identifier
package expr

import (
	"fmt"
	"strconv"
)

// Op is a binary arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Expr is a node in the expression tree. The tree is immutable and
// acyclic; each node owns its children. String renders the node in
// fully parenthesized form, which Parse accepts back unchanged.
type Expr interface {
	fmt.Stringer
	expr()
}

// IntLit is an integer constant.
type IntLit struct {
	Value int64
}

// Var is a reference to a named variable.
type Var struct {
	Name string
}

// BinaryExpr applies Op to two sub-expressions.
type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (IntLit) expr()      {}
func (Var) expr()         {}
func (*BinaryExpr) expr() {}

func (l IntLit) String() string { return strconv.FormatInt(l.Value, 10) }

func (v Var) String() string { return v.Name }

func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + b.Op.String() + b.Right.String() + ")"
}
