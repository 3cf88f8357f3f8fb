package expr

import (
	"github.com/dhamidi/comb/comb"
	"github.com/dhamidi/comb/text"
)

// parser is built once; parsers are stateless, so reusing it across
// calls is safe.
var parser = build()

// Parse applies the expression grammar to input starting at position 0.
// On success it returns the tree and the offset just past the matched
// prefix; trailing unconsumed input is not an error, so callers that
// require full consumption must compare pos against len(input).
func Parse(input string) (tree Expr, pos int, ok bool) {
	return comb.Run(parser, input)
}

func build() comb.Parser[Expr] {
	// factor references the full grammar inside parentheses before the
	// outer chain exists, so it goes through a forward reference.
	forward, ref := comb.Forward[Expr]()

	integer := comb.Map(text.Integer(), func(n int64) Expr { return IntLit{Value: n} })
	variable := comb.Map(text.Identifier(), func(name string) Expr { return Var{Name: name} })
	grouped := comb.Delimited(comb.Rune('('), forward, comb.Rune(')'))

	factor := comb.Or(grouped, integer, variable)

	term := comb.ChainL1(factor, comb.Or(operator('*', OpMul), operator('/', OpDiv)))
	sum := comb.ChainL1(term, comb.Or(operator('+', OpAdd), operator('-', OpSub)))

	ref.Set(sum)
	return sum
}

// operator parses the rune c into the combining function ChainL1 folds
// with, so precedence is carried entirely by which chain the operator
// belongs to.
func operator(c rune, op Op) comb.Parser[func(Expr, Expr) Expr] {
	return comb.Map(comb.Rune(c), func(rune) func(Expr, Expr) Expr {
		return func(left, right Expr) Expr {
			return &BinaryExpr{Op: op, Left: left, Right: right}
		}
	})
}
