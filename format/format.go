// Package format renders expression trees for output.
package format

import "github.com/dhamidi/comb/expr"

// Encoder writes one expression tree to its output.
type Encoder interface {
	Encode(tree expr.Expr) error
}
