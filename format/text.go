package format

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/dhamidi/comb/expr"
)

// TextEncoder renders a tree in fully parenthesized form, the same
// notation expr.Parse accepts.
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(tree expr.Expr) error {
	_, err := io.WriteString(e.w, tree.String()+"\n")
	return err
}

// DumpEncoder renders the tree's Go structure for debugging.
type DumpEncoder struct {
	w io.Writer
}

func NewDumpEncoder(w io.Writer) *DumpEncoder {
	return &DumpEncoder{w: w}
}

func (e *DumpEncoder) Encode(tree expr.Expr) error {
	spew.Fdump(e.w, tree)
	return nil
}
