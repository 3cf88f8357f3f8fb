package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/comb/expr"
)

// JSONEncoder renders a tree as an indented JSON document, one object
// per node.
type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(tree expr.Expr) error {
	text, err := e.MarshalText(tree)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText(tree expr.Expr) ([]byte, error) {
	node, err := treeToJSON(tree)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(node, "", "  ")
}

type jsonNode struct {
	Kind  string    `json:"kind"`
	Value *int64    `json:"value,omitempty"`
	Name  string    `json:"name,omitempty"`
	Op    string    `json:"op,omitempty"`
	Left  *jsonNode `json:"left,omitempty"`
	Right *jsonNode `json:"right,omitempty"`
}

func treeToJSON(tree expr.Expr) (*jsonNode, error) {
	switch n := tree.(type) {
	case expr.IntLit:
		value := n.Value
		return &jsonNode{Kind: "int", Value: &value}, nil
	case expr.Var:
		return &jsonNode{Kind: "var", Name: n.Name}, nil
	case *expr.BinaryExpr:
		left, err := treeToJSON(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := treeToJSON(n.Right)
		if err != nil {
			return nil, err
		}
		return &jsonNode{Kind: "binary", Op: n.Op.String(), Left: left, Right: right}, nil
	}
	return nil, fmt.Errorf("unknown node type %T", tree)
}
