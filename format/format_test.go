package format

import (
	"strings"
	"testing"

	"github.com/dhamidi/comb/expr"
)

func parse(t *testing.T, input string) expr.Expr {
	t.Helper()
	tree, _, ok := expr.Parse(input)
	if !ok {
		t.Fatalf("Parse(%q) failed", input)
	}
	return tree
}

func TestJSONEncoder(t *testing.T) {
	tree := parse(t, "1+x")
	var buf strings.Builder
	if err := NewJSONEncoder(&buf).Encode(tree); err != nil {
		t.Fatal(err)
	}
	want := `{
  "kind": "binary",
  "op": "+",
  "left": {
    "kind": "int",
    "value": 1
  },
  "right": {
    "kind": "var",
    "name": "x"
  }
}
`
	if buf.String() != want {
		t.Errorf("JSON output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestJSONEncoderZeroLiteral(t *testing.T) {
	// A zero value must still be emitted; only absent fields are omitted.
	var buf strings.Builder
	if err := NewJSONEncoder(&buf).Encode(expr.IntLit{Value: 0}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"value": 0`) {
		t.Errorf("zero literal dropped from output:\n%s", buf.String())
	}
}

func TestTextEncoder(t *testing.T) {
	tree := parse(t, "1+2*3")
	var buf strings.Builder
	if err := NewTextEncoder(&buf).Encode(tree); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "(1+(2*3))\n" {
		t.Errorf("text output = %q, want %q", got, "(1+(2*3))\n")
	}
}

func TestDumpEncoder(t *testing.T) {
	tree := parse(t, "a+1")
	var buf strings.Builder
	if err := NewDumpEncoder(&buf).Encode(tree); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"BinaryExpr", "IntLit", "Var"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %s:\n%s", want, out)
		}
	}
}
