package expr

import (
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"
)

func TestGrammarIsWellFormed(t *testing.T) {
	grammar, err := ebnf.Parse("expr.ebnf", strings.NewReader(Grammar))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	if err := ebnf.Verify(grammar, GrammarStart); err != nil {
		t.Fatalf("verify grammar: %v", err)
	}
}
