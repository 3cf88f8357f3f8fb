package comb_test

import (
	"fmt"

	"github.com/dhamidi/comb/comb"
	"github.com/dhamidi/comb/text"
)

// The smallest useful grammar: two integers joined by '+'.
func ExampleBind() {
	sum := comb.Bind(text.Integer(), func(a int64) comb.Parser[int64] {
		return comb.Map(comb.Preceded(comb.Rune('+'), text.Integer()), func(b int64) int64 {
			return a + b
		})
	})

	value, _, ok := comb.Run(sum, "19+23")
	fmt.Println(value, ok)
	// Output: 42 true
}

// A key=value list, separated by white space.
func ExampleMany() {
	entry := comb.Seq(comb.Terminated(text.Identifier(), comb.Rune('=')), text.Integer())
	list := comb.Bind(entry, func(first comb.Pair[string, int64]) comb.Parser[[]comb.Pair[string, int64]] {
		rest := comb.Many(comb.Preceded(text.Spaces(), entry))
		return comb.Map(rest, func(more []comb.Pair[string, int64]) []comb.Pair[string, int64] {
			return append([]comb.Pair[string, int64]{first}, more...)
		})
	})

	entries, _, ok := comb.Run(list, "port=8080 retries=3")
	fmt.Println(ok)
	for _, e := range entries {
		fmt.Printf("%s=%d\n", e.First, e.Second)
	}
	// Output:
	// true
	// port=8080
	// retries=3
}
