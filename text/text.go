// Package text provides lexical parsers built on top of comb:
// character-class parsers, integer literals, and identifiers.
package text

import (
	"math"
	"unicode"

	"github.com/dhamidi/comb/comb"
)

// IsDigit reports whether r is an ASCII decimal digit. The integer
// literal parser folds digit values as r-'0', so it deliberately does
// not accept the wider Unicode digit classes.
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }

// IsLetter reports whether r is a letter.
func IsLetter(r rune) bool { return unicode.IsLetter(r) }

// IsSpace reports whether r is white space.
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// Digit consumes a single decimal digit.
func Digit() comb.Parser[rune] {
	return comb.Satisfy(IsDigit)
}

// DigitValue consumes a single decimal digit and yields its value.
func DigitValue() comb.Parser[int64] {
	return comb.Map(Digit(), func(r rune) int64 { return int64(r - '0') })
}

// Letter consumes a single letter.
func Letter() comb.Parser[rune] {
	return comb.Satisfy(IsLetter)
}

// Space consumes a single white space rune.
func Space() comb.Parser[rune] {
	return comb.Satisfy(IsSpace)
}

// Spaces consumes zero or more white space runes and yields the
// consumed text. It never fails.
func Spaces() comb.Parser[string] {
	return comb.Map(comb.Many(Space()), func(rs []rune) string { return string(rs) })
}

// Integer parses one or more decimal digits as a base-10 int64,
// folding left to right as value*10 + digit. A literal that does not
// fit in an int64 fails the parse rather than wrapping or saturating.
func Integer() comb.Parser[int64] {
	digits := comb.Many1(DigitValue())
	return comb.Bind(digits, func(ds []int64) comb.Parser[int64] {
		var value int64
		for _, d := range ds {
			if value > (math.MaxInt64-d)/10 {
				return comb.Fail[int64]()
			}
			value = value*10 + d
		}
		return comb.Succeed(value)
	})
}

// Identifier parses one or more letters as a name.
func Identifier() comb.Parser[string] {
	return comb.Map(comb.Many1(Letter()), func(rs []rune) string { return string(rs) })
}
