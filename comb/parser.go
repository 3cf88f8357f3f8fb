// Package comb provides small composable parsers over strings.
//
// A Parser consumes a prefix of its input starting at a byte offset and
// either succeeds with a typed value and the offset just past the last
// consumed byte, or fails. Parsers are values: they are built once, at
// grammar-construction time, and may be invoked any number of times.
// Combinators never mutate the parsers they are given.
package comb

import "unicode/utf8"

// Parser is a function from (input, position) to a Result.
// Positions are byte offsets into input; a position at or past
// len(input) behaves as exhausted input.
type Parser[T any] func(input string, pos int) Result[T]

// Result is the outcome of running a parser. When OK is true, Value
// holds the parsed value and Pos the offset just past the last consumed
// byte. When OK is false the other fields are meaningless: failure
// carries no position, so an alternative that consumed input before
// failing never disturbs its caller's position.
type Result[T any] struct {
	Value T
	Pos   int
	OK    bool
}

func failed[T any]() Result[T] {
	return Result[T]{}
}

// Run applies p to input starting at position 0 and reports the parsed
// value, the final position, and whether the parse succeeded. Trailing
// unconsumed input is not an error; callers that require full
// consumption must compare the final position against len(input).
func Run[T any](p Parser[T], input string) (T, int, bool) {
	r := p(input, 0)
	return r.Value, r.Pos, r.OK
}

// AnyRune consumes the rune at the current position. It fails only at
// the end of the input; it is the sole primitive that tests for
// exhaustion. Invalid UTF-8 yields utf8.RuneError and consumes one byte.
func AnyRune() Parser[rune] {
	return func(input string, pos int) Result[rune] {
		if pos < 0 || pos >= len(input) {
			return failed[rune]()
		}
		r, size := utf8.DecodeRuneInString(input[pos:])
		return Result[rune]{Value: r, Pos: pos + size, OK: true}
	}
}

// Succeed returns a parser that always succeeds with value, consuming
// nothing.
func Succeed[T any](value T) Parser[T] {
	return func(input string, pos int) Result[T] {
		return Result[T]{Value: value, Pos: pos, OK: true}
	}
}

// Fail returns a parser that fails on any input at any position.
func Fail[T any]() Parser[T] {
	return func(input string, pos int) Result[T] {
		return failed[T]()
	}
}

// Satisfy consumes one rune and succeeds with it if pred holds.
func Satisfy(pred func(rune) bool) Parser[rune] {
	next := AnyRune()
	return func(input string, pos int) Result[rune] {
		r := next(input, pos)
		if !r.OK || !pred(r.Value) {
			return failed[rune]()
		}
		return r
	}
}

// Rune consumes exactly the rune want.
func Rune(want rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == want })
}
