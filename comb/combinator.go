package comb

// Bind runs p and, on success, obtains the next parser from cont and
// runs it from the position p left off. Failure of either side fails
// the whole parser. Bind is the sole sequencing primitive; every other
// sequencing combinator can be expressed through it.
func Bind[A, B any](p Parser[A], cont func(A) Parser[B]) Parser[B] {
	return func(input string, pos int) Result[B] {
		r := p(input, pos)
		if !r.OK {
			return failed[B]()
		}
		return cont(r.Value)(input, r.Pos)
	}
}

// Map transforms the value of a successful parse with f. Failure passes
// through untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string, pos int) Result[B] {
		r := p(input, pos)
		if !r.OK {
			return failed[B]()
		}
		return Result[B]{Value: f(r.Value), Pos: r.Pos, OK: true}
	}
}

// Or tries each parser in order from the same starting position and
// commits to the first that succeeds. There is no backtracking past a
// successful alternative.
func Or[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string, pos int) Result[T] {
		for _, p := range parsers {
			if r := p(input, pos); r.OK {
				return r
			}
		}
		return failed[T]()
	}
}

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq runs a then b and succeeds with both values.
func Seq[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return Bind(a, func(first A) Parser[Pair[A, B]] {
		return Map(b, func(second B) Pair[A, B] {
			return Pair[A, B]{First: first, Second: second}
		})
	})
}

// Preceded runs prefix then p, keeping only p's value.
func Preceded[A, B any](prefix Parser[A], p Parser[B]) Parser[B] {
	return Bind(prefix, func(A) Parser[B] { return p })
}

// Terminated runs p then suffix, keeping only p's value.
func Terminated[A, B any](p Parser[A], suffix Parser[B]) Parser[A] {
	return Bind(p, func(value A) Parser[A] {
		return Map(suffix, func(B) A { return value })
	})
}

// Delimited runs left, p, right in order and keeps p's value.
func Delimited[A, B, C any](left Parser[A], p Parser[B], right Parser[C]) Parser[B] {
	return Preceded(left, Terminated(p, right))
}

// Many applies p repeatedly, collecting values in order, and stops
// without failing at p's first failure. The minimum result is an empty
// slice at the starting position. Callers must ensure p cannot succeed
// while consuming nothing, or Many loops forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string, pos int) Result[[]T] {
		var values []T
		for {
			r := p(input, pos)
			if !r.OK {
				return Result[[]T]{Value: values, Pos: pos, OK: true}
			}
			values = append(values, r.Value)
			pos = r.Pos
		}
	}
}

// Many1 is one mandatory application of p followed by Many of the rest.
// It fails iff the first application fails.
func Many1[T any](p Parser[T]) Parser[[]T] {
	rest := Many(p)
	return func(input string, pos int) Result[[]T] {
		first := p(input, pos)
		if !first.OK {
			return failed[[]T]()
		}
		r := rest(input, first.Pos)
		values := append([]T{first.Value}, r.Value...)
		return Result[[]T]{Value: values, Pos: r.Pos, OK: true}
	}
}

// ChainL1 parses one mandatory term, then repeatedly parses (op, term)
// pairs, folding left-associatively: each op value combines the running
// accumulator with the next term. It stops without failing at the first
// point where no complete (op, term) pair parses, and fails only if the
// first term fails. Precedence levels are built structurally by using a
// tighter-binding chain as the term of a looser one.
func ChainL1[T any](term Parser[T], op Parser[func(T, T) T]) Parser[T] {
	return func(input string, pos int) Result[T] {
		acc := term(input, pos)
		if !acc.OK {
			return failed[T]()
		}
		for {
			combine := op(input, acc.Pos)
			if !combine.OK {
				return acc
			}
			next := term(input, combine.Pos)
			if !next.OK {
				return acc
			}
			acc = Result[T]{
				Value: combine.Value(acc.Value, next.Value),
				Pos:   next.Pos,
				OK:    true,
			}
		}
	}
}
