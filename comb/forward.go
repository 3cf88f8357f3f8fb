package comb

// Ref is the single-assignment cell behind a forward reference. It is
// written exactly once during grammar construction and read-only
// afterwards; concurrent construction is unsupported.
type Ref[T any] struct {
	parser Parser[T]
	set    bool
}

// Forward returns a forwarding parser together with its reference cell.
// The forwarding parser can be used immediately anywhere the eventual
// rule is needed; on every invocation it reads the cell and delegates
// to its contents. This is how a grammar rule refers to itself before
// its definition is complete: build the real rule using the forwarding
// parser for the recursive positions, then call Set with it.
//
// Invoking the forwarding parser before Set panics. That is a
// construction-order bug in the grammar, deliberately distinct from an
// ordinary parse failure.
func Forward[T any]() (Parser[T], *Ref[T]) {
	ref := &Ref[T]{}
	forwarding := func(input string, pos int) Result[T] {
		if !ref.set {
			panic("comb: forward reference invoked before Set")
		}
		return ref.parser(input, pos)
	}
	return forwarding, ref
}

// Set assigns the cell's target. It must be called exactly once;
// setting twice or setting a nil parser panics.
func (r *Ref[T]) Set(p Parser[T]) {
	if r.set {
		panic("comb: forward reference already set")
	}
	if p == nil {
		panic("comb: forward reference set to nil parser")
	}
	r.parser = p
	r.set = true
}
