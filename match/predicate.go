// Package match is the query layer of the toolchain: typed, composable
// boolean predicates over program elements, collection quantifiers, a
// contiguous instruction-sequence matcher and a library of named domain
// predicates.
//
// Predicates are built once at pass-definition time and evaluated many
// times at analysis time. Every predicate is pure: it never mutates the
// subject and holds no per-match state, so a single predicate value is safe
// to share across goroutines and across repeated passes.
package match

// Predicate is an immutable boolean test over one program-element kind.
// Captured parameters (including sub-predicates) live in the closure of the
// test function and never change after construction.
type Predicate[T any] struct {
	test func(T) bool
}

// New builds a predicate from a pure test function.
func New[T any](test func(T) bool) Predicate[T] {
	return Predicate[T]{test: test}
}

// Matches evaluates the predicate against subject.
func (p Predicate[T]) Matches(subject T) bool {
	return p.test(subject)
}

// Any matches every subject of kind T. It is the universal accept
// predicate, used as the default sub-predicate of the family matchers.
func Any[T any]() Predicate[T] {
	return New(func(T) bool { return true })
}

// Not matches subjects p does not match.
func Not[T any](p Predicate[T]) Predicate[T] {
	return New(func(t T) bool { return !p.Matches(t) })
}

// And matches subjects both p0 and p1 match. p1 is not evaluated when p0
// already failed.
func And[T any](p0, p1 Predicate[T]) Predicate[T] {
	return New(func(t T) bool { return p0.Matches(t) && p1.Matches(t) })
}

// Or matches subjects either p0 or p1 matches. p1 is not evaluated when p0
// already matched.
func Or[T any](p0, p1 Predicate[T]) Predicate[T] {
	return New(func(t T) bool { return p0.Matches(t) || p1.Matches(t) })
}

// Xor matches subjects exactly one of p0, p1 matches. Both sides are
// always evaluated.
func Xor[T any](p0, p1 Predicate[T]) Predicate[T] {
	return New(func(t T) bool { return p0.Matches(t) != p1.Matches(t) })
}
