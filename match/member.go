package match

import (
	"github.com/dexopt/dex"
	"github.com/dexopt/utils"
)

// Owned is the facet of members declared on a class.
type Owned interface {
	dex.Member
	Owner() dex.Type
}

// Typed is the facet of elements with a declared type.
type Typed interface {
	Type() dex.Type
}

// Named matches members with exactly the given name.
func Named[T dex.Member](name string) Predicate[T] {
	return New(func(t T) bool { return t.Name() == name })
}

// IsExternal matches members referenced but not defined by the program.
func IsExternal[T dex.Member]() Predicate[T] {
	return New(func(t T) bool { return t.IsExternal() })
}

// IsFinal matches members carrying the final access bit.
func IsFinal[T dex.Member]() Predicate[T] {
	return New(func(t T) bool { return t.AccessFlags().Has(dex.AccFinal) })
}

// IsStatic matches members carrying the static access bit.
func IsStatic[T dex.Member]() Predicate[T] {
	return New(func(t T) bool { return t.AccessFlags().Has(dex.AccStatic) })
}

// IsAbstract matches members carrying the abstract access bit.
func IsAbstract[T dex.Member]() Predicate[T] {
	return New(func(t T) bool { return t.AccessFlags().Has(dex.AccAbstract) })
}

// OnClass matches members whose owning class's fully qualified name equals
// name exactly.
func OnClass[T Owned](name string) Predicate[T] {
	return New(func(t T) bool { return t.Owner().Name() == name })
}

// In matches subjects contained in the given set.
func In[T comparable](container utils.Set[T]) Predicate[T] {
	return New(func(t T) bool { return container.Contain(t) })
}

// AsType projects an element to its declared type and applies a type
// predicate to it.
func AsType[T Typed](p Predicate[dex.Type]) Predicate[T] {
	return New(func(t T) bool { return p.Matches(t.Type()) })
}
