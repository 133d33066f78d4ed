package match

import "github.com/dexopt/dex"

// IsAssignableTo matches types assignable to parent in the given
// hierarchy: parent itself and every transitive subtype of it.
func IsAssignableTo(h dex.Hierarchy, parent dex.Type) Predicate[dex.Type] {
	return New(func(typ dex.Type) bool {
		return h.AssignableTo(typ, parent)
	})
}

// AsClass projects a type to its class definition and applies a class
// predicate to it. Types without a resolvable class definition (primitive,
// array, external) never match.
func AsClass(p Predicate[dex.Class]) Predicate[dex.Type] {
	return New(func(typ dex.Type) bool {
		cls := typ.Class()
		return cls != nil && p.Matches(cls)
	})
}
