package match

import "github.com/dexopt/dex"

// The policy wrappers delegate to the external eligibility oracle; this
// layer adds no logic of its own.

// CanDelete matches members the oracle allows later passes to remove.
func CanDelete[T dex.Member](oracle dex.Policy) Predicate[T] {
	return New(func(t T) bool { return oracle.CanDelete(t) })
}

// CanRename matches members the oracle allows later passes to rename.
func CanRename[T dex.Member](oracle dex.Policy) Predicate[T] {
	return New(func(t T) bool { return oracle.CanRename(t) })
}

// Keep matches members explicitly marked to be kept.
func Keep[T dex.Member](oracle dex.Policy) Predicate[T] {
	return New(func(t T) bool { return oracle.Keep(t) })
}

// IsSeed matches members marked as reachability seeds.
func IsSeed[T dex.Member](oracle dex.Policy) Predicate[T] {
	return New(func(t T) bool { return oracle.IsSeed(t) })
}
