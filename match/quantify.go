package match

import "github.com/dexopt/dex"

// Collection quantifiers lift a member-level predicate to a class-level
// predicate over one of the class's sub-collections.
//
// Counting semantics, shared by all collections:
//
//	Any       true iff at least one member matches; false on empty
//	All       true iff every member matches; vacuously true on empty
//	AtLeastN  true iff the match count is >= n
//	AtMostN   true iff the match count is <= n
//	ExactlyN  true iff the match count is == n
//
// Any, All, AtLeastN and AtMostN stop scanning as soon as the outcome is
// decided; ExactlyN always scans the whole collection. A negative n is
// clamped to zero.

func anyOf[E any](elems []E, p Predicate[E]) bool {
	for _, e := range elems {
		if p.Matches(e) {
			return true
		}
	}
	return false
}

func allOf[E any](elems []E, p Predicate[E]) bool {
	for _, e := range elems {
		if !p.Matches(e) {
			return false
		}
	}
	return true
}

func atLeastN[E any](n int, elems []E, p Predicate[E]) bool {
	if n <= 0 {
		return true
	}
	c := 0
	for _, e := range elems {
		if p.Matches(e) {
			c++
			if c >= n {
				return true
			}
		}
	}
	return false
}

func atMostN[E any](n int, elems []E, p Predicate[E]) bool {
	if n < 0 {
		n = 0
	}
	c := 0
	for _, e := range elems {
		if p.Matches(e) {
			c++
			if c > n {
				return false
			}
		}
	}
	return true
}

func exactlyN[E any](n int, elems []E, p Predicate[E]) bool {
	if n < 0 {
		n = 0
	}
	c := 0
	for _, e := range elems {
		if p.Matches(e) {
			c++
		}
	}
	return c == n
}

// AnyVMethods matches classes with at least one virtual method matching p.
func AnyVMethods(p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return anyOf(cls.VMethods(), p) })
}

// AllVMethods matches classes all of whose virtual methods match p.
func AllVMethods(p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return allOf(cls.VMethods(), p) })
}

// AtLeastNVMethods matches classes with at least n virtual methods matching p.
func AtLeastNVMethods(n int, p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atLeastN(n, cls.VMethods(), p) })
}

// AtMostNVMethods matches classes with at most n virtual methods matching p.
func AtMostNVMethods(n int, p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atMostN(n, cls.VMethods(), p) })
}

// ExactlyNVMethods matches classes with exactly n virtual methods matching p.
func ExactlyNVMethods(n int, p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return exactlyN(n, cls.VMethods(), p) })
}

// AnyDMethods matches classes with at least one direct method matching p.
func AnyDMethods(p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return anyOf(cls.DMethods(), p) })
}

// AllDMethods matches classes all of whose direct methods match p.
func AllDMethods(p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return allOf(cls.DMethods(), p) })
}

// AtLeastNDMethods matches classes with at least n direct methods matching p.
func AtLeastNDMethods(n int, p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atLeastN(n, cls.DMethods(), p) })
}

// AtMostNDMethods matches classes with at most n direct methods matching p.
func AtMostNDMethods(n int, p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atMostN(n, cls.DMethods(), p) })
}

// ExactlyNDMethods matches classes with exactly n direct methods matching p.
func ExactlyNDMethods(n int, p Predicate[dex.Method]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return exactlyN(n, cls.DMethods(), p) })
}

// AnyIFields matches classes with at least one instance field matching p.
func AnyIFields(p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return anyOf(cls.IFields(), p) })
}

// AllIFields matches classes all of whose instance fields match p.
func AllIFields(p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return allOf(cls.IFields(), p) })
}

// AtLeastNIFields matches classes with at least n instance fields matching p.
func AtLeastNIFields(n int, p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atLeastN(n, cls.IFields(), p) })
}

// AtMostNIFields matches classes with at most n instance fields matching p.
func AtMostNIFields(n int, p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atMostN(n, cls.IFields(), p) })
}

// ExactlyNIFields matches classes with exactly n instance fields matching p.
func ExactlyNIFields(n int, p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return exactlyN(n, cls.IFields(), p) })
}

// AnySFields matches classes with at least one static field matching p.
func AnySFields(p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return anyOf(cls.SFields(), p) })
}

// AllSFields matches classes all of whose static fields match p.
func AllSFields(p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return allOf(cls.SFields(), p) })
}

// AtLeastNSFields matches classes with at least n static fields matching p.
func AtLeastNSFields(n int, p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atLeastN(n, cls.SFields(), p) })
}

// AtMostNSFields matches classes with at most n static fields matching p.
func AtMostNSFields(n int, p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return atMostN(n, cls.SFields(), p) })
}

// ExactlyNSFields matches classes with exactly n static fields matching p.
func ExactlyNSFields(n int, p Predicate[dex.Field]) Predicate[dex.Class] {
	return New(func(cls dex.Class) bool { return exactlyN(n, cls.SFields(), p) })
}

// Annotated is the facet of elements that may carry an annotation set.
type Annotated interface {
	Annotations() []dex.Annotation
}

// AnyAnnos matches elements carrying at least one annotation matching p.
// Elements with no annotation set at all never match.
func AnyAnnos[T Annotated](p Predicate[dex.Annotation]) Predicate[T] {
	return New(func(t T) bool {
		annos := t.Annotations()
		if annos == nil {
			return false
		}
		return anyOf(annos, p)
	})
}
