package match

import "github.com/dexopt/dex"

// IsConstructor matches methods carrying the constructor access bit.
//
// Note: this does NOT distinguish between <init> and <clinit>; static
// class initializers also match. Dependent passes rely on the conflated
// semantics, keep it that way.
func IsConstructor() Predicate[dex.Method] {
	return New(func(meth dex.Method) bool {
		return meth.AccessFlags().Has(dex.AccConstructor)
	})
}

// HasNoArgs matches methods declaring no parameters.
func HasNoArgs() Predicate[dex.Method] {
	return New(func(meth dex.Method) bool {
		return len(meth.Params()) == 0
	})
}

// HasNArgs matches methods declaring exactly n parameters.
func HasNArgs(n int) Predicate[dex.Method] {
	return New(func(meth dex.Method) bool {
		return len(meth.Params()) == n
	})
}

// HasCode matches methods with a non-empty code body. Native and abstract
// methods never match.
func HasCode() Predicate[dex.Method] {
	return New(func(meth dex.Method) bool {
		return meth.HasCode()
	})
}

// IsDefaultConstructor matches instance constructors that declare no
// parameters and whose body is the trivial call-super-then-return shape.
func IsDefaultConstructor() Predicate[dex.Method] {
	body := HasOpcodes(Pattern{InvokeDirect(), ReturnVoid()})
	return New(func(meth dex.Method) bool {
		return !meth.AccessFlags().Has(dex.AccStatic) &&
			meth.AccessFlags().Has(dex.AccConstructor) &&
			len(meth.Params()) == 0 &&
			meth.HasCode() &&
			len(meth.Instructions()) == 2 &&
			body.Matches(meth)
	})
}
