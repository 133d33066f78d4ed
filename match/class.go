package match

import "github.com/dexopt/dex"

// IsInterface matches classes declared as interfaces.
func IsInterface() Predicate[dex.Class] {
	return New(func(cls dex.Class) bool {
		return cls.AccessFlags().Has(dex.AccInterface)
	})
}

// IsEnum matches classes declared as enums.
func IsEnum() Predicate[dex.Class] {
	return New(func(cls dex.Class) bool {
		return cls.AccessFlags().Has(dex.AccEnum)
	})
}

// HasClassData matches classes carrying class-body data.
func HasClassData() Predicate[dex.Class] {
	return New(func(cls dex.Class) bool {
		return cls.HasClassData()
	})
}
