package match

import "github.com/dexopt/dex"

// Pattern is an ordered, non-empty sequence of instruction predicates, one
// per position. A pattern of length N matches an instruction stream at
// offset s iff every pattern[k] matches instructions[s+k]; the window is
// strictly contiguous, no instruction inside it may be skipped.
type Pattern []Predicate[dex.Instruction]

// matchesAt reports whether the whole pattern matches starting at offset
// at. The caller guarantees at+len(pat) <= len(insns).
func (pat Pattern) matchesAt(insns []dex.Instruction, at int) bool {
	for k, p := range pat {
		if !p.Matches(insns[at+k]) {
			return false
		}
	}
	return true
}

// Matches reports whether some contiguous window of insns satisfies the
// pattern. False when the stream is shorter than the pattern.
func (pat Pattern) Matches(insns []dex.Instruction) bool {
	if len(insns) < len(pat) {
		return false
	}
	for s := 0; s <= len(insns)-len(pat); s++ {
		if pat.matchesAt(insns, s) {
			return true
		}
	}
	return false
}

// HasOpcodes matches methods whose executable instruction stream contains
// a contiguous run satisfying the pattern. Methods without code never
// match.
func HasOpcodes(pat Pattern) Predicate[dex.Method] {
	return New(func(meth dex.Method) bool {
		if !meth.HasCode() {
			return false
		}
		return pat.Matches(meth.Instructions())
	})
}
