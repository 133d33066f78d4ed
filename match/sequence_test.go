package match

import (
	"testing"

	"github.com/dexopt/dex"
	"github.com/stretchr/testify/assert"
)

func acceptAllPattern(n int) Pattern {
	pat := make(Pattern, 0, n)
	for i := 0; i < n; i++ {
		pat = append(pat, Any[dex.Instruction]())
	}
	return pat
}

func TestHasOpcodesAllAcceptPattern(t *testing.T) {
	// An all-accept pattern of length N matches iff the stream has at
	// least N instructions.
	meth := methodWithBody(dex.OpNop, dex.OpNop, dex.OpReturnVoid)

	assert.True(t, HasOpcodes(acceptAllPattern(1)).Matches(meth))
	assert.True(t, HasOpcodes(acceptAllPattern(3)).Matches(meth))
	assert.False(t, HasOpcodes(acceptAllPattern(4)).Matches(meth))
}

func TestHasOpcodesNoCode(t *testing.T) {
	native := &fakeMethod{name: "nativeM", flags: dex.AccNative}
	assert.False(t, HasOpcodes(acceptAllPattern(1)).Matches(native))
}

func TestHasOpcodesContiguity(t *testing.T) {
	pat := Pattern{
		IsOpcode(dex.OpNewInstance),
		IsOpcode(dex.OpInvokeDirect),
		IsOpcode(dex.OpReturnVoid),
	}

	// [new-instance, invoke-direct, return-void] matches at offset 0.
	assert.True(t, HasOpcodes(pat).Matches(
		methodWithBody(dex.OpNewInstance, dex.OpInvokeDirect, dex.OpReturnVoid)))

	// An inserted move-result breaks contiguity: no match anywhere.
	assert.False(t, HasOpcodes(pat).Matches(
		methodWithBody(dex.OpNewInstance, dex.OpMoveResult, dex.OpInvokeDirect, dex.OpReturnVoid)))
}

func TestHasOpcodesMatchesAtAnyOffset(t *testing.T) {
	pat := Pattern{IsOpcode(dex.OpInvokeStatic), IsOpcode(dex.OpReturnVoid)}

	assert.True(t, HasOpcodes(pat).Matches(
		methodWithBody(dex.OpConstString, dex.OpConstString, dex.OpInvokeStatic, dex.OpReturnVoid)))

	// Same opcodes, wrong order: no window satisfies the pattern.
	assert.False(t, HasOpcodes(pat).Matches(
		methodWithBody(dex.OpReturnVoid, dex.OpInvokeStatic)))
}

func TestPatternWithFamilyPredicates(t *testing.T) {
	// Family predicates inside a pattern accept /range encodings too.
	pat := Pattern{NewInstance(), InvokeDirect(), ReturnVoid()}

	assert.True(t, HasOpcodes(pat).Matches(
		methodWithBody(dex.OpNewInstance, dex.OpInvokeDirectRange, dex.OpReturnVoid)))
}

func TestPatternMatchesDirectly(t *testing.T) {
	pat := Pattern{IsOpcode(dex.OpThrow)}

	assert.True(t, pat.Matches(insns(dex.OpNop, dex.OpThrow)))
	assert.False(t, pat.Matches(insns(dex.OpNop, dex.OpReturnVoid)))
	assert.False(t, pat.Matches(nil))
}
