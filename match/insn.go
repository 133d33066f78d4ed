package match

import (
	"fmt"

	"github.com/dexopt/dex"
)

// IsOpcode matches instructions with exactly the given opcode. No family
// normalization: a /range encoding is a different opcode here.
func IsOpcode(op dex.Opcode) Predicate[dex.Instruction] {
	return New(func(insn dex.Instruction) bool {
		return insn.Opcode() == op
	})
}

// family matches instructions whose canonical opcode equals base, applying
// p only then; the sub-predicate is never evaluated for other opcodes.
func family(base dex.Opcode, p Predicate[dex.Instruction]) Predicate[dex.Instruction] {
	return New(func(insn dex.Instruction) bool {
		return insn.Opcode().Canonical() == base && p.Matches(insn)
	})
}

// NewInstance matches any new-instance instruction.
func NewInstance() Predicate[dex.Instruction] {
	return NewInstanceMatching(Any[dex.Instruction]())
}

// NewInstanceMatching matches new-instance instructions also matching p.
func NewInstanceMatching(p Predicate[dex.Instruction]) Predicate[dex.Instruction] {
	return family(dex.OpNewInstance, p)
}

// InvokeDirect matches any flavor of invoke-direct, /range included.
func InvokeDirect() Predicate[dex.Instruction] {
	return InvokeDirectMatching(Any[dex.Instruction]())
}

// InvokeDirectMatching matches invoke-direct instructions also matching p.
func InvokeDirectMatching(p Predicate[dex.Instruction]) Predicate[dex.Instruction] {
	return family(dex.OpInvokeDirect, p)
}

// InvokeStatic matches any flavor of invoke-static, /range included.
func InvokeStatic() Predicate[dex.Instruction] {
	return InvokeStaticMatching(Any[dex.Instruction]())
}

// InvokeStaticMatching matches invoke-static instructions also matching p.
func InvokeStaticMatching(p Predicate[dex.Instruction]) Predicate[dex.Instruction] {
	return family(dex.OpInvokeStatic, p)
}

// Invoke matches an invoke of any kind.
func Invoke() Predicate[dex.Instruction] {
	return InvokeMatching(Any[dex.Instruction]())
}

// InvokeMatching matches invoke instructions of any kind also matching p.
func InvokeMatching(p Predicate[dex.Instruction]) Predicate[dex.Instruction] {
	return New(func(insn dex.Instruction) bool {
		return insn.Opcode().IsInvoke() && p.Matches(insn)
	})
}

// ReturnVoid matches return-void.
func ReturnVoid() Predicate[dex.Instruction] {
	return IsOpcode(dex.OpReturnVoid)
}

// ConstString matches const-string.
func ConstString() Predicate[dex.Instruction] {
	return IsOpcode(dex.OpConstString)
}

// Throw matches throw.
func Throw() Predicate[dex.Instruction] {
	return IsOpcode(dex.OpThrow)
}

// HasType matches any instruction holding a type reference operand.
func HasType() Predicate[dex.Instruction] {
	return New(func(insn dex.Instruction) bool {
		return insn.TypeRef() != nil
	})
}

// ArgRegs matches instructions whose argument-register count equals n,
// normalized across normal and /range encodings.
func ArgRegs(n int) Predicate[dex.Instruction] {
	return New(func(insn dex.Instruction) bool {
		return insn.ArgRegs() == n
	})
}

// OpcodeMethod projects an instruction's referenced method operand and
// applies p to it.
//
// Applying it to an instruction without a method operand is a
// programming-contract violation and panics: guard with an invoke-family
// predicate via And first.
func OpcodeMethod(p Predicate[dex.Method]) Predicate[dex.Instruction] {
	return New(func(insn dex.Instruction) bool {
		meth := insn.MethodRef()
		if meth == nil {
			panic(fmt.Sprintf("match: OpcodeMethod applied to %v, which carries no method operand", insn.Opcode()))
		}
		return p.Matches(meth)
	})
}

// OpcodeType projects an instruction's referenced type operand and applies
// p to it.
//
// Applying it to an instruction without a type operand is a
// programming-contract violation and panics: guard with HasType or an
// opcode-family predicate via And first.
func OpcodeType(p Predicate[dex.Type]) Predicate[dex.Instruction] {
	return New(func(insn dex.Instruction) bool {
		typ := insn.TypeRef()
		if typ == nil {
			panic(fmt.Sprintf("match: OpcodeType applied to %v, which carries no type operand", insn.Opcode()))
		}
		return p.Matches(typ)
	})
}
