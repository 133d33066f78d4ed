// Package dex defines the read-only contracts through which the match layer
// observes a loaded dex program: classes, methods, fields, instructions,
// types and annotations, plus the hierarchy and policy oracles.
//
// The package owns no storage and parses nothing. Loaders elsewhere in the
// toolchain implement these interfaces; the match layer only ever reads
// through them, so implementations must support concurrent read access.
package dex

// Member is the facet shared by classes, methods and fields: the identity
// and modifier surface the generic matchers rely on.
type Member interface {
	// AccessFlags returns the raw modifier bitmask.
	AccessFlags() AccessFlags
	// Name returns the element's name. Classes report their fully
	// qualified descriptor; methods and fields their simple name.
	Name() string
	// IsExternal reports whether the element is referenced but not
	// defined by the program under analysis.
	IsExternal() bool
}

// Type is a type reference. It may or may not resolve to a class
// definition within the program.
type Type interface {
	// Name returns the fully qualified descriptor, e.g. "Lcom/foo/Bar;".
	Name() string
	// Class returns the resolved class definition, or nil for
	// primitive, array and external types.
	Class() Class
}

// Annotation is a single annotation attached to a class, method or field.
type Annotation interface {
	Type() Type
}

// Class is a class definition.
//
// The four member collections are ordered and deterministic: repeated calls
// observe the same members in the same order.
type Class interface {
	Member
	Type() Type
	// VMethods returns the virtual (polymorphically dispatched) methods.
	VMethods() []Method
	// DMethods returns the direct methods: static, private, constructor.
	DMethods() []Method
	// IFields returns the instance fields.
	IFields() []Field
	// SFields returns the static fields.
	SFields() []Field
	// Annotations returns the annotation set, nil when the class
	// carries none.
	Annotations() []Annotation
	// HasClassData reports whether the class carries a class-body.
	HasClassData() bool
}

// Method is a method definition or reference.
type Method interface {
	Member
	// Owner returns the declaring class's type.
	Owner() Type
	// Params returns the declared parameter types.
	Params() []Type
	// HasCode reports whether the method has a non-empty code body.
	// Native and abstract methods report false.
	HasCode() bool
	// Instructions returns the linearized executable instructions with
	// pseudo-instructions (payloads, debug markers) already filtered
	// out. Nil when HasCode is false.
	Instructions() []Instruction
	// Annotations returns the annotation set, nil when absent.
	Annotations() []Annotation
}

// Field is a field definition or reference.
type Field interface {
	Member
	// Owner returns the declaring class's type.
	Owner() Type
	// Type returns the declared field type.
	Type() Type
	// Annotations returns the annotation set, nil when absent.
	Annotations() []Annotation
}

// Instruction is one executable instruction in a method body.
type Instruction interface {
	Opcode() Opcode
	// ArgRegs returns the argument-register count, normalized across
	// normal and /range encodings. Zero for non-invoke instructions.
	ArgRegs() int
	// MethodRef returns the referenced method operand, nil when the
	// instruction carries none.
	MethodRef() Method
	// TypeRef returns the referenced type operand, nil when the
	// instruction carries none.
	TypeRef() Type
}

// Hierarchy is the type-hierarchy reachability oracle.
type Hierarchy interface {
	// AssignableTo reports whether child is parent itself or one of its
	// transitive subtypes.
	AssignableTo(child, parent Type) bool
}

// Policy bundles the externally computed eligibility verdicts, keyed by
// member identity.
type Policy interface {
	CanDelete(Member) bool
	CanRename(Member) bool
	Keep(Member) bool
	IsSeed(Member) bool
}
