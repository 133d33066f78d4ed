package dex

// Opcode identifies a dex instruction. The set below covers the operations
// the match layer cares about; loaders may extend it as long as the range
// encodings keep their pairing with the base opcode in Canonical.
type Opcode uint16

const (
	OpNop Opcode = iota
	OpMove
	OpMoveResult
	OpMoveException
	OpReturnVoid
	OpReturn
	OpReturnObject
	OpConst
	OpConstString
	OpConstClass
	OpCheckCast
	OpInstanceOf
	OpNewInstance
	OpNewArray
	OpFilledNewArray
	OpFilledNewArrayRange
	OpThrow
	OpGoto
	OpIget
	OpIput
	OpSget
	OpSput
	OpInvokeVirtual
	OpInvokeSuper
	OpInvokeDirect
	OpInvokeStatic
	OpInvokeInterface
	OpInvokeVirtualRange
	OpInvokeSuperRange
	OpInvokeDirectRange
	OpInvokeStaticRange
	OpInvokeInterfaceRange
)

var opcodeNames = map[Opcode]string{
	OpNop:                  "nop",
	OpMove:                 "move",
	OpMoveResult:           "move-result",
	OpMoveException:        "move-exception",
	OpReturnVoid:           "return-void",
	OpReturn:               "return",
	OpReturnObject:         "return-object",
	OpConst:                "const",
	OpConstString:          "const-string",
	OpConstClass:           "const-class",
	OpCheckCast:            "check-cast",
	OpInstanceOf:           "instance-of",
	OpNewInstance:          "new-instance",
	OpNewArray:             "new-array",
	OpFilledNewArray:       "filled-new-array",
	OpFilledNewArrayRange:  "filled-new-array/range",
	OpThrow:                "throw",
	OpGoto:                 "goto",
	OpIget:                 "iget",
	OpIput:                 "iput",
	OpSget:                 "sget",
	OpSput:                 "sput",
	OpInvokeVirtual:        "invoke-virtual",
	OpInvokeSuper:          "invoke-super",
	OpInvokeDirect:         "invoke-direct",
	OpInvokeStatic:         "invoke-static",
	OpInvokeInterface:      "invoke-interface",
	OpInvokeVirtualRange:   "invoke-virtual/range",
	OpInvokeSuperRange:     "invoke-super/range",
	OpInvokeDirectRange:    "invoke-direct/range",
	OpInvokeStaticRange:    "invoke-static/range",
	OpInvokeInterfaceRange: "invoke-interface/range",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "unknown-opcode"
}

// Canonical collapses a /range encoding onto its base opcode. Family-level
// matchers compare canonical opcodes so that both encodings count as the
// same operation.
func (op Opcode) Canonical() Opcode {
	switch op {
	case OpInvokeVirtualRange:
		return OpInvokeVirtual
	case OpInvokeSuperRange:
		return OpInvokeSuper
	case OpInvokeDirectRange:
		return OpInvokeDirect
	case OpInvokeStaticRange:
		return OpInvokeStatic
	case OpInvokeInterfaceRange:
		return OpInvokeInterface
	case OpFilledNewArrayRange:
		return OpFilledNewArray
	default:
		return op
	}
}

// IsInvoke reports whether the opcode belongs to any invoke family,
// counting /range encodings.
func (op Opcode) IsInvoke() bool {
	switch op.Canonical() {
	case OpInvokeVirtual, OpInvokeSuper, OpInvokeDirect, OpInvokeStatic, OpInvokeInterface:
		return true
	default:
		return false
	}
}
