package dex

// AccessFlags is the dex access-flag bitmask carried by classes, methods
// and fields. Values follow the dex file format.
type AccessFlags uint32

const (
	AccPublic       AccessFlags = 0x00001
	AccPrivate      AccessFlags = 0x00002
	AccProtected    AccessFlags = 0x00004
	AccStatic       AccessFlags = 0x00008
	AccFinal        AccessFlags = 0x00010
	AccSynchronized AccessFlags = 0x00020
	AccVolatile     AccessFlags = 0x00040
	AccBridge       AccessFlags = 0x00040 // methods reuse the volatile bit
	AccTransient    AccessFlags = 0x00080
	AccVarargs      AccessFlags = 0x00080 // methods reuse the transient bit
	AccNative       AccessFlags = 0x00100
	AccInterface    AccessFlags = 0x00200
	AccAbstract     AccessFlags = 0x00400
	AccStrict       AccessFlags = 0x00800
	AccSynthetic    AccessFlags = 0x01000
	AccAnnotation   AccessFlags = 0x02000
	AccEnum         AccessFlags = 0x04000
	// AccConstructor marks compiler-synthesized construction methods,
	// both <init> and <clinit>.
	AccConstructor          AccessFlags = 0x10000
	AccDeclaredSynchronized AccessFlags = 0x20000
)

// Has reports whether all of the given bits are set.
func (f AccessFlags) Has(bits AccessFlags) bool {
	return f&bits == bits
}
