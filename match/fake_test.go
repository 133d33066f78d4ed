package match

import (
	"github.com/dexopt/dex"
	"github.com/dexopt/utils"
)

// Hand-rolled fakes for the dex contracts. Only the accessors the match
// layer reads are populated per test.

type fakeType struct {
	name string
	cls  dex.Class
}

func (t *fakeType) Name() string    { return t.name }
func (t *fakeType) Class() dex.Class { return t.cls }

type fakeAnno struct {
	typ dex.Type
}

func (a *fakeAnno) Type() dex.Type { return a.typ }

type fakeClass struct {
	name      string
	flags     dex.AccessFlags
	vmethods  []dex.Method
	dmethods  []dex.Method
	ifields   []dex.Field
	sfields   []dex.Field
	annos     []dex.Annotation
	classData bool
	external  bool
}

func (c *fakeClass) AccessFlags() dex.AccessFlags { return c.flags }
func (c *fakeClass) Name() string                 { return c.name }
func (c *fakeClass) IsExternal() bool             { return c.external }
func (c *fakeClass) Type() dex.Type               { return &fakeType{name: c.name, cls: c} }
func (c *fakeClass) VMethods() []dex.Method       { return c.vmethods }
func (c *fakeClass) DMethods() []dex.Method       { return c.dmethods }
func (c *fakeClass) IFields() []dex.Field         { return c.ifields }
func (c *fakeClass) SFields() []dex.Field         { return c.sfields }
func (c *fakeClass) Annotations() []dex.Annotation { return c.annos }
func (c *fakeClass) HasClassData() bool           { return c.classData }

type fakeMethod struct {
	name     string
	flags    dex.AccessFlags
	owner    dex.Type
	params   []dex.Type
	insns    []dex.Instruction
	hasCode  bool
	annos    []dex.Annotation
	external bool
}

func (m *fakeMethod) AccessFlags() dex.AccessFlags { return m.flags }
func (m *fakeMethod) Name() string                 { return m.name }
func (m *fakeMethod) IsExternal() bool             { return m.external }
func (m *fakeMethod) Owner() dex.Type              { return m.owner }
func (m *fakeMethod) Params() []dex.Type           { return m.params }
func (m *fakeMethod) HasCode() bool                { return m.hasCode }
func (m *fakeMethod) Instructions() []dex.Instruction { return m.insns }
func (m *fakeMethod) Annotations() []dex.Annotation   { return m.annos }

type fakeField struct {
	name     string
	flags    dex.AccessFlags
	owner    dex.Type
	typ      dex.Type
	annos    []dex.Annotation
	external bool
}

func (f *fakeField) AccessFlags() dex.AccessFlags { return f.flags }
func (f *fakeField) Name() string                 { return f.name }
func (f *fakeField) IsExternal() bool             { return f.external }
func (f *fakeField) Owner() dex.Type              { return f.owner }
func (f *fakeField) Type() dex.Type               { return f.typ }
func (f *fakeField) Annotations() []dex.Annotation { return f.annos }

type fakeInsn struct {
	op      dex.Opcode
	argRegs int
	meth    dex.Method
	typ     dex.Type
}

func (i *fakeInsn) Opcode() dex.Opcode    { return i.op }
func (i *fakeInsn) ArgRegs() int          { return i.argRegs }
func (i *fakeInsn) MethodRef() dex.Method { return i.meth }
func (i *fakeInsn) TypeRef() dex.Type     { return i.typ }

func insn(op dex.Opcode) *fakeInsn {
	return &fakeInsn{op: op}
}

func insns(ops ...dex.Opcode) []dex.Instruction {
	out := make([]dex.Instruction, 0, len(ops))
	for _, op := range ops {
		out = append(out, insn(op))
	}
	return out
}

func methodWithBody(ops ...dex.Opcode) *fakeMethod {
	return &fakeMethod{name: "m", hasCode: true, insns: insns(ops...)}
}

// fakeHierarchy answers reachability from an explicit child -> parents map.
type fakeHierarchy struct {
	parents map[string][]string
}

func (h *fakeHierarchy) AssignableTo(child, parent dex.Type) bool {
	if child == nil || parent == nil {
		return false
	}
	if child.Name() == parent.Name() {
		return true
	}
	seen := utils.NewSet[string]()
	stack := []string{child.Name()}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen.Contain(cur) {
			continue
		}
		seen.Insert(cur)
		for _, up := range h.parents[cur] {
			if up == parent.Name() {
				return true
			}
			stack = append(stack, up)
		}
	}
	return false
}

// fakePolicy answers the eligibility oracles from name sets.
type fakePolicy struct {
	deletable utils.Set[string]
	renamable utils.Set[string]
	kept      utils.Set[string]
	seeds     utils.Set[string]
}

func (p *fakePolicy) CanDelete(m dex.Member) bool { return p.deletable.Contain(m.Name()) }
func (p *fakePolicy) CanRename(m dex.Member) bool { return p.renamable.Contain(m.Name()) }
func (p *fakePolicy) Keep(m dex.Member) bool      { return p.kept.Contain(m.Name()) }
func (p *fakePolicy) IsSeed(m dex.Member) bool    { return p.seeds.Contain(m.Name()) }
