package match

import (
	"testing"

	"github.com/dexopt/dex"
	"github.com/dexopt/utils"
	"github.com/stretchr/testify/assert"
)

func TestAccessFlagPredicates(t *testing.T) {
	fld := &fakeField{name: "f", flags: dex.AccFinal | dex.AccStatic}
	meth := &fakeMethod{name: "m", flags: dex.AccAbstract}
	ext := &fakeClass{name: "Ljava/lang/Object;", external: true}

	assert.True(t, IsFinal[dex.Field]().Matches(fld))
	assert.True(t, IsStatic[dex.Field]().Matches(fld))
	assert.False(t, IsAbstract[dex.Field]().Matches(fld))
	assert.True(t, IsAbstract[dex.Method]().Matches(meth))
	assert.True(t, IsExternal[dex.Class]().Matches(ext))
	assert.False(t, IsExternal[dex.Method]().Matches(meth))
}

func TestNamed(t *testing.T) {
	meth := &fakeMethod{name: "onCreate"}
	assert.True(t, Named[dex.Method]("onCreate").Matches(meth))
	assert.False(t, Named[dex.Method]("onDestroy").Matches(meth))
}

func TestOnClass(t *testing.T) {
	owner := &fakeType{name: "Lcom/foo/Bar;"}
	meth := &fakeMethod{name: "run", owner: owner}
	fld := &fakeField{name: "f", owner: owner}

	assert.True(t, OnClass[dex.Method]("Lcom/foo/Bar;").Matches(meth))
	assert.False(t, OnClass[dex.Method]("Lcom/foo/Baz;").Matches(meth))
	assert.True(t, OnClass[dex.Field]("Lcom/foo/Bar;").Matches(fld))
}

func TestIn(t *testing.T) {
	a := &fakeMethod{name: "a"}
	b := &fakeMethod{name: "b"}

	container := utils.NewSet[dex.Method](a)
	assert.True(t, In(container).Matches(dex.Method(a)))
	assert.False(t, In(container).Matches(dex.Method(b)))
}

func TestAsType(t *testing.T) {
	intType := &fakeType{name: "I"}
	fld := &fakeField{name: "count", typ: intType}

	isInt := New(func(typ dex.Type) bool { return typ.Name() == "I" })
	assert.True(t, AsType[dex.Field](isInt).Matches(fld))
	assert.False(t, AsType[dex.Field](Not(isInt)).Matches(fld))
}

func TestAsClass(t *testing.T) {
	cls := &fakeClass{name: "LFoo;", flags: dex.AccEnum, classData: true}
	resolvable := &fakeType{name: "LFoo;", cls: cls}
	primitive := &fakeType{name: "I"}

	assert.True(t, AsClass(IsEnum()).Matches(dex.Type(resolvable)))
	// Types without a class definition never match, even with accept-all.
	assert.False(t, AsClass(Any[dex.Class]()).Matches(dex.Type(primitive)))
}

func TestClassStructuralPredicates(t *testing.T) {
	iface := &fakeClass{name: "LFace;", flags: dex.AccInterface | dex.AccAbstract}
	enum := &fakeClass{name: "LColor;", flags: dex.AccEnum, classData: true}
	marker := &fakeClass{name: "LMarker;"}

	assert.True(t, IsInterface().Matches(iface))
	assert.False(t, IsInterface().Matches(enum))
	assert.True(t, IsEnum().Matches(enum))
	assert.True(t, HasClassData().Matches(enum))
	assert.False(t, HasClassData().Matches(marker))
}

func TestIsAssignableTo(t *testing.T) {
	h := &fakeHierarchy{parents: map[string][]string{
		"Lcom/foo/Impl;": {"Lcom/foo/Base;"},
		"Lcom/foo/Base;": {"Ljava/lang/Object;"},
		"Lcom/bar/Other;": {"Ljava/lang/Object;"},
	}}
	object := &fakeType{name: "Ljava/lang/Object;"}
	base := &fakeType{name: "Lcom/foo/Base;"}
	impl := &fakeType{name: "Lcom/foo/Impl;"}
	other := &fakeType{name: "Lcom/bar/Other;"}

	toBase := IsAssignableTo(h, base)
	// The parent itself and every transitive subtype match.
	assert.True(t, toBase.Matches(dex.Type(base)))
	assert.True(t, toBase.Matches(dex.Type(impl)))
	// Unrelated types and supertypes do not.
	assert.False(t, toBase.Matches(dex.Type(other)))
	assert.False(t, toBase.Matches(dex.Type(object)))
}

func TestPolicyWrappers(t *testing.T) {
	oracle := &fakePolicy{
		deletable: utils.NewSet("dead"),
		renamable: utils.NewSet("dead", "helper"),
		kept:      utils.NewSet("entry"),
		seeds:     utils.NewSet("entry"),
	}
	dead := &fakeMethod{name: "dead"}
	entry := &fakeMethod{name: "entry"}

	assert.True(t, CanDelete[dex.Method](oracle).Matches(dead))
	assert.False(t, CanDelete[dex.Method](oracle).Matches(entry))
	assert.True(t, CanRename[dex.Method](oracle).Matches(dead))
	assert.True(t, Keep[dex.Method](oracle).Matches(entry))
	assert.True(t, IsSeed[dex.Method](oracle).Matches(entry))
	assert.False(t, IsSeed[dex.Method](oracle).Matches(dead))
}

func TestComposedPassQuery(t *testing.T) {
	// The kind of query a pass author writes: classes with a default
	// constructor among their direct methods and no final instance
	// fields, excluding interfaces.
	query := And(
		Not(IsInterface()),
		And(
			AnyDMethods(IsDefaultConstructor()),
			ExactlyNIFields(0, IsFinal[dex.Field]()),
		),
	)

	candidate := &fakeClass{
		name:      "LFoo;",
		classData: true,
		dmethods: []dex.Method{&fakeMethod{
			name:    "<init>",
			flags:   dex.AccConstructor,
			hasCode: true,
			insns:   insns(dex.OpInvokeDirect, dex.OpReturnVoid),
		}},
		ifields: []dex.Field{plainField("a")},
	}
	assert.True(t, query.Matches(candidate))

	frozen := &fakeClass{
		name:     "LFrozen;",
		dmethods: candidate.dmethods,
		ifields:  []dex.Field{finalField("a")},
	}
	assert.False(t, query.Matches(frozen))
}
