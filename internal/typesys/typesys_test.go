package typesys

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeType struct {
	ns, name string
	module   Module
	base     *fakeType
	def      *fakeType
	args     []TypeHandle
	elem     TypeHandle
	param    bool
}

func (f *fakeType) Namespace() string { return f.ns }
func (f *fakeType) Name() string      { return f.name }
func (f *fakeType) Module() Module    { return f.module }

func (f *fakeType) Base() TypeHandle {
	if f.base == nil {
		return nil
	}
	return f.base
}

func (f *fakeType) Members() ([]Member, error) { return nil, nil }
func (f *fakeType) IsGeneric() bool            { return len(f.args) > 0 }

func (f *fakeType) GenericDefinition() TypeHandle {
	if f.def == nil {
		return nil
	}
	return f.def
}

func (f *fakeType) GenericArgs() []TypeHandle    { return f.args }
func (f *fakeType) IsGenericParameter() bool     { return f.param }
func (f *fakeType) IsArray() bool                { return f.elem != nil }
func (f *fakeType) Elem() TypeHandle             { return f.elem }
func (f *fakeType) IsEnum() bool                 { return false }
func (f *fakeType) EnumValues() []string         { return nil }
func (f *fakeType) IsAbstract() bool             { return false }
func (f *fakeType) Primitive() PrimitiveKind     { return PrimitiveNone }
func (f *fakeType) HasMethod(string) bool        { return false }
func (f *fakeType) AssignableTo(TypeHandle) bool { return false }

type fakeModule struct {
	name  string
	types []TypeHandle
	err   error
}

func (m *fakeModule) Name() string { return m.name }

func (m *fakeModule) Types() ([]TypeHandle, error) {
	return m.types, m.err
}

func (m *fakeModule) Lookup(identifier string) TypeHandle {
	for _, h := range m.types {
		if Simple(h) == identifier {
			return h
		}
	}
	return nil
}

var (
	intType  = &fakeType{ns: "System", name: "Int32"}
	thingDef = &fakeType{ns: "Verse", name: "ThingDef"}
	listDef  = &fakeType{ns: "System.Collections.Generic", name: "List", args: []TypeHandle{&fakeType{name: "T", param: true}}}
	dictDef  = &fakeType{ns: "System.Collections.Generic", name: "Dictionary"}
)

func listOf(elem TypeHandle) *fakeType {
	return &fakeType{ns: listDef.ns, name: listDef.name, def: listDef, args: []TypeHandle{elem}}
}

func TestNamer_Identify(t *testing.T) {
	n := NewNamer("System.Collections.Generic.List")

	tests := []struct {
		name string
		h    TypeHandle
		want string
	}{
		{"nil", nil, ""},
		{"simple", thingDef, "Verse.ThingDef"},
		{"no namespace", &fakeType{name: "int"}, "int"},
		{"parameter", &fakeType{ns: "Ignored", name: "T", param: true}, "T"},
		{"array", &fakeType{elem: thingDef}, "Verse.ThingDef[]"},
		{"list", listOf(thingDef), "System.Collections.Generic.List<Verse.ThingDef>"},
		{"list of arrays", listOf(&fakeType{elem: intType}), "System.Collections.Generic.List<System.Int32[]>"},
		{
			"generic",
			&fakeType{ns: dictDef.ns, name: dictDef.name, def: dictDef, args: []TypeHandle{intType, listOf(thingDef)}},
			"System.Collections.Generic.Dictionary<System.Int32, System.Collections.Generic.List<Verse.ThingDef>>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Identify(tt.h))
			assert.Equal(t, tt.want, n.Identify(tt.h), "identifiers are pure")
		})
	}
}

func TestNamer_ListSpelling(t *testing.T) {
	n := NewNamer("Custom.Vector")
	n.ListSpelling = "System.Collections.Generic.List"

	vectorDef := &fakeType{ns: "Custom", name: "Vector"}
	vector := &fakeType{ns: "Custom", name: "Vector", def: vectorDef, args: []TypeHandle{intType}}

	assert.True(t, n.IsList(vector))
	assert.Equal(t, "System.Collections.Generic.List<System.Int32>", n.Identify(vector))

	assert.Equal(t, "System.Collections.Generic.List<System.Int32>", Namer{ListDefinitions: []string{"Custom.Vector"}}.Identify(vector))
}

func TestNamer_IsDefinition(t *testing.T) {
	n := NewNamer()

	assert.True(t, n.IsDefinition(listOf(intType), []string{"System.Collections.Generic.List"}))
	assert.False(t, n.IsDefinition(listOf(intType), []string{"System.Collections.Generic.HashSet"}))
	assert.False(t, n.IsDefinition(thingDef, []string{"Verse.ThingDef"}), "not generic")
	assert.True(t, n.IsDefinition(listDef, []string{"System.Collections.Generic.List"}), "open definition names itself")
	assert.False(t, n.IsList(listOf(intType)), "no list definitions configured")
}

func TestAncestry(t *testing.T) {
	n := NewNamer()

	def := &fakeType{ns: "Verse", name: "Def"}
	buildable := &fakeType{ns: "Verse", name: "BuildableDef", base: def}
	thing := &fakeType{ns: "Verse", name: "ThingDef", base: buildable}

	ancestors := Ancestors(thing)
	require.Len(t, ancestors, 2)
	assert.Same(t, buildable, ancestors[0])
	assert.Same(t, def, ancestors[1])

	assert.True(t, n.DerivesFrom(thing, def))
	assert.False(t, n.DerivesFrom(def, def), "a type does not derive from itself")
	assert.True(t, n.Is(def, def))
	assert.True(t, n.Is(thing, def))
	assert.False(t, n.Is(def, thing))
	assert.False(t, n.Is(nil, def))
}

func TestAncestry_Cycle(t *testing.T) {
	a := &fakeType{ns: "Bad", name: "A"}
	b := &fakeType{ns: "Bad", name: "B", base: a}
	a.base = b

	assert.Len(t, Ancestors(a), maxAncestry)
}

func TestUniverse(t *testing.T) {
	game := &fakeModule{name: "Game"}
	def := &fakeType{ns: "Verse", name: "Def", module: game}
	game.types = []TypeHandle{def}

	engine := &fakeModule{name: "Engine"}
	color := &fakeType{ns: "Engine", name: "Color", module: engine}
	engine.types = []TypeHandle{color}

	broken := &fakeModule{name: "Broken", err: errors.New("bad metadata")}

	u := NewUniverse([]Module{game, broken}, engine)

	assert.Len(t, u.Modules(), 3)
	assert.Equal(t, []Module{game, broken}, u.Owned())
	assert.True(t, u.IsOwned(game))
	assert.False(t, u.IsOwned(engine))
	assert.False(t, u.IsOwned(nil))

	assert.True(t, u.Declares(def))
	assert.False(t, u.Declares(color))
	assert.False(t, u.Declares(&fakeType{name: "int"}))

	assert.Same(t, color, u.Lookup("Engine.Color"))
	assert.Nil(t, u.Lookup("Engine.Missing"))

	all, err := u.AllTypes()
	require.Error(t, err)
	assert.ErrorContains(t, err, "module Broken")
	assert.ElementsMatch(t, []TypeHandle{def, color}, all)
}

func TestPrimitiveKind(t *testing.T) {
	assert.False(t, PrimitiveNone.IsScalar())
	assert.True(t, PrimitiveString.IsScalar())
	assert.Equal(t, "float", PrimitiveFloat.String())
	assert.Equal(t, "unknown", PrimitiveKind(42).String())
}
