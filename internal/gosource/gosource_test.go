package gosource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"def-extractor/internal/typesys"
)

const (
	versePkg = "def-extractor/sample/verse"
	modPkg   = "def-extractor/sample/mod"
)

func loadSample(t *testing.T) *Analyzer {
	t.Helper()

	a := NewAnalyzer()
	mods, err := a.LoadPackages("", versePkg, modPkg)
	require.NoError(t, err)
	require.Len(t, mods, 2)

	return a
}

func lookup(t *testing.T, a *Analyzer, pkg, name string) typesys.TypeHandle {
	t.Helper()

	m, ok := a.modules[pkg]
	require.True(t, ok, "package %s not loaded", pkg)

	h := m.Lookup(pkg + "." + name)
	require.NotNil(t, h, "type %s.%s not found", pkg, name)

	return h
}

func memberTypes(t *testing.T, h typesys.TypeHandle) map[string]string {
	t.Helper()

	members, err := h.Members()
	require.NoError(t, err)

	namer := typesys.NewNamer()
	out := make(map[string]string, len(members))
	for _, m := range members {
		out[m.Name] = namer.Identify(m.Type)
	}

	return out
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	a := loadSample(t)

	require.Len(t, a.Modules(), 2)

	verse := a.modules[versePkg]
	require.NotNil(t, verse)
	assert.Equal(t, versePkg, verse.Name())

	types, err := verse.Types()
	require.NoError(t, err)

	var names []string
	for _, h := range types {
		names = append(names, h.Name())
	}

	assert.Contains(t, names, "Def")
	assert.Contains(t, names, "ThingDef")
	assert.Contains(t, names, "SlateRef")
	assert.Contains(t, names, "ISlateRef")
	assert.NotContains(t, names, "shortHash")
	assert.IsIncreasing(t, names)
}

func TestAnalyzer_LoadPackagesTwice(t *testing.T) {
	a := loadSample(t)

	mods, err := a.LoadPackages("", versePkg)
	require.NoError(t, err)
	require.Len(t, mods, 1)

	assert.Same(t, a.modules[versePkg], mods[0])
	assert.Len(t, a.Modules(), 2)
}

func TestAnalyzer_BrokenPackage(t *testing.T) {
	a := NewAnalyzer()

	mods, err := a.LoadPackages("", "def-extractor/sample/doesnotexist")
	if err == nil {
		require.NotEmpty(t, mods)
		_, err = mods[0].Types()
	}

	assert.Error(t, err)
}

func TestModule_Lookup(t *testing.T) {
	a := loadSample(t)
	verse := a.modules[versePkg]

	assert.NotNil(t, verse.Lookup(versePkg+".ThingDef"))
	assert.Nil(t, verse.Lookup(versePkg+".Missing"))
	assert.Nil(t, verse.Lookup(modPkg+".ExampleDef"))
	assert.Nil(t, verse.Lookup("ThingDef"))
}

func TestHandle_Identity(t *testing.T) {
	a := loadSample(t)
	namer := typesys.NewNamer()

	thingDef := lookup(t, a, versePkg, "ThingDef")
	assert.Equal(t, versePkg, thingDef.Namespace())
	assert.Equal(t, "ThingDef", thingDef.Name())
	assert.Equal(t, versePkg+".ThingDef", namer.Identify(thingDef))

	assert.Equal(t, map[string]string{
		"Category":   versePkg + ".ThingCategory",
		"Size":       versePkg + ".IntVec2",
		"Comps":      versePkg + ".CompProperties[]",
		"StatBases":  versePkg + ".StatModifier[]",
		"Weights":    "map<string, float64>",
		"Pawn":       versePkg + ".SlateRef<" + versePkg + ".PawnGenOption>",
		"Stuff":      versePkg + ".Pair<int, " + versePkg + ".ModContentPack>",
		"Spawned":    versePkg + ".Thing",
		"Blueprint":  versePkg + ".Thing",
		"DefName":    "string",
		"Label":      "string",
		"LabelCache": "string",
		"IndexInt":   "int",
		"Generated":  "bool",
		"Editable":   "bool",
	}, memberTypes(t, thingDef))
}

func TestHandle_MemberOrder(t *testing.T) {
	a := loadSample(t)

	members, err := lookup(t, a, versePkg, "ThingDef").Members()
	require.NoError(t, err)

	var names []string
	for _, m := range members {
		names = append(names, m.Name)
	}

	assert.Equal(t, []string{
		"Category", "Size", "Comps", "StatBases", "Weights", "Pawn", "Stuff", "Spawned", "Blueprint",
		"DefName", "Label", "LabelCache", "IndexInt", "Generated", "Editable",
	}, names)
}

func TestHandle_Markers(t *testing.T) {
	a := loadSample(t)

	members, err := lookup(t, a, versePkg, "Def").Members()
	require.NoError(t, err)

	byName := make(map[string]typesys.Member)
	for _, m := range members {
		byName[m.Name] = m
	}

	desc, ok := byName["DefName"].Marker("desc")
	require.True(t, ok)
	assert.Equal(t, []any{"Unique name of the definition."}, desc.Args)

	unsaved, ok := byName["Generated"].Marker("unsaved")
	require.True(t, ok)
	assert.Equal(t, []any{"false"}, unsaved.Args)

	_, ok = byName["LabelCache"].Marker("desc")
	assert.False(t, ok)
}

func TestHandle_Base(t *testing.T) {
	a := loadSample(t)
	namer := typesys.NewNamer()

	def := lookup(t, a, versePkg, "Def")
	assert.Nil(t, def.Base())

	assert.Equal(t, versePkg+".Def", namer.Identify(lookup(t, a, versePkg, "ThingDef").Base()))
	assert.Equal(t, versePkg+".Entity", namer.Identify(lookup(t, a, versePkg, "Thing").Base()))

	example := lookup(t, a, modPkg, "ExampleDef")
	assert.Same(t, def, example.Base())
	assert.True(t, namer.DerivesFrom(lookup(t, a, modPkg, "GlowerDerived"), lookup(t, a, versePkg, "CompProperties")))
}

func TestHandle_Module(t *testing.T) {
	a := loadSample(t)
	verse := a.modules[versePkg]

	thingDef := lookup(t, a, versePkg, "ThingDef")
	assert.Equal(t, verse, thingDef.Module())

	types := memberHandles(t, thingDef)
	assert.Equal(t, verse, types["Comps"].Module())
	assert.Nil(t, types["DefName"].Module())
	assert.Nil(t, types["Weights"].Module())
}

func memberHandles(t *testing.T, h typesys.TypeHandle) map[string]typesys.TypeHandle {
	t.Helper()

	members, err := h.Members()
	require.NoError(t, err)

	out := make(map[string]typesys.TypeHandle, len(members))
	for _, m := range members {
		out[m.Name] = m.Type
	}

	return out
}

func TestHandle_Enum(t *testing.T) {
	a := loadSample(t)

	category := lookup(t, a, versePkg, "ThingCategory")
	assert.True(t, category.IsEnum())
	assert.Equal(t, []string{"CategoryNone", "CategoryItem", "CategoryBuilding", "CategoryPawn"}, category.EnumValues())
	assert.Equal(t, typesys.PrimitiveNone, category.Primitive())

	celsius := lookup(t, a, versePkg, "Celsius")
	assert.False(t, celsius.IsEnum())
	assert.Equal(t, typesys.PrimitiveFloat, celsius.Primitive())
}

func TestHandle_Primitive(t *testing.T) {
	a := loadSample(t)
	types := memberHandles(t, lookup(t, a, versePkg, "ThingDef"))

	tests := []struct {
		member string
		want   typesys.PrimitiveKind
	}{
		{"DefName", typesys.PrimitiveString},
		{"IndexInt", typesys.PrimitiveInteger},
		{"Generated", typesys.PrimitiveBool},
		{"Size", typesys.PrimitiveNone},
		{"Comps", typesys.PrimitiveNone},
	}

	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			assert.Equal(t, tt.want, types[tt.member].Primitive())
		})
	}
}

func TestHandle_Generics(t *testing.T) {
	a := loadSample(t)

	pair := lookup(t, a, versePkg, "Pair")
	assert.True(t, pair.IsGeneric())

	params := pair.GenericArgs()
	require.Len(t, params, 2)
	assert.True(t, params[0].IsGenericParameter())
	assert.Equal(t, "A", params[0].Name())
	assert.Equal(t, "B", params[1].Name())

	types := memberHandles(t, lookup(t, a, versePkg, "ThingDef"))

	stuff := types["Stuff"]
	assert.True(t, stuff.IsGeneric())
	assert.Same(t, pair, stuff.GenericDefinition())
	assert.False(t, stuff.GenericArgs()[0].IsGenericParameter())

	weights := types["Weights"]
	assert.True(t, weights.IsGeneric())
	assert.Equal(t, "map", typesys.Simple(weights.GenericDefinition()))
	assert.True(t, typesys.NewNamer().IsDefinition(weights, []string{"map"}))

	comps := types["Comps"]
	assert.True(t, comps.IsArray())
	assert.Equal(t, "CompProperties", comps.Elem().Name())
	assert.False(t, comps.IsGeneric())
}

func TestHandle_MethodsAndCapabilities(t *testing.T) {
	a := loadSample(t)

	statModifier := lookup(t, a, versePkg, "StatModifier")
	assert.True(t, statModifier.HasMethod("LoadDataFromXmlCustom"))
	assert.False(t, lookup(t, a, versePkg, "ThingDef").HasMethod("LoadDataFromXmlCustom"))

	slate := lookup(t, a, versePkg, "ISlateRef")
	assert.True(t, slate.IsAbstract())

	pawn := memberHandles(t, lookup(t, a, versePkg, "ThingDef"))["Pawn"]
	assert.True(t, pawn.AssignableTo(slate))
	assert.False(t, statModifier.AssignableTo(slate))

	def := lookup(t, a, versePkg, "Def")
	thingDef := lookup(t, a, versePkg, "ThingDef")
	assert.True(t, thingDef.AssignableTo(def))
	assert.True(t, lookup(t, a, modPkg, "ExampleDef").AssignableTo(def))
	assert.False(t, def.AssignableTo(thingDef))
	assert.True(t, def.AssignableTo(def))
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    []typesys.Marker
		wantErr bool
	}{
		{name: "empty", tag: ""},
		{
			name: "single",
			tag:  `desc:"hello"`,
			want: []typesys.Marker{{Type: "desc", Args: []any{"hello"}}},
		},
		{
			name: "several",
			tag:  `json:"id,omitempty"  unsaved:"false"`,
			want: []typesys.Marker{
				{Type: "json", Args: []any{"id,omitempty"}},
				{Type: "unsaved", Args: []any{"false"}},
			},
		},
		{
			name: "comma in text",
			tag:  `desc:"one, two"`,
			want: []typesys.Marker{{Type: "desc", Args: []any{"one, two"}}},
		},
		{
			name: "escaped quote",
			tag:  `desc:"say \"hi\""`,
			want: []typesys.Marker{{Type: "desc", Args: []any{`say "hi"`}}},
		},
		{name: "malformed entry", tag: `desc:"ok" broken other:"x"`, wantErr: true},
		{name: "unterminated", tag: `desc:"open`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTag(tt.tag)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
