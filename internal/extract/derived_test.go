package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"def-extractor/internal/graph"
	"def-extractor/internal/profile"
	"def-extractor/internal/typesys"
)

func TestSearchDerived(t *testing.T) {
	set, u := buildUniverse(t)
	namer := profile.Default().Namer()

	reg := graph.NewRegistry()
	for _, id := range []string{"Verse.GraphicData", "UnityEngine.Color"} {
		reg.GetOrCreate(id, set.Lookup(id))
	}

	related, err := SearchDerived(u, reg, namer)
	require.NoError(t, err)

	var ids []string
	for _, h := range related {
		ids = append(ids, namer.Identify(h))
	}

	assert.Equal(t, []string{"Verse.GraphicData_Random"}, ids)
}

func TestSearchDerived_TransitiveAncestor(t *testing.T) {
	set, u := buildUniverse(t)
	namer := profile.Default().Namer()

	reg := graph.NewRegistry()
	reg.GetOrCreate("Verse.Editable", set.Lookup("Verse.Editable"))

	related, err := SearchDerived(u, reg, namer)
	require.NoError(t, err)

	found := make(map[string]bool)
	for _, h := range related {
		found[namer.Identify(h)] = true
	}

	assert.True(t, found["Verse.Def"])
	assert.True(t, found["Verse.ThingDef"])
	assert.True(t, found["ExampleMod.ExampleDef"])
	assert.False(t, found["Verse.Editable"])
}

func TestSearchDerived_EnumerationFailure(t *testing.T) {
	set, _ := buildUniverse(t, "module: Broken\ntypes:\n  - {name: Broken.Thing, base: Broken.Nowhere}\n")
	u := universeOf(set)

	reg := graph.NewRegistry()
	reg.GetOrCreate("Verse.GraphicData", set.Lookup("Verse.GraphicData"))

	related, err := SearchDerived(u, reg, typesys.NewNamer())
	require.Error(t, err)
	assert.Empty(t, related)
}
