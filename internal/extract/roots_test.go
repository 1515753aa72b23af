package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"def-extractor/internal/profile"
	"def-extractor/internal/typesys"
)

func TestSelectRoots(t *testing.T) {
	set, _ := buildUniverse(t)

	types, err := set.Modules()[0].Types()
	require.NoError(t, err)

	p := profile.Default()
	roots, matched := SelectRoots(types, RootCriteria{
		Namer:               p.Namer(),
		DefinitionRoot:      set.Lookup("Verse.Def"),
		ComponentProperties: set.Lookup("Verse.CompProperties"),
		ComponentNaming:     p.Roots.ComponentNaming,
		AlwaysInclude:       p.Roots.AlwaysInclude,
		Forced:              []string{"PatchOperation", "Missing"},
	})

	names := make([]string, 0, len(roots))
	for _, r := range roots {
		names = append(names, typesys.Simple(r))
	}

	assert.Equal(t, []string{
		"Verse.Def",
		"Verse.BuildableDef",
		"Verse.ThingDef",
		"RimWorld.StatDef",
		"RimWorld.QuestScriptDef",
		"Verse.CompProperties",
		"Verse.CompProperties_Glower",
		"Verse.ModMetaDataInternal",
		"Verse.PatchOperation",
		"Verse.PatchOperationSuccess",
	}, names)

	assert.Equal(t, map[string]bool{"PatchOperation": true}, matched)
	assert.Equal(t, []string{"Missing"}, unmatched([]string{"PatchOperation", "Missing", ""}, matched))
}

func TestSelectRoots_NoAnchors(t *testing.T) {
	set, _ := buildUniverse(t)

	types, err := set.Modules()[0].Types()
	require.NoError(t, err)

	roots, matched := SelectRoots(types, RootCriteria{})
	assert.Empty(t, roots)
	assert.Empty(t, matched)
}
