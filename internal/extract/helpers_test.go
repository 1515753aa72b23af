package extract

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"def-extractor/internal/graph"
	"def-extractor/internal/manifest"
	"def-extractor/internal/profile"
	"def-extractor/internal/typesys"
)

const frameworkModule = "UnityEngine"

// buildUniverse loads the testdata manifests plus inline ones. UnityEngine
// and the builtin module are framework modules, everything else is owned.
func buildUniverse(t *testing.T, inline ...string) (*manifest.Set, *typesys.Universe) {
	t.Helper()

	var files []*manifest.File
	for _, name := range []string{"rimworld.yaml", "unity.yaml", "mod.yaml"} {
		f, err := manifest.LoadFile(filepath.Join("testdata", name))
		require.NoError(t, err)
		files = append(files, f)
	}

	for _, src := range inline {
		f, err := manifest.Parse([]byte(src))
		require.NoError(t, err)
		files = append(files, f)
	}

	set, err := manifest.Build(files...)
	require.NoError(t, err)

	return set, universeOf(set)
}

func universeOf(set *manifest.Set) *typesys.Universe {
	var owned, framework []typesys.Module
	for _, m := range set.Modules() {
		if m.Name() == frameworkModule {
			framework = append(framework, m)
		} else {
			owned = append(owned, m)
		}
	}

	return typesys.NewUniverse(owned, append(framework, set.Builtin())...)
}

func extractDefault(t *testing.T, forced ...string) *Result {
	t.Helper()

	_, u := buildUniverse(t)

	res, err := New(profile.Default()).Extract(u, forced)
	require.NoError(t, err)

	return res
}

func identifiers(reg *graph.Registry) []string {
	out := make([]string, 0, reg.Len())
	for _, n := range reg.Nodes() {
		out = append(out, n.Identifier)
	}

	return out
}

func requireNode(t *testing.T, reg *graph.Registry, id string) *graph.TypeNode {
	t.Helper()

	n := reg.Get(id)
	require.NotNilf(t, n, "node %s missing, registry holds:\n%s", id, spew.Sdump(identifiers(reg)))

	return n
}

func requireAbsent(t *testing.T, reg *graph.Registry, id string) {
	t.Helper()

	require.Falsef(t, reg.Contains(id), "node %s must not be registered, registry holds:\n%s", id, spew.Sdump(identifiers(reg)))
}

// requireClosed checks that every referenced identifier has a node.
func requireClosed(t *testing.T, reg *graph.Registry) {
	t.Helper()

	for _, n := range reg.Nodes() {
		for _, name := range n.Members.Names() {
			id, _ := n.Members.Get(name)
			require.Truef(t, reg.Contains(id), "%s.%s references unregistered %s", n.Identifier, name, id)
		}

		if el := n.Classification.Enumerable.ElementType; el != "" {
			require.Truef(t, reg.Contains(el), "%s has unregistered element type %s", n.Identifier, el)
		}

		if p := n.Classification.Parent; p != "" {
			require.Truef(t, reg.Contains(p), "%s has unregistered parent %s", n.Identifier, p)
		}
	}
}
