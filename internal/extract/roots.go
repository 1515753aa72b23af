package extract

import (
	"strings"

	"def-extractor/internal/common"
	"def-extractor/internal/typesys"
)

// RootCriteria selects the initial traversal roots of a module.
type RootCriteria struct {
	Namer typesys.Namer
	// DefinitionRoot selects itself and every type deriving from it.
	DefinitionRoot typesys.TypeHandle
	// ComponentProperties selects itself and every type deriving from it.
	ComponentProperties typesys.TypeHandle
	// ComponentNaming selects types whose simple name contains it.
	ComponentNaming string
	// AlwaysInclude selects types whose simple name contains any fragment.
	AlwaysInclude []string
	// Forced are caller-requested name fragments.
	Forced []string
}

// SelectRoots returns the types matching c, in the given order, together
// with the forced fragments that matched at least one of them.
func SelectRoots(types []typesys.TypeHandle, c RootCriteria) ([]typesys.TypeHandle, map[string]bool) {
	var roots []typesys.TypeHandle

	matched := make(map[string]bool)

	for _, h := range types {
		if h == nil {
			continue
		}

		forced := false
		for _, f := range c.Forced {
			if f != "" && strings.Contains(h.Name(), f) {
				matched[f] = true
				forced = true
			}
		}

		if forced || c.selects(h) {
			roots = append(roots, h)
		}
	}

	return roots, matched
}

func (c RootCriteria) selects(h typesys.TypeHandle) bool {
	switch {
	case c.Namer.Is(h, c.DefinitionRoot):
		return true
	case c.Namer.Is(h, c.ComponentProperties):
		return true
	case c.ComponentNaming != "" && strings.Contains(h.Name(), c.ComponentNaming):
		return true
	default:
		return common.ContainsAny(h.Name(), c.AlwaysInclude)
	}
}

// unmatched returns the forced fragments missing from matched, in order.
func unmatched(forced []string, matched map[string]bool) []string {
	var out []string
	for _, f := range forced {
		if f != "" && !matched[f] {
			out = append(out, f)
		}
	}

	return out
}
