package extract

import (
	"fmt"
	"strings"

	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/diagnostic"
	"def-extractor/internal/graph"
	"def-extractor/internal/profile"
	"def-extractor/internal/suggest"
	"def-extractor/internal/typesys"
)

// maxSuggestions bounds the names offered for an unmatched forced fragment.
const maxSuggestions = 3

// Result is the outcome of one extraction run.
type Result struct {
	Registry    *graph.Registry
	Diagnostics diagnostic.Diagnostics
}

// Extractor builds type graphs according to a profile.
type Extractor struct {
	profile *profile.Profile
	namer   typesys.Namer
}

// New creates an Extractor. A nil profile selects profile.Default().
func New(p *profile.Profile) *Extractor {
	if p == nil {
		p = profile.Default()
	}

	return &Extractor{
		profile: p,
		namer:   p.Namer(),
	}
}

// Extract runs root selection, both traversal batches and classification
// over u. forced are name fragments of types included as roots regardless
// of their ancestry.
//
// Only a missing definition root fails the run; every other problem is
// logged and recorded in the result's diagnostics.
func (e *Extractor) Extract(u *typesys.Universe, forced []string) (*Result, error) {
	res := &Result{Registry: graph.NewRegistry()}

	a, err := resolveAnchors(u, e.profile, &res.Diagnostics)
	if err != nil {
		return nil, err
	}

	traverser := NewTraverser(res.Registry, u, e.profile, a.lateBoundReference, &res.Diagnostics)
	criteria := RootCriteria{
		Namer:               e.namer,
		DefinitionRoot:      a.definitionRoot,
		ComponentProperties: a.componentProperties,
		ComponentNaming:     e.profile.Roots.ComponentNaming,
		AlwaysInclude:       e.profile.Roots.AlwaysInclude,
		Forced:              forced,
	}

	matched := make(map[string]bool)

	var ownedNames []string

	for _, m := range u.Owned() {
		logger.Info("extracting data from", m.Name())

		types, err := m.Types()
		if err != nil {
			logger.Error(fmt.Sprintf("error while extracting data from %s: %v", m.Name(), err))
			res.Diagnostics.AddError(diagnostic.CodeModuleEnumerationFailed, err.Error(), m.Name(), "")

			continue
		}

		for _, h := range types {
			ownedNames = append(ownedNames, h.Name())
		}

		roots, found := SelectRoots(types, criteria)
		for f := range found {
			matched[f] = true
		}

		logger.Verbose(fmt.Sprintf("%s: %d roots", m.Name(), len(roots)))
		traverser.Run(roots)
	}

	for _, f := range unmatched(forced, matched) {
		msg := "forced name matched no type"

		if hint := suggest.Closest(f, ownedNames, maxSuggestions); len(hint) > 0 {
			msg += "; closest: " + strings.Join(hint, ", ")
		}

		logger.Warning(fmt.Sprintf("extra type %s not found: %s", f, msg))
		res.Diagnostics.AddWarning(diagnostic.CodeForcedTypeNotFound, msg, f, "")
	}

	logger.Info("extracting related types")

	related, err := SearchDerived(u, res.Registry, e.namer)
	if err != nil {
		logger.Error(err.Error())
		res.Diagnostics.AddError(diagnostic.CodeDerivedSearchFailed, err.Error(), "", "")
	}

	logger.Info(fmt.Sprintf("found %d related types", len(related)))
	traverser.Run(related)

	classifier := &Classifier{
		namer:   e.namer,
		rules:   e.profile.Classification,
		anchors: a,
		naming:  e.profile.Roots.ComponentNaming,
		diags:   &res.Diagnostics,
	}
	classifier.Classify(res.Registry)

	logger.Info(fmt.Sprintf("extracted %d types", res.Registry.Len()))

	return res, nil
}
