package extract

import (
	"errors"
	"fmt"

	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/diagnostic"
	"def-extractor/internal/profile"
	"def-extractor/internal/typesys"
)

// ErrMissingAnchor is returned when no loaded module declares the
// definition root.
var ErrMissingAnchor = errors.New("required framework anchor type not found")

// anchors are the resolved framework types a run depends on. Every field
// except definitionRoot may be nil.
type anchors struct {
	definitionRoot      typesys.TypeHandle
	componentProperties typesys.TypeHandle
	lateBoundReference  typesys.TypeHandle
}

// resolveAnchors looks up the framework anchors of p in u. Missing optional
// anchors are recorded as info diagnostics.
func resolveAnchors(u *typesys.Universe, p *profile.Profile, diags *diagnostic.Diagnostics) (*anchors, error) {
	a := &anchors{
		definitionRoot: u.Lookup(p.Anchors.DefinitionRoot),
	}

	if a.definitionRoot == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingAnchor, p.Anchors.DefinitionRoot)
	}

	a.componentProperties = optionalAnchor(u, p.Anchors.ComponentProperties, diags)
	a.lateBoundReference = optionalAnchor(u, p.Anchors.LateBoundReference, diags)

	return a, nil
}

func optionalAnchor(u *typesys.Universe, identifier string, diags *diagnostic.Diagnostics) typesys.TypeHandle {
	if identifier == "" {
		return nil
	}

	h := u.Lookup(identifier)
	if h == nil {
		logger.Info(fmt.Sprintf("optional anchor %s not found", identifier))
		diags.AddInfo(diagnostic.CodeAnchorMissing, "optional anchor not found", identifier, "")
	}

	return h
}
