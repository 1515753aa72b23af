package extract

import (
	"fmt"

	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/graph"
	"def-extractor/internal/typesys"
)

// SearchDerived returns every loaded type that is not registered yet but has
// an ancestor that is registered and declared by an owned module.
//
// A failure to enumerate any module yields an empty result and the error.
func SearchDerived(u *typesys.Universe, reg *graph.Registry, namer typesys.Namer) ([]typesys.TypeHandle, error) {
	all, err := u.AllTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate loaded types: %w", err)
	}

	var related []typesys.TypeHandle

	for _, h := range all {
		if reg.Contains(namer.Identify(h)) {
			continue
		}

		for _, a := range typesys.Ancestors(h) {
			parentID := namer.Identify(a)
			if reg.Contains(parentID) && u.Declares(a) {
				logger.Verbose(fmt.Sprintf("%s has parent %s which is registered", namer.Identify(h), parentID))
				related = append(related, h)

				break
			}
		}
	}

	return related, nil
}
