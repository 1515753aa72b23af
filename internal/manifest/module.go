package manifest

import (
	"errors"

	"def-extractor/internal/typesys"
)

// Module is a manifest-backed typesys.Module.
type Module struct {
	set       *Set
	name      string
	framework bool
	decls     []*decl
	linkErrs  []error
}

var _ typesys.Module = (*Module)(nil)

// Name returns the module name.
func (m *Module) Name() string {
	return m.name
}

// Framework reports whether any file of the module is marked as framework.
func (m *Module) Framework() bool {
	return m.framework
}

// Types enumerates every declared type, generic definitions included. A
// module whose declarations reference unknown types fails to enumerate.
func (m *Module) Types() ([]typesys.TypeHandle, error) {
	if len(m.linkErrs) > 0 {
		return nil, errors.Join(m.linkErrs...)
	}

	out := make([]typesys.TypeHandle, 0, len(m.decls))
	for _, d := range m.decls {
		out = append(out, d.open)
	}

	return out, nil
}

// Lookup finds a type declared by this module.
func (m *Module) Lookup(identifier string) typesys.TypeHandle {
	d, ok := m.set.decls[identifier]
	if !ok || d.module != m {
		return nil
	}

	return d.open
}
