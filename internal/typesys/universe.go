package typesys

import (
	"errors"
	"fmt"
)

// Universe holds every loaded module and knows which of them are owned.
type Universe struct {
	modules []Module
	owned   map[string]bool
}

// NewUniverse creates a Universe. Owned modules are the extraction target;
// framework modules are only consulted for lookups and derived-type search.
func NewUniverse(owned []Module, framework ...Module) *Universe {
	u := &Universe{owned: make(map[string]bool, len(owned))}
	for _, m := range owned {
		u.modules = append(u.modules, m)
		u.owned[m.Name()] = true
	}

	u.modules = append(u.modules, framework...)

	return u
}

// Modules returns every loaded module, owned ones first.
func (u *Universe) Modules() []Module {
	return u.modules
}

// Owned returns the owned modules in load order.
func (u *Universe) Owned() []Module {
	var out []Module
	for _, m := range u.modules {
		if u.owned[m.Name()] {
			out = append(out, m)
		}
	}

	return out
}

// IsOwned reports whether the module is part of the extraction target.
func (u *Universe) IsOwned(m Module) bool {
	return m != nil && u.owned[m.Name()]
}

// Declares reports whether h is declared by an owned module.
func (u *Universe) Declares(h TypeHandle) bool {
	return h != nil && u.IsOwned(h.Module())
}

// Lookup finds a type by its identifier across all modules.
func (u *Universe) Lookup(identifier string) TypeHandle {
	for _, m := range u.modules {
		if h := m.Lookup(identifier); h != nil {
			return h
		}
	}

	return nil
}

// AllTypes enumerates the types of every module. Types of modules that
// enumerate successfully are returned together with the joined errors of
// the failing ones.
func (u *Universe) AllTypes() ([]TypeHandle, error) {
	var (
		all  []TypeHandle
		errs []error
	)

	for _, m := range u.modules {
		types, err := m.Types()
		if err != nil {
			errs = append(errs, fmt.Errorf("module %s: %w", m.Name(), err))
			continue
		}

		all = append(all, types...)
	}

	return all, errors.Join(errs...)
}

// maxAncestry bounds base chains of malformed, cyclic hierarchies.
const maxAncestry = 256

// Ancestors returns the base chain of h, nearest first, excluding the
// universal object root.
func Ancestors(h TypeHandle) []TypeHandle {
	var out []TypeHandle
	for base := h.Base(); base != nil && len(out) < maxAncestry; base = base.Base() {
		out = append(out, base)
	}

	return out
}

// DerivesFrom reports whether h has root among its ancestors, compared by
// identifier. A type does not derive from itself.
func (n Namer) DerivesFrom(h, root TypeHandle) bool {
	if h == nil || root == nil {
		return false
	}

	rootID := n.Identify(root)
	for _, a := range Ancestors(h) {
		if n.Identify(a) == rootID {
			return true
		}
	}

	return false
}

// Is reports whether h is root or derives from it.
func (n Namer) Is(h, root TypeHandle) bool {
	if h == nil || root == nil {
		return false
	}

	return n.Identify(h) == n.Identify(root) || n.DerivesFrom(h, root)
}
