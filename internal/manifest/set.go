package manifest

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"def-extractor/internal/typesys"
)

// ObjectRoot is the universal object root; it is never reported as a base.
const ObjectRoot = "System.Object"

// Set is a group of manifest modules resolving type references against each
// other.
type Set struct {
	modules []*Module
	builtin *Module
	decls   map[string]*decl
	insts   map[string]*handle
	refs    *refCache
}

type decl struct {
	module *Module
	ns     string
	name   string
	src    TypeDecl
	open   *handle
}

func newSet() *Set {
	return &Set{
		decls: make(map[string]*decl),
		insts: make(map[string]*handle),
		refs:  newRefCache(),
	}
}

// Modules returns the user modules in load order.
func (s *Set) Modules() []*Module {
	return s.modules
}

// Builtin returns the builtin system module.
func (s *Set) Builtin() *Module {
	return s.builtin
}

// module returns the module named name, creating it on first use.
func (s *Set) module(name string) *Module {
	for _, m := range s.modules {
		if m.name == name {
			return m
		}
	}

	m := &Module{set: s, name: name}
	s.modules = append(s.modules, m)

	return m
}

// declare adds the types of a manifest file to module m.
func (s *Set) declare(m *Module, f *File) error {
	for _, td := range f.Types {
		if td.Name == "" {
			return fmt.Errorf("module %s: type without name", m.name)
		}

		if _, dup := s.decls[td.Name]; dup {
			return fmt.Errorf("module %s: duplicate type %s", m.name, td.Name)
		}

		d := &decl{module: m, src: td}
		if i := strings.LastIndex(td.Name, "."); i >= 0 {
			d.ns, d.name = td.Name[:i], td.Name[i+1:]
		} else {
			d.name = td.Name
		}

		d.open = &handle{set: s, decl: d}
		s.decls[td.Name] = d
		m.decls = append(m.decls, d)
	}

	return nil
}

// link resolves base and interface references of every declaration. Failures
// make the declaring module unusable rather than failing the whole set.
func (s *Set) link() {
	for _, m := range append(slices.Clone(s.modules), s.builtin) {
		if m == nil {
			continue
		}

		for _, d := range m.decls {
			env := d.open.paramEnv()
			if d.src.Base != "" && d.src.Base != ObjectRoot {
				if _, err := s.resolve(d.src.Base, env); err != nil {
					m.linkErrs = append(m.linkErrs, fmt.Errorf("base of %s: %w", d.src.Name, err))
				}
			}

			for _, iface := range d.src.Interfaces {
				if _, err := s.resolve(iface, env); err != nil {
					m.linkErrs = append(m.linkErrs, fmt.Errorf("interface of %s: %w", d.src.Name, err))
				}
			}
		}
	}
}

// resolve turns a reference into a handle. env maps generic parameter names
// in scope to their arguments.
func (s *Set) resolve(ref string, env map[string]typesys.TypeHandle) (typesys.TypeHandle, error) {
	r, err := s.refs.parse(ref)
	if err != nil {
		return nil, err
	}

	return s.resolveRef(r, env)
}

func (s *Set) resolveRef(r *typeRef, env map[string]typesys.TypeHandle) (typesys.TypeHandle, error) {
	var h typesys.TypeHandle

	name := r.FullName()
	if p, ok := env[name]; ok && len(r.Args) == 0 {
		h = p
	} else {
		d, ok := s.decls[name]
		if !ok {
			return nil, fmt.Errorf("unknown type %s", name)
		}

		switch {
		case len(r.Args) == 0:
			h = d.open

		case len(r.Args) != len(d.src.Params):
			return nil, fmt.Errorf("type %s expects %d generic arguments, got %d", name, len(d.src.Params), len(r.Args))

		default:
			args := make([]typesys.TypeHandle, 0, len(r.Args))
			for _, a := range r.Args {
				arg, err := s.resolveRef(a, env)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
			h = s.instantiate(d, args)
		}
	}

	for range r.Arrays {
		h = s.arrayOf(h)
	}

	return h, nil
}

// instantiate returns the canonical handle of a generic instantiation.
func (s *Set) instantiate(d *decl, args []typesys.TypeHandle) *handle {
	h := &handle{set: s, decl: d, args: args}
	k := h.key()

	if existing, ok := s.insts[k]; ok {
		return existing
	}

	s.insts[k] = h

	return h
}

// arrayOf returns the canonical array handle of elem.
func (s *Set) arrayOf(elem typesys.TypeHandle) *handle {
	h := &handle{set: s, elem: elem}
	k := h.key()

	if existing, ok := s.insts[k]; ok {
		return existing
	}

	s.insts[k] = h

	return h
}

// Lookup finds a declared type by full name in any module of the set.
func (s *Set) Lookup(name string) typesys.TypeHandle {
	if d, ok := s.decls[name]; ok {
		return d.open
	}

	return nil
}

// errNoModule is returned for manifests without a module name.
var errNoModule = errors.New("manifest does not name a module")
