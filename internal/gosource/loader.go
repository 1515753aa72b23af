package gosource

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"def-extractor/internal/typesys"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and hands out type handles for them.
type Analyzer struct {
	modules   map[string]*Module
	order     []*Module
	typeCache map[types.Type]*handle // canonical handle per go/types type
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		modules:   make(map[string]*Module),
		typeCache: make(map[types.Type]*handle),
	}
}

// LoadPackages loads the packages matching patterns as modules.
// Patterns are standard Go package patterns (e.g., "./sample/...",
// "def-extractor/sample/verse").
//
// Packages with errors are still returned; their modules fail to enumerate.
func (a *Analyzer) LoadPackages(dir string, patterns ...string) ([]*Module, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages match %s", strings.Join(patterns, " "))
	}

	out := make([]*Module, 0, len(pkgs))
	for _, pkg := range pkgs {
		m, ok := a.modules[pkg.PkgPath]
		if !ok {
			m = &Module{analyzer: a, pkg: pkg}
			a.modules[pkg.PkgPath] = m
			a.order = append(a.order, m)
		}

		out = append(out, m)
	}

	return out, nil
}

// Modules returns every loaded module in load order.
func (a *Analyzer) Modules() []*Module {
	return a.order
}

// handleOf returns the canonical handle of t. Pointers and aliases are
// transparent.
func (a *Analyzer) handleOf(t types.Type) *handle {
	t = deref(t)
	if t == nil {
		return nil
	}

	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	h := &handle{analyzer: a, t: t}
	a.typeCache[t] = h

	return h
}

// moduleOf returns the loaded module declaring t, if any.
func (a *Analyzer) moduleOf(t types.Type) *Module {
	switch tt := t.(type) {
	case *types.Named:
		pkg := tt.Obj().Pkg()
		if pkg == nil {
			return nil
		}

		return a.modules[pkg.Path()]
	case *types.Slice:
		return a.moduleOf(deref(tt.Elem()))
	case *types.Array:
		return a.moduleOf(deref(tt.Elem()))
	default:
		return nil
	}
}

func deref(t types.Type) types.Type {
	for t != nil {
		t = types.Unalias(t)

		p, ok := t.(*types.Pointer)
		if !ok {
			return t
		}

		t = p.Elem()
	}

	return nil
}

// Module is a Go package exposed as a typesys.Module.
type Module struct {
	analyzer *Analyzer
	pkg      *packages.Package
}

var _ typesys.Module = (*Module)(nil)

// Name returns the package path.
func (m *Module) Name() string {
	return m.pkg.PkgPath
}

// Types enumerates the exported named types of the package in name order.
// A package that failed to load or type-check fails to enumerate.
func (m *Module) Types() ([]typesys.TypeHandle, error) {
	if len(m.pkg.Errors) > 0 {
		errs := make([]error, 0, len(m.pkg.Errors))
		for _, e := range m.pkg.Errors {
			errs = append(errs, e)
		}

		return nil, errors.Join(errs...)
	}

	if m.pkg.Types == nil {
		return nil, fmt.Errorf("package %s has no type information", m.pkg.PkgPath)
	}

	scope := m.pkg.Types.Scope()

	var out []typesys.TypeHandle
	for _, name := range scope.Names() {
		tn, ok := exportedTypeName(scope.Lookup(name))
		if !ok {
			continue
		}

		out = append(out, m.analyzer.handleOf(tn.Type()))
	}

	return out, nil
}

// Lookup finds an exported type by "pkgpath.Name".
func (m *Module) Lookup(identifier string) typesys.TypeHandle {
	if m.pkg.Types == nil {
		return nil
	}

	name, ok := strings.CutPrefix(identifier, m.pkg.PkgPath+".")
	if !ok {
		return nil
	}

	tn, ok := exportedTypeName(m.pkg.Types.Scope().Lookup(name))
	if !ok {
		return nil
	}

	return m.analyzer.handleOf(tn.Type())
}

func exportedTypeName(obj types.Object) (*types.TypeName, bool) {
	tn, ok := obj.(*types.TypeName)
	if !ok || !tn.Exported() || tn.IsAlias() {
		return nil, false
	}

	return tn, true
}
