package gosource

import (
	"fmt"
	"go/types"
	"slices"

	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/typesys"
)

// mapName is the generic definition name given to Go maps.
const mapName = "map"

// handle implements typesys.TypeHandle over a go/types type.
type handle struct {
	analyzer *Analyzer
	t        types.Type

	enumLoaded bool
	enum       []string
}

var _ typesys.TypeHandle = (*handle)(nil)

func (h *handle) Namespace() string {
	switch t := h.t.(type) {
	case *types.Named:
		if pkg := t.Obj().Pkg(); pkg != nil {
			return pkg.Path()
		}
		return ""
	case *types.Slice, *types.Array:
		return h.Elem().Namespace()
	default:
		return ""
	}
}

func (h *handle) Name() string {
	switch t := h.t.(type) {
	case *types.Named:
		return t.Obj().Name()
	case *types.TypeParam:
		return t.Obj().Name()
	case *types.Basic:
		return t.Name()
	case *types.Slice, *types.Array:
		return h.Elem().Name() + "[]"
	case *types.Map:
		return mapName
	default:
		return types.TypeString(t, nil)
	}
}

func (h *handle) Module() typesys.Module {
	m := h.analyzer.moduleOf(h.t)
	if m == nil {
		return nil
	}

	return m
}

// Base returns the first embedded struct of a named struct type.
func (h *handle) Base() typesys.TypeHandle {
	if _, ok := h.t.(*types.Named); !ok {
		return nil
	}

	st, ok := h.t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Embedded() {
			continue
		}

		ft := deref(f.Type())
		if _, named := ft.(*types.Named); !named {
			continue
		}

		if _, isStruct := ft.Underlying().(*types.Struct); isStruct {
			return h.analyzer.handleOf(ft)
		}
	}

	return nil
}

// Members lists exported fields, own fields first, then fields promoted
// from embedded structs. Shadowed promoted fields are dropped.
func (h *handle) Members() ([]typesys.Member, error) {
	return h.members(make(map[types.Type]bool)), nil
}

func (h *handle) members(visiting map[types.Type]bool) []typesys.Member {
	st, ok := h.t.Underlying().(*types.Struct)
	if !ok || visiting[h.t] {
		return nil
	}

	visiting[h.t] = true
	defer delete(visiting, h.t)

	var own, promoted []typesys.Member

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)

		if f.Embedded() {
			promoted = append(promoted, h.analyzer.handleOf(f.Type()).members(visiting)...)
			continue
		}

		if !f.Exported() {
			continue
		}

		markers, err := parseTag(st.Tag(i))
		if err != nil {
			logger.Warning(fmt.Sprintf("ignoring tag of %s.%s: %v", h, f.Name(), err))
		}

		own = append(own, typesys.Member{
			Name:    f.Name(),
			Type:    h.analyzer.handleOf(f.Type()),
			Markers: markers,
		})
	}

	for _, m := range promoted {
		shadowed := slices.ContainsFunc(own, func(o typesys.Member) bool { return o.Name == m.Name })
		if !shadowed {
			own = append(own, m)
		}
	}

	return own
}

func (h *handle) IsGeneric() bool {
	switch t := h.t.(type) {
	case *types.Named:
		return t.TypeParams().Len() > 0
	case *types.Map:
		return true
	default:
		return false
	}
}

func (h *handle) GenericDefinition() typesys.TypeHandle {
	switch t := h.t.(type) {
	case *types.Named:
		if t.TypeParams().Len() == 0 {
			return nil
		}
		return h.analyzer.handleOf(t.Origin())
	case *types.Map:
		return h
	default:
		return nil
	}
}

func (h *handle) GenericArgs() []typesys.TypeHandle {
	switch t := h.t.(type) {
	case *types.Named:
		if args := t.TypeArgs(); args.Len() > 0 {
			out := make([]typesys.TypeHandle, 0, args.Len())
			for i := 0; i < args.Len(); i++ {
				out = append(out, h.analyzer.handleOf(args.At(i)))
			}
			return out
		}

		params := t.TypeParams()
		out := make([]typesys.TypeHandle, 0, params.Len())
		for i := 0; i < params.Len(); i++ {
			out = append(out, h.analyzer.handleOf(params.At(i)))
		}
		return out
	case *types.Map:
		return []typesys.TypeHandle{h.analyzer.handleOf(t.Key()), h.analyzer.handleOf(t.Elem())}
	default:
		return nil
	}
}

func (h *handle) IsGenericParameter() bool {
	_, ok := h.t.(*types.TypeParam)
	return ok
}

func (h *handle) IsArray() bool {
	switch h.t.(type) {
	case *types.Slice, *types.Array:
		return true
	default:
		return false
	}
}

func (h *handle) Elem() typesys.TypeHandle {
	switch t := h.t.(type) {
	case *types.Slice:
		return h.analyzer.handleOf(t.Elem())
	case *types.Array:
		return h.analyzer.handleOf(t.Elem())
	default:
		return nil
	}
}

func (h *handle) IsEnum() bool {
	return len(h.EnumValues()) > 0
}

// EnumValues returns the constants declared with the named type, in source
// order.
func (h *handle) EnumValues() []string {
	if !h.enumLoaded {
		h.enum = enumValues(h.t)
		h.enumLoaded = true
	}

	return h.enum
}

func enumValues(t types.Type) []string {
	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	if _, basic := named.Underlying().(*types.Basic); !basic {
		return nil
	}

	pkg := named.Obj().Pkg()
	if pkg == nil {
		return nil
	}

	var consts []*types.Const

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if ok && types.Identical(c.Type(), named) {
			consts = append(consts, c)
		}
	}

	slices.SortFunc(consts, func(a, b *types.Const) int { return int(a.Pos() - b.Pos()) })

	out := make([]string, 0, len(consts))
	for _, c := range consts {
		out = append(out, c.Name())
	}

	return out
}

func (h *handle) IsAbstract() bool {
	_, ok := h.t.Underlying().(*types.Interface)
	return ok
}

func (h *handle) Primitive() typesys.PrimitiveKind {
	b, ok := h.t.Underlying().(*types.Basic)
	if !ok || h.IsEnum() {
		return typesys.PrimitiveNone
	}

	info := b.Info()

	switch {
	case info&types.IsBoolean != 0:
		return typesys.PrimitiveBool
	case info&types.IsInteger != 0:
		return typesys.PrimitiveInteger
	case info&types.IsFloat != 0:
		return typesys.PrimitiveFloat
	case info&types.IsString != 0:
		return typesys.PrimitiveString
	default:
		return typesys.PrimitiveOther
	}
}

// HasMethod reports whether the method set of the type or of its pointer
// contains name.
func (h *handle) HasMethod(name string) bool {
	var pkg *types.Package
	if named, ok := h.t.(*types.Named); ok {
		pkg = named.Obj().Pkg()
	}

	obj, _, _ := types.LookupFieldOrMethod(h.t, true, pkg, name)
	_, ok := obj.(*types.Func)

	return ok
}

// AssignableTo reports whether the type is target, embeds target along its
// base chain, or implements target as an interface.
func (h *handle) AssignableTo(target typesys.TypeHandle) bool {
	th, ok := target.(*handle)
	if !ok {
		return false
	}

	if types.Identical(h.t, th.t) {
		return true
	}

	if iface, ok := th.t.Underlying().(*types.Interface); ok && !isOpenGeneric(h.t) {
		if types.Implements(h.t, iface) {
			return true
		}

		if !types.IsInterface(h.t) && types.Implements(types.NewPointer(h.t), iface) {
			return true
		}
	}

	for _, a := range typesys.Ancestors(h) {
		if ah, ok := a.(*handle); ok && types.Identical(ah.t, th.t) {
			return true
		}
	}

	return false
}

// isOpenGeneric reports whether t is a generic type declaration that was
// never instantiated.
func isOpenGeneric(t types.Type) bool {
	named, ok := t.(*types.Named)
	return ok && named.TypeParams().Len() > 0 && named.TypeArgs().Len() == 0
}

func (h *handle) String() string {
	return types.TypeString(h.t, nil)
}
