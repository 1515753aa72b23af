package manifest

import (
	"fmt"
	"slices"
	"strings"

	"def-extractor/internal/typesys"
)

// handle implements typesys.TypeHandle for declared types, generic
// instantiations, arrays and generic parameters.
type handle struct {
	set   *Set
	decl  *decl               // declared or instantiated type
	args  []typesys.TypeHandle // instantiation arguments
	elem  typesys.TypeHandle   // array element
	param string              // generic parameter name
}

var _ typesys.TypeHandle = (*handle)(nil)

// key identifies the handle within its set.
func (h *handle) key() string {
	switch {
	case h.param != "":
		return "!" + h.param
	case h.elem != nil:
		return keyOf(h.elem) + "[]"
	case len(h.args) > 0:
		parts := make([]string, 0, len(h.args))
		for _, a := range h.args {
			parts = append(parts, keyOf(a))
		}
		return h.decl.src.Name + "<" + strings.Join(parts, ",") + ">"
	default:
		return h.decl.src.Name
	}
}

func keyOf(t typesys.TypeHandle) string {
	if mh, ok := t.(*handle); ok {
		return mh.key()
	}

	return typesys.Simple(t)
}

// paramEnv maps the generic parameters of the handle's declaration to the
// instantiation arguments, or to parameter handles for open definitions.
func (h *handle) paramEnv() map[string]typesys.TypeHandle {
	if h.decl == nil || len(h.decl.src.Params) == 0 {
		return nil
	}

	env := make(map[string]typesys.TypeHandle, len(h.decl.src.Params))
	for i, p := range h.decl.src.Params {
		if i < len(h.args) {
			env[p] = h.args[i]
		} else {
			env[p] = &handle{set: h.set, param: p}
		}
	}

	return env
}

func (h *handle) Namespace() string {
	switch {
	case h.decl != nil:
		return h.decl.ns
	case h.elem != nil:
		return h.elem.Namespace()
	default:
		return ""
	}
}

func (h *handle) Name() string {
	switch {
	case h.decl != nil:
		return h.decl.name
	case h.elem != nil:
		return h.elem.Name() + "[]"
	default:
		return h.param
	}
}

func (h *handle) Module() typesys.Module {
	switch {
	case h.decl != nil:
		return h.decl.module
	case h.elem != nil:
		return h.elem.Module()
	default:
		return nil
	}
}

func (h *handle) Base() typesys.TypeHandle {
	if h.decl == nil || h.decl.src.Base == "" || h.decl.src.Base == ObjectRoot {
		return nil
	}

	base, err := h.set.resolve(h.decl.src.Base, h.paramEnv())
	if err != nil {
		// Reported by the module's link errors.
		return nil
	}

	return base
}

func (h *handle) Members() ([]typesys.Member, error) {
	if h.decl == nil {
		return nil, nil
	}

	members, err := h.ownMembers(nil)
	if err != nil {
		return members, err
	}

	for _, a := range typesys.Ancestors(h) {
		ah, ok := a.(*handle)
		if !ok {
			continue
		}

		members, err = ah.ownMembers(members)
		if err != nil {
			return members, err
		}
	}

	return members, nil
}

// ownMembers appends the fields declared by the handle itself.
func (h *handle) ownMembers(members []typesys.Member) ([]typesys.Member, error) {
	if h.decl == nil {
		return members, nil
	}

	env := h.paramEnv()
	for _, f := range h.decl.src.Fields {
		t, err := h.set.resolve(f.Type, env)
		if err != nil {
			return members, fmt.Errorf("field %s of %s: %w", f.Name, h.decl.src.Name, err)
		}

		member := typesys.Member{Name: f.Name, Type: t}
		for _, mk := range f.Markers {
			member.Markers = append(member.Markers, typesys.Marker{Type: mk.Type, Args: mk.Args})
		}

		members = append(members, member)
	}

	return members, nil
}

func (h *handle) IsGeneric() bool {
	return h.decl != nil && len(h.decl.src.Params) > 0
}

func (h *handle) GenericDefinition() typesys.TypeHandle {
	if !h.IsGeneric() {
		return nil
	}

	return h.decl.open
}

func (h *handle) GenericArgs() []typesys.TypeHandle {
	if !h.IsGeneric() {
		return nil
	}

	if len(h.args) > 0 {
		return h.args
	}

	env := h.paramEnv()
	out := make([]typesys.TypeHandle, 0, len(h.decl.src.Params))
	for _, p := range h.decl.src.Params {
		out = append(out, env[p])
	}

	return out
}

func (h *handle) IsGenericParameter() bool {
	return h.param != ""
}

func (h *handle) IsArray() bool {
	return h.elem != nil
}

func (h *handle) Elem() typesys.TypeHandle {
	return h.elem
}

func (h *handle) IsEnum() bool {
	return h.decl != nil && h.decl.src.Kind == KindEnum
}

func (h *handle) EnumValues() []string {
	if !h.IsEnum() {
		return nil
	}

	return h.decl.src.Values
}

func (h *handle) IsAbstract() bool {
	return h.decl != nil && (h.decl.src.Abstract || h.decl.src.Kind == KindInterface)
}

func (h *handle) Primitive() typesys.PrimitiveKind {
	if h.decl == nil {
		return typesys.PrimitiveNone
	}

	switch h.decl.src.Primitive {
	case "bool":
		return typesys.PrimitiveBool
	case "integer":
		return typesys.PrimitiveInteger
	case "float":
		return typesys.PrimitiveFloat
	case "string":
		return typesys.PrimitiveString
	case "":
		if h.decl.src.Kind == KindPrimitive {
			return typesys.PrimitiveOther
		}
		return typesys.PrimitiveNone
	default:
		return typesys.PrimitiveOther
	}
}

func (h *handle) HasMethod(name string) bool {
	chain := append([]typesys.TypeHandle{h}, typesys.Ancestors(h)...)
	for _, t := range chain {
		mh, ok := t.(*handle)
		if !ok || mh.decl == nil {
			continue
		}

		if slices.Contains(mh.decl.src.Methods, name) {
			return true
		}
	}

	return false
}

func (h *handle) AssignableTo(target typesys.TypeHandle) bool {
	if target == nil {
		return false
	}

	want := keyOf(target)
	if h.key() == want {
		return true
	}

	seen := make(map[string]bool)
	queue := []typesys.TypeHandle{h}

	for len(queue) > 0 {
		cur, ok := queue[0].(*handle)
		queue = queue[1:]

		if !ok || cur.decl == nil || seen[cur.key()] {
			continue
		}
		seen[cur.key()] = true

		if cur.key() == want {
			return true
		}

		if base := cur.Base(); base != nil {
			queue = append(queue, base)
		}

		env := cur.paramEnv()
		for _, ref := range cur.decl.src.Interfaces {
			iface, err := cur.set.resolve(ref, env)
			if err != nil {
				continue
			}
			queue = append(queue, iface)
		}
	}

	return false
}

func (h *handle) String() string {
	return h.key()
}
