package typesys

import (
	"strings"

	"def-extractor/internal/common"
)

// DefaultListSpelling is the fixed spelling of list-shaped generics.
const DefaultListSpelling = "System.Collections.Generic.List"

// Namer derives canonical type identifiers from handles.
//
// Identifiers are pure functions of the handle:
//   - simple types: Namespace.Name (Name alone without namespace)
//   - generics: Namespace.Name<Arg1, Arg2>
//   - list-shaped generics: <ListSpelling><T>
//   - arrays: Elem[]
//   - unbound generic parameters: Name
type Namer struct {
	// ListDefinitions are simple identifiers of single-argument list generics.
	ListDefinitions []string
	// ListSpelling replaces the definition name of list-shaped generics.
	ListSpelling string
}

// NewNamer creates a Namer recognizing the given list definitions.
func NewNamer(listDefinitions ...string) Namer {
	return Namer{
		ListDefinitions: listDefinitions,
		ListSpelling:    DefaultListSpelling,
	}
}

// Simple returns Namespace.Name without generic arguments.
func Simple(h TypeHandle) string {
	if h.Namespace() == "" {
		return h.Name()
	}

	return h.Namespace() + "." + h.Name()
}

// Identify returns the canonical identifier of a handle.
func (n Namer) Identify(h TypeHandle) string {
	if h == nil {
		return ""
	}

	switch {
	case h.IsGenericParameter():
		return h.Name()

	case h.IsArray():
		return n.Identify(h.Elem()) + "[]"

	case n.IsList(h):
		return n.spelling() + "<" + n.Identify(h.GenericArgs()[0]) + ">"

	case h.IsGeneric():
		args := h.GenericArgs()
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, n.Identify(arg))
		}

		return Simple(h) + "<" + strings.Join(parts, ", ") + ">"

	default:
		return Simple(h)
	}
}

// IsList reports whether h is an instantiation of a list definition.
func (n Namer) IsList(h TypeHandle) bool {
	if h == nil || !h.IsGeneric() || !common.IsSingle(h.GenericArgs()) {
		return false
	}

	return n.IsDefinition(h, n.ListDefinitions)
}

// IsDefinition reports whether the generic definition of h is one of defs.
func (n Namer) IsDefinition(h TypeHandle, defs []string) bool {
	if h == nil || !h.IsGeneric() {
		return false
	}

	def := h.GenericDefinition()
	if def == nil {
		def = h
	}

	name := Simple(def)
	for _, d := range defs {
		if d == name {
			return true
		}
	}

	return false
}

func (n Namer) spelling() string {
	if n.ListSpelling == "" {
		return DefaultListSpelling
	}

	return n.ListSpelling
}
