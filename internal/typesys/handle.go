package typesys

// PrimitiveKind classifies scalar types.
type PrimitiveKind int

const (
	PrimitiveNone    PrimitiveKind = iota // not a scalar
	PrimitiveBool                         // bool
	PrimitiveInteger                      // byte, short, int, long and unsigned variants
	PrimitiveFloat                        // float, double
	PrimitiveString                       // string
	PrimitiveOther                        // char, native ints and other runtime scalars
)

// String returns a human-readable representation of the PrimitiveKind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveNone:
		return "none"
	case PrimitiveBool:
		return "bool"
	case PrimitiveInteger:
		return "integer"
	case PrimitiveFloat:
		return "float"
	case PrimitiveString:
		return "string"
	case PrimitiveOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind is a primitive scalar or string.
func (k PrimitiveKind) IsScalar() bool {
	return k != PrimitiveNone
}

// TypeHandle is an opaque descriptor for a type.
type TypeHandle interface {
	// Namespace of the type, empty for builtin scalars of some providers.
	Namespace() string
	// Name is the simple name without generic arity or arguments.
	Name() string
	// Module that declares the type, nil for types outside any loaded module.
	Module() Module
	// Base returns the base type, or nil when the base is the universal object root.
	Base() TypeHandle
	// Members lists public instance field-like members, inherited ones included.
	Members() ([]Member, error)

	IsGeneric() bool
	// GenericDefinition returns the open generic type of an instantiation.
	GenericDefinition() TypeHandle
	GenericArgs() []TypeHandle
	IsGenericParameter() bool

	IsArray() bool
	// Elem returns the element type of an array.
	Elem() TypeHandle

	IsEnum() bool
	// EnumValues returns member names in declaration order.
	EnumValues() []string
	IsAbstract() bool
	Primitive() PrimitiveKind

	// HasMethod reports whether the type exposes a method with the given name.
	HasMethod(name string) bool
	// AssignableTo reports whether values of the type can be used as target,
	// through inheritance or an implemented capability.
	AssignableTo(target TypeHandle) bool
}

// Member is a public instance field-like member of a type.
type Member struct {
	Name    string
	Type    TypeHandle
	Markers []Marker
}

// Marker is an attribute attached to a member.
type Marker struct {
	Type string // identifier of the marker type
	Args []any  // constructor payload
}

// Marker returns the first marker of the given type.
func (m Member) Marker(markerType string) (Marker, bool) {
	for _, mk := range m.Markers {
		if mk.Type == markerType {
			return mk, true
		}
	}

	return Marker{}, false
}

// Module is a loaded unit of code.
type Module interface {
	Name() string
	// Types enumerates every type declared by the module.
	Types() ([]TypeHandle, error)
	// Lookup finds a declared type by identifier.
	Lookup(identifier string) TypeHandle
}
