package manifest

// File is the YAML schema of a manifest.
type File struct {
	// Module names the loaded unit; files sharing a name form one module.
	Module string `yaml:"module"`
	// Framework marks a referenced module that is consulted for lookups
	// but never extracted.
	Framework bool       `yaml:"framework,omitempty"`
	Types     []TypeDecl `yaml:"types"`
}

// TypeKind is the declaration kind of a type.
type TypeKind string

const (
	KindClass     TypeKind = "class"
	KindStruct    TypeKind = "struct"
	KindInterface TypeKind = "interface"
	KindEnum      TypeKind = "enum"
	KindPrimitive TypeKind = "primitive"
)

// TypeDecl declares one type.
type TypeDecl struct {
	// Name is the full Namespace.Name of the type.
	Name string   `yaml:"name"`
	Kind TypeKind `yaml:"kind,omitempty"`
	// Base is a type reference; empty means the universal object root.
	Base string `yaml:"base,omitempty"`
	// Params are generic parameter names of a generic definition.
	Params     []string    `yaml:"params,omitempty"`
	Abstract   bool        `yaml:"abstract,omitempty"`
	Primitive  string      `yaml:"primitive,omitempty"`
	Values     []string    `yaml:"values,omitempty"`
	Interfaces []string    `yaml:"interfaces,omitempty"`
	Methods    []string    `yaml:"methods,omitempty"`
	Fields     []FieldDecl `yaml:"fields,omitempty"`
}

// FieldDecl declares a public instance field.
type FieldDecl struct {
	Name    string       `yaml:"name"`
	Type    string       `yaml:"type"`
	Markers []MarkerDecl `yaml:"markers,omitempty"`
}

// MarkerDecl declares an attribute attached to a field.
type MarkerDecl struct {
	Type string `yaml:"type"`
	Args []any  `yaml:"args,omitempty"`
}
