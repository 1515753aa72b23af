package graph

import (
	"bytes"

	"github.com/go-json-experiment/json/jsontext"

	"def-extractor/internal/typesys"
)

// Container kinds of enumerable types.
const (
	ContainerList  = "list"
	ContainerArray = "array"
)

// TypeNode is the record of one distinct type discovered during extraction.
type TypeNode struct {
	// Identifier is the canonical type identifier.
	Identifier string `json:"typeIdentifier"`
	// Discovered is set once the node has been enqueued for traversal.
	Discovered bool `json:"-"`
	// MembersResolved is set once member discovery ran or was skipped.
	MembersResolved bool `json:"-"`
	// Members maps member names to member type identifiers, in discovery order.
	Members MemberMap `json:"childNodes,omitempty"`
	// MemberDescriptions holds human-readable text attached to members.
	MemberDescriptions map[string]string `json:"childDescriptions,omitempty"`
	// Classification is filled by the classification pass.
	Classification SpecialType `json:"specialType,omitzero"`
	// IsLeaf is true when the type needs no structural expansion.
	IsLeaf bool `json:"isLeafNode,omitzero"`
	// LeafCompletions lists enum members, set only for enums.
	LeafCompletions []CompletionItem `json:"leafNodeCompletions,omitempty"`

	handle     typesys.TypeHandle
	classified bool
}

// NewTypeNode creates a node for a type handle.
func NewTypeNode(identifier string, handle typesys.TypeHandle) *TypeNode {
	return &TypeNode{
		Identifier:         identifier,
		MemberDescriptions: make(map[string]string),
		handle:             handle,
	}
}

// Handle returns the type handle the node was created from.
func (n *TypeNode) Handle() typesys.TypeHandle {
	return n.handle
}

// ResolveMembers marks member discovery as done. It reports whether the flag
// flipped, which happens at most once per node.
func (n *TypeNode) ResolveMembers() bool {
	if n.MembersResolved {
		return false
	}

	n.MembersResolved = true

	return true
}

// MarkClassified records that the classification pass visited the node. It
// reports false when the node was already classified.
func (n *TypeNode) MarkClassified() bool {
	if n.classified {
		return false
	}

	n.classified = true

	return true
}

// Classified reports whether the classification pass visited the node.
func (n *TypeNode) Classified() bool {
	return n.classified
}

// SpecialType describes the semantic nature of a type for editor tooling.
type SpecialType struct {
	Enumerable      Enumerable `json:"enumerable,omitzero"`
	CustomFormats   []string   `json:"customFormats,omitempty"`
	HasCustomParser bool       `json:"hasCustomReader,omitzero"`
	Hyperlink       bool       `json:"hyperlink,omitzero"`
	// RootDefName is set only for types deriving from the definition root.
	RootDefName string `json:"defName,omitempty"`
	IsAbstract  bool   `json:"isAbstract,omitzero"`
	// CustomKeyValue is set for types parsed as a single key/value pair.
	CustomKeyValue        KeyValue `json:"customXml,omitzero"`
	IsComponentProperties bool     `json:"comp,omitzero"`
	Parent                string   `json:"parent,omitempty"`

	IsInteger     bool `json:"integer,omitzero"`
	IsColor       bool `json:"color,omitzero"`
	IsIntVector   bool `json:"intVec,omitzero"`
	IsIntRange    bool `json:"intRange,omitzero"`
	IsFloatRange  bool `json:"floatRange,omitzero"`
	IsFloatVector bool `json:"vector,omitzero"`
	IsEnum        bool `json:"enum,omitzero"`
	IsFloat       bool `json:"float,omitzero"`
	IsString      bool `json:"string,omitzero"`
	IsBool        bool `json:"bool,omitzero"`
}

// Enumerable describes a list or array type.
type Enumerable struct {
	ElementType   string `json:"genericType,omitempty"`
	ContainerKind string `json:"enumerableType,omitempty"`
}

// IsSet reports whether the type was classified as enumerable.
func (e Enumerable) IsSet() bool {
	return e.ContainerKind != ""
}

// KeyValue is the key and value identifier pair of a custom-parsed type.
type KeyValue struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
}

// IsSet reports whether the pair holds a key.
func (kv KeyValue) IsSet() bool {
	return kv.Key != ""
}

// MemberMap is an insertion-ordered map of member name to type identifier.
type MemberMap struct {
	names []string
	types map[string]string
}

// Set records a member. Re-setting an existing name keeps its position.
func (m *MemberMap) Set(name, identifier string) {
	if m.types == nil {
		m.types = make(map[string]string)
	}

	if _, ok := m.types[name]; !ok {
		m.names = append(m.names, name)
	}

	m.types[name] = identifier
}

// Get returns the identifier of a member.
func (m MemberMap) Get(name string) (string, bool) {
	id, ok := m.types[name]
	return id, ok
}

// Names returns member names in insertion order.
func (m MemberMap) Names() []string {
	return m.names
}

// Len returns the number of members.
func (m MemberMap) Len() int {
	return len(m.names)
}

// MarshalJSON encodes the members as a JSON object in insertion order.
func (m MemberMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	enc := jsontext.NewEncoder(&buf)
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return nil, err
	}

	for _, name := range m.names {
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return nil, err
		}

		if err := enc.WriteToken(jsontext.String(m.types[name])); err != nil {
			return nil, err
		}
	}

	if err := enc.WriteToken(jsontext.EndObject); err != nil {
		return nil, err
	}

	return bytes.TrimSpace(buf.Bytes()), nil
}
