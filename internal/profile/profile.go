package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"def-extractor/internal/typesys"
)

//go:embed rimworld.yaml
var rimworldYAML []byte

// ErrNoDefinitionRoot is returned for profiles without a definition root anchor.
var ErrNoDefinitionRoot = errors.New("profile does not name a definition root")

// Profile holds every anchor and heuristic table of one host framework.
type Profile struct {
	Anchors        Anchors        `yaml:"anchors"`
	Roots          Roots          `yaml:"roots"`
	Traversal      Traversal      `yaml:"traversal"`
	Classification Classification `yaml:"classification"`
}

// Anchors are identifiers of well-known framework types.
type Anchors struct {
	// DefinitionRoot is the base type of top-level definition records. Required.
	DefinitionRoot string `yaml:"definition_root"`
	// ComponentProperties is the base type of component configuration types.
	ComponentProperties string `yaml:"component_properties"`
	// UnsavedMarker opts a member out when its boolean payload is false.
	UnsavedMarker string `yaml:"unsaved_marker"`
	// DescriptionMarker carries human-readable member text.
	DescriptionMarker string `yaml:"description_marker"`
	// LateBoundReference is the capability of references resolved at load time.
	LateBoundReference string `yaml:"late_bound_reference"`
}

// Roots configures upstream root selection.
type Roots struct {
	// ComponentNaming selects types whose name contains it.
	ComponentNaming string `yaml:"component_naming"`
	// AlwaysInclude selects types whose name contains any fragment.
	AlwaysInclude []string `yaml:"always_include"`
}

// Traversal configures the stop rules of the traversal engine.
type Traversal struct {
	// InternalSuffixes are case-insensitive member name suffixes never collected.
	InternalSuffixes []string `yaml:"internal_suffixes"`
	// ListGenerics are single-argument list definitions.
	ListGenerics []string `yaml:"list_generics"`
	// ListSpelling is the fixed identifier spelling of list-shaped generics.
	ListSpelling string `yaml:"list_spelling"`
	// TransparentGenerics are generic definitions registered but never expanded.
	TransparentGenerics []string `yaml:"transparent_generics"`
	Opaque              Opaque   `yaml:"opaque"`
}

// Opaque selects types whose member graph is never expanded.
type Opaque struct {
	// Ancestors suppresses these types and everything deriving from them.
	Ancestors []string `yaml:"ancestors"`
	// NameContains suppresses types whose simple name contains a fragment.
	NameContains []string `yaml:"name_contains"`
	// Types suppresses exact identifiers.
	Types []string `yaml:"types"`
	// GenericDefinitions suppresses every instantiation of these definitions.
	GenericDefinitions []string `yaml:"generic_definitions"`
}

// Classification configures the classification pass.
type Classification struct {
	// CustomParseMethod is the method name marking custom-parsed types.
	CustomParseMethod string `yaml:"custom_parse_method"`
	// LateBoundFormat is the format hint of late-bound references.
	LateBoundFormat string         `yaml:"late_bound_format"`
	Formats         []FormatRule   `yaml:"formats"`
	KeyValueParsers []KeyValueRule `yaml:"key_value_parsers"`
}

// FormatFlag names the SpecialType flag a format rule sets.
type FormatFlag string

const (
	FlagColor       FormatFlag = "color"
	FlagIntVector   FormatFlag = "intVector"
	FlagFloatVector FormatFlag = "floatVector"
	FlagIntRange    FormatFlag = "intRange"
	FlagFloatRange  FormatFlag = "floatRange"
)

// Valid reports whether the flag is known.
func (f FormatFlag) Valid() bool {
	switch f {
	case FlagColor, FlagIntVector, FlagFloatVector, FlagIntRange, FlagFloatRange:
		return true
	default:
		return false
	}
}

// FormatRule attaches a literal format to a well-known value type.
type FormatRule struct {
	Type           string     `yaml:"type"`
	Flag           FormatFlag `yaml:"flag"`
	Formats        []string   `yaml:"formats"`
	IncludeDerived bool       `yaml:"include_derived"`
}

// KeyValueRule describes a custom-parsed type read as one key/value pair.
// It matches by exact identifier or by a simple-name fragment.
type KeyValueRule struct {
	Type         string `yaml:"type,omitempty"`
	NameContains string `yaml:"name_contains,omitempty"`
	Key          string `yaml:"key"`
	Value        string `yaml:"value"`
	Hyperlink    bool   `yaml:"hyperlink,omitempty"`
}

// Default returns the embedded RimWorld profile.
func Default() *Profile {
	p, err := Parse(rimworldYAML, nil)
	if err != nil {
		panic(fmt.Sprintf("embedded profile is invalid: %v", err))
	}

	return p
}

// LoadFile loads a profile file on top of the default profile.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(data, Default())
}

// Parse decodes YAML data on top of base. A nil base starts from an empty profile.
func Parse(data []byte, base *Profile) (*Profile, error) {
	var p Profile
	if base != nil {
		p = *base
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks required anchors and rule tables.
func (p *Profile) Validate() error {
	if p.Anchors.DefinitionRoot == "" {
		return ErrNoDefinitionRoot
	}

	for i, f := range p.Classification.Formats {
		if f.Type == "" {
			return fmt.Errorf("format rule %d: type is required", i)
		}
		if !f.Flag.Valid() {
			return fmt.Errorf("format rule %s: unknown flag %q", f.Type, f.Flag)
		}
	}

	for i, kv := range p.Classification.KeyValueParsers {
		if kv.Type == "" && kv.NameContains == "" {
			return fmt.Errorf("key/value parser %d: type or name_contains is required", i)
		}
	}

	return nil
}

// Namer returns the identifier rules of the profile.
func (p *Profile) Namer() typesys.Namer {
	n := typesys.NewNamer(p.Traversal.ListGenerics...)
	if p.Traversal.ListSpelling != "" {
		n.ListSpelling = p.Traversal.ListSpelling
	}

	return n
}
