// Package verse is a small definition hierarchy loaded by the go/types
// provider tests.
package verse

// Def is the base of every definition record.
type Def struct {
	DefName    string `desc:"Unique name of the definition."`
	Label      string `desc:"A human-readable label."`
	LabelCache string
	IndexInt   int
	Generated  bool `unsaved:"false"`
	Editable   bool `unsaved:"true"`

	shortHash uint16
}

// ThingDef describes a spawnable thing.
type ThingDef struct {
	Def

	Category  ThingCategory
	Size      IntVec2
	Comps     []CompProperties
	StatBases []*StatModifier
	Weights   map[string]float64
	Pawn      SlateRef[PawnGenOption]
	Stuff     Pair[int, ModContentPack]
	Spawned   *Thing
	// Blueprint ends in "int" and is treated as internal state.
	Blueprint *Thing
}

// ThingCategory is the broad category of a thing.
type ThingCategory int

const (
	CategoryNone ThingCategory = iota
	CategoryItem
	CategoryBuilding
	CategoryPawn
)

// Celsius is a named scalar without declared values.
type Celsius float32

// IntVec2 is an integer grid coordinate.
type IntVec2 struct {
	X int
	Z int
}

// CompProperties configures a thing component.
type CompProperties struct {
	CompClass string
}

// CompPropertiesGlower configures a light source.
type CompPropertiesGlower struct {
	CompProperties

	GlowRadius float32
	MinTemp    Celsius
}

// StatModifier adds a value to a stat.
type StatModifier struct {
	Stat  string
	Value float32
}

// LoadDataFromXmlCustom reads the modifier from its compact form.
func (m *StatModifier) LoadDataFromXmlCustom(stat string, value float32) {
	m.Stat, m.Value = stat, value
}

// ISlateRef is implemented by references resolved at load time.
type ISlateRef interface {
	SlateKey() string
}

// SlateRef is a late-bound reference to a T.
type SlateRef[T any] struct {
	Ref string
}

// SlateKey returns the slate key of the reference.
func (r SlateRef[T]) SlateKey() string {
	return r.Ref
}

// PawnGenOption is only reachable through a late-bound reference.
type PawnGenOption struct {
	SelectionWeight float32
}

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// ModContentPack describes a loaded mod.
type ModContentPack struct {
	PackageID string
}

// Entity is the base of live game objects.
type Entity struct {
	ID int
}

// Thing is a live object on a map.
type Thing struct {
	Entity

	Def       *ThingDef
	HitPoints HitPointsTracker
}

// HitPointsTracker is only reachable through an opaque type.
type HitPointsTracker struct {
	Current int
	Max     int
}
