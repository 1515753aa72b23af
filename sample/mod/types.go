// Package mod extends the verse hierarchy from another package.
package mod

import "def-extractor/sample/verse"

// ExampleDef is a definition declared outside the core package.
type ExampleDef struct {
	verse.Def

	Related []verse.ThingDef
	Power   verse.Celsius
}

// GlowerDerived is never referenced by any field.
type GlowerDerived struct {
	verse.CompPropertiesGlower

	Pulse bool
}
