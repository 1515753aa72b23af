// Package typesys defines the type introspection capability consumed by the
// extraction engine.
//
// The engine never touches a concrete reflection model. Providers (static
// metadata manifests, go/types packages) implement TypeHandle and Module, and
// the engine works only through these interfaces.
//
// Key types:
//   - TypeHandle: identity, base type, members, generic arguments, predicates
//   - Module: a loaded unit of code that enumerates its types
//   - Universe: all loaded modules plus the owned-module test
//   - Namer: the canonical TypeIdentifier rules
package typesys
