// Package gosource exposes Go packages as typesys modules.
//
// It uses golang.org/x/tools/go/packages with go/types to load packages
// and maps Go type constructs onto the extraction model:
//   - exported named types are the module's types
//   - the first embedded struct is the base type
//   - exported fields, promoted ones included, are members
//   - struct tag entries are member markers
//   - named basic types with declared constants are enums
//   - slices and arrays are arrays, maps are the generic "map<K, V>"
//   - interfaces are abstract
package gosource
