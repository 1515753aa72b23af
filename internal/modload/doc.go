// Package modload turns command-line module paths into a typesys.Universe.
//
// Paths ending in .yaml or .yml are manifest files, directories contribute
// every manifest they contain, and paths prefixed with "go:" are Go package
// patterns. Every given module is owned unless its manifest marks it as a
// framework; the builtin system module is always a framework module.
package modload
