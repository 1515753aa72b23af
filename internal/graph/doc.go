// Package graph holds the extraction data model: the Registry of TypeNodes
// keyed by type identifier, the SpecialType classification record and the
// editor completion items attached to enum nodes.
//
// A Registry is append/mutate-only for the lifetime of one extraction run.
// It is not safe for concurrent use.
package graph
