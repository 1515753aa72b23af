// Package extract is the type graph extraction and classification engine.
//
// One run is a strict sequence over a fresh graph.Registry:
//   - root selection over every owned module
//   - traversal of the roots (breadth-first, worklist based)
//   - derived-type search over every loaded module
//   - traversal of the derived types
//   - classification of every registered node
//
// The engine is single-threaded and keeps no package-level mutable state.
package extract
