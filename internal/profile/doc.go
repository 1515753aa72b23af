// Package profile names the framework anchors and heuristic tables the
// extraction engine relies on.
//
// A profile is a YAML document. The embedded RimWorld profile is the default;
// a user profile is decoded on top of it, so it only needs to list the keys it
// changes.
package profile
