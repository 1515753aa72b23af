// Package manifest provides type handles read from static metadata manifests.
//
// A manifest is a YAML document describing one module: its types, their base
// types, fields with attached markers, generic parameters, implemented
// interfaces, methods and enum values. Manifests are the portable rendition of
// compiled binary metadata, so the extraction engine can run on modules of
// any host runtime.
//
// Type references use identifier notation:
//
//	Verse.ThingDef
//	System.Collections.Generic.List<Verse.ThingDef>
//	System.Collections.Generic.Dictionary<System.String, System.Int32>
//	Verse.IntVec3[]
//
// Inside a generic type, its parameter names may be referenced directly.
package manifest
