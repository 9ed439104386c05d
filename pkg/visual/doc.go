// Package visual converts logic trees into flat node/edge collections for
// graph renderers.
//
// [Flatten] walks a [logic.Node] tree depth-first and emits one [Node] per
// tree node and one directed [Edge] per parent/child pair. Identifiers are
// path-encoded under a caller-supplied prefix, so flattening two unrelated
// trees with different prefixes yields disjoint ID sets and the results can
// be merged into one shared visualization namespace with [MergeGraphs].
//
// The package also provides JSON serialization helpers mirroring the graph
// wire format used by the CLI and the HTTP API.
package visual
