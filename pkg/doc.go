// Package pkg provides the core libraries for logicmap discourse analysis.
//
// # Overview
//
// Logicmap parses text passages into discourse trees, measures their
// structural depth, and renders side-by-side node-link diagrams so a
// rewrite can be checked against its original. The pkg directory is
// organized into these areas:
//
//  1. [logic] - Discourse trees and depth/score computation
//  2. [parse] - HTTP client for the remote parsing service
//  3. [visual] - Tree flattening into node/edge graphs
//  4. [render/nodelink] - Graphviz-backed diagram rendering
//  5. [pipeline] - Orchestration (parse, measure, flatten, render)
//  6. [cache], [history], [config], [errors], [httputil], [observability] -
//     Supporting infrastructure
//
// # Architecture
//
// The typical data flow through logicmap:
//
//	Text passages
//	         |
//	    [parse] package (remote discourse parsing, cached)
//	         |
//	    [logic] package (depth, node count, match score)
//	         |
//	    [visual] package (flatten trees into graphs with prefixed IDs)
//	         |
//	    [render/nodelink] package (DOT layout via Graphviz)
//	         |
//	    SVG/PNG/DOT/JSON output
//
// # Quick Start
//
// Compare two passages and render the result:
//
//	import (
//	    "context"
//	    "github.com/Holmfrior/Technopreneurship/pkg/cache"
//	    "github.com/Holmfrior/Technopreneurship/pkg/parse"
//	    "github.com/Holmfrior/Technopreneurship/pkg/pipeline"
//	)
//
//	client := parse.NewClient("https://abc123.ngrok.io", cache.NewNullCache(), parse.DefaultCacheTTL)
//	runner := pipeline.NewRunner(client, nil)
//
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    RefText:  "The motor stopped because the fuse blew.",
//	    CompText: "The motor stopped.",
//	    Formats:  []string{"svg"},
//	    Merged:   true,
//	})
//	svg := result.Artifacts["svg"]
//
// # Main Packages
//
// [logic] - The discourse tree type and pure measurements over it: Depth
// walks the tree iteratively (a leaf node counts one level even when the
// parser attaches children to it), Count sizes it, and MatchScore turns
// two depths into a capped percentage.
//
// [parse] - Client for the remote parsing service with retries, response
// caching, and the tunnel-bypass header the hosted parser requires.
//
// [visual] - Flattens a tree into a Graph of styled nodes and edges.
// Node IDs encode the root-to-node path under a caller-chosen prefix, so
// two flattened trees can share one diagram without ID collisions.
//
// [pipeline] - The Runner used by both the CLI and the HTTP API. Executes
// the full comparison and gathers artifacts, stats, and a run ID.
//
// [cache] - Cache interface with file, Redis, and null backends.
//
// [history] - File-backed store of past analysis runs.
package pkg
