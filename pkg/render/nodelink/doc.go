// Package nodelink renders flattened logic trees as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz: leaf
// text spans appear as filled ellipses connected by arrows to the relation
// nodes that join them. Rendering a comparison places each tree in its own
// cluster so the reference and compared structures sit side by side in one
// image.
//
// # Usage
//
// Convert one or more flattened graphs to DOT format, then render:
//
//	dot := nodelink.ToDOT(nodelink.Options{}, refGraph, compGraph)
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered in-process via [RenderSVG] or [RenderPNG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB), mirroring the
// hierarchical orientation of the parsed trees.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external Graphviz installation is required.
package nodelink
