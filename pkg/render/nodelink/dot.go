package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Titles labels each cluster when rendering more than one graph.
	// Index-aligned with the graphs passed to [ToDOT]; missing entries
	// leave the cluster untitled.
	Titles []string
}

// ToDOT converts flattened graphs to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// A single graph renders as a plain digraph. Multiple graphs each get their
// own cluster subgraph, which Graphviz lays out side by side; prefix-based
// IDs keep the shared namespace collision-free.
func ToDOT(opts Options, graphs ...visual.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fontcolor=white, fontsize=12];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")

	if len(graphs) == 1 {
		buf.WriteString("\n")
		writeGraph(&buf, graphs[0], "  ")
	} else {
		for i, g := range graphs {
			fmt.Fprintf(&buf, "\n  subgraph cluster_%d {\n", i)
			if i < len(opts.Titles) && opts.Titles[i] != "" {
				fmt.Fprintf(&buf, "    label=%q;\n", opts.Titles[i])
			}
			buf.WriteString("    color=\"#B0BEC5\";\n")
			writeGraph(&buf, g, "    ")
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeGraph(buf *bytes.Buffer, g visual.Graph, indent string) {
	for _, n := range g.Nodes {
		fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(nodeAttrs(n), ", "))
	}
	for _, e := range g.Edges {
		color := e.Color
		if color == "" {
			color = visual.ColorEdge
		}
		fmt.Fprintf(buf, "%s%q -> %q [color=%q];\n", indent, e.Source, e.Target, color)
	}
}

func nodeAttrs(n visual.Node) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", n.Label),
		fmt.Sprintf("fillcolor=%q", n.Color),
		fmt.Sprintf("color=%q", n.Color),
		// Graphviz sizes in inches; visual weights are pixel-ish units.
		fmt.Sprintf("width=%.2f", float64(n.Size)/25.0),
	}
	if n.Tooltip != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", n.Tooltip))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or embedding.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	out := buf.Bytes()
	if format == graphviz.SVG {
		out = normalizeViewBox(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the outer svg tag so the image scales to its
// container instead of carrying Graphviz's absolute point sizes.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
