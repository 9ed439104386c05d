package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Holmfrior/Technopreneurship/pkg/logic"
	"github.com/Holmfrior/Technopreneurship/pkg/observability"
	"github.com/Holmfrior/Technopreneurship/pkg/render/nodelink"
	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

// Parser resolves a passage into a discourse tree.
// pkg/parse.Client satisfies this; tests can substitute fakes.
type Parser interface {
	Parse(ctx context.Context, text string, refresh bool) (*logic.Node, error)
}

// Runner encapsulates pipeline execution. Both CLI and API use this
// to avoid duplicating the parse/measure/render flow.
//
// The Runner is stateless except for the parser and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Parser Parser
	Logger *log.Logger
}

// NewRunner creates a runner with the given parser.
// If logger is nil, the default logger is used.
func NewRunner(p Parser, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Parser: p,
		Logger: logger,
	}
}

// Execute runs the complete parse → measure → flatten → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse both passages
	parseStart := time.Now()
	if err := r.analyzeSide(ctx, SideReference, opts.RefText, opts.RefPrefix, opts.Refresh, &result.Ref); err != nil {
		return nil, fmt.Errorf("parse %s: %w", SideReference, err)
	}
	if err := r.analyzeSide(ctx, SideCompared, opts.CompText, opts.CompPrefix, opts.Refresh, &result.Comp); err != nil {
		return nil, fmt.Errorf("parse %s: %w", SideCompared, err)
	}
	result.Stats.ParseTime = time.Since(parseStart)

	// Stage 2: Measure
	result.Score = logic.MatchScore(result.Ref.Depth, result.Comp.Depth)
	result.Delta = result.Comp.Depth - result.Ref.Depth
	result.Stats.NodeCount = result.Ref.Graph.NodeCount() + result.Comp.Graph.NodeCount()
	result.Stats.EdgeCount = result.Ref.Graph.EdgeCount() + result.Comp.Graph.EdgeCount()

	r.Logger.Info("measured complexity",
		"ref_depth", result.Ref.Depth,
		"comp_depth", result.Comp.Depth,
		"score", result.Score,
		"delta", result.Delta)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Analysis().OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.renderArtifacts(result, opts)
	observability.Analysis().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// analyzeSide parses one passage and fills in the per-side analysis.
func (r *Runner) analyzeSide(ctx context.Context, side, text, prefix string, refresh bool, out *Analysis) error {
	observability.Analysis().OnParseStart(ctx, side)
	start := time.Now()

	tree, err := r.Parser.Parse(ctx, text, refresh)
	if err != nil {
		observability.Analysis().OnParseComplete(ctx, side, 0, time.Since(start), err)
		return err
	}

	out.Text = text
	out.Tree = tree
	out.Depth = logic.Depth(tree)
	out.Nodes = logic.Count(tree)
	out.Graph = visual.Flatten(tree, prefix)

	observability.Analysis().OnParseComplete(ctx, side, out.Depth, time.Since(start), nil)
	observability.Analysis().OnFlattenComplete(ctx, side, out.Graph.NodeCount(), out.Graph.EdgeCount())

	r.Logger.Debug("analyzed passage",
		"side", side,
		"depth", out.Depth,
		"nodes", out.Nodes,
		"duration", time.Since(start))
	return nil
}

// renderArtifacts produces the requested output formats. With Merged set,
// a single artifact per format holds both graphs as clusters; otherwise
// each side gets its own artifact keyed "<format>:<prefix>".
func (r *Runner) renderArtifacts(result *Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		if opts.Merged {
			data, err := renderOne(format,
				nodelink.Options{Titles: []string{SideReference, SideCompared}},
				[]visual.Graph{result.Ref.Graph, result.Comp.Graph})
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
			continue
		}
		for _, side := range []struct {
			prefix string
			graph  visual.Graph
		}{
			{opts.RefPrefix, result.Ref.Graph},
			{opts.CompPrefix, result.Comp.Graph},
		} {
			data, err := renderOne(format, nodelink.Options{}, []visual.Graph{side.graph})
			if err != nil {
				return nil, err
			}
			artifacts[format+":"+side.prefix] = data
		}
	}
	return artifacts, nil
}

// renderOne produces a single artifact in the given format.
func renderOne(format string, opts nodelink.Options, graphs []visual.Graph) ([]byte, error) {
	switch format {
	case FormatJSON:
		return visual.MarshalGraph(visual.MergeGraphs(graphs...))
	case FormatDOT:
		return []byte(nodelink.ToDOT(opts, graphs...)), nil
	case FormatSVG:
		return nodelink.RenderSVG(nodelink.ToDOT(opts, graphs...))
	case FormatPNG:
		return nodelink.RenderPNG(nodelink.ToDOT(opts, graphs...))
	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}
}
