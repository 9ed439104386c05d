// Package pipeline provides the core analysis pipeline for logicmap.
//
// This package implements the complete parse → measure → flatten → render
// flow that can be used by CLI, TUI, and API components. By centralizing
// this logic, we ensure consistent behavior across all entry points and
// avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages per comparison:
//
//  1. Parse: Send both passages to the discourse-parsing service
//  2. Measure: Compute tree depths and the complexity match score
//  3. Flatten & Render: Convert both trees to visual graphs and generate
//     output in various formats (SVG, PNG, DOT, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(client, logger)
//	opts := pipeline.Options{
//	    RefText:  "The motor stopped because the fuse blew.",
//	    CompText: "The motor stopped.",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/Holmfrior/Technopreneurship/pkg/errors"
	"github.com/Holmfrior/Technopreneurship/pkg/logic"
	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatDOT:  true,
	FormatJSON: true,
}

// DefaultFormats is used when no formats are requested.
var DefaultFormats = []string{FormatSVG}

// Side labels used in logs, hooks, and cluster titles.
const (
	SideReference = "reference"
	SideCompared  = "compared"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the analysis pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Input passages
	RefText  string `json:"reference"`
	CompText string `json:"compared"`

	// ID namespaces for the two flattened graphs.
	RefPrefix  string `json:"ref_prefix,omitempty"`
	CompPrefix string `json:"comp_prefix,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Merged  bool     `json:"merged,omitempty"` // one image with both clusters vs. per-side artifacts

	// Refresh bypasses the parse-response cache.
	Refresh bool `json:"refresh,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateText(SideReference, o.RefText); err != nil {
		return err
	}
	if err := errors.ValidateText(SideCompared, o.CompText); err != nil {
		return err
	}
	if o.RefPrefix == "" {
		o.RefPrefix = visual.PrefixReference
	}
	if o.CompPrefix == "" {
		o.CompPrefix = visual.PrefixCompared
	}
	if o.RefPrefix == o.CompPrefix {
		return errors.New(errors.ErrCodeInvalidInput, "prefixes must differ, both are %q", o.RefPrefix)
	}
	if len(o.Formats) == 0 {
		o.Formats = DefaultFormats
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, dot, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Analysis holds the outcome for one side of the comparison.
type Analysis struct {
	Text  string       `json:"text"`
	Tree  *logic.Node  `json:"tree"`
	Depth int          `json:"depth"`
	Nodes int          `json:"nodes"`
	Graph visual.Graph `json:"graph"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this analysis run.
	RunID string `json:"run_id"`

	// Ref and Comp hold the per-side analyses.
	Ref  Analysis `json:"ref"`
	Comp Analysis `json:"comp"`

	// Score is the complexity match percentage (0-100), capped at 100.
	Score int `json:"score"`

	// Delta is the compared depth minus the reference depth.
	Delta int `json:"delta"`

	// Artifacts contains rendered outputs keyed by format.
	// Per-side artifacts (Merged=false) use "<format>:<prefix>" keys.
	Artifacts map[string][]byte `json:"-"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int           `json:"node_count"`
	EdgeCount  int           `json:"edge_count"`
	ParseTime  time.Duration `json:"parse_time"`
	RenderTime time.Duration `json:"render_time"`
}
