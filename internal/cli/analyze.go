package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Holmfrior/Technopreneurship/pkg/history"
	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	server      string // parsing service URL (overrides config)
	output      string // output base path
	formatsStr  string // comma-separated formats
	merged      bool   // one image with both graphs vs. per-side files
	noCache     bool   // disable parse response caching
	refresh     bool   // bypass cached parse responses
	save        bool   // record the run in the local history
	interactive bool   // open the tree explorer after analysis
}

// analyzeCommand creates the analyze command for comparing two passages.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze <reference> <compared>",
		Short: "Parse two passages and compare their logical structure",
		Long: `Parse two passages and compare their logical structure.

Both passages are sent to the parsing service, measured for tree depth,
and flattened into node-link diagrams rendered side by side. The match
score reports how much of the reference's structural complexity the
compared passage retains.

Arguments are passage text. Prefix with @ to read from a file:

  logicmap analyze "The motor stopped because the fuse blew." "The motor stopped."
  logicmap analyze @original.txt @rewrite.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.server, "server", "s", "", "parsing service URL (overrides config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "analysis", "output base path")
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.merged, "merged", false, "render both graphs into a single image")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached parse responses")
	cmd.Flags().BoolVar(&opts.save, "save", false, "record the run (see 'logicmap runs')")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "explore the parsed trees in the terminal")

	return cmd
}

// runAnalyze executes the full comparison pipeline and writes artifacts.
func (c *CLI) runAnalyze(ctx context.Context, refArg, compArg string, opts analyzeOpts) error {
	refText, err := textArg(refArg)
	if err != nil {
		return err
	}
	compText, err := textArg(compArg)
	if err != nil {
		return err
	}

	runner, closeRunner, err := c.newRunner(opts.server, opts.noCache)
	if err != nil {
		return err
	}
	defer closeRunner()

	pipeOpts := pipeline.Options{
		RefText:  refText,
		CompText: compText,
		Formats:  parseFormats(opts.formatsStr),
		Merged:   opts.merged,
		Refresh:  opts.refresh,
	}

	spinner := newSpinnerWithContext(ctx, "Parsing passages...")
	spinner.Start()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Analysis failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Analyzed %d nodes across both passages", result.Stats.NodeCount))

	printAnalysis(result)

	if err := writeArtifacts(opts.output, result.Artifacts); err != nil {
		return err
	}

	if opts.save {
		store, err := history.NewFileStore("")
		if err != nil {
			return err
		}
		if err := store.Save(ctx, history.FromResult(result)); err != nil {
			return err
		}
		printDetail("Saved as %s", result.RunID)
	}

	if opts.interactive {
		return runTreeExplorer(result)
	}
	return nil
}

// printAnalysis prints the comparison summary.
func printAnalysis(result *pipeline.Result) {
	printNewline()
	printSuccess("Analysis complete")
	printKeyValue("reference", fmt.Sprintf("depth %d · %d nodes", result.Ref.Depth, result.Ref.Nodes))
	printKeyValue("compared", fmt.Sprintf("depth %d · %d nodes", result.Comp.Depth, result.Comp.Nodes))
	printScore(result.Score, result.Delta)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount)
}

// writeArtifacts writes rendered outputs next to the output base path.
// Merged artifacts are keyed by bare format ("svg"); per-side artifacts
// carry a "<format>:<prefix>" key and land in "<base>_<prefix>.<format>".
func writeArtifacts(base string, artifacts map[string][]byte) error {
	base = strings.TrimSuffix(base, filepath.Ext(base))
	for key, data := range artifacts {
		path := artifactPath(base, key)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// artifactPath maps an artifact key to an output file path.
func artifactPath(base, key string) string {
	format, side, found := strings.Cut(key, ":")
	if found {
		return fmt.Sprintf("%s_%s.%s", base, side, format)
	}
	return base + "." + format
}

// textArg resolves a passage argument: either literal text or, with a
// leading @, the contents of a file.
func textArg(arg string) (string, error) {
	name, found := strings.CutPrefix(arg, "@")
	if !found {
		return arg, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read passage file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
