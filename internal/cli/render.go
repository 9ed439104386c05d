package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
	"github.com/Holmfrior/Technopreneurship/pkg/render/nodelink"
	"github.com/Holmfrior/Technopreneurship/pkg/visual"
)

// renderCommand creates the render command for re-rendering saved graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		titlesStr  string
	)

	cmd := &cobra.Command{
		Use:   "render <graph.json> [graph2.json]",
		Short: "Render saved graph JSON files to a diagram",
		Long: `Render saved graph JSON files to a diagram.

The analyze command writes graph JSON with --format json; render turns
those files back into SVG, PNG, or DOT output without re-parsing. With
two input files, both graphs appear as clusters in one diagram.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args, output, parseFormats(formatsStr), splitTitles(titlesStr))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot (comma-separated)")
	cmd.Flags().StringVar(&titlesStr, "titles", "", "cluster titles (comma-separated, two-file rendering only)")

	return cmd
}

func runRender(inputs []string, output string, formats, titles []string) error {
	for _, f := range formats {
		if f == pipeline.FormatJSON {
			return fmt.Errorf("input is already JSON, requested formats must be svg, png, or dot")
		}
		if err := pipeline.ValidateFormat(f); err != nil {
			return err
		}
	}

	graphs := make([]visual.Graph, 0, len(inputs))
	for _, input := range inputs {
		g, err := visual.ReadGraphFile(input)
		if err != nil {
			return fmt.Errorf("load graph %s: %w", input, err)
		}
		graphs = append(graphs, g)
	}

	dot := nodelink.ToDOT(nodelink.Options{Titles: titles}, graphs...)

	base := basePath(output, inputs[0])
	for _, format := range formats {
		data, err := renderDOT(dot, format)
		if err != nil {
			return err
		}
		path := base + "." + format
		if output != "" && len(formats) == 1 {
			path = output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// renderDOT converts DOT source to the requested format.
func renderDOT(dot, format string) ([]byte, error) {
	switch format {
	case pipeline.FormatDOT:
		return []byte(dot), nil
	case pipeline.FormatSVG:
		return nodelink.RenderSVG(dot)
	case pipeline.FormatPNG:
		return nodelink.RenderPNG(dot)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has a
// format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// splitTitles parses the --titles flag into a slice, empty when unset.
func splitTitles(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
