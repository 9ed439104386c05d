package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Holmfrior/Technopreneurship/pkg/logic"
)

// depthCommand creates the depth command for inspecting a single passage.
func (c *CLI) depthCommand() *cobra.Command {
	var (
		server   string
		noCache  bool
		refresh  bool
		jsonTree bool
	)

	cmd := &cobra.Command{
		Use:   "depth <passage>",
		Short: "Parse a single passage and report its tree depth",
		Long: `Parse a single passage and report its tree depth and node count.

Prefix the argument with @ to read the passage from a file. With --json,
the full parsed tree is written to stdout instead of the summary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDepth(cmd.Context(), args[0], server, noCache, refresh, jsonTree)
		},
	}

	cmd.Flags().StringVarP(&server, "server", "s", "", "parsing service URL (overrides config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached parse responses")
	cmd.Flags().BoolVar(&jsonTree, "json", false, "write the parsed tree as JSON to stdout")

	return cmd
}

func (c *CLI) runDepth(ctx context.Context, arg, server string, noCache, refresh, jsonTree bool) error {
	text, err := textArg(arg)
	if err != nil {
		return err
	}

	runner, closeRunner, err := c.newRunner(server, noCache)
	if err != nil {
		return err
	}
	defer closeRunner()

	prog := newProgress(c.Logger)
	tree, err := runner.Parser.Parse(ctx, text, refresh)
	if err != nil {
		return err
	}
	depth := logic.Depth(tree)
	count := logic.Count(tree)
	prog.done(fmt.Sprintf("Parsed %d nodes", count))

	if jsonTree {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	}

	printKeyValue("depth", fmt.Sprintf("%d", depth))
	printKeyValue("nodes", fmt.Sprintf("%d", count))
	return nil
}
