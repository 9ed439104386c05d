package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Holmfrior/Technopreneurship/pkg/history"
)

// runsCommand creates the runs command for browsing saved analyses.
func (c *CLI) runsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Browse analyses saved with 'analyze --save'",
	}

	cmd.AddCommand(c.runsListCommand())
	cmd.AddCommand(c.runsShowCommand())
	cmd.AddCommand(c.runsDeleteCommand())

	return cmd
}

func (c *CLI) runsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved analysis runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewFileStore("")
			if err != nil {
				return err
			}
			runs, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				printInfo("No saved runs")
				return nil
			}
			for _, run := range runs {
				fmt.Println(StyleValue.Render(run.ID) + "  " +
					scoreStyle(run.Score).Render(fmt.Sprintf("%3d%%", run.Score)) + "  " +
					StyleDim.Render(run.CreatedAt.Local().Format("2006-01-02 15:04")) + "  " +
					StyleDim.Render(snippet(run.RefText, 40)))
			}
			return nil
		},
	}
}

func (c *CLI) runsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one saved analysis run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewFileStore("")
			if err != nil {
				return err
			}
			run, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("run %s not found", args[0])
			}
			printKeyValue("id", run.ID)
			printKeyValue("when", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			printKeyValue("reference", fmt.Sprintf("depth %d · %d nodes · %s", run.RefDepth, run.RefNodes, snippet(run.RefText, 60)))
			printKeyValue("compared", fmt.Sprintf("depth %d · %d nodes · %s", run.CompDepth, run.CompNodes, snippet(run.CompText, 60)))
			printScore(run.Score, run.Delta)
			return nil
		},
	}
}

func (c *CLI) runsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a saved analysis run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewFileStore("")
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %s", args[0])
			return nil
		},
	}
}

// snippet shortens s to at most n runes for single-line display.
func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
