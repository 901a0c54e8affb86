package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/graphspec/packages/history"
)

var (
	historyLimitFlag int
	historyShowFlag  string
	historyPruneFlag int
	historyPathFlag  string
)

var historyCmd = &cobra.Command{
	Use:   "history [file]",
	Short: "Show results of past runs",
	Long: `Show results of past runs recorded in the history database.

Examples:
  graphspec history
  graphspec history movies.yaml
  graphspec history --show <run-id>
  graphspec history --prune 50`,
	Args: cobra.MaximumNArgs(1),
	RunE: historyCommand,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "l", 20, "Number of runs to show")
	historyCmd.Flags().StringVar(&historyShowFlag, "show", "", "Show the expectations of a single run by ID")
	historyCmd.Flags().IntVar(&historyPruneFlag, "prune", 0, "Keep only the newest N runs per file and delete the rest")
	historyCmd.Flags().StringVar(&historyPathFlag, "history-file", getEnvString("GRAPHSPEC_HISTORY_FILE", ""), "Path to the history database (env: GRAPHSPEC_HISTORY_FILE)")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	path := historyPathFlag
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return err
		}
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()

	if historyPruneFlag > 0 {
		if err := store.Prune(ctx, historyPruneFlag); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned history to %d runs per file.\n", historyPruneFlag)
		return nil
	}

	if historyShowFlag != "" {
		return showRun(cmd, store, historyShowFlag)
	}

	file := ""
	if len(args) > 0 {
		file = args[0]
	}

	runs, err := store.RecentRuns(ctx, file, historyLimitFlag)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No recorded runs.\n")
		return nil
	}

	for _, run := range runs {
		status := "ok"
		if run.Failed > 0 {
			status = "failed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %d passed, %d failed, %d skipped  (%dms)  %s\n",
			run.ID,
			run.StartedAt.Format(time.RFC3339),
			run.File,
			run.Passed, run.Failed, run.Skipped,
			run.Duration.Milliseconds(),
			status)
	}

	return nil
}

func showRun(cmd *cobra.Command, store *history.Store, runID string) error {
	exps, err := store.Expectations(context.Background(), runID)
	if err != nil {
		return err
	}
	if len(exps) == 0 {
		return fmt.Errorf("no run with ID %s", runID)
	}

	for _, e := range exps {
		switch {
		case e.Skipped:
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", e.Name)
		case e.Error != "":
			fmt.Fprintf(cmd.OutOrStdout(), "  x %s (%s)\n", e.Name, e.Error)
		case e.Passed:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s (%dms)\n", e.Name, e.Duration.Milliseconds())
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s (%dms)\n", e.Name, e.Duration.Milliseconds())
		}
	}

	return nil
}
