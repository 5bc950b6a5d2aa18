package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"cuepress/internal/history"
)

func newHistoryCommand(flags *rootFlags) *cobra.Command {
	var limit int
	var runID int64

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show past conversion runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return err
			}
			defer store.Close()

			if runID > 0 {
				return printRunFailures(cmd, store, runID)
			}

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					strconv.FormatInt(run.ID, 10),
					run.StartedAt.Local().Format(time.DateTime),
					run.FinishedAt.Sub(run.StartedAt).Round(timeRounding).String(),
					run.Root,
					strconv.FormatInt(run.Succeeded, 10),
					strconv.FormatInt(run.Failed, 10),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Started", "Duration", "Root", "OK", "Failed"},
				rows,
				0, 2, 4, 5,
			))
			return nil
		},
	}

	historyCmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list")
	historyCmd.Flags().Int64Var(&runID, "run", 0, "Show failure details for one run ID")
	return historyCmd
}

func printRunFailures(cmd *cobra.Command, store *history.Store, runID int64) error {
	failures, err := store.RunFailures(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if len(failures) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no failures recorded for run %d\n", runID)
		return nil
	}
	rows := make([][]string, 0, len(failures))
	for _, failure := range failures {
		rows = append(rows, []string{failure.Source, failure.Detail})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Source", "Detail"},
		rows,
	))
	return nil
}
