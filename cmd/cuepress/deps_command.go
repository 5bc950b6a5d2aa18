package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cuepress/internal/deps"
)

func newDepsCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of the external tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "ok"
				if !status.Available {
					state = status.Detail
				}
				required := "required"
				if status.Optional {
					required = "optional"
				}
				rows = append(rows, []string{status.Name, status.Command, required, state})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Kind", "Status"},
				rows,
			))

			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("%d required tool(s) missing", len(missing))
			}
			return nil
		},
	}
}
