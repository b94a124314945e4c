package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textsim/internal/services"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Score the built-in sample texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.similarityService()
			if err != nil {
				return err
			}
			results, err := svc.Demo(services.WithOperation(cmd.Context(), "demo"))
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for _, result := range results {
				rows = append(rows, []string{result.Pair, result.Description, result.Formatted})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(tableSpec{
				headers: []string{"Pair", "Description", "Score"},
				rows:    rows,
				aligns:  []columnAlignment{alignLeft, alignLeft, alignRight},
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
