package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"textsim/internal/services"
)

func newVectorizeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "vectorize TEXT",
		Short: "Print the term frequencies of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.similarityService()
			if err != nil {
				return err
			}
			opCtx := services.WithOperation(cmd.Context(), "vectorize")
			resp, err := svc.Vectorize(opCtx, args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, resp)
			}

			out := cmd.OutOrStdout()
			if len(resp.Terms) == 0 {
				fmt.Fprintln(out, "No terms found")
				return nil
			}
			rows := make([][]string, 0, len(resp.Terms))
			for _, term := range resp.Terms {
				rows = append(rows, []string{displayTerm(term.Text), strconv.Itoa(term.Count)})
			}
			fmt.Fprintln(out, renderTable(tableSpec{
				headers: []string{"Term", "Count"},
				rows:    rows,
				aligns:  []columnAlignment{alignLeft, alignRight},
				footer:  []string{fmt.Sprintf("%d unique", resp.UniqueTerms), strconv.Itoa(resp.TotalTerms)},
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// displayTerm makes the empty term produced by a bare apostrophe visible.
func displayTerm(term string) string {
	if term == "" {
		return `""`
	}
	return term
}
