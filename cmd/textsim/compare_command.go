package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"textsim/internal/services"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var remote bool
	var addr string

	cmd := &cobra.Command{
		Use:   "compare TEXT1 TEXT2",
		Short: "Print the cosine similarity of two texts",
		Long: "Print the cosine similarity of the term-frequency vectors of two texts,\n" +
			"rounded to the configured precision. An empty text prints -1.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if remote || addr != "" {
				return compareRemote(cmd, ctx, addr, args[0], args[1])
			}
			svc, err := ctx.similarityService()
			if err != nil {
				return err
			}
			opCtx := services.WithOperation(cmd.Context(), "compare")
			resp, err := svc.Compare(opCtx, args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, resp)
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Formatted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&remote, "remote", false, "Score on the running daemon instead of locally")
	cmd.Flags().StringVar(&addr, "addr", "", "Daemon address for --remote (defaults to server.bind)")
	cmd.MarkFlagsMutuallyExclusive("json", "remote")
	cmd.MarkFlagsMutuallyExclusive("json", "addr")
	return cmd
}

func compareRemote(cmd *cobra.Command, ctx *commandContext, addr, text1, text2 string) error {
	c, err := ctx.daemonClient(addr)
	if err != nil {
		return err
	}
	reqCtx := services.WithRequestID(cmd.Context(), uuid.NewString())
	score, err := c.Compare(reqCtx, text1, text2)
	if err != nil {
		return fmt.Errorf("remote compare: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), score)
	return nil
}
