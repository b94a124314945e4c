package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"textsim/internal/client"
	"textsim/internal/services"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var addr string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of a running textsim daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := ctx.daemonClient(addr)
			if err != nil {
				return err
			}
			reqCtx := services.WithRequestID(cmd.Context(), uuid.NewString())

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			status, err := c.Status(reqCtx)
			if err != nil {
				if client.IsAPIUnavailable(err) && !jsonOutput {
					fmt.Fprintln(out, renderStatusLine("Daemon", statusError, "not running", colorize))
					return nil
				}
				return fmt.Errorf("query daemon: %w", err)
			}
			if jsonOutput {
				return writeJSON(cmd, status)
			}

			uptime := (time.Duration(status.UptimeSeconds) * time.Second).String()
			lines := renderSectionHeader("textsim", colorize)
			lines = append(lines,
				renderStatusLine("Daemon", statusOK, fmt.Sprintf("running (pid %d, up %s)", status.PID, uptime), colorize),
				renderStatusLine("Listening", statusInfo, "http://"+status.Bind, colorize),
				renderStatusLine("Lock", statusInfo, status.LockFilePath, colorize),
			)
			if status.Cache.Enabled {
				lines = append(lines, renderStatusLine("Vector cache", statusOK, fmt.Sprintf(
					"%d/%d entries, %d hits, %d misses",
					status.Cache.Size, status.Cache.Capacity, status.Cache.Hits, status.Cache.Misses,
				), colorize))
			} else {
				lines = append(lines, cacheStatusLine(0, colorize))
			}
			lines = append(lines, renderStatusLine("Scores", statusInfo, fmt.Sprintf(
				"%d computed, mean %.3fms, p95 %.3fms",
				status.Scores.Count, status.Scores.MeanMillis, status.Scores.P95Millis,
			), colorize))
			fmt.Fprintln(out, strings.Join(lines, "\n"))
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Daemon address (defaults to server.bind)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
