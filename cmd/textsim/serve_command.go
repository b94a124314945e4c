package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"textsim/internal/daemon"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP similarity service in the foreground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if trimmed := strings.TrimSpace(bind); trimmed != "" {
				cfg.Server.Bind = trimmed
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			svc, err := ctx.similarityService()
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			d, err := daemon.New(cfg, svc, logger)
			if err != nil {
				return err
			}
			if err := d.Start(signalCtx); err != nil {
				return fmt.Errorf("start daemon: %w", err)
			}
			defer d.Close()

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			status := d.Status(signalCtx)
			lines := renderSectionHeader("textsim", colorize)
			lines = append(lines,
				renderStatusLine("Listening", statusOK, "http://"+status.Bind, colorize),
				renderStatusLine("Lock", statusInfo, status.LockFilePath, colorize),
				cacheStatusLine(status.Cache.Capacity, colorize),
			)
			if logPath := cfg.LogPath(); logPath != "" {
				lines = append(lines, renderStatusLine("Log file", statusInfo, logPath, colorize))
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}

			return d.Wait(signalCtx)
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address override (host:port)")
	return cmd
}

func cacheStatusLine(capacity int, colorize bool) string {
	if capacity == 0 {
		return renderStatusLine("Vector cache", statusWarn, "disabled", colorize)
	}
	return renderStatusLine("Vector cache", statusOK, fmt.Sprintf("%d entries", capacity), colorize)
}
