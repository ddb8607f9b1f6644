package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rtcchat/relay/internal/app"
	"github.com/rtcchat/relay/internal/config"
	"github.com/rtcchat/relay/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "relay-server",
		Short: "Ephemeral room relay for real-time messaging",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLog := log.New(logLevel)

			cfg, path, err := config.Load(bootLog, configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags set on the command line win over file and env values.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}

			logger := log.New(cfg.LogLevel)
			logger.Info().
				Str("addr", cfg.Addr).
				Str("config", path).
				Dur("reap_interval", cfg.Room.ReapInterval).
				Dur("inactivity_ttl", cfg.Room.InactivityTTL).
				Msg("starting relay server")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := app.New(cfg, logger).Run(ctx); err != nil {
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&addr, "addr", config.Default().Addr, "HTTP listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", config.Default().LogLevel, "log level (debug, info, warn, error)")

	return cmd
}
