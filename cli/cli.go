// Package cli wires the command line surface: a one-shot default action
// meant to be invoked by a scheduler, and a watch subcommand with a system
// tray icon.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

const version = "0.2.0"

// Run runs the CLI application.
func Run(ctx context.Context, args []string) error {
	var (
		logCfg loggerConfig
		flags  appFlags
	)

	app := &cli.Command{
		Name:    "noaa-wallpaper",
		Usage:   "Set the desktop wallpaper to the latest NOAA GOES GEOCOLOR image",
		Version: version,
		Flags:   append(logCfg.Flags(), flags.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := logCfg.Configure()
			if err != nil {
				return nil, err
			}
			slog.SetDefault(logger)
			return ctxlog.With(ctx, logger), nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := flags.Build(c)
			if err != nil {
				return err
			}
			return runOnce(ctx, cfg)
		},
		Commands: []*cli.Command{
			cmdWatch(&flags),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		// Failures go to stderr regardless of how the logger is set up.
		errLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		errLogger.Error("run failed", slog.Any("error", err))
		return err
	}
	return nil
}
