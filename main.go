// Package main implements the main entry point for a CHIP-8 and SUPER-CHIP interpreter.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend"
	"github.com/retroenv/retrochip8/internal/frontend/ebitenui"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/runner"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Running ROM failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	var sessionOpts []runner.Option
	if !opts.NoSound {
		player, err := audio.NewPlayer()
		if err != nil {
			logger.Warn("Audio is not available", log.Err(err))
		} else {
			defer func() {
				if err := player.Close(); err != nil {
					logger.Error("Closing audio player failed", log.Err(err))
				}
			}()
			sessionOpts = append(sessionOpts, runner.WithBeeper(player))
		}
	}

	p := pipeline.New(logger)
	session, err := p.Execute(opts, sessionOpts...)
	if err != nil {
		return err
	}
	app.PrintInfo(logger, opts, session)

	runErr := selectFrontend(logger, opts).Run(ctx, session)

	if err := p.SaveState(opts, session); err != nil {
		logger.Error("Saving state failed", log.Err(err))
	}

	if runErr == nil && !opts.Quiet {
		logger.Info("Session ended", log.Int("frames", session.Frames()), log.Int("skipped", session.Skipped()))
	}
	return runErr
}

func selectFrontend(logger *log.Logger, opts options.Program) frontend.Frontend {
	switch opts.Frontend {
	case options.FrontendTerminal:
		return terminal.New(logger)
	case options.FrontendHeadless:
		headlessOpts := []headless.Option{
			headless.WithFrames(opts.Frames),
			headless.WithOutput(os.Stdout),
		}
		if opts.Pace {
			headlessOpts = append(headlessOpts, headless.WithPacing())
		}
		return headless.New(logger, headlessOpts...)
	default:
		return ebitenui.New(logger, app.WindowTitle(opts.Input), opts.Scale)
	}
}
