package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/itstyrion/yinyang/ee/desktop/tray"
	"github.com/itstyrion/yinyang/ee/gowrapper"
	"github.com/itstyrion/yinyang/pkg/rungroup"
	"github.com/itstyrion/yinyang/pkg/settings"
	"github.com/itstyrion/yinyang/pkg/theme"
	"github.com/kolide/kit/ulid"
	"github.com/kolide/kit/version"
)

func main() {
	if err := runMain(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "yinyang: %v\n", err)
		os.Exit(1)
	}
}

func runMain(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	if opts.printVersion {
		version.PrintFull()
		return nil
	}

	if err := opts.resolve(); err != nil {
		return err
	}

	// set up logging
	multiSlogger, logCloser := buildLogger(opts, os.Stderr)
	defer logCloser.Close()

	slogger := multiSlogger.Logger.With(
		"pid", os.Getpid(),
		"session_id", ulid.New(),
	)
	slogger.Log(context.TODO(), slog.LevelInfo,
		"starting",
		"version", version.Version().Version,
		"config_dir", opts.configDir,
	)

	store, err := settings.New(slogger, opts.configDir)
	if err != nil {
		return logStartupError(slogger, err)
	}

	app := tray.New(slogger, theme.New(slogger), store)

	runGroup := rungroup.NewRunGroup(slogger)

	// listen for signals
	sigListener := newSignalListener(make(chan os.Signal, 1), slogger)
	runGroup.Add("signal_listener", sigListener.Execute, sigListener.Interrupt)

	// the worker is added before the tray starts, so it's ready for the first click
	runGroup.Add("event_worker", app.Execute, app.Interrupt)

	// have to run this in a goroutine because the tray needs the main thread
	gowrapper.Go(context.TODO(), slogger, func() {
		if err := runGroup.Run(); err != nil {
			slogger.Log(context.TODO(), slog.LevelError,
				"running run group",
				"err", err,
			)
		}

		// unblocks app.Run if the group stopped for any reason other than Exit
		app.Shutdown()
	})

	// blocks until shutdown called
	if err := app.Run(); err != nil {
		return logStartupError(slogger, err)
	}

	slogger.Log(context.TODO(), slog.LevelInfo,
		"exiting",
	)

	return nil
}

func logStartupError(slogger *slog.Logger, err error) error {
	slogger.Log(context.TODO(), slog.LevelError,
		"could not start",
		"err", err,
	)
	return err
}
