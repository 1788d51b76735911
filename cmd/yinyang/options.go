package main

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/itstyrion/yinyang/pkg/settings"
	"github.com/peterbourgon/ff/v3"
)

const (
	envVarPrefix   = "YINYANG"
	logFileName    = "yinyang.log"
	disableLogFile = "-"
)

// options is every configurable of the process. None are required; the zero
// configuration matches a double-click launch.
type options struct {
	debug        bool
	configDir    string
	logFile      string
	printVersion bool
}

func parseOptions(args []string) (*options, error) {
	var (
		flagset     = flag.NewFlagSet("yinyang", flag.ContinueOnError)
		fldebug     = flagset.Bool("debug", false, "enable debug logging, also written to stderr")
		flconfigdir = flagset.String("config_dir", "", "base directory for the YinYang config directory (default: per-user config dir)")
		fllogfile   = flagset.String("log_file", "", "path of the rotated log file, or - to disable it (default: <config dir>/YinYang/yinyang.log)")
		flversion   = flagset.Bool("version", false, "print version and exit")
	)

	if err := ff.Parse(flagset, args, ff.WithEnvVarPrefix(envVarPrefix)); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	return &options{
		debug:        *fldebug,
		configDir:    *flconfigdir,
		logFile:      *fllogfile,
		printVersion: *flversion,
	}, nil
}

// resolve fills in the defaults that depend on the OS.
func (o *options) resolve() error {
	if o.configDir == "" {
		dir, err := settings.DefaultBaseDir()
		if err != nil {
			return err
		}
		o.configDir = dir
	}

	if o.logFile == "" {
		o.logFile = filepath.Join(o.configDir, settings.AppDirName, logFileName)
	}

	return nil
}
