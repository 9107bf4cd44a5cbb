// Package main is the entry point for the benchedit tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/benchedit/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Stop watch mode on Ctrl-C or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		switch {
		case errors.Is(err, app.ErrDifferences):
			// Check mode speaks through the exit code alone.
			return 1
		case errors.Is(err, app.ErrUsage):
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 2
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 3
		}
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.Write, "w", false, "Write results back to source files instead of stdout")
	flag.BoolVar(&opts.List, "l", false, "List files whose indentation differs")
	flag.BoolVar(&opts.Check, "check", false, "Report differences through the exit code only")
	flag.BoolVar(&opts.Watch, "watch", false, "Keep running and reindent files as they are saved (implies -w)")
	flag.BoolVar(&opts.View, "view", false, "Browse a file in the read-only viewer")
	flag.StringVar(&opts.Doc, "doc", "", "Print documentation for a language word")
	flag.IntVar(&opts.TabWidth, "tabwidth", 0, "Indentation width override (1-16)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Benchedit - BenchScript indentation tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage: benchedit [options] [files...]\n\n")
		fmt.Fprintf(os.Stderr, "With no files, benchedit reads standard input and prints the\n")
		fmt.Fprintf(os.Stderr, "reindented text to standard output.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  benchedit run.bsc           Print run.bsc reindented\n")
		fmt.Fprintf(os.Stderr, "  benchedit -w ./suite        Rewrite every script under ./suite\n")
		fmt.Fprintf(os.Stderr, "  benchedit -check ./suite    Fail when anything needs reindenting\n")
		fmt.Fprintf(os.Stderr, "  benchedit -watch ./suite    Reindent scripts as they are saved\n")
		fmt.Fprintf(os.Stderr, "  benchedit -view run.bsc     Browse run.bsc with highlighting\n")
		fmt.Fprintf(os.Stderr, "  benchedit -doc measure      Show documentation for measure\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Benchedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(2)
	}

	// Remaining arguments are the files and directories to process
	opts.Paths = flag.Args()

	return opts
}
