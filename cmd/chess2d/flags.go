// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	logFile      = flag.String("l", "", "Log file (default: stderr)")
	outputFormat = flag.String("format", "text", "Output format: text, json, svg")
	unicode      = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	noColor      = flag.Bool("nocolor", false, "Disable ANSI colours in text output")
	showFEN      = flag.Bool("fen", false, "Print the FEN record after each board")
	squareSize   = flag.Int("square", 60, "SVG square size in pixels")

	// Game options
	blackFirst = flag.Bool("black-first", false, "Black moves first")
	rawKnight  = flag.Bool("raw-knight", false, "Keep friend-occupied knight squares in destination lists")

	// Processing options
	workers   = flag.Int("workers", 0, "Number of replay workers (0 = one per CPU core)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 quiet, 1 game events, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode: same as -v 0")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	format, ok := config.ParseOutputFormat(*outputFormat)
	if !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %q", *outputFormat)
	}
	cfg.Output.Format = format
	cfg.Output.Unicode = *unicode
	cfg.Output.Color = !*noColor
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.SquareSize = *squareSize

	if *blackFirst {
		cfg.Game.InitialSide = chess.Black
	}
	cfg.Game.RawKnightSquares = *rawKnight

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// setupFiles opens the output and log files named on the command line.
func setupFiles(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		cfg.OutputFile = file
	}
}
