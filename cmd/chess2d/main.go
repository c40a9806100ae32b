// chess2d plays two-player chess on a terminal, or replays move scripts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess2d-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess2d version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupFiles(cfg)

	if flag.NArg() == 0 {
		if err := runPlay(cfg, os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if failed := runReplay(cfg, flag.Args(), *workers); failed > 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess2d [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Without script files, reads commands from stdin and plays interactively.\n")
	fmt.Fprintf(os.Stderr, "With script files, replays each one and prints the final position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands (interactive):\n")
	fmt.Fprintf(os.Stderr, "  e2 e4         move the piece on e2 to e4 (also e2-e4, e2e4)\n")
	fmt.Fprintf(os.Stderr, "  moves e2      show where the piece on e2 can go\n")
	fmt.Fprintf(os.Stderr, "  path a1 h8    list the squares between two squares\n")
	fmt.Fprintf(os.Stderr, "  board         redraw the board\n")
	fmt.Fprintf(os.Stderr, "  history       list the moves played\n")
	fmt.Fprintf(os.Stderr, "  fen           print the FEN record\n")
	fmt.Fprintf(os.Stderr, "  reset         start again\n")
	fmt.Fprintf(os.Stderr, "  quit          leave\n")
}
