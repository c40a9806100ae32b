package main

import (
	"testing"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	chesserrors "github.com/lgbarn/chess2d-go/internal/errors"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags: %v", err)
		}
		if cfg.Output.Format != config.TextFormat {
			t.Errorf("Format = %v; want text", cfg.Output.Format)
		}
		if !cfg.Output.Color {
			t.Error("Color should default to on")
		}
		if cfg.Game.InitialSide != chess.White {
			t.Errorf("InitialSide = %v; want White", cfg.Game.InitialSide)
		}
		if cfg.Verbosity != 1 {
			t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
		}
	})

	t.Run("game and output flags", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "json")()
		defer saveRestoreBool(noColor, true)()
		defer saveRestoreBool(unicode, true)()
		defer saveRestoreBool(blackFirst, true)()
		defer saveRestoreBool(rawKnight, true)()
		defer saveRestoreInt(squareSize, 32)()

		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags: %v", err)
		}
		if cfg.Output.Format != config.JSONFormat {
			t.Errorf("Format = %v; want json", cfg.Output.Format)
		}
		if cfg.Output.Color || !cfg.Output.Unicode || cfg.Output.SquareSize != 32 {
			t.Errorf("unexpected output config: %+v", cfg.Output)
		}
		if cfg.Game.InitialSide != chess.Black || !cfg.Game.RawKnightSquares {
			t.Errorf("unexpected game config: %+v", cfg.Game)
		}
	})

	t.Run("quiet overrides verbosity", func(t *testing.T) {
		defer saveRestoreInt(verbosity, 2)()
		defer saveRestoreBool(quiet, true)()
		cfg := config.NewConfig()
		if err := applyFlags(cfg); err != nil {
			t.Fatalf("applyFlags: %v", err)
		}
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "pgn")()
		err := applyFlags(config.NewConfig())
		if !chesserrors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("err = %v; want ErrInvalidConfig", err)
		}
	})

	t.Run("bad square size", func(t *testing.T) {
		defer saveRestoreInt(squareSize, 0)()
		err := applyFlags(config.NewConfig())
		if !chesserrors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("err = %v; want ErrInvalidConfig", err)
		}
	})
}
