// Package config provides configuration for chess2d.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess2d-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=game events, 2=every move.
	Verbosity int

	Game   *GameConfig
	Output *OutputConfig
	Server *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if c.Game == nil || c.Output == nil || c.Server == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "missing section")
	}
	switch c.Output.Format {
	case TextFormat, JSONFormat, SVGFormat:
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %d", c.Output.Format)
	}
	if c.Output.SquareSize <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "square size %d", c.Output.SquareSize)
	}
	if c.Server.MaxGames < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max games %d", c.Server.MaxGames)
	}
	if c.Server.WriteTimeout <= 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "write timeout %s", c.Server.WriteTimeout)
	}
	return nil
}

// Logf writes a log line when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
