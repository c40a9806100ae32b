package config

// OutputFormat selects how boards are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Terminal diagram
	JSONFormat                     // JSON snapshot
	SVGFormat                      // SVG image
)

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case SVGFormat:
		return "svg"
	}
	return "text"
}

// ParseOutputFormat parses a flag value.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	switch name {
	case "", "text":
		return TextFormat, true
	case "json":
		return JSONFormat, true
	case "svg":
		return SVGFormat, true
	}
	return TextFormat, false
}

// OutputConfig holds settings related to board output.
type OutputConfig struct {
	// Format specifies the output format
	Format OutputFormat

	// Color enables ANSI colours in text output
	Color bool

	// Unicode draws pieces with chess glyphs instead of FEN letters
	Unicode bool

	// ShowFEN appends the FEN record after each board
	ShowFEN bool

	// SquareSize is the SVG square edge in pixels
	SquareSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     TextFormat,
		Color:      true,
		Unicode:    false,
		SquareSize: 60,
	}
}
