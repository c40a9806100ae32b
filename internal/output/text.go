package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/game"
)

// TextWriter draws the board as a character grid, rank 8 at the top.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config

	light, dark, mark *color.Color
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	tw := &TextWriter{
		w:     w,
		cfg:   cfg,
		light: color.New(color.FgBlack, color.BgWhite),
		dark:  color.New(color.FgBlack, color.BgHiBlack),
		mark:  color.New(color.FgBlack, color.BgGreen),
	}
	if !cfg.Output.Color {
		for _, c := range []*color.Color{tw.light, tw.dark, tw.mark} {
			c.DisableColor()
		}
	}
	return tw
}

// WriteGame draws the board followed by a status line.
func (tw *TextWriter) WriteGame(c *game.Controller, highlight []chess.Square) error {
	_, err := io.WriteString(tw.w, tw.Render(c, highlight))
	return err
}

// Render returns the board drawing as a string.
func (tw *TextWriter) Render(c *game.Controller, highlight []chess.Square) string {
	marked := make(map[chess.Square]bool, len(highlight))
	for _, sq := range highlight {
		marked[sq] = true
	}

	var sb strings.Builder
	b := c.Board()
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		fmt.Fprintf(&sb, "%c ", chess.RankBase+byte(rank))
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq := chess.Sq(file, rank)
			sb.WriteString(tw.paint(sq, marked[sq]).Sprint(tw.symbol(b.Get(sq), marked[sq]) + " "))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		fmt.Fprintf(&sb, "%c ", chess.FileBase+byte(file))
	}
	sb.WriteByte('\n')
	sb.WriteString(StatusLine(c))
	sb.WriteByte('\n')
	if tw.cfg.Output.ShowFEN {
		sb.WriteString(c.FEN())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (tw *TextWriter) paint(sq chess.Square, marked bool) *color.Color {
	switch {
	case marked:
		return tw.mark
	case (sq.File+sq.Rank)%2 == 0:
		return tw.dark
	default:
		return tw.light
	}
}

func (tw *TextWriter) symbol(p *chess.Piece, marked bool) string {
	if p == nil {
		if marked {
			return "*"
		}
		return "."
	}
	if tw.cfg.Output.Unicode {
		return p.Kind.Glyph(p.Side)
	}
	letter := p.Kind.Letter()
	if p.Side == chess.Black {
		letter += 'a' - 'A'
	}
	return string(letter)
}

// StatusLine describes whose turn it is or who won.
func StatusLine(c *game.Controller) string {
	if winner, ok := c.Winner(); ok {
		return fmt.Sprintf("Game over: %s wins after %d plies", winner, c.Ply())
	}
	return fmt.Sprintf("%s to move", c.CurrentSide())
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
