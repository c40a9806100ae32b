package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/game"
)

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
	markFill  = "fill:#7fc97f"
)

// SVGWriter draws the board as an SVG image. Each game is a complete
// document, so it is intended for one game per stream.
type SVGWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, cfg *config.Config) *SVGWriter {
	return &SVGWriter{w: w, cfg: cfg}
}

// WriteGame renders the position with highlighted squares tinted.
func (sw *SVGWriter) WriteGame(c *game.Controller, highlight []chess.Square) error {
	marked := make(map[chess.Square]bool, len(highlight))
	for _, sq := range highlight {
		marked[sq] = true
	}

	size := sw.cfg.Output.SquareSize
	canvas := svg.New(sw.w)
	canvas.Start(size*chess.BoardSize, size*chess.BoardSize)

	b := c.Board()
	for rank := chess.FirstRank; rank <= chess.LastRank; rank++ {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sq := chess.Sq(file, rank)
			x, y := file*size, (chess.LastRank-rank)*size

			fill := lightFill
			switch {
			case marked[sq]:
				fill = markFill
			case (file+rank)%2 == 0:
				fill = darkFill
			}
			canvas.Rect(x, y, size, size, fill)

			if p := b.Get(sq); p != nil {
				style := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*3/4)
				canvas.Text(x+size/2, y+size/2, p.Kind.Glyph(p.Side), style)
			}
		}
	}
	canvas.End()
	return nil
}

// Flush is a no-op; the document is written immediately.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
