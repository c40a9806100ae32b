// play.go - Interactive command loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/engine"
	"github.com/lgbarn/chess2d-go/internal/game"
	"github.com/lgbarn/chess2d-go/internal/output"
	"github.com/lgbarn/chess2d-go/internal/script"
)

// PlaySession holds the state of an interactive game.
type PlaySession struct {
	cfg    *config.Config
	game   *game.Controller
	writer output.GameWriter
	out    io.Writer
}

// NewPlaySession creates a session writing to cfg.OutputFile.
func NewPlaySession(cfg *config.Config) *PlaySession {
	return &PlaySession{
		cfg:    cfg,
		game:   game.New(cfg),
		writer: output.NewWriter(cfg.OutputFile, cfg),
		out:    cfg.OutputFile,
	}
}

// runPlay reads commands from in until EOF or quit.
func runPlay(cfg *config.Config, in io.Reader) error {
	ps := NewPlaySession(cfg)
	defer ps.writer.Close()

	if err := ps.writer.WriteGame(ps.game, nil); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		done, err := ps.Execute(line)
		if err != nil {
			fmt.Fprintf(ps.out, "error: %v\n", err)
		}
		if done {
			break
		}
	}
	return scanner.Err()
}

// Execute runs one command. done is true when the session should end.
func (ps *PlaySession) Execute(line string) (done bool, err error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "board":
		return false, ps.writer.WriteGame(ps.game, nil)
	case "fen":
		fmt.Fprintln(ps.out, ps.game.FEN())
		return false, nil
	case "history":
		for _, rec := range ps.game.History() {
			fmt.Fprintln(ps.out, rec)
		}
		return false, nil
	case "moves":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: moves <square>")
		}
		return false, ps.showDestinations(fields[1])
	case "path":
		if len(fields) != 3 {
			return false, fmt.Errorf("usage: path <from> <to>")
		}
		return false, ps.showPath(fields[1], fields[2])
	case "reset":
		ps.game.Reset()
		return false, ps.writer.WriteGame(ps.game, nil)
	}

	from, to, err := script.ParseMove(line)
	if err != nil {
		return false, err
	}
	return false, ps.move(from, to)
}

func (ps *PlaySession) move(from, to chess.Square) error {
	res, err := script.Apply(ps.game, script.Step{From: from, To: to})
	if err != nil {
		return err
	}
	fmt.Fprintln(ps.out, describe(res))
	if res.Outcome == game.Rejected {
		return nil
	}
	return ps.writer.WriteGame(ps.game, nil)
}

func (ps *PlaySession) showDestinations(name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		return err
	}
	p, err := ps.game.PieceAt(sq)
	if err != nil {
		return err
	}
	dests, err := ps.game.LegalDestinations(p)
	if err != nil {
		return err
	}
	dests = engine.Unique(dests)
	fmt.Fprintf(ps.out, "%s: %s\n", p, strings.Join(output.SquareNames(dests), " "))
	return ps.writer.WriteGame(ps.game, dests)
}

func (ps *PlaySession) showPath(fromName, toName string) error {
	from, err := chess.ParseSquare(fromName)
	if err != nil {
		return err
	}
	to, err := chess.ParseSquare(toName)
	if err != nil {
		return err
	}
	path, err := ps.game.Path(from, to)
	if err != nil {
		return err
	}
	fmt.Fprintln(ps.out, strings.Join(output.SquareNames(path), " "))
	return nil
}

// describe renders a move result as one line.
func describe(res game.MoveResult) string {
	move := fmt.Sprintf("%s %s %s-%s", res.Piece.Side, res.Piece.Kind, res.From, res.To)
	switch res.Outcome {
	case game.Rejected:
		return fmt.Sprintf("rejected %s: %s", move, res.Reason)
	case game.MovedAndCaptured:
		move = fmt.Sprintf("%s takes %s", move, res.Captured.Kind)
	case game.MovedAndGameOver:
		move = fmt.Sprintf("%s takes the King, %s wins", move, res.Piece.Side)
	}
	if res.Check {
		move += fmt.Sprintf(", check on %s", res.CheckedKing)
	}
	return move
}
