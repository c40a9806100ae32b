package script

import (
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/errors"
	"github.com/lgbarn/chess2d-go/internal/game"
)

// StepResult pairs a step with what the controller did with it. Result is
// zero for reset steps.
type StepResult struct {
	Step   Step
	Result game.MoveResult
}

// Replay plays s on a fresh game. Rejected moves are recorded and replay
// continues; a step naming an empty or off-board square stops the replay
// with an error carrying the script line. The game and the results so far
// are returned in both cases.
func Replay(cfg *config.Config, s *Script) (*game.Controller, []StepResult, error) {
	c := game.New(cfg)
	results := make([]StepResult, 0, len(s.Steps))
	for _, step := range s.Steps {
		res, err := Apply(c, step)
		if err != nil {
			moveErr := &errors.MoveError{
				Err:    err,
				Script: s.Name,
				Line:   step.Line,
				Ply:    c.Ply() + 1,
				From:   step.From.String(),
				To:     step.To.String(),
			}
			return c, results, moveErr
		}
		results = append(results, StepResult{Step: step, Result: res})
	}
	cfg.Logf(1, "%s: replayed %d steps, %d plies", s.Name, len(results), c.Ply())
	return c, results, nil
}

// Apply executes one step on c.
func Apply(c *game.Controller, step Step) (game.MoveResult, error) {
	if step.Reset {
		c.Reset()
		return game.MoveResult{}, nil
	}
	p, err := c.PieceAt(step.From)
	if err != nil {
		return game.MoveResult{}, err
	}
	return c.AttemptMove(p, step.To)
}

// Rejections counts the rejected moves in results.
func Rejections(results []StepResult) int {
	n := 0
	for _, r := range results {
		if !r.Step.Reset && r.Result.Outcome == game.Rejected {
			n++
		}
	}
	return n
}
