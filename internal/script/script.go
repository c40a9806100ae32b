// Package script reads and replays move scripts.
//
// A script is plain text with one instruction per line:
//
//	# comment
//	e2 e4
//	d7-d5
//	e4xd5
//	reset
//
// Blank lines and anything after '#' are ignored. A move names the origin
// and destination squares separated by a space, '-' or 'x', or written
// together as "e2e4". The word "reset" returns the game to its start.
package script

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/errors"
)

// Step is one parsed script instruction.
type Step struct {
	Line  int
	Reset bool
	From  chess.Square
	To    chess.Square
}

// String renders the step in canonical form.
func (s Step) String() string {
	if s.Reset {
		return "reset"
	}
	return s.From.String() + "-" + s.To.String()
}

// Script is a named list of steps.
type Script struct {
	Name  string
	Steps []Step
}

// Parse reads a script from r. name is used in error messages.
func Parse(r io.Reader, name string) (*Script, error) {
	s := &Script{Name: name}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		step, err := parseStep(text)
		if err != nil {
			return nil, &errors.MoveError{Err: err, Script: name, Line: line}
		}
		step.Line = line
		s.Steps = append(s.Steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return s, nil
}

// ParseString parses a script held in memory.
func ParseString(text, name string) (*Script, error) {
	return Parse(strings.NewReader(text), name)
}

// ParseFile parses the script at path; the base name becomes the script name.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, filepath.Base(path))
}

// ParseMove parses a single move such as "e2 e4" or "e2-e4".
func ParseMove(text string) (from, to chess.Square, err error) {
	step, err := parseStep(strings.TrimSpace(text))
	if err != nil {
		return from, to, err
	}
	if step.Reset {
		return from, to, errors.Wrapf(errors.ErrInvalidScript, "%q is not a move", text)
	}
	return step.From, step.To, nil
}

func parseStep(text string) (Step, error) {
	if strings.EqualFold(text, "reset") {
		return Step{Reset: true}, nil
	}

	var fromName, toName string
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '-' || r == 'x'
	})
	switch {
	case len(fields) == 2:
		fromName, toName = fields[0], fields[1]
	case len(fields) == 1 && len(fields[0]) == 4:
		fromName, toName = fields[0][:2], fields[0][2:]
	default:
		return Step{}, errors.Wrapf(errors.ErrInvalidScript, "cannot read %q", text)
	}

	from, err := chess.ParseSquare(fromName)
	if err != nil {
		return Step{}, errors.Wrapf(errors.ErrInvalidScript, "%v", err)
	}
	to, err := chess.ParseSquare(toName)
	if err != nil {
		return Step{}, errors.Wrapf(errors.ErrInvalidScript, "%v", err)
	}
	return Step{From: from, To: to}, nil
}
