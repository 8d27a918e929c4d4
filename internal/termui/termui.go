// Package termui renders the menu flow on a terminal.
package termui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aiptu/mynotes/internal/flow"
)

// Terminal implements flow.Renderer over line-oriented input. An empty line
// (or closed input) counts as dismissing the screen.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

// New builds a Terminal reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// readLine returns the next input line. io.EOF means the player is gone,
// which every caller maps to a dismissal.
func (t *Terminal) readLine() (string, error) {
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(t.in.Text()), nil
}

// Choice renders a numbered button list and reads a 1-based selection.
func (t *Terminal) Choice(ctx context.Context, s flow.ChoiceScreen) (int, bool, error) {
	fmt.Fprintf(t.out, "\n== %s ==\n%s\n\n", s.Title, s.Body)
	for i, b := range s.Buttons {
		label := strings.ReplaceAll(b.Label, "\n", " | ")
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, label)
	}
	fmt.Fprint(t.out, "> ")

	line, err := t.readLine()
	if errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil || n < 1 || n > len(s.Buttons) {
		return 0, false, nil
	}
	return n - 1, true, nil
}

// Form prompts for each field in order. Empty input keeps the default.
func (t *Terminal) Form(ctx context.Context, s flow.FormScreen) ([]flow.FieldValue, bool, error) {
	fmt.Fprintf(t.out, "\n== %s ==\n", s.Title)

	values := make([]flow.FieldValue, 0, len(s.Fields))
	for _, f := range s.Fields {
		switch f.Kind {
		case flow.FieldToggle:
			mark := "y/N"
			if f.DefaultOn {
				mark = "Y/n"
			}
			fmt.Fprintf(t.out, "%s [%s] ", f.Label, mark)
			line, err := t.readLine()
			if errors.Is(err, io.EOF) {
				return nil, false, nil
			}
			if err != nil {
				return nil, false, err
			}
			values = append(values, flow.FieldValue{On: parseToggle(line, f.DefaultOn)})
		default:
			hint := f.Placeholder
			if f.Default != "" {
				hint = f.Default
			}
			fmt.Fprintf(t.out, "%s [%s] ", f.Label, hint)
			line, err := t.readLine()
			if errors.Is(err, io.EOF) {
				return nil, false, nil
			}
			if err != nil {
				return nil, false, err
			}
			if line == "" {
				line = f.Default
			}
			values = append(values, flow.FieldValue{Text: line})
		}
	}
	return values, true, nil
}

// Confirm renders a yes/no prompt.
func (t *Terminal) Confirm(ctx context.Context, s flow.ConfirmScreen) (bool, bool, error) {
	fmt.Fprintf(t.out, "\n== %s ==\n%s\n%s/%s> ", s.Title, s.Body, s.Yes, s.No)

	line, err := t.readLine()
	if errors.Is(err, io.EOF) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, true, nil
	case "n", "no":
		return false, true, nil
	}
	return false, false, nil
}

func parseToggle(line string, def bool) bool {
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	}
	return def
}
