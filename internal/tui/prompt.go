// Package tui renders the installer's terminal output and asks the
// interactive questions. It depends on internal/core for question types
// but core never imports tui.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/gsd-build/get-shit-done-cc/internal/core"
)

// LinePrompter asks questions as numbered lists and reads one line per
// answer. It works with piped input.
type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a LinePrompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(in), out: out}
}

// Ask implements core.Prompter. End of input yields an empty answer so
// the question's default applies.
func (p *LinePrompter) Ask(q core.Question) (string, error) {
	fmt.Fprintf(p.out, "\n  %s\n\n", WarningStyle.Render(q.Title))
	for _, c := range q.Choices {
		fmt.Fprintf(p.out, "  %s) %s", AccentStyle.Render(c.Key), c.Label)
		if c.Hint != "" {
			fmt.Fprintf(p.out, "  %s", MutedStyle.Render("("+c.Hint+")"))
		}
		fmt.Fprintln(p.out)
	}
	fmt.Fprintf(p.out, "\n  Choice %s: ", MutedStyle.Render("["+q.Default+"]"))

	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.out)
	}
	return strings.TrimSpace(line), nil
}

// NewPrompter picks the prompter for the given streams: the bubbletea list
// when both ends are terminals, otherwise the line prompter.
func NewPrompter(in io.Reader, out io.Writer) core.Prompter {
	if isTerminal(in) && isTerminal(out) {
		return NewTeaPrompter(in, out)
	}
	return NewLinePrompter(in, out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
