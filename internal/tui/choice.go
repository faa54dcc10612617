package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gsd-build/get-shit-done-cc/internal/core"
)

// ErrAborted is returned when the user cancels an interactive prompt.
var ErrAborted = errors.New("installation cancelled")

// choiceModel is a single-question selection list.
//
// Navigation: up/down (or k/j) move the cursor, enter confirms. Typing a
// choice key selects it directly. esc/q/ctrl+c abort.
type choiceModel struct {
	question core.Question
	cursor   int
	answer   string
	done     bool
	aborted  bool
	help     help.Model
}

func newChoiceModel(q core.Question) choiceModel {
	m := choiceModel{question: q, help: help.New()}
	for i, c := range q.Choices {
		if c.Key == q.Default {
			m.cursor = i
			break
		}
	}
	return m
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.question.Choices)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, keys.Enter):
		if len(m.question.Choices) == 0 {
			return m, nil
		}
		m.answer = m.question.Choices[m.cursor].Key
		m.done = true
		return m, tea.Quit
	}

	// Typing a key selects that choice immediately.
	if keyMsg.Type == tea.KeyRunes {
		typed := string(keyMsg.Runes)
		for i, c := range m.question.Choices {
			if c.Key == typed {
				m.cursor = i
				m.answer = c.Key
				m.done = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(WarningStyle.Render(m.question.Title))
	b.WriteString("\n\n")
	for i, c := range m.question.Choices {
		cursor := "  "
		style := normalStyle
		if i == m.cursor {
			cursor = AccentStyle.Render("> ")
			style = selectedStyle
		}
		fmt.Fprintf(&b, "  %s%s) %s", cursor, c.Key, style.Render(c.Label))
		if c.Hint != "" {
			b.WriteString("  " + MutedStyle.Render("("+c.Hint+")"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

// TeaPrompter asks questions with a bubbletea selection list. It is used
// when stdin is a terminal.
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a TeaPrompter reading keys from in and drawing to out.
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Ask implements core.Prompter.
func (p *TeaPrompter) Ask(q core.Question) (string, error) {
	prog := tea.NewProgram(newChoiceModel(q), tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}

	m := final.(choiceModel)
	if m.aborted {
		return "", ErrAborted
	}

	// Echo the answer so it stays on screen after the list is cleared.
	fmt.Fprintf(p.out, "  %s %s\n", WarningStyle.Render(q.Title), AccentStyle.Render(labelFor(q, m.answer)))
	return m.answer, nil
}

func labelFor(q core.Question, answer string) string {
	for _, c := range q.Choices {
		if c.Key == answer {
			return c.Label
		}
	}
	return answer
}
