package core

import (
	"fmt"
	"strings"

	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

// Prompter asks the user one question at a time and returns the raw
// answer. An empty answer selects the question's default.
type Prompter interface {
	Ask(q Question) (string, error)
}

// Question is a numbered multiple-choice prompt.
type Question struct {
	Title   string
	Choices []Choice
	Default string // key of the default choice
}

// Choice is one selectable answer.
type Choice struct {
	Key   string // what the user types, e.g. "1"
	Label string
	Hint  string // dimmed detail shown next to the label
}

// SelectTargets runs the interactive flow: which agents, then where to
// install each of them. All questions are asked before anything is
// installed.
func SelectTargets(p Prompter, opts Options) ([]Target, error) {
	agents, err := selectAgents(p)
	if err != nil {
		return nil, err
	}

	targets := make([]Target, 0, len(agents))
	for _, a := range agents {
		scope, err := selectScope(p, a, opts)
		if err != nil {
			return nil, err
		}
		targets = append(targets, Target{Agent: a, Scope: scope})
	}

	if err := opts.CheckTargets(targets); err != nil {
		return nil, err
	}
	return targets, nil
}

func selectAgents(p Prompter) ([]system.Agent, error) {
	all := system.All()
	q := Question{
		Title:   "Which agents would you like to install?",
		Default: fmt.Sprint(len(all) + 1),
	}
	for i, a := range all {
		q.Choices = append(q.Choices, Choice{
			Key:   fmt.Sprint(i + 1),
			Label: a.DisplayName(),
			Hint:  agentHint(a),
		})
	}
	q.Choices = append(q.Choices, Choice{Key: q.Default, Label: "Both agents"})

	answer, err := ask(p, q)
	if err != nil {
		return nil, err
	}
	if answer == q.Default {
		return all, nil
	}
	for i, a := range all {
		if answer == fmt.Sprint(i+1) {
			return []system.Agent{a}, nil
		}
	}
	return nil, usageErrorf(msgInvalidAgents)
}

func selectScope(p Prompter, a system.Agent, opts Options) (system.Scope, error) {
	globalLabel := "global"
	if paths, err := a.Resolve(system.Global, opts.Overrides(), opts.Env); err == nil {
		globalLabel = paths.Label
	}
	localLabel := "./" + a.LocalDir()

	q := Question{
		Title:   fmt.Sprintf("Where would you like to install %s?", a.DisplayName()),
		Default: "1",
		Choices: []Choice{
			{Key: "1", Label: "Global", Hint: globalLabel + " - available in all projects"},
			{Key: "2", Label: "Local", Hint: localLabel + " - this project only"},
		},
	}

	answer, err := ask(p, q)
	if err != nil {
		return 0, err
	}
	switch answer {
	case "1":
		return system.Global, nil
	case "2":
		return system.Local, nil
	default:
		return 0, usageErrorf(msgInvalidScope)
	}
}

// ask normalizes an answer: surrounding space is dropped and an empty
// answer becomes the default.
func ask(p Prompter, q Question) (string, error) {
	answer, err := p.Ask(q)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = q.Default
	}
	return answer, nil
}

func agentHint(a system.Agent) string {
	return a.GlobalDir() + " or ./" + a.LocalDir()
}
