// Package system defines the agents get-shit-done can be installed into.
//
// An Agent represents an AI coding tool (Claude Code, Opencode). Each agent
// knows its own directory layout, how its install root is resolved for a
// given scope, and which path references must be rewritten in the markdown
// files it receives. Agents are self-contained Go structs registered in init.
package system

import "errors"

// ErrLocalOverride is returned by Resolve when an explicit config directory
// is combined with a local install for an agent that honors overrides.
var ErrLocalOverride = errors.New("config dir override cannot be used with a local install")

// Agent defines how an AI coding tool receives the get-shit-done content.
type Agent interface {
	// Identity
	Name() string        // machine name: "claude-code", "opencode"
	DisplayName() string // human name: "Claude Code", "Opencode"

	// Default roots: project-relative and ~-relative.
	LocalDir() string  // ".claude" / ".opencode"
	GlobalDir() string // "~/.claude" / "~/.config/opencode"

	// Layout, relative to the resolved install root.
	CommandsDir() string // "commands" / "command"
	SkillDir() string    // "get-shit-done" / "gsd"
	AgentsDir() string   // "agents" / "agent"

	// CommandsSource is the package-relative directory holding the
	// slash commands written for this agent.
	CommandsSource() string

	// Paths
	Resolve(scope Scope, ov Overrides, env Env) (ResolvedPaths, error)

	// RewriteRules returns the ordered replacements applied to markdown
	// content installed for this agent.
	RewriteRules(prefix string) []Rule
}

// Rule is one literal find/replace pair applied to documentation content.
type Rule struct {
	Find    string
	Replace string
}

// --- Registry ---

var agents []Agent

// Register adds an agent to the global registry.
func Register(a Agent) { agents = append(agents, a) }

// All returns all registered agents in registration order.
func All() []Agent { return agents }

// ByName returns the agent with the given machine name, if registered.
func ByName(name string) (Agent, bool) {
	for _, a := range agents {
		if a.Name() == name {
			return a, true
		}
	}
	return nil, false
}

// Primary returns the default agent targeted by --global and --local.
func Primary() Agent {
	a, _ := ByName(claudeCodeName)
	return a
}

// DisplayNames returns the display names of the given agents.
func DisplayNames(agents []Agent) []string {
	names := make([]string, len(agents))
	for i, a := range agents {
		names[i] = a.DisplayName()
	}
	return names
}
