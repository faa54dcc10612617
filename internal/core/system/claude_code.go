package system

const claudeCodeName = "claude-code"

// ClaudeCode implements the Agent interface for Claude Code.
type ClaudeCode struct {
	BaseSystem
}

// NewClaudeCode creates a configured Claude Code agent.
func NewClaudeCode() *ClaudeCode {
	return &ClaudeCode{BaseSystem{
		name:           claudeCodeName,
		displayName:    "Claude Code",
		localDir:       ".claude",
		globalDir:      "~/.claude",
		commandsDir:    "commands",
		skillDir:       "get-shit-done",
		agentsDir:      "agents",
		commandsSource: "commands/gsd",
		overridable:    true,
	}}
}

// RewriteRules points ~/.claude/ references at the resolved prefix. For a
// default global install the prefix is ~/.claude/ and content is unchanged.
func (c *ClaudeCode) RewriteRules(prefix string) []Rule {
	return []Rule{
		{Find: "~/.claude/", Replace: prefix},
	}
}

func init() { Register(NewClaudeCode()) }
