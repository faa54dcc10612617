package system

// OpenCode implements the Agent interface for the Opencode AI coding tool.
type OpenCode struct {
	BaseSystem
}

// NewOpenCode creates a configured Opencode agent.
func NewOpenCode() *OpenCode {
	return &OpenCode{BaseSystem{
		name:           "opencode",
		displayName:    "Opencode",
		localDir:       ".opencode",
		globalDir:      "~/.config/opencode",
		commandsDir:    "command",
		skillDir:       "gsd",
		agentsDir:      "agent",
		commandsSource: "commands/opencode",
	}}
}

// RewriteRules maps Claude Code directory names onto Opencode's layout.
// The prefix is not used: global and local installs get the same rules.
func (o *OpenCode) RewriteRules(string) []Rule {
	return []Rule{
		{Find: "~/.claude/get-shit-done/", Replace: "~/.config/opencode/gsd/"},
		{Find: "~/.claude/commands/", Replace: "~/.config/opencode/command/"},
		{Find: "./.claude/get-shit-done/", Replace: ".opencode/gsd/"},
		{Find: "./.claude/commands/", Replace: ".opencode/command/"},
	}
}

func init() { Register(NewOpenCode()) }
