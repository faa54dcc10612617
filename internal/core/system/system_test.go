package system

import (
	"errors"
	"path/filepath"
	"testing"
)

var testEnv = Env{
	Home: filepath.FromSlash("/home/u"),
	Cwd:  filepath.FromSlash("/work/proj"),
}

func TestSystemRegistry(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(all))
	}
	if all[0].Name() != "claude-code" || all[1].Name() != "opencode" {
		t.Errorf("registration order = %v", DisplayNames(all))
	}
}

func TestByName(t *testing.T) {
	a, ok := ByName("opencode")
	if !ok {
		t.Fatal("ByName(opencode) not found")
	}
	if a.DisplayName() != "Opencode" {
		t.Errorf("DisplayName() = %q", a.DisplayName())
	}
	if _, ok := ByName("cursor"); ok {
		t.Error("expected ByName for unknown to return false")
	}
}

func TestPrimary(t *testing.T) {
	if Primary().Name() != "claude-code" {
		t.Errorf("Primary() = %q", Primary().Name())
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		agent                                  Agent
		commands, skill, agents, commandsSource string
	}{
		{NewClaudeCode(), "commands", "get-shit-done", "agents", "commands/gsd"},
		{NewOpenCode(), "command", "gsd", "agent", "commands/opencode"},
	}
	for _, tt := range tests {
		t.Run(tt.agent.Name(), func(t *testing.T) {
			if got := tt.agent.CommandsDir(); got != tt.commands {
				t.Errorf("CommandsDir() = %q, want %q", got, tt.commands)
			}
			if got := tt.agent.SkillDir(); got != tt.skill {
				t.Errorf("SkillDir() = %q, want %q", got, tt.skill)
			}
			if got := tt.agent.AgentsDir(); got != tt.agents {
				t.Errorf("AgentsDir() = %q, want %q", got, tt.agents)
			}
			if got := tt.agent.CommandsSource(); got != tt.commandsSource {
				t.Errorf("CommandsSource() = %q, want %q", got, tt.commandsSource)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	envWithConfig := testEnv
	envWithConfig.ConfigDir = "~/.claude-env"

	tests := []struct {
		name  string
		agent Agent
		scope Scope
		ov    Overrides
		env   Env
		want  ResolvedPaths
	}{
		{
			name:  "claude global default",
			agent: NewClaudeCode(),
			scope: Global,
			env:   testEnv,
			want:  ResolvedPaths{Root: "/home/u/.claude", Label: "~/.claude", Prefix: "~/.claude/"},
		},
		{
			name:  "claude global explicit override",
			agent: NewClaudeCode(),
			scope: Global,
			ov:    Overrides{ConfigDir: "/home/u/.claude-work"},
			env:   testEnv,
			want:  ResolvedPaths{Root: "/home/u/.claude-work", Label: "~/.claude-work", Prefix: "/home/u/.claude-work/"},
		},
		{
			name:  "claude global root override",
			agent: NewClaudeCode(),
			scope: Global,
			ov:    Overrides{ConfigDir: "/"},
			env:   testEnv,
			want:  ResolvedPaths{Root: "/", Label: "/", Prefix: "/"},
		},
		{
			name:  "claude global tilde override",
			agent: NewClaudeCode(),
			scope: Global,
			ov:    Overrides{ConfigDir: "~/.claude-bc/"},
			env:   testEnv,
			want:  ResolvedPaths{Root: "/home/u/.claude-bc", Label: "~/.claude-bc", Prefix: "/home/u/.claude-bc/"},
		},
		{
			name:  "claude global env override",
			agent: NewClaudeCode(),
			scope: Global,
			env:   envWithConfig,
			want:  ResolvedPaths{Root: "/home/u/.claude-env", Label: "~/.claude-env", Prefix: "/home/u/.claude-env/"},
		},
		{
			name:  "explicit override beats env",
			agent: NewClaudeCode(),
			scope: Global,
			ov:    Overrides{ConfigDir: "/opt/claude"},
			env:   envWithConfig,
			want:  ResolvedPaths{Root: "/opt/claude", Label: "/opt/claude", Prefix: "/opt/claude/"},
		},
		{
			name:  "relative override anchored at cwd",
			agent: NewClaudeCode(),
			scope: Global,
			ov:    Overrides{ConfigDir: "cfg"},
			env:   testEnv,
			want:  ResolvedPaths{Root: "/work/proj/cfg", Label: "/work/proj/cfg", Prefix: "/work/proj/cfg/"},
		},
		{
			name:  "claude local ignores env",
			agent: NewClaudeCode(),
			scope: Local,
			env:   envWithConfig,
			want:  ResolvedPaths{Root: "/work/proj/.claude", Label: "./.claude", Prefix: "./.claude/"},
		},
		{
			name:  "opencode global ignores overrides",
			agent: NewOpenCode(),
			scope: Global,
			ov:    Overrides{ConfigDir: "/opt/claude"},
			env:   envWithConfig,
			want:  ResolvedPaths{Root: "/home/u/.config/opencode", Label: "~/.config/opencode", Prefix: "~/.config/opencode/"},
		},
		{
			name:  "opencode local ignores overrides",
			agent: NewOpenCode(),
			scope: Local,
			ov:    Overrides{ConfigDir: "/opt/claude"},
			env:   testEnv,
			want:  ResolvedPaths{Root: "/work/proj/.opencode", Label: "./.opencode", Prefix: "./.opencode/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.agent.Resolve(tt.scope, tt.ov, tt.env)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			want := tt.want
			want.Root = filepath.FromSlash(want.Root)
			if filepath.Separator == '/' {
				if got != want {
					t.Errorf("Resolve() = %+v, want %+v", got, want)
				}
				return
			}
			if got.Root != want.Root {
				t.Errorf("Root = %q, want %q", got.Root, want.Root)
			}
		})
	}
}

func TestResolve_LocalOverrideRejected(t *testing.T) {
	_, err := NewClaudeCode().Resolve(Local, Overrides{ConfigDir: "/opt/claude"}, testEnv)
	if !errors.Is(err, ErrLocalOverride) {
		t.Errorf("Resolve() error = %v, want ErrLocalOverride", err)
	}
}

func TestResolve_UnknownScope(t *testing.T) {
	if _, err := NewClaudeCode().Resolve(Scope(9), Overrides{}, testEnv); err == nil {
		t.Error("expected error for unknown scope")
	}
}

func TestRewriteRules(t *testing.T) {
	claude := NewClaudeCode().RewriteRules("/x/")
	if len(claude) != 1 || claude[0] != (Rule{Find: "~/.claude/", Replace: "/x/"}) {
		t.Errorf("claude rules = %+v", claude)
	}

	// Opencode rules do not depend on the prefix.
	a := NewOpenCode().RewriteRules("~/.config/opencode/")
	b := NewOpenCode().RewriteRules("./.opencode/")
	if len(a) != 4 {
		t.Fatalf("expected 4 opencode rules, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("rule %d differs between prefixes: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCollapsePath(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		p, base, symbol, want string
	}{
		{sep + "h" + sep + "x", sep + "h", "~", "~/x"},
		{sep + "h", sep + "h", "~", "~"},
		{sep + "hx" + sep + "y", sep + "h", "~", sep + "hx" + sep + "y"},
		{sep + "a", "", "~", sep + "a"},
	}
	for _, tt := range tests {
		if got := collapsePath(tt.p, tt.base, tt.symbol); got != tt.want {
			t.Errorf("collapsePath(%q, %q) = %q, want %q", tt.p, tt.base, got, tt.want)
		}
	}
}
