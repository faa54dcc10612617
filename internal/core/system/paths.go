package system

import "fmt"

// Scope selects between a per-user and a per-project install.
type Scope int

const (
	Global Scope = iota
	Local
)

func (s Scope) String() string {
	switch s {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Scopes lists every scope in display order.
func Scopes() []Scope { return []Scope{Global, Local} }

// Env captures the process state a resolution depends on.
// It is built once at startup so resolution stays a pure function.
type Env struct {
	Home      string // invoking user's home directory
	Cwd       string // current working directory
	ConfigDir string // CLAUDE_CONFIG_DIR, if set
}

// Overrides holds values supplied on the command line.
type Overrides struct {
	ConfigDir string // --config-dir
}

// ResolvedPaths is where an agent's content goes for one scope.
type ResolvedPaths struct {
	Root   string // absolute destination root
	Label  string // Root with ~ or . collapsed, for display
	Prefix string // replacement for ~/.claude/ references in markdown
}
