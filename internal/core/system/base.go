package system

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BaseSystem provides the directory layout and path resolution shared by
// all agents. Individual agents embed this and add their rewrite rules.
type BaseSystem struct {
	name           string
	displayName    string
	localDir       string // project-relative root, e.g. ".claude"
	globalDir      string // global root with ~, e.g. "~/.claude"
	commandsDir    string // root-relative commands directory
	skillDir       string // root-relative skill directory
	agentsDir      string // root-relative subagent directory
	commandsSource string // package-relative command sources
	overridable    bool   // honors --config-dir and CLAUDE_CONFIG_DIR
}

func (b *BaseSystem) Name() string           { return b.name }
func (b *BaseSystem) DisplayName() string    { return b.displayName }
func (b *BaseSystem) CommandsDir() string    { return b.commandsDir }
func (b *BaseSystem) SkillDir() string       { return b.skillDir }
func (b *BaseSystem) AgentsDir() string      { return b.agentsDir }
func (b *BaseSystem) CommandsSource() string { return b.commandsSource }

// LocalDir returns the project-relative install root.
func (b *BaseSystem) LocalDir() string { return b.localDir }

// GlobalDir returns the default global install root, unexpanded.
func (b *BaseSystem) GlobalDir() string { return b.globalDir }

// Resolve computes the install root, display label and substitution prefix.
//
// Local installs always land under the working directory. Global installs
// use the explicit override, then the environment override, then the
// agent default; overrides only apply to agents that honor them.
func (b *BaseSystem) Resolve(scope Scope, ov Overrides, env Env) (ResolvedPaths, error) {
	switch scope {
	case Local:
		if b.overridable && ov.ConfigDir != "" {
			return ResolvedPaths{}, ErrLocalOverride
		}
		root := filepath.Join(env.Cwd, b.localDir)
		return ResolvedPaths{
			Root:   root,
			Label:  collapsePath(root, env.Cwd, "."),
			Prefix: "./" + b.localDir + "/",
		}, nil

	case Global:
		if b.overridable {
			if dir := b.overrideDir(ov, env); dir != "" {
				return ResolvedPaths{
					Root:   dir,
					Label:  collapsePath(dir, env.Home, "~"),
					Prefix: strings.TrimSuffix(filepath.ToSlash(dir), "/") + "/",
				}, nil
			}
		}
		root := expandPath(b.globalDir, env)
		return ResolvedPaths{
			Root:   root,
			Label:  collapsePath(root, env.Home, "~"),
			Prefix: b.globalDir + "/",
		}, nil

	default:
		return ResolvedPaths{}, fmt.Errorf("system %s: unknown scope %s", b.name, scope)
	}
}

// overrideDir applies the precedence --config-dir > CLAUDE_CONFIG_DIR.
func (b *BaseSystem) overrideDir(ov Overrides, env Env) string {
	for _, dir := range []string{ov.ConfigDir, env.ConfigDir} {
		if dir != "" {
			return expandPath(dir, env)
		}
	}
	return ""
}

// --- Shared Helpers ---

// expandPath expands a leading ~ against env.Home and anchors relative
// paths at env.Cwd. The result is cleaned.
func expandPath(p string, env Env) string {
	switch {
	case p == "~":
		p = env.Home
	case strings.HasPrefix(p, "~/"):
		p = filepath.Join(env.Home, p[2:])
	case !filepath.IsAbs(p):
		p = filepath.Join(env.Cwd, p)
	}
	return filepath.Clean(p)
}

// collapsePath replaces a leading base directory with symbol.
func collapsePath(p, base, symbol string) string {
	if base == "" {
		return p
	}
	if p == base {
		return symbol
	}
	if rest, ok := strings.CutPrefix(p, base+string(filepath.Separator)); ok {
		return symbol + "/" + filepath.ToSlash(rest)
	}
	return p
}
