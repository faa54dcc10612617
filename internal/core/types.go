// Package core provides the install logic for get-shit-done.
// It has zero UI dependencies and is independently testable.
package core

import "github.com/gsd-build/get-shit-done-cc/internal/core/system"

// Target is one agent installed into one scope.
type Target struct {
	Agent system.Agent
	Scope system.Scope
}

// Bundle is one piece of package content copied for an agent.
type Bundle struct {
	Name     string // label shown in progress output
	Source   string // package-relative path
	Dest     string // root-relative path
	File     bool   // Source is a single file, copied verbatim
	Optional bool   // skipped when Source is absent from the package
}

// InstallResult summarizes one completed install run.
type InstallResult struct {
	Agents []AgentResult
}

// AgentResult describes what was written for one target.
type AgentResult struct {
	Agent   system.Agent
	Scope   system.Scope
	Paths   system.ResolvedPaths
	Bundles []string // names of bundles that were copied
	Version string   // version written to the VERSION marker
}
