package core

import (
	"path"

	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

const (
	skillSource     = "get-shit-done"
	agentsSource    = "agents"
	changelogSource = "CHANGELOG.md"
	versionFile     = "VERSION"
)

// BundlesFor returns the content bundles installed for an agent, in order.
// Destinations are slash-separated and relative to the install root.
func BundlesFor(a system.Agent) []Bundle {
	return []Bundle{
		{
			Name:     a.CommandsDir() + "/gsd",
			Source:   a.CommandsSource(),
			Dest:     path.Join(a.CommandsDir(), "gsd"),
			Optional: true,
		},
		{
			Name:   a.SkillDir(),
			Source: skillSource,
			Dest:   a.SkillDir(),
		},
		{
			Name:     a.AgentsDir(),
			Source:   agentsSource,
			Dest:     a.AgentsDir(),
			Optional: true,
		},
		{
			Name:     changelogSource,
			Source:   changelogSource,
			Dest:     path.Join(a.SkillDir(), changelogSource),
			File:     true,
			Optional: true,
		},
	}
}

// VersionPath returns the root-relative path of the version marker.
func VersionPath(a system.Agent) string {
	return path.Join(a.SkillDir(), versionFile)
}
