package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

// StatusEntry reports what is installed for one agent and scope.
type StatusEntry struct {
	Target
	Paths     system.ResolvedPaths
	Installed bool
	Version   string // contents of the VERSION marker, if installed
}

// Status inspects every agent in both scopes. The --config-dir override
// only applies to global locations here, so it never fails on local ones.
func Status(opts Options) ([]StatusEntry, error) {
	var entries []StatusEntry
	for _, a := range system.All() {
		for _, scope := range system.Scopes() {
			ov := opts.Overrides()
			if scope == system.Local {
				ov = system.Overrides{}
			}
			paths, err := a.Resolve(scope, ov, opts.Env)
			if err != nil {
				return nil, fmt.Errorf("resolving %s %s: %w", a.Name(), scope, err)
			}

			entry := StatusEntry{Target: Target{Agent: a, Scope: scope}, Paths: paths}
			version, err := readVersion(filepath.Join(paths.Root, filepath.FromSlash(VersionPath(a))))
			if err != nil {
				return nil, err
			}
			if version != "" {
				entry.Installed = true
				entry.Version = version
			}
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// readVersion returns the trimmed marker contents, or "" when absent.
func readVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
