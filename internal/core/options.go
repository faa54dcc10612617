package core

import (
	"errors"
	"strings"

	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

const (
	msgBothScopes    = "Cannot specify both --global and --local"
	msgLocalOverride = "Cannot use --config-dir with --local"
	msgMissingDirArg = "--config-dir requires a path argument"
	msgInvalidAgents = "Invalid choice. Please select 1, 2, or 3."
	msgInvalidScope  = "Invalid choice. Please select 1 or 2."
)

// Options is the immutable install configuration built once from the
// command line and the process environment.
type Options struct {
	Global       bool   // --global
	Local        bool   // --local
	ConfigDir    string // --config-dir value
	ConfigDirSet bool   // --config-dir was present, even without a value
	Env          system.Env
}

// MissingConfigDirError is returned when --config-dir has no usable value.
func MissingConfigDirError() error {
	return usageErrorf(msgMissingDirArg)
}

// Validate rejects contradictory flag combinations.
func (o Options) Validate() error {
	if o.Global && o.Local {
		return usageErrorf(msgBothScopes)
	}
	if o.ConfigDirSet && missingValue(o.ConfigDir) {
		return MissingConfigDirError()
	}
	if o.ConfigDir != "" && o.Local {
		return usageErrorf(msgLocalOverride)
	}
	return nil
}

// missingValue reports whether a --config-dir value is really absent: empty,
// a swallowed flag, or the "=" pflag leaves behind for "-c=".
func missingValue(v string) bool {
	return v == "" || v == "=" || strings.HasPrefix(v, "-")
}

// Interactive reports whether the agents and scopes must be prompted for.
func (o Options) Interactive() bool {
	return !o.Global && !o.Local
}

// Overrides returns the command-line overrides for path resolution.
func (o Options) Overrides() system.Overrides {
	return system.Overrides{ConfigDir: o.ConfigDir}
}

// FlagTargets returns the targets implied by --global or --local. Both
// flags install the primary agent only.
func (o Options) FlagTargets() []Target {
	switch {
	case o.Global:
		return []Target{{Agent: system.Primary(), Scope: system.Global}}
	case o.Local:
		return []Target{{Agent: system.Primary(), Scope: system.Local}}
	default:
		return nil
	}
}

// Resolve resolves paths for a target, mapping resolver errors that stem
// from user input to usage errors.
func (o Options) Resolve(t Target) (system.ResolvedPaths, error) {
	paths, err := t.Agent.Resolve(t.Scope, o.Overrides(), o.Env)
	if errors.Is(err, system.ErrLocalOverride) {
		return paths, usageErrorf(msgLocalOverride)
	}
	return paths, err
}

// CheckTargets resolves every target up front so that usage errors surface
// before any file is written.
func (o Options) CheckTargets(targets []Target) error {
	for _, t := range targets {
		if _, err := o.Resolve(t); err != nil {
			return err
		}
	}
	return nil
}
