package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

// Observer receives install progress. Implementations render it; the
// installer itself never writes to the terminal.
type Observer interface {
	AgentStarted(t Target, paths system.ResolvedPaths)
	BundleInstalled(t Target, b Bundle)
	VersionWritten(t Target, version string)
	FileWritten(path string)
}

type nopObserver struct{}

func (nopObserver) AgentStarted(Target, system.ResolvedPaths) {}
func (nopObserver) BundleInstalled(Target, Bundle)            {}
func (nopObserver) VersionWritten(Target, string)             {}
func (nopObserver) FileWritten(string)                        {}

// Installer copies the content package into agent directories.
type Installer struct {
	src      fs.FS
	manifest *Manifest
	opts     Options
	observer Observer
}

// NewInstaller creates an Installer reading content from src. A nil
// observer discards progress.
func NewInstaller(src fs.FS, manifest *Manifest, opts Options, observer Observer) *Installer {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Installer{
		src:      src,
		manifest: manifest,
		opts:     opts,
		observer: observer,
	}
}

// Install installs every target in order. Each agent's install completes
// before the next begins. All targets are resolved first, so usage errors
// are reported before anything is written.
func (inst *Installer) Install(targets []Target) (*InstallResult, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("no install targets")
	}
	if err := inst.opts.CheckTargets(targets); err != nil {
		return nil, err
	}

	result := &InstallResult{}
	for _, t := range targets {
		installed, err := inst.installTarget(t)
		if err != nil {
			return result, fmt.Errorf("installing %s: %w", t.Agent.DisplayName(), err)
		}
		result.Agents = append(result.Agents, *installed)
	}
	return result, nil
}

// installTarget installs all bundles for one agent and writes its
// version marker.
func (inst *Installer) installTarget(t Target) (*AgentResult, error) {
	paths, err := inst.opts.Resolve(t)
	if err != nil {
		return nil, err
	}
	inst.observer.AgentStarted(t, paths)

	commandsDir := filepath.Join(paths.Root, t.Agent.CommandsDir())
	if err := os.MkdirAll(commandsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating commands dir: %w", err)
	}

	copier := &Copier{
		Src:     inst.src,
		Rules:   t.Agent.RewriteRules(paths.Prefix),
		OnWrite: inst.observer.FileWritten,
	}

	res := &AgentResult{Agent: t.Agent, Scope: t.Scope, Paths: paths}
	for _, b := range BundlesFor(t.Agent) {
		if !exists(inst.src, b.Source) {
			if b.Optional {
				continue
			}
			return nil, fmt.Errorf("package is missing %s", b.Source)
		}

		dest := filepath.Join(paths.Root, filepath.FromSlash(b.Dest))
		if b.File {
			err = copier.CopyFile(b.Source, dest)
		} else {
			err = copier.CopyTree(b.Source, dest)
		}
		if err != nil {
			return nil, err
		}

		res.Bundles = append(res.Bundles, b.Name)
		inst.observer.BundleInstalled(t, b)
	}

	versionPath := filepath.Join(paths.Root, filepath.FromSlash(VersionPath(t.Agent)))
	if err := os.WriteFile(versionPath, []byte(inst.manifest.Version), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", versionFile, err)
	}
	inst.observer.FileWritten(versionPath)
	inst.observer.VersionWritten(t, inst.manifest.Version)
	res.Version = inst.manifest.Version

	return res, nil
}
