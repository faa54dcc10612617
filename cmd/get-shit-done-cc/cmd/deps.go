package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/gsd-build/get-shit-done-cc/content"
	"github.com/gsd-build/get-shit-done-cc/internal/core"
	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

// deps holds shared dependencies for CLI commands.
type deps struct {
	content  fs.FS
	manifest *core.Manifest
}

// newDeps opens the embedded content package. Called lazily by commands
// that need it.
func newDeps() (*deps, error) {
	src, err := content.FS()
	if err != nil {
		return nil, fmt.Errorf("opening content package: %w", err)
	}
	manifest, err := core.LoadManifest(src)
	if err != nil {
		return nil, err
	}
	return &deps{content: src, manifest: manifest}, nil
}

// buildOptions folds flags and the process environment into core.Options.
// Commands without --global/--local leave both false.
func buildOptions(cmd *cobra.Command) (core.Options, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return core.Options{}, fmt.Errorf("finding home directory: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return core.Options{}, fmt.Errorf("getting current directory: %w", err)
	}

	opts := core.Options{
		Env: system.Env{
			Home:      home,
			Cwd:       cwd,
			ConfigDir: os.Getenv("CLAUDE_CONFIG_DIR"),
		},
	}
	opts.Global, _ = cmd.Flags().GetBool("global")
	opts.Local, _ = cmd.Flags().GetBool("local")
	opts.ConfigDir, opts.ConfigDirSet = configDirFlag(cmd.Flags())

	if err := opts.Validate(); err != nil {
		return core.Options{}, err
	}
	return opts, nil
}
