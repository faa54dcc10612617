package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gsd-build/get-shit-done-cc/internal/core"
	"github.com/gsd-build/get-shit-done-cc/internal/tui"
)

// runInstall is the root command: pick targets from flags or prompts, then
// install each of them.
func runInstall(cmd *cobra.Command, args []string) error {
	d, err := newDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, tui.Banner(d.manifest.Version, d.manifest.Description))

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	targets := opts.FlagTargets()
	if opts.Interactive() {
		targets, err = core.SelectTargets(tui.NewPrompter(cmd.InOrStdin(), out), opts)
		if err != nil {
			return err
		}
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	progress := tui.NewProgress(out, verbose)

	installer := core.NewInstaller(d.content, d.manifest, opts, progress)
	result, err := installer.Install(targets)
	if err != nil {
		return err
	}
	progress.Done(result)
	return nil
}
