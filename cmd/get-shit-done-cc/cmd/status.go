package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gsd-build/get-shit-done-cc/internal/core"
	"github.com/gsd-build/get-shit-done-cc/internal/tui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where get-shit-done is installed",
	Long: `Show every Claude Code and Opencode location, global and local, and the
installed get-shit-done version in each. Global Claude Code paths honor
--config-dir and CLAUDE_CONFIG_DIR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		entries, err := core.Status(opts)
		if err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(tui.MutedStyle).
			Headers("AGENT", "SCOPE", "LOCATION", "VERSION")
		for _, e := range entries {
			version := "not installed"
			if e.Installed {
				version = e.Version
			}
			t.Row(e.Agent.DisplayName(), e.Scope.String(), e.Paths.Label, version)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
