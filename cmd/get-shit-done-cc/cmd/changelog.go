package cmd

import (
	"fmt"
	"io/fs"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const changelogWidth = 80

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show the release notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(d.content, "CHANGELOG.md")
		if err != nil {
			return fmt.Errorf("reading changelog: %w", err)
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(changelogWidth),
		)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}
		rendered, err := r.Render(string(data))
		if err != nil {
			return fmt.Errorf("rendering changelog: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)
}
