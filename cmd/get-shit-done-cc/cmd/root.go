package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gsd-build/get-shit-done-cc/internal/core"
	"github.com/gsd-build/get-shit-done-cc/internal/tui"
)

// Build info set via ldflags at build time.
var (
	Commit = "unknown"
	Date   = "unknown"
)

const usageText = `  Usage: get-shit-done-cc [options]
         get-shit-done-cc [command]

  Options:
    -g, --global              Install globally (to Claude config directory)
    -l, --local               Install locally (to ./.claude in current directory)
    -c, --config-dir <path>   Specify custom Claude config directory
    -h, --help                Show this help message

  Commands:
    status                    Show where get-shit-done is installed
    changelog                 Show the release notes
    version                   Print version information

  Examples:
    # Install to default ~/.claude directory
    get-shit-done-cc --global

    # Install to custom config directory (for multiple Claude accounts)
    get-shit-done-cc --global --config-dir ~/.claude-bc

    # Using environment variable
    CLAUDE_CONFIG_DIR=~/.claude-bc get-shit-done-cc --global

    # Install to current project only
    get-shit-done-cc --local

  Notes:
    The --config-dir option is useful when you have multiple Claude Code
    configurations (e.g., for different subscriptions). It takes priority
    over the CLAUDE_CONFIG_DIR environment variable.
`

var rootCmd = &cobra.Command{
	Use:   "get-shit-done-cc",
	Short: "Install get-shit-done into Claude Code and Opencode",
	Long: `Installs the get-shit-done commands, workflows and subagents into
Claude Code (~/.claude or ./.claude) and Opencode (~/.config/opencode
or ./.opencode). Without --global or --local it asks where to install.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInstall,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit: %s, built: %s)\n",
			d.manifest.Name, d.manifest.Version, Commit, Date)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolP("global", "g", false, "Install globally (to Claude config directory)")
	rootCmd.Flags().BoolP("local", "l", false, "Install locally (to ./.claude in current directory)")
	rootCmd.PersistentFlags().StringP("config-dir", "c", "", "Specify custom Claude config directory")
	rootCmd.PersistentFlags().Bool("verbose", false, "Print every file written")
	_ = rootCmd.PersistentFlags().MarkHidden("verbose")

	rootCmd.SetFlagErrorFunc(flagError)

	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != rootCmd {
			defaultHelp(c, args)
			return
		}
		printHelp(c)
	})

	rootCmd.AddCommand(versionCmd)
}

// printHelp prints the banner and the installer usage.
func printHelp(c *cobra.Command) {
	out := c.OutOrStdout()
	if d, err := newDeps(); err == nil {
		fmt.Fprint(out, tui.Banner(d.manifest.Version, d.manifest.Description))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, usageText)
}

// flagError turns pflag parse failures into usage errors. A --config-dir
// without a value gets the installer's own message.
func flagError(c *cobra.Command, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "flag needs an argument") &&
		(strings.Contains(msg, "config-dir") || strings.Contains(msg, "'c'")) {
		return core.MissingConfigDirError()
	}
	return core.NewUsageError(msg)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ReportError prints err in the style matching its kind.
func ReportError(err error) {
	w := rootCmd.ErrOrStderr()
	if core.IsUsageError(err) {
		tui.UsageError(w, err)
		return
	}
	tui.Error(w, err)
}

// configDirFlag reads --config-dir, reporting whether it was given at all.
func configDirFlag(flags *pflag.FlagSet) (string, bool) {
	dir, _ := flags.GetString("config-dir")
	return dir, flags.Changed("config-dir")
}
