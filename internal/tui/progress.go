package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gsd-build/get-shit-done-cc/internal/core"
	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

const checkMark = "✓"

// Progress prints install progress. It implements core.Observer.
type Progress struct {
	out     io.Writer
	verbose bool // print every written file
}

// NewProgress creates a Progress writing to out.
func NewProgress(out io.Writer, verbose bool) *Progress {
	return &Progress{out: out, verbose: verbose}
}

func (p *Progress) AgentStarted(t core.Target, paths system.ResolvedPaths) {
	fmt.Fprintf(p.out, "\n  Installing %s to %s\n\n",
		AccentStyle.Render(t.Agent.DisplayName()), AccentStyle.Render(paths.Label))
}

func (p *Progress) BundleInstalled(_ core.Target, b core.Bundle) {
	fmt.Fprintf(p.out, "  %s Installed %s\n", SuccessStyle.Render(checkMark), b.Name)
}

func (p *Progress) VersionWritten(_ core.Target, version string) {
	fmt.Fprintf(p.out, "  %s Wrote VERSION %s\n", SuccessStyle.Render(checkMark), MutedStyle.Render("("+version+")"))
}

func (p *Progress) FileWritten(path string) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.out, "    %s\n", MutedStyle.Render(path))
}

// Done prints the closing line naming every installed agent.
func (p *Progress) Done(result *core.InstallResult) {
	agents := make([]system.Agent, len(result.Agents))
	for i, a := range result.Agents {
		agents[i] = a.Agent
	}
	fmt.Fprintf(p.out, "\n  %s Launch %s and run %s.\n\n",
		SuccessStyle.Render("Done!"), strings.Join(system.DisplayNames(agents), " and "), AccentStyle.Render("/gsd:help"))
}

// UsageError renders a usage error the way the installer reports
// contradictory flags.
func UsageError(w io.Writer, err error) {
	fmt.Fprintf(w, "  %s\n", WarningStyle.Render(err.Error()))
}

// Error renders any other failure.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", ErrorStyle.Render("Error:"), err)
}
