// Package content holds the commands, skill files and subagents that
// get-shit-done installs, compiled into the binary.
package content

import (
	"embed"
	"io/fs"
)

//go:embed all:package
var packageFS embed.FS

// FS returns a filesystem rooted at the content package. It contains
// package.yaml, CHANGELOG.md and the commands/, get-shit-done/ and
// agents/ trees.
func FS() (fs.FS, error) {
	return fs.Sub(packageFS, "package")
}
