package core

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/gsd-build/get-shit-done-cc/internal/core/system"
)

// Copier mirrors a directory of the content package onto disk, rewriting
// documentation files and copying everything else byte for byte.
type Copier struct {
	Src   fs.FS
	IsDoc func(name string) bool // defaults to IsDocFile
	Rules []system.Rule

	// OnWrite, if set, is called after each file is written.
	OnWrite func(dest string)
}

// CopyTree mirrors srcDir of src into destDir using rules for markdown.
func CopyTree(src fs.FS, srcDir, destDir string, rules []system.Rule) error {
	c := &Copier{Src: src, Rules: rules}
	return c.CopyTree(srcDir, destDir)
}

// CopyTree recursively copies srcDir (a slash-separated path in c.Src) to
// destDir. Existing files are overwritten. An error aborts the copy and
// leaves whatever was already written in place.
func (c *Copier) CopyTree(srcDir, destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", destDir, err)
	}

	entries, err := fs.ReadDir(c.Src, srcDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())
		destPath := filepath.Join(destDir, entry.Name())

		switch {
		case entry.IsDir():
			if err := c.CopyTree(srcPath, destPath); err != nil {
				return err
			}
		case c.isDoc(entry.Name()):
			if err := c.rewriteFile(srcPath, destPath); err != nil {
				return err
			}
		default:
			if err := copyFile(c.Src, srcPath, destPath); err != nil {
				return fmt.Errorf("copying %s: %w", srcPath, err)
			}
			c.wrote(destPath)
		}
	}
	return nil
}

// CopyFile copies a single package file verbatim.
func (c *Copier) CopyFile(srcPath, destPath string) error {
	if err := copyFile(c.Src, srcPath, destPath); err != nil {
		return fmt.Errorf("copying %s: %w", srcPath, err)
	}
	c.wrote(destPath)
	return nil
}

func (c *Copier) rewriteFile(srcPath, destPath string) error {
	data, err := fs.ReadFile(c.Src, srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}
	content := Rewrite(string(data), c.Rules)
	if err := os.WriteFile(destPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	c.wrote(destPath)
	return nil
}

func (c *Copier) isDoc(name string) bool {
	if c.IsDoc != nil {
		return c.IsDoc(name)
	}
	return IsDocFile(name)
}

func (c *Copier) wrote(dest string) {
	if c.OnWrite != nil {
		c.OnWrite(dest)
	}
}
