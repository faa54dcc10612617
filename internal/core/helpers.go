package core

import (
	"io"
	"io/fs"
	"os"
)

// copyFile copies a single file from src to dst on disk. Embedded files
// report read-only modes, so only the executable bit is carried over;
// otherwise a second install could not overwrite the first.
func copyFile(src fs.FS, name, dst string) error {
	srcFile, err := src.Open(name)
	if err != nil {
		return err
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode(info.Mode()))
	if err != nil {
		return err
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return err
	}
	return dstFile.Close()
}

func fileMode(m fs.FileMode) fs.FileMode {
	if m&0o111 != 0 {
		return 0o755
	}
	return 0o644
}

// exists reports whether name is present in fsys.
func exists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	return err == nil
}
