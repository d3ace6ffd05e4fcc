package config

import (
	"os"
	"path/filepath"

	"github.com/keshon/tvc/internal/fs"
)

// ResolveWorkingTreeRoot determines the working tree root by walking up
// from start until a directory containing RepoDir is found.
// It returns "" when no repository encloses start.
func ResolveWorkingTreeRoot(fsys fs.FS, start string) string {
	cwd, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	for {
		if fsys.IsDir(filepath.Join(cwd, RepoDir)) {
			return cwd
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break // reached filesystem root
		}
		cwd = parent
	}
	return ""
}

// ResolveFromCwd is ResolveWorkingTreeRoot starting at the process
// working directory.
func ResolveFromCwd(fsys fs.FS) string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return ResolveWorkingTreeRoot(fsys, cwd)
}
