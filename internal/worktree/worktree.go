package worktree

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"github.com/keshon/tvc/internal/config"
	"github.com/keshon/tvc/internal/fs"
)

// Tree reads and writes the user files around a repository. Paths are
// slash-separated and relative to the working tree root.
type Tree struct {
	fs     fs.FS
	cfg    *config.RepoConfig
	ignore *Ignore
}

// New opens the working tree of cfg, loading .tvcignore if present.
func New(fsys fs.FS, cfg *config.RepoConfig) (*Tree, error) {
	data, err := fsys.ReadFile(cfg.IgnoreFile())
	if err != nil && !fsys.IsNotExist(err) {
		return nil, fmt.Errorf("read ignore file: %w", err)
	}
	return &Tree{fs: fsys, cfg: cfg, ignore: NewIgnore(data)}, nil
}

// Scan returns every non-ignored file in the working tree, sorted.
func (t *Tree) Scan() ([]string, error) {
	var paths []string
	if err := t.walk("", &paths); err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func (t *Tree) walk(rel string, out *[]string) error {
	dir := t.cfg.WorkingTree
	if rel != "" {
		dir = t.cfg.WorkPath(rel)
	}
	entries, err := t.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %q: %w", dir, err)
	}
	for _, e := range entries {
		p := e.Name()
		if rel != "" {
			p = path.Join(rel, e.Name())
		}
		if t.ignore.Match(p) {
			continue
		}
		if e.IsDir() {
			if err := t.walk(p, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, p)
	}
	return nil
}

// Exists reports whether rel is a regular file in the working tree.
func (t *Tree) Exists(rel string) bool {
	p := t.cfg.WorkPath(rel)
	return t.fs.Exists(p) && !t.fs.IsDir(p)
}

func (t *Tree) Read(rel string) ([]byte, error) {
	data, err := t.fs.ReadFile(t.cfg.WorkPath(rel))
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", rel, err)
	}
	return data, nil
}

// Write replaces the content of rel, creating parent directories.
func (t *Tree) Write(rel string, data []byte) error {
	p := t.cfg.WorkPath(rel)
	if err := t.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create parent of %q: %w", rel, err)
	}
	if err := t.fs.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", rel, err)
	}
	return nil
}

// Remove deletes rel if present and prunes parent directories it leaves
// empty.
func (t *Tree) Remove(rel string) error {
	p := t.cfg.WorkPath(rel)
	if err := t.fs.Remove(p); err != nil && !t.fs.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", rel, err)
	}
	root := filepath.Clean(t.cfg.WorkingTree)
	for dir := filepath.Dir(p); dir != root && len(dir) > len(root); dir = filepath.Dir(dir) {
		entries, err := t.fs.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			break
		}
		if err := t.fs.Remove(dir); err != nil {
			break
		}
	}
	return nil
}
