package refs

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/fs"
	"github.com/keshon/tvc/internal/object"
)

const headPrefix = "ref: branches/"

// Branch is a named pointer to a commit.
type Branch struct {
	Name string
	Head object.ID
}

// Store keeps one file per branch under dir and the HEAD file naming the
// active branch. Branch names may contain "/" and are stored nested.
type Store struct {
	fs       fs.FS
	dir      string
	headFile string
}

func NewStore(fsys fs.FS, branchesDir, headFile string) *Store {
	return &Store{fs: fsys, dir: branchesDir, headFile: headFile}
}

// ValidName rejects names that cannot map to a branch file.
func ValidName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." || strings.HasPrefix(part, ".tmp-") {
			return false
		}
	}
	return !strings.ContainsAny(name, "\\\x00\n")
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, filepath.FromSlash(name))
}

// Exists checks for branch existence.
func (s *Store) Exists(name string) bool {
	if !ValidName(name) {
		return false
	}
	p := s.path(name)
	return s.fs.Exists(p) && !s.fs.IsDir(p)
}

// Branch reads a branch.
func (s *Store) Branch(name string) (Branch, error) {
	if !s.Exists(name) {
		return Branch{}, errs.ErrBranchNotExist
	}
	data, err := s.fs.ReadFile(s.path(name))
	if err != nil {
		return Branch{}, fmt.Errorf("read branch %q: %w", name, err)
	}
	return Branch{Name: name, Head: object.ID(strings.TrimSpace(string(data)))}, nil
}

func (s *Store) write(name string, id object.ID) error {
	if err := fs.WriteFileAtomic(s.fs, s.path(name), []byte(id), 0o644); err != nil {
		return fmt.Errorf("write branch %q: %w", name, err)
	}
	return nil
}

// Create adds a new branch at id.
func (s *Store) Create(name string, id object.ID) error {
	if !ValidName(name) {
		return errs.ErrInvalidBranchName
	}
	if s.Exists(name) {
		return errs.ErrBranchExists
	}
	if s.fs.IsDir(s.path(name)) {
		// a namespace like "origin" when "origin/master" exists
		return errs.ErrInvalidBranchName
	}
	return s.write(name, id)
}

// Move repoints an existing branch.
func (s *Store) Move(name string, id object.ID) error {
	if !s.Exists(name) {
		return errs.ErrBranchNotExist
	}
	return s.write(name, id)
}

// Set creates or moves a branch.
func (s *Store) Set(name string, id object.ID) error {
	if s.Exists(name) {
		return s.write(name, id)
	}
	return s.Create(name, id)
}

// Delete removes a branch that is not active. Empty namespace directories
// left behind are pruned.
func (s *Store) Delete(name string) error {
	if !s.Exists(name) {
		return errs.ErrBranchNotExist
	}
	head, err := s.Head()
	if err != nil {
		return err
	}
	if head == name {
		return errs.ErrRemoveCurrent
	}
	if err := s.fs.Remove(s.path(name)); err != nil {
		return fmt.Errorf("remove branch %q: %w", name, err)
	}
	for dir := filepath.Dir(s.path(name)); dir != filepath.Clean(s.dir); dir = filepath.Dir(dir) {
		if entries, err := s.fs.ReadDir(dir); err != nil || len(entries) > 0 {
			break
		}
		if err := s.fs.Remove(dir); err != nil {
			break
		}
	}
	return nil
}

// List returns all branches sorted by name.
func (s *Store) List() ([]Branch, error) {
	var names []string
	if err := s.walk(s.dir, "", &names); err != nil {
		return nil, err
	}
	sort.Strings(names)

	branches := make([]Branch, 0, len(names))
	for _, n := range names {
		b, err := s.Branch(n)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, nil
}

func (s *Store) walk(dir, prefix string, out *[]string) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read branches directory %q: %w", dir, err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			continue
		}
		name := e.Name()
		if prefix != "" {
			name = prefix + "/" + name
		}
		if e.IsDir() {
			if err := s.walk(filepath.Join(dir, e.Name()), name, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, name)
	}
	return nil
}

// Head returns the name of the active branch.
func (s *Store) Head() (string, error) {
	data, err := s.fs.ReadFile(s.headFile)
	if err != nil {
		return "", fmt.Errorf("read HEAD %q: %w", s.headFile, err)
	}
	content := strings.TrimSpace(string(data))
	if !strings.HasPrefix(content, headPrefix) {
		return "", fmt.Errorf("invalid HEAD content: %q", content)
	}
	return strings.TrimPrefix(content, headPrefix), nil
}

// SetHead makes name the active branch.
func (s *Store) SetHead(name string) error {
	if !s.Exists(name) {
		return errs.ErrNoSuchBranch
	}
	if err := fs.WriteFileAtomic(s.fs, s.headFile, []byte(headPrefix+name), 0o644); err != nil {
		return fmt.Errorf("write HEAD %q: %w", s.headFile, err)
	}
	return nil
}

// ResolveHead follows HEAD to the active branch and its commit.
func (s *Store) ResolveHead() (Branch, error) {
	name, err := s.Head()
	if err != nil {
		return Branch{}, err
	}
	b, err := s.Branch(name)
	if err != nil {
		return Branch{}, fmt.Errorf("HEAD names missing branch %q: %w", name, err)
	}
	return b, nil
}
