package repo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/config"
	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/fs"
	"github.com/keshon/tvc/internal/graph"
	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/refs"
	"github.com/keshon/tvc/internal/staging"
	"github.com/keshon/tvc/internal/worktree"
)

// Repository represents an initialized repository.
type Repository struct {
	FS       fs.FS
	Config   *config.RepoConfig
	Settings *config.Settings
	Objects  *object.Store
	Refs     *refs.Store
	Tree     *worktree.Tree
	Graph    *graph.Graph

	// Cwd is where relative path arguments are resolved from. It defaults
	// to the working tree root.
	Cwd string
	// Now stamps new commits.
	Now func() time.Time
}

// State is what every operation starts from: the active branch, its head
// commit, and the staging index.
type State struct {
	Branch string
	HeadID object.ID
	Head   *object.Commit
	Index  *staging.Index
}

// Init creates a repository in workingTree with the root commit on the
// default branch.
func Init(fsys fs.FS, workingTree, hash string) (*Repository, error) {
	if hash == "" {
		hash = config.DefaultHash
	}
	cfg := config.NewRepoConfig(workingTree)
	if fsys.IsDir(cfg.RepoDir()) {
		return nil, errs.ErrAlreadyInit
	}

	for _, d := range []string{cfg.RepoDir(), cfg.ObjectsDir(), cfg.BranchesDir()} {
		if err := fsys.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %q: %w", d, err)
		}
	}

	settings, err := config.LoadSettings(fsys, cfg.SettingsFile())
	if err != nil {
		return nil, err
	}
	settings.SetHash(hash)
	settings.SetDefaultBranch(config.DefaultBranch)
	settings.SetPulled(false)
	if err := settings.Save(); err != nil {
		return nil, err
	}

	objects, err := object.NewStore(fsys, cfg.ObjectsDir(), hash)
	if err != nil {
		return nil, err
	}
	root, err := objects.PutCommit(object.RootCommit())
	if err != nil {
		return nil, fmt.Errorf("write root commit: %w", err)
	}

	branches := refs.NewStore(fsys, cfg.BranchesDir(), cfg.HeadFile())
	if err := branches.Create(settings.DefaultBranch(), root); err != nil {
		return nil, err
	}
	if err := branches.SetHead(settings.DefaultBranch()); err != nil {
		return nil, err
	}

	idx, err := staging.Load(fsys, cfg.IndexFile())
	if err != nil {
		return nil, err
	}
	if err := idx.Save(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"dir": cfg.RepoDir(), "hash": hash, "root": root}).Debug("repository initialized")
	return Open(fsys, workingTree)
}

// Open opens the repository whose working tree root is workingTree.
func Open(fsys fs.FS, workingTree string) (*Repository, error) {
	cfg := config.NewRepoConfig(workingTree)
	if !fsys.IsDir(cfg.RepoDir()) {
		return nil, errs.ErrNotInitialized
	}

	settings, err := config.LoadSettings(fsys, cfg.SettingsFile())
	if err != nil {
		return nil, err
	}
	objects, err := object.NewStore(fsys, cfg.ObjectsDir(), settings.Hash())
	if err != nil {
		return nil, fmt.Errorf("open object store: %w", err)
	}
	tree, err := worktree.New(fsys, cfg)
	if err != nil {
		return nil, err
	}

	return &Repository{
		FS:       fsys,
		Config:   cfg,
		Settings: settings,
		Objects:  objects,
		Refs:     refs.NewStore(fsys, cfg.BranchesDir(), cfg.HeadFile()),
		Tree:     tree,
		Graph:    graph.New(objects),
		Cwd:      cfg.WorkingTree,
		Now:      time.Now,
	}, nil
}

// State loads the active branch, its head commit, and the index.
func (r *Repository) State() (*State, error) {
	head, err := r.Refs.ResolveHead()
	if err != nil {
		return nil, err
	}
	c, err := r.Objects.GetCommit(head.Head)
	if err != nil {
		return nil, fmt.Errorf("load head commit %s: %w", head.Head, err)
	}
	idx, err := staging.Load(r.FS, r.Config.IndexFile())
	if err != nil {
		return nil, err
	}
	return &State{Branch: head.Name, HeadID: head.Head, Head: c, Index: idx}, nil
}

// Rel turns a path argument into a working tree path. Relative arguments
// are taken from r.Cwd.
func (r *Repository) Rel(arg string) (string, error) {
	p := filepath.FromSlash(arg)
	if !filepath.IsAbs(p) {
		p = filepath.Join(r.Cwd, p)
	}
	rel, err := filepath.Rel(r.Config.WorkingTree, filepath.Clean(p))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errs.ErrFileNotExist
	}
	return filepath.ToSlash(rel), nil
}

// readBlob returns the bytes of a blob.
func (r *Repository) readBlob(id object.ID) ([]byte, error) {
	data, err := r.Objects.Get(id)
	if err != nil {
		return nil, fmt.Errorf("load blob: %w", err)
	}
	return data, nil
}
