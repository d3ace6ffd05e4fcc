package config

import (
	"path/filepath"
)

const (
	RepoDir      = ".tvc"
	ObjectsDir   = "objects"
	BranchesDir  = "branches"
	HeadFile     = "HEAD"
	IndexFile    = "index.json"
	SettingsFile = "config"
	IgnoreFile   = ".tvcignore"
)

const (
	DefaultBranch = "master"
	DefaultHash   = "sha2-256"
)

// RepoConfig locates every file of one repository. WorkingTree is the
// directory that contains RepoDir.
type RepoConfig struct {
	WorkingTree string
}

func NewRepoConfig(workingTree string) *RepoConfig {
	return &RepoConfig{WorkingTree: filepath.Clean(workingTree)}
}

func (c *RepoConfig) RepoDir() string      { return filepath.Join(c.WorkingTree, RepoDir) }
func (c *RepoConfig) ObjectsDir() string   { return filepath.Join(c.RepoDir(), ObjectsDir) }
func (c *RepoConfig) BranchesDir() string  { return filepath.Join(c.RepoDir(), BranchesDir) }
func (c *RepoConfig) HeadFile() string     { return filepath.Join(c.RepoDir(), HeadFile) }
func (c *RepoConfig) IndexFile() string    { return filepath.Join(c.RepoDir(), IndexFile) }
func (c *RepoConfig) SettingsFile() string { return filepath.Join(c.RepoDir(), SettingsFile) }
func (c *RepoConfig) IgnoreFile() string   { return filepath.Join(c.WorkingTree, IgnoreFile) }

// WorkPath maps a slash-separated repository path to its location on disk.
func (c *RepoConfig) WorkPath(rel string) string {
	return filepath.Join(c.WorkingTree, filepath.FromSlash(rel))
}
