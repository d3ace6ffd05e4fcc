package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/keshon/tvc/internal/config"
	"github.com/keshon/tvc/internal/fs"
)

func TestRepoConfigPaths(t *testing.T) {
	cfg := config.NewRepoConfig("/work/proj/")

	cases := map[string]string{
		cfg.RepoDir():      filepath.Join("/work/proj", ".tvc"),
		cfg.ObjectsDir():   filepath.Join("/work/proj", ".tvc", "objects"),
		cfg.BranchesDir():  filepath.Join("/work/proj", ".tvc", "branches"),
		cfg.HeadFile():     filepath.Join("/work/proj", ".tvc", "HEAD"),
		cfg.IndexFile():    filepath.Join("/work/proj", ".tvc", "index.json"),
		cfg.SettingsFile(): filepath.Join("/work/proj", ".tvc", "config"),
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	if got := cfg.WorkPath("a/b.txt"); got != filepath.Join("/work/proj", "a", "b.txt") {
		t.Errorf("WorkPath: got %q", got)
	}
}

func TestResolveWorkingTreeRoot(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("/work/proj/.tvc", 0o755)
	m.MkdirAll("/work/proj/src/deep", 0o755)
	m.MkdirAll("/elsewhere", 0o755)

	if got := config.ResolveWorkingTreeRoot(m, "/work/proj/src/deep"); got != "/work/proj" {
		t.Fatalf("got %q, want /work/proj", got)
	}
	if got := config.ResolveWorkingTreeRoot(m, "/elsewhere"); got != "" {
		t.Fatalf("expected no root, got %q", got)
	}
}

func TestSettingsDefaults(t *testing.T) {
	m := fs.NewMemoryFS()
	s, err := config.LoadSettings(m, "/r/.tvc/config")
	if err != nil {
		t.Fatal(err)
	}
	if s.Hash() != config.DefaultHash {
		t.Errorf("hash: got %q, want %q", s.Hash(), config.DefaultHash)
	}
	if s.DefaultBranch() != config.DefaultBranch {
		t.Errorf("default branch: got %q", s.DefaultBranch())
	}
	if s.Pulled() {
		t.Error("pull gate should start closed")
	}
	if len(s.Remotes()) != 0 {
		t.Errorf("unexpected remotes %v", s.Remotes())
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	m := fs.NewMemoryFS()
	path := "/r/.tvc/config"

	s, _ := config.LoadSettings(m, path)
	s.SetHash("blake3")
	if !s.AddRemote("origin", "../other/.tvc") {
		t.Fatal("AddRemote reported a duplicate")
	}
	if s.AddRemote("origin", "/x") {
		t.Fatal("AddRemote accepted a duplicate name")
	}
	s.AddRemote("backup", "/mnt/b/.tvc")
	s.SetPulled(true)
	if err := s.Save(); err != nil {
		t.Fatal(err)
	}

	raw, _ := m.ReadFile(path)
	if !strings.Contains(string(raw), `[remote "origin"]`) {
		t.Fatalf("remote section missing from file:\n%s", raw)
	}

	s2, err := config.LoadSettings(m, path)
	if err != nil {
		t.Fatal(err)
	}
	if s2.Hash() != "blake3" {
		t.Errorf("hash: got %q", s2.Hash())
	}
	if p, ok := s2.Remote("origin"); !ok || p != "../other/.tvc" {
		t.Errorf("origin: got %q, %v", p, ok)
	}
	if got := strings.Join(s2.Remotes(), ","); got != "backup,origin" {
		t.Errorf("remotes: got %q", got)
	}
	if !s2.Pulled() {
		t.Error("pull gate lost on reload")
	}

	if !s2.RemoveRemote("origin") || s2.RemoveRemote("origin") {
		t.Error("RemoveRemote should succeed exactly once")
	}
	if _, ok := s2.Remote("origin"); ok {
		t.Error("removed remote still resolves")
	}
}
