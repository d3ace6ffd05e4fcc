package worktree_test

import (
	"strings"
	"testing"

	"github.com/keshon/tvc/internal/config"
	"github.com/keshon/tvc/internal/fs"
	"github.com/keshon/tvc/internal/worktree"
)

func newTree(t *testing.T, files map[string]string) (*worktree.Tree, *fs.MemoryFS) {
	t.Helper()
	m := fs.NewMemoryFS()
	cfg := config.NewRepoConfig("/w")
	m.MkdirAll(cfg.ObjectsDir(), 0o755)
	for p, c := range files {
		full := cfg.WorkPath(p)
		m.MkdirAll(full[:strings.LastIndex(full, "/")], 0o755)
		if err := m.WriteFile(full, []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	tree, err := worktree.New(m, cfg)
	if err != nil {
		t.Fatal(err)
	}
	return tree, m
}

func TestScanSkipsRepoDirAndIgnored(t *testing.T) {
	tree, _ := newTree(t, map[string]string{
		"a.txt":       "a",
		"dir/b.txt":   "b",
		"dir/c.log":   "c",
		"tmp/x":       "x",
		".tvcignore":  "*.log\ndir/*.log\ntmp/\n",
		".tvc/config": "",
	})

	got, err := tree.Scan()
	if err != nil {
		t.Fatal(err)
	}
	want := ".tvcignore,a.txt,dir/b.txt"
	if strings.Join(got, ",") != want {
		t.Fatalf("got %v, want %s", got, want)
	}
}

func TestWriteReadRemove(t *testing.T) {
	tree, m := newTree(t, nil)

	if err := tree.Write("x/y/z.txt", []byte("deep")); err != nil {
		t.Fatal(err)
	}
	if !tree.Exists("x/y/z.txt") || tree.Exists("x/y") {
		t.Fatal("Exists mismatch")
	}
	data, err := tree.Read("x/y/z.txt")
	if err != nil || string(data) != "deep" {
		t.Fatalf("Read: %q, %v", data, err)
	}

	if err := tree.Remove("x/y/z.txt"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("/w/x") {
		t.Fatal("empty parent directories not pruned")
	}
	if !m.IsDir("/w") {
		t.Fatal("working tree root removed")
	}
	if err := tree.Remove("never-there"); err != nil {
		t.Fatalf("removing a missing file: %v", err)
	}
}
