package fs_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/keshon/tvc/internal/fs"
)

func TestMemoryFS_WriteReadFile(t *testing.T) {
	m := fs.NewMemoryFS()

	if err := m.MkdirAll("dir/sub", 0o755); err != nil {
		t.Fatal(err)
	}

	content := []byte("hello world")
	if err := m.WriteFile("dir/sub/file.txt", content, 0o644); err != nil {
		t.Fatal(err)
	}

	read, err := m.ReadFile("dir/sub/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(read, content) {
		t.Fatalf("expected %q, got %q", content, read)
	}

	// returned slice must not alias the stored file
	read[0] = 'H'
	again, _ := m.ReadFile("dir/sub/file.txt")
	if again[0] != 'h' {
		t.Fatal("ReadFile result aliases internal storage")
	}
}

func TestMemoryFS_AbsolutePaths(t *testing.T) {
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("/work/repo", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteFile("/work/repo/a.txt", []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !m.IsDir("/work") || m.IsDir("work") {
		t.Fatal("absolute directory recorded under the wrong name")
	}

	entries, err := m.ReadDir("/work/repo")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.txt" {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestMemoryFS_WriteFileNonExistentDir(t *testing.T) {
	m := fs.NewMemoryFS()
	err := m.WriteFile("nope/file.txt", []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error writing to non-existent dir")
	}
}

func TestMemoryFS_Remove(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("d", 0o755)
	m.WriteFile("d/f", []byte("x"), 0o644)

	if err := m.Remove("d"); err == nil {
		t.Fatal("expected error removing non-empty dir")
	}

	if err := m.Remove("d/f"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("d/f") {
		t.Fatal("file should be removed")
	}
	if err := m.Remove("d"); err != nil {
		t.Fatalf("remove empty dir: %v", err)
	}

	if err := m.Remove("missing"); !errors.Is(err, os.ErrNotExist) || !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_Rename(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("dir/sub", 0o755)
	m.WriteFile("dir/f", []byte("data"), 0o644)

	if err := m.Rename("dir/f", "dir/sub/f2"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("dir/f") || !m.Exists("dir/sub/f2") {
		t.Fatal("file rename failed")
	}

	if err := m.Rename("nope", "new"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_StatAndIsDir(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("a/b", 0o755)
	m.WriteFile("a/b/f.txt", []byte("xyz"), 0o644)

	info, err := m.Stat("a/b/f.txt")
	if err != nil || info.IsDir() || info.Size() != 3 {
		t.Fatalf("unexpected file info %v, %v", info, err)
	}

	dirInfo, err := m.Stat("a/b")
	if err != nil || !dirInfo.IsDir() || !dirInfo.Mode().IsDir() {
		t.Fatal("expected dir info")
	}

	if !m.IsDir("a/b") || m.IsDir("a/b/f.txt") {
		t.Fatal("IsDir mismatch")
	}

	if _, err := m.Stat("missing"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_ReadDirSorted(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("root/b", 0o755)
	m.MkdirAll("root/a", 0o755)
	m.WriteFile("root/f1.txt", []byte("x"), 0o644)
	m.WriteFile("root/a/f2.txt", []byte("y"), 0o644)

	entries, err := m.ReadDir("root")
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		name string
		dir  bool
	}{{"a", true}, {"b", true}, {"f1.txt", false}}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, w := range want {
		if entries[i].Name() != w.name || entries[i].IsDir() != w.dir {
			t.Errorf("entry %d: expected %s (dir=%v), got %s (dir=%v)",
				i, w.name, w.dir, entries[i].Name(), entries[i].IsDir())
		}
	}

	if _, err := m.ReadDir("missing"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_CreateTempFile(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("tmp", 0o755)

	wc, name, err := m.CreateTempFile("tmp", ".tmp-*")
	if err != nil {
		t.Fatal(err)
	}
	_, other, err := m.CreateTempFile("tmp", ".tmp-*")
	if err != nil {
		t.Fatal(err)
	}
	if name == other {
		t.Fatalf("temp names collide: %s", name)
	}

	data := []byte("abc")
	if _, err := wc.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := wc.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := wc.Write(data); err == nil {
		t.Fatal("expected write after close to fail")
	}

	read, err := m.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(read, data) {
		t.Fatalf("expected %q, got %q", data, read)
	}
}

func TestMemoryFS_PathNormalization(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("a/b", 0o755)
	m.WriteFile("a/b/f", []byte("x"), 0o644)

	if !m.Exists("a/./b/../b/f") {
		t.Fatal("path normalization failed")
	}
	if !m.IsDir("a/./b/../b") {
		t.Fatal("path normalization failed for dir")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	m := fs.NewMemoryFS()

	if err := fs.WriteFileAtomic(m, "/repo/.tvc/HEAD", []byte("ref: branches/master"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := m.ReadFile("/repo/.tvc/HEAD")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ref: branches/master" {
		t.Fatalf("unexpected content %q", got)
	}

	entries, _ := m.ReadDir("/repo/.tvc")
	if len(entries) != 1 {
		t.Fatalf("temp file left behind: %v", entries)
	}
}
