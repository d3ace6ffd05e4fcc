package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/keshon/tvc/internal/fs"
)

func TestOSFS_ReadFileMapped(t *testing.T) {
	dir := t.TempDir()
	osfs := fs.NewOSFS()

	p := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(p, []byte("mapped"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := osfs.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "mapped" {
		t.Fatalf("expected %q, got %q", "mapped", data)
	}

	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	data, err = osfs.ReadFile(empty)
	if err != nil {
		t.Fatalf("read empty file: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty content, got %q", data)
	}

	if _, err := osfs.ReadFile(filepath.Join(dir, "missing")); !osfs.IsNotExist(err) {
		t.Fatalf("expected not-exist, got %v", err)
	}
}

func TestOSFS_WriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	osfs := fs.NewOSFS()

	target := filepath.Join(dir, "nested", "index.json")
	if err := fs.WriteFileAtomic(osfs, target, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !osfs.Exists(target) || osfs.IsDir(target) {
		t.Fatal("expected regular file at target")
	}

	entries, err := osfs.ReadDir(filepath.Dir(target))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, got %d entries", len(entries))
	}
}

func TestOSFS_RenameHookFailure(t *testing.T) {
	dir := t.TempDir()
	osfs := fs.NewOSFS()

	orig := fs.GetRename()
	defer fs.SetRename(orig)
	fs.SetRename(func(string, string) error { return errors.New("boom") })

	target := filepath.Join(dir, "f")
	if err := fs.WriteFileAtomic(osfs, target, []byte("x"), 0o644); err == nil {
		t.Fatal("expected rename failure to surface")
	}
	entries, _ := osfs.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("temp file not cleaned up: %d entries", len(entries))
	}
}

func TestOSFS_ReadFileMissing(t *testing.T) {
	osfs := fs.NewOSFS()
	_, err := osfs.ReadFile(filepath.Join(t.TempDir(), "absent"))
	if err == nil || !osfs.IsNotExist(err) {
		t.Fatalf("expected a not-exist error from the mapped read, got %v", err)
	}
}
