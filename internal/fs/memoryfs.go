package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// MemoryFS is a pure in-memory filesystem for tests or lightweight storage.
type MemoryFS struct {
	files  map[string][]byte
	dirs   map[string]struct{}
	tmpSeq int
}

func NewMemoryFS() *MemoryFS {
	f := &MemoryFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]struct{}),
	}
	f.dirs["/"] = struct{}{}
	f.dirs["."] = struct{}{}
	return f
}

// normalize paths
func clean(p string) string {
	if p == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(p))
}

func isRoot(p string) bool { return p == "/" || p == "." }

func (f *MemoryFS) ensureDirExists(p string) error {
	if _, ok := f.dirs[clean(p)]; !ok {
		return fs.ErrNotExist
	}
	return nil
}

func (f *MemoryFS) ReadFile(p string) ([]byte, error) {
	data, ok := f.files[clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: p, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (f *MemoryFS) WriteFile(p string, data []byte, perm os.FileMode) error {
	p = clean(p)
	if _, ok := f.dirs[p]; ok {
		return &fs.PathError{Op: "write", Path: p, Err: errors.New("is a directory")}
	}
	if err := f.ensureDirExists(path.Dir(p)); err != nil {
		return &fs.PathError{Op: "write", Path: p, Err: err}
	}
	f.files[p] = append([]byte(nil), data...)
	return nil
}

func (f *MemoryFS) MkdirAll(p string, perm os.FileMode) error {
	for d := clean(p); !isRoot(d); d = path.Dir(d) {
		if _, ok := f.files[d]; ok {
			return &fs.PathError{Op: "mkdir", Path: d, Err: errors.New("not a directory")}
		}
		f.dirs[d] = struct{}{}
	}
	return nil
}

func (f *MemoryFS) Remove(p string) error {
	p = clean(p)
	if _, ok := f.files[p]; ok {
		delete(f.files, p)
		return nil
	}
	if _, ok := f.dirs[p]; ok && !isRoot(p) {
		if len(f.children(p)) > 0 {
			return &fs.PathError{Op: "remove", Path: p, Err: errors.New("directory not empty")}
		}
		delete(f.dirs, p)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: p, Err: fs.ErrNotExist}
}

func (f *MemoryFS) Rename(oldp, newp string) error {
	oldp, newp = clean(oldp), clean(newp)

	data, ok := f.files[oldp]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldp, Err: fs.ErrNotExist}
	}
	if err := f.ensureDirExists(path.Dir(newp)); err != nil {
		return &fs.PathError{Op: "rename", Path: newp, Err: err}
	}
	delete(f.files, oldp)
	f.files[newp] = data
	return nil
}

func (f *MemoryFS) Stat(p string) (os.FileInfo, error) {
	p = clean(p)
	if data, ok := f.files[p]; ok {
		return &fakeInfo{name: path.Base(p), size: int64(len(data))}, nil
	}
	if _, ok := f.dirs[p]; ok {
		return &fakeInfo{name: path.Base(p), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// children lists the direct entries of dir p, sorted by name.
func (f *MemoryFS) children(p string) []os.DirEntry {
	var out []os.DirEntry
	for d := range f.dirs {
		if !isRoot(d) && d != p && path.Dir(d) == p {
			out = append(out, fakeDirEntry{name: path.Base(d), isDir: true})
		}
	}
	for fp := range f.files {
		if path.Dir(fp) == p {
			out = append(out, fakeDirEntry{name: path.Base(fp)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

func (f *MemoryFS) ReadDir(p string) ([]os.DirEntry, error) {
	p = clean(p)
	if _, ok := f.dirs[p]; !ok {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrNotExist}
	}
	return f.children(p), nil
}

func (f *MemoryFS) CreateTempFile(dir, pattern string) (io.WriteCloser, string, error) {
	if err := f.ensureDirExists(dir); err != nil {
		return nil, "", &fs.PathError{Op: "createtemp", Path: dir, Err: err}
	}

	f.tmpSeq++
	name := strings.Replace(pattern, "*", strconv.Itoa(f.tmpSeq), 1)
	if name == pattern {
		name = pattern + strconv.Itoa(f.tmpSeq)
	}
	tmpName := path.Join(clean(dir), name)
	f.files[tmpName] = nil

	buf := &bytes.Buffer{}
	wc := &memWriteCloser{
		buf: buf,
		onClose: func() {
			f.files[tmpName] = buf.Bytes()
		},
	}
	return wc, tmpName, nil
}

type memWriteCloser struct {
	buf     *bytes.Buffer
	onClose func()
	closed  bool
}

func (m *memWriteCloser) Write(p []byte) (int, error) {
	if m.closed {
		return 0, fs.ErrClosed
	}
	return m.buf.Write(p)
}

func (m *memWriteCloser) Close() error {
	if m.closed {
		return fmt.Errorf("close: %w", fs.ErrClosed)
	}
	m.closed = true
	if m.onClose != nil {
		m.onClose()
	}
	return nil
}

func (f *MemoryFS) IsNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }

func (f *MemoryFS) IsDir(p string) bool {
	_, ok := f.dirs[clean(p)]
	return ok
}

func (f *MemoryFS) Exists(p string) bool {
	p = clean(p)
	_, f1 := f.files[p]
	_, d1 := f.dirs[p]
	return f1 || d1
}

// Helpers

type fakeInfo struct {
	name string
	size int64
	dir  bool
}

func (f *fakeInfo) Name() string { return f.name }
func (f *fakeInfo) Size() int64  { return f.size }
func (f *fakeInfo) Mode() fs.FileMode {
	if f.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (f *fakeInfo) ModTime() time.Time { return time.Time{} }
func (f *fakeInfo) IsDir() bool        { return f.dir }
func (f *fakeInfo) Sys() interface{}   { return nil }

type fakeDirEntry struct {
	name  string
	isDir bool
}

func (d fakeDirEntry) Name() string { return d.name }
func (d fakeDirEntry) IsDir() bool  { return d.isDir }
func (d fakeDirEntry) Type() fs.FileMode {
	if d.isDir {
		return fs.ModeDir
	}
	return 0
}
func (d fakeDirEntry) Info() (os.FileInfo, error) { return &fakeInfo{name: d.name, dir: d.isDir}, nil }
