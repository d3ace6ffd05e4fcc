package object

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	gocid "github.com/ipfs/go-cid"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/fs"
)

// Store manages CID-addressed immutable objects, one file per object.
type Store struct {
	fs  fs.FS
	dir string
	h   hasher
}

// NewStore opens the object directory dir. hashName selects the multihash
// function for new objects (e.g. "sha2-256", "blake3").
func NewStore(fsys fs.FS, dir, hashName string) (*Store, error) {
	h, err := newHasher(hashName)
	if err != nil {
		return nil, err
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create objects dir: %w", err)
	}
	return &Store{fs: fsys, dir: dir, h: h}, nil
}

func (s *Store) path(id ID) string {
	return filepath.Join(s.dir, string(id))
}

// Sum returns the blob id of data without storing it.
func (s *Store) Sum(data []byte) (ID, error) {
	return s.h.sum(gocid.Raw, data)
}

// Put stores data as a blob. Storing existing content is a no-op.
func (s *Store) Put(data []byte) (ID, error) {
	id, err := s.Sum(data)
	if err != nil {
		return "", err
	}
	return id, s.write(id, data)
}

// PutCommit serializes c canonically and stores it.
func (s *Store) PutCommit(c *Commit) (ID, error) {
	if c.Tracking == nil {
		c.Tracking = map[string]Entry{}
	}
	data, err := CanonicalJSON(c)
	if err != nil {
		return "", fmt.Errorf("encode commit: %w", err)
	}
	id, err := s.h.sum(gocid.DagJSON, data)
	if err != nil {
		return "", err
	}
	return id, s.write(id, data)
}

func (s *Store) write(id ID, data []byte) error {
	if s.Has(id) {
		return nil
	}
	if err := fs.WriteFileAtomic(s.fs, s.path(id), data, 0o644); err != nil {
		return fmt.Errorf("write object %s: %w", id, err)
	}
	return nil
}

// Has checks if an object exists.
func (s *Store) Has(id ID) bool {
	return id != "" && s.fs.Exists(s.path(id))
}

// Get reads an object by id. A missing object yields errs.ErrNoSuchObject.
func (s *Store) Get(id ID) ([]byte, error) {
	data, err := s.fs.ReadFile(s.path(id))
	if err != nil {
		if s.fs.IsNotExist(err) {
			return nil, errs.ErrNoSuchObject
		}
		return nil, fmt.Errorf("read object %s: %w", id, err)
	}
	return data, nil
}

// GetCommit reads and decodes a commit. Unknown or non-commit ids yield
// errs.ErrNoSuchCommit.
func (s *Store) GetCommit(id ID) (*Commit, error) {
	if !id.IsCommit() || !s.Has(id) {
		return nil, errs.ErrNoSuchCommit
	}
	data, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode commit %s: %w", id, err)
	}
	if c.Tracking == nil {
		c.Tracking = map[string]Entry{}
	}
	return &c, nil
}

// All lists every stored object id in order.
func (s *Store) All() ([]ID, error) {
	entries, err := s.fs.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read objects dir %q: %w", s.dir, err)
	}
	ids := make([]ID, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ids = append(ids, ID(e.Name()))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Commits lists every stored commit id in order.
func (s *Store) Commits() ([]ID, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	var out []ID
	for _, id := range all {
		if id.IsCommit() {
			out = append(out, id)
		}
	}
	return out, nil
}

// ResolveCommit expands a full or abbreviated commit id. An abbreviation
// is a prefix of either the id text or its digest hex and must match
// exactly one commit.
func (s *Store) ResolveCommit(ref string) (ID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errs.ErrNoSuchCommit
	}
	if id := ID(ref); id.IsCommit() && s.Has(id) {
		return id, nil
	}

	commits, err := s.Commits()
	if err != nil {
		return "", err
	}
	var match ID
	for _, id := range commits {
		if !strings.HasPrefix(string(id), ref) && !strings.HasPrefix(id.Digest(), strings.ToLower(ref)) {
			continue
		}
		if match != "" && match != id {
			return "", errs.ErrNoSuchCommit
		}
		match = id
	}
	if match == "" {
		return "", errs.ErrNoSuchCommit
	}
	return match, nil
}

// Verify re-hashes the stored bytes of id and reports whether they still
// match it.
func (s *Store) Verify(id ID) (bool, error) {
	data, err := s.Get(id)
	if err != nil {
		return false, err
	}
	return check(id, data)
}

// CopyTo copies the listed objects missing from dst. It returns how many
// were written.
func (s *Store) CopyTo(dst *Store, ids []ID) (int, error) {
	n := 0
	for _, id := range ids {
		if dst.Has(id) {
			continue
		}
		data, err := s.Get(id)
		if err != nil {
			return n, err
		}
		if err := dst.write(id, data); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Restore overwrites the stored record of id with data, which must hash to
// id. It repairs objects Verify reports as damaged.
func (s *Store) Restore(id ID, data []byte) error {
	ok, err := check(id, data)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("restore %s: content does not match id", id)
	}
	if err := fs.WriteFileAtomic(s.fs, s.path(id), data, 0o644); err != nil {
		return fmt.Errorf("write object %s: %w", id, err)
	}
	return nil
}
