package staging

import (
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/keshon/tvc/internal/fs"
	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/util"
)

// Fingerprint identifies file bytes cheaply, without touching the object
// store.
type Fingerprint struct {
	Size int64  `json:"size"`
	Sum  string `json:"xxh3"`
}

// FingerprintOf hashes data with xxh3-128.
func FingerprintOf(data []byte) Fingerprint {
	return Fingerprint{
		Size: int64(len(data)),
		Sum:  fmt.Sprintf("%x", xxh3.Hash128(data).Bytes()),
	}
}

// Staged is a pending addition: the stored blob and the fingerprint of its
// bytes.
type Staged struct {
	Blob object.ID `json:"blob"`
	Fingerprint
}

// Index holds the pending add and remove sets relative to HEAD. A path is
// never in both.
type Index struct {
	Add    map[string]Staged    `json:"add"`
	Remove map[string]object.ID `json:"remove"`

	fs   fs.FS
	path string
}

// Load reads the index at path. A missing file is an empty index.
func Load(fsys fs.FS, path string) (*Index, error) {
	idx := &Index{
		Add:    map[string]Staged{},
		Remove: map[string]object.ID{},
		fs:     fsys,
		path:   path,
	}

	if err := util.ReadJSON(fsys, path, idx); err != nil {
		if fsys.IsNotExist(err) {
			return idx, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}
	if idx.Add == nil {
		idx.Add = map[string]Staged{}
	}
	if idx.Remove == nil {
		idx.Remove = map[string]object.ID{}
	}
	return idx, nil
}

// Save writes the index atomically.
func (idx *Index) Save() error {
	if err := util.WriteJSON(idx.fs, idx.path, idx); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// Clear empties both sets and persists the result.
func (idx *Index) Clear() error {
	idx.Add = map[string]Staged{}
	idx.Remove = map[string]object.ID{}
	return idx.Save()
}

func (idx *Index) IsEmpty() bool {
	return len(idx.Add) == 0 && len(idx.Remove) == 0
}

// StageAdd records path for addition and drops any pending removal.
func (idx *Index) StageAdd(path string, s Staged) {
	delete(idx.Remove, path)
	idx.Add[path] = s
}

// StageRemove records path for removal with the blob it tracked and drops
// any pending addition.
func (idx *Index) StageRemove(path string, tracked object.ID) {
	delete(idx.Add, path)
	idx.Remove[path] = tracked
}

// Unstage forgets any pending change to path.
func (idx *Index) Unstage(path string) {
	delete(idx.Add, path)
	delete(idx.Remove, path)
}

func (idx *Index) Added(path string) (Staged, bool) {
	s, ok := idx.Add[path]
	return s, ok
}

func (idx *Index) Removed(path string) bool {
	_, ok := idx.Remove[path]
	return ok
}

// AddedPaths lists staged additions in order.
func (idx *Index) AddedPaths() []string { return util.SortedKeys(idx.Add) }

// RemovedPaths lists staged removals in order.
func (idx *Index) RemovedPaths() []string { return util.SortedKeys(idx.Remove) }

// Apply overlays the pending changes on a tracking map and returns the
// result. base is not modified.
func (idx *Index) Apply(base map[string]object.Entry) map[string]object.Entry {
	out := make(map[string]object.Entry, len(base)+len(idx.Add))
	for p, e := range base {
		out[p] = e
	}
	for p, s := range idx.Add {
		out[p] = object.BlobEntry(s.Blob)
	}
	for p := range idx.Remove {
		delete(out, p)
	}
	return out
}
