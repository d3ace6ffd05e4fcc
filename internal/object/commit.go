package object

import (
	"fmt"
	"time"

	"github.com/keshon/tvc/internal/util"
)

// EntryKind tags what a tracking entry points at.
type EntryKind int

const (
	Blob EntryKind = iota
	Tree
)

func (k EntryKind) String() string {
	switch k {
	case Blob:
		return "blob"
	case Tree:
		return "tree"
	}
	return fmt.Sprintf("EntryKind(%d)", int(k))
}

func (k EntryKind) MarshalText() ([]byte, error) {
	switch k {
	case Blob, Tree:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown entry kind %d", int(k))
}

func (k *EntryKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "blob":
		*k = Blob
	case "tree":
		*k = Tree
	default:
		return fmt.Errorf("unknown entry kind %q", b)
	}
	return nil
}

// Entry is one tracked path of a commit. Only Blob entries are written
// today; Tree is reserved for directory entries.
type Entry struct {
	Kind EntryKind `json:"kind"`
	ID   ID        `json:"id"`
}

func BlobEntry(id ID) Entry { return Entry{Kind: Blob, ID: id} }

// Commit is an immutable snapshot of the tracked tree.
type Commit struct {
	Message     string           `json:"message"`
	Timestamp   time.Time        `json:"timestamp"`
	Parent      ID               `json:"parent,omitempty"`
	MergeParent ID               `json:"mergeParent,omitempty"`
	Tracking    map[string]Entry `json:"tracking"`
}

// RootCommit is the commit every repository starts from. Its fixed epoch
// timestamp gives it the same id in every repository.
func RootCommit() *Commit {
	return &Commit{
		Message:   "initial commit",
		Timestamp: time.Unix(0, 0).UTC(),
		Tracking:  map[string]Entry{},
	}
}

func (c *Commit) IsMerge() bool { return c.MergeParent != "" }

// Parents returns the primary parent first.
func (c *Commit) Parents() []ID {
	var ps []ID
	if c.Parent != "" {
		ps = append(ps, c.Parent)
	}
	if c.MergeParent != "" {
		ps = append(ps, c.MergeParent)
	}
	return ps
}

// BlobOf returns the blob tracked at path.
func (c *Commit) BlobOf(path string) (ID, bool) {
	e, ok := c.Tracking[path]
	if !ok || e.Kind != Blob {
		return "", false
	}
	return e.ID, true
}

func (c *Commit) Tracks(path string) bool {
	_, ok := c.Tracking[path]
	return ok
}

// Paths returns the tracked paths in order.
func (c *Commit) Paths() []string {
	return util.SortedKeys(c.Tracking)
}

// CloneTracking returns a copy of the tracking map safe to modify.
func (c *Commit) CloneTracking() map[string]Entry {
	out := make(map[string]Entry, len(c.Tracking))
	for p, e := range c.Tracking {
		out[p] = e
	}
	return out
}
