package worktree

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/staging"
)

// File is a working tree file as seen by the reconciler.
type File struct {
	ID    object.ID
	Print staging.Fingerprint
}

// Inputs gathers everything Reconcile looks at.
type Inputs struct {
	Head *object.Commit
	// PrimaryParent is the first parent of Head when Head is a merge
	// commit, nil otherwise.
	PrimaryParent *object.Commit
	// Known holds every path tracked by Head or any of its ancestors.
	Known   mapset.Set[string]
	Index   *staging.Index
	Working map[string]File
}

// Modification is a change not yet staged.
type Modification struct {
	Path    string
	Deleted bool
}

func (m Modification) String() string {
	if m.Deleted {
		return m.Path + " (deleted)"
	}
	return m.Path + " (modified)"
}

// Report classifies the working tree against HEAD and the index.
type Report struct {
	Staged    []string
	Removed   []string
	Modified  []Modification
	Untracked []string
}

// Reconcile computes the status report. It performs no I/O.
func Reconcile(in Inputs) Report {
	r := Report{
		Staged:  in.Index.AddedPaths(),
		Removed: in.Index.RemovedPaths(),
	}

	candidates := mapset.NewThreadUnsafeSet[string]()
	for p := range in.Head.Tracking {
		candidates.Add(p)
	}
	for p := range in.Index.Add {
		candidates.Add(p)
	}

	for _, p := range mapset.Sorted(candidates) {
		work, present := in.Working[p]
		staged, isStaged := in.Index.Added(p)

		switch {
		case isStaged && !present:
			r.Modified = append(r.Modified, Modification{Path: p, Deleted: true})
		case isStaged:
			if staged.Fingerprint != work.Print {
				r.Modified = append(r.Modified, Modification{Path: p})
			}
		case in.Index.Removed(p):
		case !present:
			if in.PrimaryParent != nil && in.PrimaryParent.Tracks(p) {
				continue
			}
			r.Modified = append(r.Modified, Modification{Path: p, Deleted: true})
		default:
			if id, _ := in.Head.BlobOf(p); id != work.ID {
				r.Modified = append(r.Modified, Modification{Path: p})
			}
		}
	}

	for p := range in.Working {
		if _, staged := in.Index.Added(p); staged {
			continue
		}
		if in.Head.Tracks(p) || (in.Known != nil && in.Known.Contains(p)) {
			continue
		}
		r.Untracked = append(r.Untracked, p)
	}
	sort.Strings(r.Untracked)
	return r
}

// UntrackedInTheWay returns the working files that are not tracked by
// current but would be written by a checkout of any of targets.
func UntrackedInTheWay(working []string, current *object.Commit, targets ...*object.Commit) []string {
	var blocked []string
	for _, p := range working {
		if current.Tracks(p) {
			continue
		}
		for _, t := range targets {
			if t != nil && t.Tracks(p) {
				blocked = append(blocked, p)
				break
			}
		}
	}
	return blocked
}
