package repo

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/merge"
	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/staging"
)

// MergeResult describes a completed merge.
type MergeResult struct {
	// FastForward is set when the active branch simply moved to the given
	// head and no merge commit was made.
	FastForward bool
	// Conflict is set when at least one file was written with conflict
	// markers.
	Conflict bool
	Commit   object.ID
}

// Merge merges branch given into the active branch. All preconditions are
// checked before anything is written.
func (r *Repository) Merge(given string) (*MergeResult, error) {
	st, err := r.State()
	if err != nil {
		return nil, err
	}
	if !st.Index.IsEmpty() {
		return nil, errs.ErrUncommitted
	}
	if !r.Refs.Exists(given) {
		return nil, errs.ErrBranchNotExist
	}
	if given == st.Branch {
		return nil, errs.ErrSelfMerge
	}

	gb, err := r.Refs.Branch(given)
	if err != nil {
		return nil, err
	}
	other, err := r.Objects.GetCommit(gb.Head)
	if err != nil {
		return nil, err
	}
	splitID, err := r.Graph.NearestCommonAncestor(st.HeadID, gb.Head)
	if err != nil {
		return nil, err
	}
	split, err := r.Objects.GetCommit(splitID)
	if err != nil {
		return nil, err
	}
	if err := r.checkUntracked(st, split, other); err != nil {
		return nil, err
	}

	fields := log.Fields{"current": st.Branch, "given": given, "split": splitID}
	if splitID == gb.Head {
		return nil, errs.ErrGivenIsAncestor
	}
	if splitID == st.HeadID {
		if err := r.materialize(st.Head, other); err != nil {
			return nil, err
		}
		if err := r.Refs.Move(st.Branch, gb.Head); err != nil {
			return nil, err
		}
		log.WithFields(fields).Debug("fast-forwarded")
		return &MergeResult{FastForward: true, Commit: gb.Head}, nil
	}

	res := &MergeResult{}
	for _, d := range merge.Resolve(split.Tracking, st.Head.Tracking, other.Tracking) {
		if err := r.apply(st, d); err != nil {
			return nil, fmt.Errorf("merge %s: %w", d.Path, err)
		}
		if d.Action == merge.Conflict {
			res.Conflict = true
			log.WithFields(fields).WithField("path", d.Path).Debug("conflict")
		}
	}
	if err := st.Index.Save(); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("Merged %s into %s.", given, st.Branch)
	res.Commit, err = r.commit(st, msg, gb.Head)
	if err != nil {
		return nil, err
	}
	log.WithFields(fields).WithField("commit", res.Commit).Debug("merged")
	return res, nil
}

// apply carries out one merge decision on the working tree and index.
func (r *Repository) apply(st *State, d merge.Decision) error {
	switch d.Action {
	case merge.TakeGiven:
		data, err := r.readBlob(d.Given)
		if err != nil {
			return err
		}
		if err := r.Tree.Write(d.Path, data); err != nil {
			return err
		}
		st.Index.StageAdd(d.Path, staging.Staged{Blob: d.Given, Fingerprint: staging.FingerprintOf(data)})

	case merge.Delete:
		if err := r.Tree.Remove(d.Path); err != nil {
			return err
		}
		st.Index.StageRemove(d.Path, d.Current)

	case merge.Conflict:
		var cur, giv []byte
		var err error
		if d.Current != "" {
			if cur, err = r.readBlob(d.Current); err != nil {
				return err
			}
		}
		if d.Given != "" {
			if giv, err = r.readBlob(d.Given); err != nil {
				return err
			}
		}
		data := merge.ConflictMarkers(cur, giv)
		id, err := r.Objects.Put(data)
		if err != nil {
			return err
		}
		if err := r.Tree.Write(d.Path, data); err != nil {
			return err
		}
		st.Index.StageAdd(d.Path, staging.Staged{Blob: id, Fingerprint: staging.FingerprintOf(data)})
	}
	return nil
}
