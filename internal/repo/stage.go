package repo

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/staging"
)

// Add stages the working copy of path. Content identical to HEAD clears
// any pending change instead.
func (r *Repository) Add(arg string) error {
	path, err := r.Rel(arg)
	if err != nil {
		return err
	}
	st, err := r.State()
	if err != nil {
		return err
	}
	if !r.Tree.Exists(path) {
		return errs.ErrFileNotExist
	}

	data, err := r.Tree.Read(path)
	if err != nil {
		return err
	}
	id, err := r.Objects.Sum(data)
	if err != nil {
		return err
	}

	if tracked, ok := st.Head.BlobOf(path); ok && tracked == id {
		st.Index.Unstage(path)
		log.WithField("path", path).Debug("content matches HEAD, unstaged")
		return st.Index.Save()
	}

	if _, err := r.Objects.Put(data); err != nil {
		return err
	}
	st.Index.StageAdd(path, staging.Staged{Blob: id, Fingerprint: staging.FingerprintOf(data)})
	log.WithFields(log.Fields{"path": path, "blob": id}).Debug("staged for addition")
	return st.Index.Save()
}

// Remove unstages path and, if HEAD tracks it, stages its removal and
// deletes the working file.
func (r *Repository) Remove(arg string) error {
	path, err := r.Rel(arg)
	if err != nil {
		return err
	}
	st, err := r.State()
	if err != nil {
		return err
	}

	tracked, isTracked := st.Head.BlobOf(path)
	_, isStaged := st.Index.Added(path)
	if !isTracked && !isStaged {
		return errs.ErrNothingToRemove
	}

	st.Index.Unstage(path)
	if isTracked {
		st.Index.StageRemove(path, tracked)
	}
	if err := st.Index.Save(); err != nil {
		return err
	}
	if isTracked {
		if err := r.Tree.Remove(path); err != nil {
			return err
		}
	}
	log.WithFields(log.Fields{"path": path, "tracked": isTracked}).Debug("staged for removal")
	return nil
}

// Commit records the staged changes on the active branch.
func (r *Repository) Commit(message string) (object.ID, error) {
	st, err := r.State()
	if err != nil {
		return "", err
	}
	return r.commit(st, message, "")
}

// commit writes the new commit, then moves the branch, then clears the
// index. A merge commit (mergeParent set) may have nothing staged.
func (r *Repository) commit(st *State, message string, mergeParent object.ID) (object.ID, error) {
	if strings.TrimSpace(message) == "" {
		return "", errs.ErrNoMessage
	}
	if st.Index.IsEmpty() && mergeParent == "" {
		return "", errs.ErrEmptyCommit
	}

	c := &object.Commit{
		Message:     message,
		Timestamp:   r.Now(),
		Parent:      st.HeadID,
		MergeParent: mergeParent,
		Tracking:    st.Index.Apply(st.Head.Tracking),
	}
	id, err := r.Objects.PutCommit(c)
	if err != nil {
		return "", fmt.Errorf("write commit: %w", err)
	}
	if err := r.Refs.Move(st.Branch, id); err != nil {
		return "", err
	}
	if err := st.Index.Clear(); err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"branch": st.Branch,
		"commit": id,
		"files":  len(c.Tracking),
	}).Debug("commit created")
	st.HeadID, st.Head = id, c
	return id, nil
}
