package repo

import (
	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/worktree"
)

// CheckoutFile restores path from the head commit.
func (r *Repository) CheckoutFile(arg string) error {
	st, err := r.State()
	if err != nil {
		return err
	}
	return r.restoreFile(st.Head, arg)
}

// CheckoutFileAt restores path from the commit named by a full or
// abbreviated id.
func (r *Repository) CheckoutFileAt(ref, arg string) error {
	id, err := r.Objects.ResolveCommit(ref)
	if err != nil {
		return err
	}
	c, err := r.Objects.GetCommit(id)
	if err != nil {
		return err
	}
	return r.restoreFile(c, arg)
}

func (r *Repository) restoreFile(c *object.Commit, arg string) error {
	path, err := r.Rel(arg)
	if err != nil {
		return errs.ErrFileNotInCommit
	}
	blob, ok := c.BlobOf(path)
	if !ok {
		return errs.ErrFileNotInCommit
	}
	data, err := r.readBlob(blob)
	if err != nil {
		return err
	}
	return r.Tree.Write(path, data)
}

// CheckoutBranch switches to branch, replacing the working tree with its
// head commit and clearing the index.
func (r *Repository) CheckoutBranch(name string) error {
	if !r.Refs.Exists(name) {
		return errs.ErrNoSuchBranch
	}
	st, err := r.State()
	if err != nil {
		return err
	}
	if name == st.Branch {
		return errs.ErrCheckoutCurrent
	}
	b, err := r.Refs.Branch(name)
	if err != nil {
		return err
	}
	target, err := r.Objects.GetCommit(b.Head)
	if err != nil {
		return err
	}
	if err := r.checkUntracked(st, target); err != nil {
		return err
	}

	if err := r.materialize(st.Head, target); err != nil {
		return err
	}
	if err := r.Refs.SetHead(name); err != nil {
		return err
	}
	log.WithFields(log.Fields{"from": st.Branch, "to": name, "commit": b.Head}).Debug("checked out branch")
	return st.Index.Clear()
}

// Reset moves the active branch to a commit and replaces the working tree
// with it.
func (r *Repository) Reset(ref string) error {
	id, err := r.Objects.ResolveCommit(ref)
	if err != nil {
		return err
	}
	target, err := r.Objects.GetCommit(id)
	if err != nil {
		return err
	}
	st, err := r.State()
	if err != nil {
		return err
	}
	if err := r.checkUntracked(st, target); err != nil {
		return err
	}

	if err := r.materialize(st.Head, target); err != nil {
		return err
	}
	if err := r.Refs.Move(st.Branch, id); err != nil {
		return err
	}
	log.WithFields(log.Fields{"branch": st.Branch, "commit": id}).Debug("reset")
	return st.Index.Clear()
}

// checkUntracked fails if a working file that is neither tracked by HEAD
// nor staged would be written from any of targets.
func (r *Repository) checkUntracked(st *State, targets ...*object.Commit) error {
	paths, err := r.Tree.Scan()
	if err != nil {
		return err
	}
	var candidates []string
	for _, p := range paths {
		if _, staged := st.Index.Added(p); !staged {
			candidates = append(candidates, p)
		}
	}
	if blocked := worktree.UntrackedInTheWay(candidates, st.Head, targets...); len(blocked) > 0 {
		log.WithField("paths", blocked).Debug("untracked files in the way")
		return errs.ErrUntrackedInTheWay
	}
	return nil
}

// materialize writes every file of target and removes files tracked by
// current that target lacks.
func (r *Repository) materialize(current, target *object.Commit) error {
	for _, p := range target.Paths() {
		blob, ok := target.BlobOf(p)
		if !ok {
			continue
		}
		data, err := r.readBlob(blob)
		if err != nil {
			return err
		}
		if err := r.Tree.Write(p, data); err != nil {
			return err
		}
	}
	for _, p := range current.Paths() {
		if !target.Tracks(p) {
			if err := r.Tree.Remove(p); err != nil {
				return err
			}
		}
	}
	return nil
}
