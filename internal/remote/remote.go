// Package remote links a repository to other local repositories by name
// and moves history between them.
//
// The pull gate recorded in the settings file only asks that a pull
// happened since the last remote was added. It is not safe against two
// processes using the same repositories at once.
package remote

import (
	"errors"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/config"
	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/repo"
)

// Add records a remote. path is the remote's repository directory (its
// .tvc); "/" separators are converted for the host.
func Add(r *repo.Repository, name, path string) error {
	if !r.Settings.AddRemote(name, filepath.FromSlash(path)) {
		return errs.ErrRemoteExists
	}
	r.Settings.SetPulled(false)
	if err := r.Settings.Save(); err != nil {
		return err
	}
	log.WithFields(log.Fields{"remote": name, "path": path}).Debug("remote added")
	return nil
}

// Remove forgets a remote. Fetched branches are kept.
func Remove(r *repo.Repository, name string) error {
	if !r.Settings.RemoveRemote(name) {
		return errs.ErrRemoteNotExist
	}
	return r.Settings.Save()
}

// open resolves a remote name to its repository.
func open(r *repo.Repository, name string) (*repo.Repository, error) {
	path, ok := r.Settings.Remote(name)
	if !ok {
		return nil, errs.ErrRemoteDirNotFound
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.Config.WorkingTree, path)
	}
	path = filepath.Clean(path)
	if filepath.Base(path) != config.RepoDir || !r.FS.IsDir(path) {
		return nil, errs.ErrRemoteDirNotFound
	}
	other, err := repo.Open(r.FS, filepath.Dir(path))
	if err != nil {
		if errors.Is(err, errs.NotInitialized) {
			return nil, errs.ErrRemoteDirNotFound
		}
		return nil, err
	}
	return other, nil
}

// TrackingBranch is the local name of a fetched remote branch.
func TrackingBranch(remote, branch string) string {
	return remote + "/" + branch
}

// Fetch copies the history of a remote branch and points the local
// branch <remote>/<branch> at its head.
func Fetch(r *repo.Repository, name, branch string) (string, error) {
	if branch == r.Settings.DefaultBranch() {
		return "", errs.ErrRemoteDirNotFound
	}
	other, err := open(r, name)
	if err != nil {
		return "", err
	}
	if !other.Refs.Exists(branch) {
		return "", errs.ErrRemoteNoBranch
	}
	b, err := other.Refs.Branch(branch)
	if err != nil {
		return "", err
	}

	n, err := transfer(other, r, b.Head)
	if err != nil {
		return "", fmt.Errorf("fetch %s/%s: %w", name, branch, err)
	}

	local := TrackingBranch(name, branch)
	if err := r.Refs.Set(local, b.Head); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"remote": name, "branch": local, "commit": b.Head, "objects": n}).Debug("fetched")
	return local, nil
}

// Pull fetches a remote branch and merges it into the active branch. The
// pull gate opens once the merge has been attempted, even when the remote
// branch was already merged.
func Pull(r *repo.Repository, name, branch string) (*repo.MergeResult, error) {
	local, err := Fetch(r, name, branch)
	if err != nil {
		return nil, err
	}
	res, mergeErr := r.Merge(local)
	if mergeErr == nil || errors.Is(mergeErr, errs.ErrGivenIsAncestor) {
		r.Settings.SetPulled(true)
		if err := r.Settings.Save(); err != nil {
			return nil, err
		}
	}
	return res, mergeErr
}

// Push copies local history to the remote and moves its branch to the
// local head. The remote branch must not have history the local head
// lacks, and a pull must have happened first.
func Push(r *repo.Repository, name, branch string) error {
	other, err := open(r, name)
	if err != nil {
		return err
	}
	if !r.Settings.Pulled() {
		return errs.ErrPullBeforePush
	}
	st, err := r.State()
	if err != nil {
		return err
	}

	if other.Refs.Exists(branch) {
		rb, err := other.Refs.Branch(branch)
		if err != nil {
			return err
		}
		if !r.Objects.Has(rb.Head) {
			log.WithField("commit", rb.Head).Debug("remote head unknown locally")
			return errs.ErrPullBeforePush
		}
		ok, err := r.Graph.IsAncestor(rb.Head, st.HeadID)
		if err != nil {
			return fmt.Errorf("check remote head %s: %w", rb.Head, err)
		}
		if !ok {
			return errs.ErrPullBeforePush
		}
	}

	n, err := transfer(r, other, st.HeadID)
	if err != nil {
		return fmt.Errorf("push %s/%s: %w", name, branch, err)
	}
	if err := other.Refs.Set(branch, st.HeadID); err != nil {
		return err
	}
	log.WithFields(log.Fields{"remote": name, "branch": branch, "commit": st.HeadID, "objects": n}).Debug("pushed")
	return nil
}

// transfer copies every commit reachable from head, and every blob those
// commits track, from src to dst where missing. Blobs go first so dst
// never holds a commit whose files it lacks.
func transfer(src, dst *repo.Repository, head object.ID) (int, error) {
	var blobs, commits []object.ID
	for n, err := range src.Graph.Ancestors(head) {
		if err != nil {
			return 0, err
		}
		if dst.Objects.Has(n.ID) {
			continue
		}
		commits = append(commits, n.ID)
		for _, e := range n.Commit.Tracking {
			blobs = append(blobs, e.ID)
		}
	}
	return src.Objects.CopyTo(dst.Objects, append(blobs, commits...))
}
