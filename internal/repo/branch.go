package repo

import (
	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/refs"
)

// Branch creates a branch at the head commit. It does not switch to it.
func (r *Repository) Branch(name string) error {
	st, err := r.State()
	if err != nil {
		return err
	}
	if err := r.Refs.Create(name, st.HeadID); err != nil {
		return err
	}
	log.WithFields(log.Fields{"branch": name, "commit": st.HeadID}).Debug("branch created")
	return nil
}

// RemoveBranch deletes a branch pointer. Its commits stay in the store.
func (r *Repository) RemoveBranch(name string) error {
	return r.Refs.Delete(name)
}

// Branches lists all branches by name.
func (r *Repository) Branches() ([]refs.Branch, error) {
	return r.Refs.List()
}
