package repo

import (
	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/object"
)

// VerifyReport lists what an integrity check found.
type VerifyReport struct {
	Checked int
	// Damaged objects no longer hash to their id.
	Damaged []object.ID
	// Dangling branches point at a commit missing from the store.
	Dangling []string
}

func (v *VerifyReport) OK() bool { return len(v.Damaged) == 0 && len(v.Dangling) == 0 }

// Verify re-hashes every stored object and checks that every branch
// resolves to a stored commit.
func (r *Repository) Verify() (*VerifyReport, error) {
	ids, err := r.Objects.All()
	if err != nil {
		return nil, err
	}
	rep := &VerifyReport{}
	for _, id := range ids {
		ok, err := r.Objects.Verify(id)
		if err != nil {
			log.WithError(err).WithField("object", id).Debug("unreadable object")
		}
		if !ok {
			rep.Damaged = append(rep.Damaged, id)
		}
		rep.Checked++
	}

	branches, err := r.Refs.List()
	if err != nil {
		return nil, err
	}
	for _, b := range branches {
		if !b.Head.IsCommit() || !r.Objects.Has(b.Head) {
			rep.Dangling = append(rep.Dangling, b.Name)
		}
	}
	return rep, nil
}

// Repair rewrites damaged blobs from working files whose content still
// hashes to the damaged id. It returns the ids it could not restore.
// Damaged commits can only be recovered from another repository.
func (r *Repository) Repair(damaged []object.ID) ([]object.ID, error) {
	if len(damaged) == 0 {
		return nil, nil
	}
	working, err := r.scanWorking()
	if err != nil {
		return nil, err
	}
	byID := make(map[object.ID]string, len(working))
	for p, f := range working {
		byID[f.ID] = p
	}

	var failed []object.ID
	for _, id := range damaged {
		p, ok := byID[id]
		if !ok {
			failed = append(failed, id)
			continue
		}
		data, err := r.Tree.Read(p)
		if err != nil {
			return failed, err
		}
		if err := r.Objects.Restore(id, data); err != nil {
			log.WithError(err).WithField("object", id).Debug("restore failed")
			failed = append(failed, id)
			continue
		}
		log.WithFields(log.Fields{"object": id, "path": p}).Debug("object restored")
	}
	return failed, nil
}
