package repo

import (
	"fmt"
	"strings"

	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/object"
)

// DateLayout is how commit timestamps are shown in log output.
const DateLayout = "Mon Jan 02 15:04:05 2006 -0700"

// LogEntry is one commit in log output.
type LogEntry struct {
	ID     object.ID
	Commit *object.Commit
}

// String renders the entry followed by a blank line.
func (e LogEntry) String() string {
	var b strings.Builder
	b.WriteString("===\n")
	fmt.Fprintf(&b, "commit %s\n", e.ID)
	if e.Commit.IsMerge() {
		fmt.Fprintf(&b, "Merge: %s %s\n", e.Commit.Parent.Short(), e.Commit.MergeParent.Short())
	}
	fmt.Fprintf(&b, "Date: %s\n", e.Commit.Timestamp.Local().Format(DateLayout))
	b.WriteString(e.Commit.Message)
	b.WriteString("\n\n")
	return b.String()
}

// Log follows primary parents from HEAD back to the root commit.
func (r *Repository) Log() ([]LogEntry, error) {
	st, err := r.State()
	if err != nil {
		return nil, err
	}

	var out []LogEntry
	for id := st.HeadID; id != ""; {
		n, err := r.Graph.Node(id)
		if err != nil {
			return nil, err
		}
		out = append(out, LogEntry{ID: id, Commit: n.Commit})
		id = n.Commit.Parent
	}
	return out, nil
}

// GlobalLog lists every commit ever made, ordered by id.
func (r *Repository) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Objects.Commits()
	if err != nil {
		return nil, err
	}
	out := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		n, err := r.Graph.Node(id)
		if err != nil {
			return nil, err
		}
		out = append(out, LogEntry{ID: id, Commit: n.Commit})
	}
	return out, nil
}

// Find returns the ids of commits whose message is exactly message.
func (r *Repository) Find(message string) ([]object.ID, error) {
	all, err := r.GlobalLog()
	if err != nil {
		return nil, err
	}
	var ids []object.ID
	for _, e := range all {
		if e.Commit.Message == message {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return nil, errs.ErrNoCommitWithMsg
	}
	return ids, nil
}
