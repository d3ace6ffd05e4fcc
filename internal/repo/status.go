package repo

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/keshon/tvc/internal/object"
	"github.com/keshon/tvc/internal/staging"
	"github.com/keshon/tvc/internal/worktree"
)

// StatusReport is the full status output.
type StatusReport struct {
	Current  string
	Branches []string
	worktree.Report
}

// String renders the report in sections.
func (s StatusReport) String() string {
	var b strings.Builder

	b.WriteString("=== Branches ===\n")
	for _, name := range s.Branches {
		if name == s.Current {
			b.WriteString("*")
		}
		b.WriteString(name + "\n")
	}

	section := func(title string, lines []string) {
		fmt.Fprintf(&b, "\n=== %s ===\n", title)
		for _, l := range lines {
			b.WriteString(l + "\n")
		}
	}
	section("Staged Files", s.Staged)
	section("Removed Files", s.Removed)

	mods := make([]string, len(s.Modified))
	for i, m := range s.Modified {
		mods[i] = m.String()
	}
	section("Modifications Not Staged For Commit", mods)
	section("Untracked Files", s.Untracked)
	b.WriteString("\n")
	return b.String()
}

// Status classifies every tracked, staged, and working file.
func (r *Repository) Status() (*StatusReport, error) {
	st, err := r.State()
	if err != nil {
		return nil, err
	}
	branches, err := r.Refs.List()
	if err != nil {
		return nil, err
	}

	working, err := r.scanWorking()
	if err != nil {
		return nil, err
	}
	known, err := r.knownPaths(st.HeadID)
	if err != nil {
		return nil, err
	}

	in := worktree.Inputs{
		Head:    st.Head,
		Known:   known,
		Index:   st.Index,
		Working: working,
	}
	if st.Head.IsMerge() {
		n, err := r.Graph.Node(st.Head.Parent)
		if err != nil {
			return nil, err
		}
		in.PrimaryParent = n.Commit
	}

	report := &StatusReport{Current: st.Branch, Report: worktree.Reconcile(in)}
	for _, b := range branches {
		report.Branches = append(report.Branches, b.Name)
	}
	return report, nil
}

// scanWorking reads and identifies every working file.
func (r *Repository) scanWorking() (map[string]worktree.File, error) {
	paths, err := r.Tree.Scan()
	if err != nil {
		return nil, err
	}
	out := make(map[string]worktree.File, len(paths))
	for _, p := range paths {
		data, err := r.Tree.Read(p)
		if err != nil {
			return nil, err
		}
		id, err := r.Objects.Sum(data)
		if err != nil {
			return nil, err
		}
		out[p] = worktree.File{ID: id, Print: staging.FingerprintOf(data)}
	}
	return out, nil
}

// knownPaths collects every path tracked anywhere in the history of head.
func (r *Repository) knownPaths(head object.ID) (mapset.Set[string], error) {
	known := mapset.NewThreadUnsafeSet[string]()
	for n, err := range r.Graph.Ancestors(head) {
		if err != nil {
			return nil, err
		}
		for p := range n.Commit.Tracking {
			known.Add(p)
		}
	}
	return known, nil
}
