// Package merge resolves a three-way merge of tracking maps. It decides
// what happens to each path and builds conflict files; applying the
// decisions to a repository is up to the caller.
package merge

import (
	"bytes"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/keshon/tvc/internal/object"
)

// Action is the outcome for one path.
type Action int

const (
	// KeepCurrent leaves the current content in place.
	KeepCurrent Action = iota
	// TakeGiven writes the given content and stages it.
	TakeGiven
	// Delete removes the file and stages the removal.
	Delete
	// StayAbsent leaves a path that the current side already lacks.
	StayAbsent
	// Conflict writes both sides between markers and stages the result.
	Conflict
)

func (a Action) String() string {
	switch a {
	case KeepCurrent:
		return "keep"
	case TakeGiven:
		return "take"
	case Delete:
		return "delete"
	case StayAbsent:
		return "absent"
	case Conflict:
		return "conflict"
	}
	return "unknown"
}

// Decision is the resolution of one path. Current and Given are the blob
// ids on each side, empty when the side lacks the path.
type Decision struct {
	Path    string
	Action  Action
	Current object.ID
	Given   object.ID
}

// Resolve decides every path in the union of the three tracking maps,
// sorted by path. Identical ids mean identical content.
func Resolve(split, current, given map[string]object.Entry) []Decision {
	paths := mapset.NewThreadUnsafeSet[string]()
	for _, m := range []map[string]object.Entry{split, current, given} {
		for p := range m {
			paths.Add(p)
		}
	}

	out := make([]Decision, 0, paths.Cardinality())
	for _, p := range mapset.Sorted(paths) {
		s, inS := split[p]
		c, inC := current[p]
		g, inG := given[p]
		d := Decision{Path: p, Current: c.ID, Given: g.ID}
		d.Action = resolve(s.ID, c.ID, g.ID, inS, inC, inG)
		out = append(out, d)
	}
	return out
}

func resolve(s, c, g object.ID, inS, inC, inG bool) Action {
	switch {
	case inS && inC && inG:
		switch {
		case c == s && g == s:
			return KeepCurrent
		case c == s:
			return TakeGiven
		case g == s, c == g:
			return KeepCurrent
		}
		return Conflict
	case inS && inC:
		if c == s {
			return Delete
		}
		return Conflict
	case inS && inG:
		if g == s {
			return StayAbsent
		}
		return Conflict
	case inS:
		return StayAbsent
	case inC && inG:
		if c == g {
			return KeepCurrent
		}
		return Conflict
	case inC:
		return KeepCurrent
	case inG:
		return TakeGiven
	}
	return StayAbsent
}

// ConflictMarkers builds the content of a conflicted file. A nil side is
// empty. A non-empty side without a trailing newline gets one so the
// markers stay on their own lines.
func ConflictMarkers(current, given []byte) []byte {
	var b bytes.Buffer
	b.WriteString("<<<<<<< HEAD\n")
	writeSide(&b, current)
	b.WriteString("=======\n")
	writeSide(&b, given)
	b.WriteString(">>>>>>>\n")
	return b.Bytes()
}

func writeSide(b *bytes.Buffer, data []byte) {
	b.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		b.WriteByte('\n')
	}
}
