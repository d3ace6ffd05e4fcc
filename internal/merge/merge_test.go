package merge_test

import (
	"testing"

	"github.com/keshon/tvc/internal/merge"
	"github.com/keshon/tvc/internal/object"
)

func tracking(id string) map[string]object.Entry {
	if id == "" {
		return map[string]object.Entry{}
	}
	return map[string]object.Entry{"f": object.BlobEntry(object.ID(id))}
}

func TestResolveTable(t *testing.T) {
	cases := []struct {
		name           string
		split, cur, gv string // "" means absent
		want           merge.Action
	}{
		{"modified in given only", "s", "s", "g", merge.TakeGiven},
		{"modified in current only", "s", "c", "s", merge.KeepCurrent},
		{"modified the same way", "s", "x", "x", merge.KeepCurrent},
		{"modified differently", "s", "c", "g", merge.Conflict},
		{"unchanged on both", "s", "s", "s", merge.KeepCurrent},
		{"removed in given", "s", "s", "", merge.Delete},
		{"modified in current, removed in given", "s", "c", "", merge.Conflict},
		{"removed in current", "s", "", "s", merge.StayAbsent},
		{"removed in current, modified in given", "s", "", "g", merge.Conflict},
		{"removed on both", "s", "", "", merge.StayAbsent},
		{"added the same on both", "", "x", "x", merge.KeepCurrent},
		{"added differently", "", "c", "g", merge.Conflict},
		{"added in current", "", "c", "", merge.KeepCurrent},
		{"added in given", "", "", "g", merge.TakeGiven},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ds := merge.Resolve(tracking(tc.split), tracking(tc.cur), tracking(tc.gv))
			if len(ds) != 1 {
				t.Fatalf("expected one decision, got %v", ds)
			}
			d := ds[0]
			if d.Action != tc.want {
				t.Fatalf("got %s, want %s", d.Action, tc.want)
			}
			if d.Current != object.ID(tc.cur) || d.Given != object.ID(tc.gv) {
				t.Fatalf("sides: got (%q, %q)", d.Current, d.Given)
			}
		})
	}
}

func TestResolveSortedUnion(t *testing.T) {
	split := map[string]object.Entry{"b": object.BlobEntry("1")}
	cur := map[string]object.Entry{"c": object.BlobEntry("2"), "b": object.BlobEntry("1")}
	given := map[string]object.Entry{"a": object.BlobEntry("3")}

	ds := merge.Resolve(split, cur, given)
	if len(ds) != 3 {
		t.Fatalf("got %v", ds)
	}
	want := []struct {
		path   string
		action merge.Action
	}{{"a", merge.TakeGiven}, {"b", merge.Delete}, {"c", merge.KeepCurrent}}
	for i, w := range want {
		if ds[i].Path != w.path || ds[i].Action != w.action {
			t.Errorf("decision %d: got %s %s, want %s %s", i, ds[i].Path, ds[i].Action, w.path, w.action)
		}
	}
}

func TestConflictMarkers(t *testing.T) {
	cases := []struct {
		name    string
		cur, gv []byte
		want    string
	}{
		{"both sides", []byte("3\n"), []byte("2\n"), "<<<<<<< HEAD\n3\n=======\n2\n>>>>>>>\n"},
		{"current absent", nil, []byte("g\n"), "<<<<<<< HEAD\n=======\ng\n>>>>>>>\n"},
		{"given absent", []byte("c\n"), nil, "<<<<<<< HEAD\nc\n=======\n>>>>>>>\n"},
		{"missing newlines", []byte("c"), []byte("g"), "<<<<<<< HEAD\nc\n=======\ng\n>>>>>>>\n"},
	}
	for _, tc := range cases {
		if got := string(merge.ConflictMarkers(tc.cur, tc.gv)); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
