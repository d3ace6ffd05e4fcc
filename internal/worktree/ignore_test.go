package worktree

import "testing"

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pat  string
		path string
		want bool
	}{
		// exact
		{"foo.txt", "foo.txt", true},
		{"foo.txt", "bar.txt", false},

		// wildcard *
		{"*.txt", "foo.txt", true},
		{"*.txt", "bar.log", false},
		{"foo*", "foobar", true},

		// single-char ?
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file12.txt", false},

		// nested
		{"dir/*.txt", "dir/foo.txt", true},
		{"dir/*.txt", "dir/sub/foo.txt", false},

		// double-star
		{"dir/**", "dir/sub/deep/foo.txt", true},
		{"dir/**", "other/foo.txt", false},
		{"dir/**/foo.txt", "dir/foo.txt", true},
		{"dir/**/foo.txt", "dir/a/b/c/foo.txt", true},
		{"**/*.txt", "a/b/c.txt", true},
		{"**/*.txt", "a/b/c.log", false},
	}
	for _, c := range cases {
		if got := matchPattern(c.pat, c.path); got != c.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", c.pat, c.path, got, c.want)
		}
	}
}

func TestIgnoreFile(t *testing.T) {
	ig := NewIgnore([]byte("# build output\n\nbuild/\n*.log\n"))

	for _, p := range []string{".tvc", "build", "app.log"} {
		if !ig.Match(p) {
			t.Errorf("%q should be ignored", p)
		}
	}
	// *.log has no slash, so it only matches at the top level
	for _, p := range []string{"main.go", "sub/x.log"} {
		if ig.Match(p) {
			t.Errorf("%q should not be ignored", p)
		}
	}
}
