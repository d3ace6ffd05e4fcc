package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/fs"
)

type session struct {
	t  *testing.T
	fs *fs.MemoryFS
}

func newSession(t *testing.T, dirs ...string) *session {
	t.Helper()
	m := fs.NewMemoryFS()
	for _, d := range dirs {
		if err := m.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return &session{t: t, fs: m}
}

// run executes one command line from cwd and returns stdout and the exit
// code. Anything printed to stderr fails the test.
func (s *session) run(cwd string, args ...string) (string, int) {
	s.t.Helper()
	var out, errOut bytes.Buffer
	code := command.Execute(args, command.Env{FS: s.fs, Cwd: cwd, Out: &out, Err: &errOut})
	if errOut.Len() > 0 {
		s.t.Fatalf("%q wrote to stderr: %s", args, errOut.String())
	}
	return out.String(), code
}

func (s *session) ok(cwd string, args ...string) string {
	s.t.Helper()
	out, code := s.run(cwd, args...)
	if code != 0 {
		s.t.Fatalf("%q exited %d: %s", args, code, out)
	}
	return out
}

func (s *session) fails(cwd, want string, args ...string) {
	s.t.Helper()
	out, code := s.run(cwd, args...)
	if code != 1 || out != want+"\n" {
		s.t.Fatalf("%q = %q (exit %d), want %q", args, out, code, want)
	}
}

func (s *session) write(path, content string) {
	s.t.Helper()
	if err := s.fs.WriteFile(path, []byte(content), 0o644); err != nil {
		s.t.Fatal(err)
	}
}

func (s *session) read(path string) string {
	s.t.Helper()
	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.t.Fatal(err)
	}
	return string(data)
}

func TestUsageErrors(t *testing.T) {
	s := newSession(t, "/w")
	s.fails("/w", "Please enter a command.")
	s.fails("/w", "No command with that name exists.", "frobnicate")
	s.fails("/w", "Not in an initialized tvc directory.", "status")

	s.ok("/w", "init")
	s.fails("/w", "A tvc version-control system already exists in the current directory.", "init")
	s.fails("/w", "Incorrect operands.", "add")
	s.fails("/w", "Incorrect operands.", "status", "extra")
	s.fails("/w", "Incorrect operands.", "checkout", "a", "b")
	s.fails("/w", "Please enter a commit message.", "commit")
	s.fails("/w", "Please enter a commit message.", "commit", "")
	s.fails("/w", "File does not exist.", "add", "missing.txt")
}

func TestCommitCheckoutAndMerge(t *testing.T) {
	s := newSession(t, "/w")
	s.ok("/w", "init")

	s.write("/w/a.txt", "one\n")
	s.ok("/w", "add", "a.txt")
	s.ok("/w", "commit", "first")
	s.fails("/w", "No changes added to the commit.", "commit", "again")

	log := s.ok("/w", "log")
	if strings.Count(log, "===\n") != 2 || !strings.Contains(log, "\nfirst\n\n") {
		t.Fatalf("log output:\n%s", log)
	}
	if ids := s.ok("/w", "find", "first"); strings.Count(ids, "\n") != 1 {
		t.Fatalf("find output: %q", ids)
	}
	s.fails("/w", "Found no commit with that message.", "find", "nothing")

	s.write("/w/a.txt", "scribble\n")
	s.ok("/w", "checkout", "--", "a.txt")
	if got := s.read("/w/a.txt"); got != "one\n" {
		t.Fatalf("checkout -- restored %q", got)
	}

	s.ok("/w", "branch", "other")
	s.ok("/w", "checkout", "other")
	s.write("/w/b.txt", "two\n")
	s.ok("/w", "add", "b.txt")
	s.ok("/w", "commit", "second")

	s.ok("/w", "checkout", "master")
	if s.fs.Exists("/w/b.txt") {
		t.Fatal("b.txt should leave the working tree on checkout master")
	}
	s.fails("/w", "No need to checkout the current branch.", "checkout", "master")
	s.fails("/w", "Cannot merge a branch with itself.", "merge", "master")

	if out := s.ok("/w", "merge", "other"); out != "Current branch fast-forwarded.\n" {
		t.Fatalf("merge output %q", out)
	}
	if got := s.read("/w/b.txt"); got != "two\n" {
		t.Fatalf("fast-forward wrote %q", got)
	}

	status := s.ok("/w", "status")
	if !strings.HasPrefix(status, "=== Branches ===\n*master\nother\n") {
		t.Fatalf("status output:\n%s", status)
	}

	s.ok("/w", "rm-branch", "other")
	s.fails("/w", "A branch with that name does not exist.", "rm-branch", "other")
	s.fails("/w", "Cannot remove the current branch.", "rm-branch", "master")

	if out := s.ok("/w", "verify"); !strings.Contains(out, "Objects checked: ") {
		t.Fatalf("verify output %q", out)
	}
}

func TestConflictingMerge(t *testing.T) {
	s := newSession(t, "/w")
	s.ok("/w", "init")
	s.write("/w/f.txt", "base\n")
	s.ok("/w", "add", "f.txt")
	s.ok("/w", "commit", "base")
	s.ok("/w", "branch", "other")

	s.write("/w/f.txt", "ours\n")
	s.ok("/w", "add", "f.txt")
	s.ok("/w", "commit", "ours")

	s.ok("/w", "checkout", "other")
	s.write("/w/f.txt", "theirs\n")
	s.ok("/w", "add", "f.txt")
	s.ok("/w", "commit", "theirs")
	s.ok("/w", "checkout", "master")

	if out := s.ok("/w", "merge", "other"); out != "Encountered a merge conflict.\n" {
		t.Fatalf("merge output %q", out)
	}
	want := "<<<<<<< HEAD\nours\n=======\ntheirs\n>>>>>>>\n"
	if got := s.read("/w/f.txt"); got != want {
		t.Fatalf("conflict file:\n%s", got)
	}
	if log := s.ok("/w", "log"); !strings.Contains(log, "Merge: ") || !strings.Contains(log, "Merged other into master.") {
		t.Fatalf("log after merge:\n%s", log)
	}
}

func TestPathsFromSubdirectory(t *testing.T) {
	s := newSession(t, "/w/sub")
	s.ok("/w", "init")
	s.write("/w/sub/x.txt", "x\n")
	s.ok("/w/sub", "add", "x.txt")
	s.ok("/w/sub", "commit", "nested")

	status := s.ok("/w", "status")
	if strings.Contains(status, "sub/x.txt") {
		t.Fatalf("committed file still reported:\n%s", status)
	}

	s.ok("/w/sub", "rm", "x.txt")
	if s.fs.Exists("/w/sub/x.txt") {
		t.Fatal("rm should delete the tracked file")
	}
	if status := s.ok("/w", "status"); !strings.Contains(status, "=== Removed Files ===\nsub/x.txt\n") {
		t.Fatalf("status after rm:\n%s", status)
	}
}

func TestRemotes(t *testing.T) {
	s := newSession(t, "/a", "/b")
	s.ok("/a", "init")
	s.ok("/b", "init")

	s.write("/b/f.txt", "from b\n")
	s.ok("/b", "add", "f.txt")
	s.ok("/b", "commit", "b work")
	s.ok("/b", "branch", "dev")

	s.ok("/a", "add-remote", "origin", "../b/.tvc")
	s.fails("/a", "A remote with that name already exists.", "add-remote", "origin", "../b/.tvc")
	s.fails("/a", "Please pull down remote changes before pushing.", "push", "origin", "dev")
	s.fails("/a", "That remote does not have that branch.", "fetch", "origin", "nope")

	s.ok("/a", "fetch", "origin", "dev")
	if branches := s.ok("/a", "branch"); !strings.Contains(branches, "  origin/dev\n") {
		t.Fatalf("fetched branch missing:\n%s", branches)
	}

	if out := s.ok("/a", "pull", "origin", "dev"); out != "Current branch fast-forwarded.\n" {
		t.Fatalf("pull output %q", out)
	}
	if got := s.read("/a/f.txt"); got != "from b\n" {
		t.Fatalf("pulled file %q", got)
	}

	s.write("/a/g.txt", "from a\n")
	s.ok("/a", "add", "g.txt")
	s.ok("/a", "commit", "a work")
	s.ok("/a", "push", "origin", "dev")

	s.ok("/b", "checkout", "dev")
	if got := s.read("/b/g.txt"); got != "from a\n" {
		t.Fatalf("pushed file %q", got)
	}

	s.ok("/a", "rm-remote", "origin")
	s.fails("/a", "A remote with that name does not exist.", "rm-remote", "origin")
}

func TestHelp(t *testing.T) {
	s := newSession(t)
	out := s.ok("/", "help")
	for _, name := range []string{"init", "merge", "global-log", "push"} {
		if !strings.Contains(out, "\033[1m"+name+"\033[0m") {
			t.Errorf("help does not list %s", name)
		}
	}
	if out := s.ok("/", "help", "checkout"); !strings.Contains(out, "checkout -- <file>") {
		t.Errorf("checkout help:\n%s", out)
	}
	s.fails("/", "No command with that name exists.", "help", "nope")
}
