package middleware_test

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/fs"
	"github.com/keshon/tvc/internal/middleware"
	"github.com/keshon/tvc/internal/repo"
)

type probe struct {
	ran  bool
	repo *repo.Repository
}

func (p *probe) Name() string                   { return "probe" }
func (p *probe) Short() string                  { return "" }
func (p *probe) Aliases() []string              { return nil }
func (p *probe) Usage() string                  { return "" }
func (p *probe) Brief() string                  { return "" }
func (p *probe) Help() string                   { return "" }
func (p *probe) Subcommands() []command.Command { return nil }
func (p *probe) Flags(fs *flag.FlagSet)         {}
func (p *probe) Run(ctx *command.Context) error {
	p.ran = true
	p.repo = ctx.Repo
	return nil
}

func TestWithRepo(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("/w/deep/er", 0o755)
	p := &probe{}
	cmd := command.ApplyMiddlewares(p, middleware.WithRepo())

	err := cmd.Run(&command.Context{FS: m, Cwd: "/w/deep/er"})
	if !errors.Is(err, errs.ErrNotInitialized) || p.ran {
		t.Fatalf("outside a repository: err %v, ran %v", err, p.ran)
	}

	if _, err := repo.Init(m, "/w", ""); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(&command.Context{FS: m, Cwd: "/w/deep/er"}); err != nil {
		t.Fatal(err)
	}
	if p.repo == nil || p.repo.Config.WorkingTree != "/w" || p.repo.Cwd != "/w/deep/er" {
		t.Fatalf("repository not handed over: %+v", p.repo)
	}
}

func TestWithIntegrityCheck(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("/w", 0o755)
	r, err := repo.Init(m, "/w", "")
	if err != nil {
		t.Fatal(err)
	}
	p := &probe{}
	cmd := command.ApplyMiddlewares(p, middleware.WithIntegrityCheck(), middleware.WithRepo())

	if err := cmd.Run(&command.Context{FS: m, Cwd: "/w"}); err != nil || !p.ran {
		t.Fatalf("healthy repository: err %v, ran %v", err, p.ran)
	}

	head, err := r.Refs.ResolveHead()
	if err != nil {
		t.Fatal(err)
	}
	m.WriteFile(r.Config.ObjectsDir()+"/"+string(head.Head), []byte("rot"), 0o644)

	p.ran = false
	err = cmd.Run(&command.Context{FS: m, Cwd: "/w"})
	if err == nil || !strings.Contains(err.Error(), "1 damaged object") || p.ran {
		t.Fatalf("damaged repository: err %v, ran %v", err, p.ran)
	}
}
