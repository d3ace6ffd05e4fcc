package middleware

import (
	"github.com/keshon/tvc/internal/command"
	"github.com/keshon/tvc/internal/config"
	"github.com/keshon/tvc/internal/errs"
	"github.com/keshon/tvc/internal/repo"
)

// WithRepo opens the repository enclosing the working directory and hands
// it to the command through ctx.Repo.
func WithRepo() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				root := config.ResolveWorkingTreeRoot(ctx.FS, ctx.Cwd)
				if root == "" {
					return errs.ErrNotInitialized
				}
				r, err := repo.Open(ctx.FS, root)
				if err != nil {
					return err
				}
				r.Cwd = ctx.Cwd
				ctx.Repo = r
				return cmd.Run(ctx)
			},
		}
	}
}
