package middleware

import (
	"fmt"

	"github.com/keshon/tvc/internal/command"
)

// WithIntegrityCheck refuses to run the command while the repository holds
// damaged objects or dangling branches. It must run inside WithRepo.
func WithIntegrityCheck() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if ctx.Repo == nil {
					return fmt.Errorf("integrity check needs an open repository")
				}
				rep, err := ctx.Repo.Verify()
				if err != nil {
					return fmt.Errorf("repository verification failed: %w", err)
				}
				if !rep.OK() {
					return fmt.Errorf(
						"repository verification failed: %d damaged object(s), %d dangling branch(es)\nPlease run `tvc verify` before continuing",
						len(rep.Damaged), len(rep.Dangling),
					)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
