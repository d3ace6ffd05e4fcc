package middleware

import (
	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/command"
)

// WithDebugArgsPrint logs the command and its arguments at debug level
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				log.WithFields(log.Fields{"command": cmd.Name(), "args": ctx.Raw}).Debug("running command")
				return cmd.Run(ctx)
			},
		}
	}
}
