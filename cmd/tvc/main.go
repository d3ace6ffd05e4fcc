package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/keshon/tvc/internal/command"

	_ "github.com/keshon/tvc/internal/command/add"
	_ "github.com/keshon/tvc/internal/command/add-remote"
	_ "github.com/keshon/tvc/internal/command/branch"
	_ "github.com/keshon/tvc/internal/command/checkout"
	_ "github.com/keshon/tvc/internal/command/commit"
	_ "github.com/keshon/tvc/internal/command/fetch"
	_ "github.com/keshon/tvc/internal/command/find"
	_ "github.com/keshon/tvc/internal/command/global-log"
	_ "github.com/keshon/tvc/internal/command/help"
	_ "github.com/keshon/tvc/internal/command/init"
	_ "github.com/keshon/tvc/internal/command/log"
	_ "github.com/keshon/tvc/internal/command/merge"
	_ "github.com/keshon/tvc/internal/command/pull"
	_ "github.com/keshon/tvc/internal/command/push"
	_ "github.com/keshon/tvc/internal/command/reset"
	_ "github.com/keshon/tvc/internal/command/rm"
	_ "github.com/keshon/tvc/internal/command/rm-branch"
	_ "github.com/keshon/tvc/internal/command/rm-remote"
	_ "github.com/keshon/tvc/internal/command/status"
	_ "github.com/keshon/tvc/internal/command/verify"
)

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if os.Getenv("TVC_DEBUG") == "1" {
		log.SetLevel(log.DebugLevel)
	}
}

func main() {
	setupLogging()
	command.RunCLI(os.Args[1:])
}
