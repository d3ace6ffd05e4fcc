package main

import (
	"fmt"
	"os"
	"strings"
	"text/template"

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

func main() {
	tplBytes, err := os.ReadFile("README.md.tmpl")
	if err != nil {
		fmt.Printf("Failed to read template: %v\n", err)
		os.Exit(1)
	}

	tpl, err := template.New("readme").Parse(string(tplBytes))
	if err != nil {
		fmt.Printf("Failed to parse template: %v\n", err)
		os.Exit(1)
	}

	commands := command.AllCommands()

	var sections strings.Builder
	for _, cmd := range commands {
		fmt.Fprintf(&sections,
			"### %s\n\n%s\n\n```\n%s\n\n%s\n```\n\n",
			cmd.Name(),
			cmd.Brief(),
			cmd.Usage(),
			cmd.Help(),
		)
	}

	data := map[string]string{
		"CommandSections": sections.String(),
	}

	outFile, err := os.Create("README.md")
	if err != nil {
		fmt.Printf("Failed to create README.md: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := tpl.Execute(outFile, data); err != nil {
		fmt.Printf("Failed to render template: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("README.md generated successfully")
}
