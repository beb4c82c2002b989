package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `Usage: admin <command> [flags]

Commands:
  token    mint a bearer token for a user
  sweep    delete expired notifications through a running hub
  inspect  list the entries of a store prefix (hub must be stopped)
  seed     load users and projects from a JSON file (hub must be stopped)
`

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Render("admin: "+err.Error()))
	}
	os.Exit(code)
}

func run(args []string, out io.Writer) (int, error) {
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if !config.Colours {
		color.Disable()
	}
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return exitConfig, nil
	}

	var cmdErr error
	switch args[0] {
	case "token":
		cmdErr = tokenCommand(config, args[1:], out)
	case "sweep":
		cmdErr = sweepCommand(config, args[1:], out)
	case "inspect":
		cmdErr = inspectCommand(config, args[1:], out)
	case "seed":
		cmdErr = seedCommand(config, args[1:], out)
	default:
		fmt.Fprint(out, usage)
		return exitConfig, fmt.Errorf("unknown command %q", args[0])
	}
	if cmdErr != nil {
		return exitRuntime, cmdErr
	}
	return exitOK, nil
}
