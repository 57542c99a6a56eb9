// Package cli implements the kakui command line.
package cli

import (
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitErr      = 1
	ExitUsageErr = 2
)

const version = "0.1.0"

// Run is the main CLI entry point. Returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return ExitOK
	}

	switch args[0] {
	case "trace":
		return runTrace(args[1:], nil)
	case "keys":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "kakui: keys requires at least one key")
			return ExitUsageErr
		}
		return runTrace(nil, args[1:])
	case "version", "--version":
		fmt.Printf("kakui %s\n", version)
		return ExitOK
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return ExitOK
	}

	fmt.Fprintf(os.Stderr, "kakui: unknown command %q\n", args[0])
	printUsage(os.Stderr)
	return ExitUsageErr
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: kakui <command>

Commands:
  trace [ARG...]   spawn the editor in JSON UI mode and print every request
                   it sends; extra arguments are passed to the editor
  keys KEY...      like trace, sending the given keys after startup
  version          print the kakui version
  help             show this help

Configuration is read from `+"`$XDG_CONFIG_HOME/kakui/config.toml`"+`.
`)
}
