package main

import (
	"fmt"
	"os"
)

var version = "dev"

var commands = map[string]func([]string) error{
	"catalog":  runCatalog,
	"validate": runValidate,
	"lint":     runLint,
	"resolve":  runResolve,
}

func usage() {
	fmt.Fprintf(os.Stderr, `osqctl - octoseq script tooling (version %s)

Usage:
  osqctl <command> [options]

Commands:
  catalog    Export the capability catalog (--format json|yaml)
  validate   Validate the capability catalog for internal consistency
  lint       Lint oseq script files and report advisory findings
  resolve    Resolve an access chain against the catalog

Run 'osqctl <command> -h' for command-specific help.
`, version)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	if cmd == "-h" || cmd == "--help" || cmd == "help" {
		usage()
		os.Exit(0)
	}
	if cmd == "-v" || cmd == "--version" || cmd == "version" {
		fmt.Println(version)
		os.Exit(0)
	}

	fn, ok := commands[cmd]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}

	if err := fn(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
