// Package main is the entrypoint for the octoseq script language server.
// It communicates with editors via the Language Server Protocol over stdio.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rewbs/octoseq-intel/catalog"
	"github.com/rewbs/octoseq-intel/lsp"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	extensions := flag.String("extensions", "", "YAML file with extra catalog entries to merge before starting")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	reg := catalog.Default()
	if *extensions != "" {
		reg = catalog.BuildUnsealed()
		if err := catalog.LoadExtensions(reg, *extensions); err != nil {
			fmt.Fprintf(os.Stderr, "octoseq-lsp-server: loading extensions: %v\n", err)
			os.Exit(1)
		}
		reg.Seal()
	}

	lsp.Version = version
	s := lsp.NewServer(reg)
	if err := s.RunStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "octoseq-lsp-server error: %v\n", err)
		os.Exit(1)
	}
}
