package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rewbs/octoseq-intel/intel"
)

func runLint(args []string) error {
	fs := flag.NewFlagSet("lint", flag.ExitOnError)
	extensions := fs.String("extensions", "", "YAML file with extra catalog entries to merge first")
	quiet := fs.Bool("quiet", false, "Suppress info-level findings")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: osqctl lint [options] <script.oseq> [more scripts...]\n\nLint oseq scripts: unknown config-map keys and unknown members, with suggestions.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no script files given")
	}

	reg, err := loadCatalog(*extensions)
	if err != nil {
		return err
	}
	engine := intel.New(reg)

	total := 0
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, d := range engine.RunDiagnostics(string(data)) {
			if *quiet && d.Severity == intel.SeverityInfo {
				continue
			}
			total++
			fmt.Printf("%s:%d:%d: %s: %s", path, d.Location.Line+1, d.Location.Column+1, d.Severity, d.Message)
			if len(d.Suggestions) > 0 {
				fmt.Printf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
			}
			fmt.Println()
		}
	}
	if total > 0 {
		fmt.Printf("%d finding(s)\n", total)
	}
	return nil
}
