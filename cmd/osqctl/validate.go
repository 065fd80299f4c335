package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rewbs/octoseq-intel/catalog"
)

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	extensions := fs.String("extensions", "", "YAML file with extra catalog entries to merge first")
	strict := fs.Bool("strict", false, "Treat warnings as failures")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: osqctl validate [options]\n\nValidate the capability catalog: duplicate paths, unresolved type references, empty schemas.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := loadCatalog(*extensions)
	if err != nil {
		return err
	}

	issues := reg.Validate()
	failed := false
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "%s: %s: %s\n", issue.Severity, issue.Path, issue.Message)
		switch issue.Severity {
		case catalog.SeverityError:
			failed = true
		case catalog.SeverityWarn:
			if *strict {
				failed = true
			}
		}
	}
	if failed {
		return fmt.Errorf("catalog validation failed with %d issue(s)", len(issues))
	}
	fmt.Printf("catalog OK: %d entries, %d advisory issue(s)\n", reg.Len(), len(issues))
	return nil
}
