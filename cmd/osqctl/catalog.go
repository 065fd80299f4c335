package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rewbs/octoseq-intel/catalog"
)

func runCatalog(args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	format := fs.String("format", "json", "Output format: json or yaml")
	output := fs.String("output", "", "Write catalog to file instead of stdout")
	extensions := fs.String("extensions", "", "YAML file with extra catalog entries to merge first")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: osqctl catalog [options]\n\nExport the capability catalog for documentation tooling.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := loadCatalog(*extensions)
	if err != nil {
		return err
	}

	var data []byte
	switch *format {
	case "json":
		data, err = reg.ExportJSON()
	case "yaml":
		data, err = reg.ExportYAML()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", *format)
	}
	if err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, data, 0o644); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Catalog written to %s\n", *output)
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}

// loadCatalog builds the registry, merging an optional extension file before
// sealing.
func loadCatalog(extensions string) (*catalog.Registry, error) {
	if extensions == "" {
		return catalog.Build(), nil
	}
	reg := catalog.BuildUnsealed()
	if err := catalog.LoadExtensions(reg, extensions); err != nil {
		return nil, fmt.Errorf("loading extensions: %w", err)
	}
	reg.Seal()
	return reg, nil
}
