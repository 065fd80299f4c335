package main

import (
	"flag"
	"fmt"

	"github.com/rewbs/octoseq-intel/intel"
)

func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	extensions := fs.String("extensions", "", "YAML file with extra catalog entries to merge first")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: osqctl resolve [options] <chain>\n\nResolve an access chain against the catalog, e.g.\n  osqctl resolve 'inputs.mix.energy.smooth()'\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("expected exactly one chain expression")
	}

	reg, err := loadCatalog(*extensions)
	if err != nil {
		return err
	}
	engine := intel.New(reg)

	expr := fs.Arg(0)
	chain := intel.ParseChainBefore(expr + ".")
	if len(chain) == 0 {
		return fmt.Errorf("cannot parse %q as an access chain", expr)
	}

	res := engine.ResolveChainSegments(chain, nil)
	if !res.Success {
		return fmt.Errorf("resolution failed: %s", res.Err)
	}

	fmt.Printf("chain: %s\n", intel.SynthesizeChain(chain))
	if res.Entry != nil {
		fmt.Printf("entry: %s (%s)\n", res.Entry.Path, res.Entry.Kind)
		if res.Entry.Description != "" {
			fmt.Printf("doc:   %s\n", res.Entry.Description)
		}
	}
	if res.Property != nil {
		fmt.Printf("member: property %s (%s)\n", res.Property.Name, res.Property.Type)
	}
	if res.Method != nil {
		fmt.Printf("member: method %s\n", res.Method.Name)
	}
	if res.NextType != "" {
		fmt.Printf("type:  %s\n", res.NextType)
	}
	return nil
}
