package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ExtensionFile is the on-disk shape of a catalog extension: extra entries
// contributed by a plugin or theme pack, merged into the registry before it
// is sealed.
type ExtensionFile struct {
	Name    string   `yaml:"name"`
	Entries []*Entry `yaml:"entries"`
}

// LoadExtensions reads a YAML extension file and registers its entries.
// The registry must not be sealed yet; entries colliding with built-in paths
// are rejected through the normal Register policy and show up in BuildNotes.
func LoadExtensions(r *Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read extension file: %w", err)
	}
	return MergeExtensions(r, data)
}

// MergeExtensions parses extension YAML and registers its entries.
func MergeExtensions(r *Registry, data []byte) error {
	var ext ExtensionFile
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return fmt.Errorf("parse extension file: %w", err)
	}
	if r.Sealed() {
		return fmt.Errorf("registry is sealed; extensions must be merged before first use")
	}
	for _, e := range ext.Entries {
		r.Register(e)
	}
	return nil
}
