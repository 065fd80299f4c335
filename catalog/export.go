package catalog

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// exportDoc is the serialized catalog shape used by documentation tooling
// and the osqctl catalog command.
type exportDoc struct {
	Entries []*Entry `json:"entries" yaml:"entries"`
}

// ExportJSON returns the whole catalog as indented JSON, entries sorted by
// path.
func (r *Registry) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(exportDoc{Entries: r.All()}, "", "  ")
}

// ExportYAML returns the whole catalog as YAML, entries sorted by path.
func (r *Registry) ExportYAML() ([]byte, error) {
	return yaml.Marshal(exportDoc{Entries: r.All()})
}
