// Package catalog holds the static capability catalog for the oseq scripting
// DSL: every namespace, type, builder, config-map schema, and lifecycle hook
// the script runtime exposes, with enough metadata to drive completions,
// hover documentation, parameter hints, and lint diagnostics.
//
// The catalog is built once, is immutable after Seal, and is indexed by
// fully-qualified path, by short name, and by entry kind. Nothing in this
// package performs I/O except LoadExtensions.
package catalog

import (
	"sort"
	"sync"
)

// Kind classifies a catalog entry.
type Kind string

const (
	KindNamespace Kind = "namespace"
	KindBuilder   Kind = "builder"
	KindMethod    Kind = "method"
	KindProperty  Kind = "property"
	KindConfigMap Kind = "config-map"
	KindType      Kind = "type"
	KindLifecycle Kind = "lifecycle"
	KindHelper    Kind = "helper"
)

// Primitive type names. A type reference on a property or method either names
// one of these or resolves to a catalog entry by name.
var primitives = map[string]bool{
	"float":  true,
	"int":    true,
	"bool":   true,
	"string": true,
	"void":   true,
	"any":    true,
	"unit":   true,
}

// IsPrimitive reports whether name is a primitive type name. Union
// annotations ("float | Signal") are split by the caller.
func IsPrimitive(name string) bool {
	return primitives[name]
}

// Param describes a parameter of a method, or a key of a config map.
// All of it is advisory metadata for hints; nothing here is enforced.
type Param struct {
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"` // may be a union, e.g. "float | Signal"
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Optional    bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	Default     any      `json:"default,omitempty" yaml:"default,omitempty"`
	Min         *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Enum        []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Property describes a readable member of an entry.
type Property struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly    bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

// Method describes a callable member of an entry. ChainsTo names the type a
// fluent call yields for further chaining; Returns is the plain return type.
// ChainsTo wins over Returns during chain resolution.
type Method struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Params      []Param `json:"params,omitempty" yaml:"params,omitempty"`
	Returns     string  `json:"returns,omitempty" yaml:"returns,omitempty"`
	ChainsTo    string  `json:"chainsTo,omitempty" yaml:"chainsTo,omitempty"`
}

// Entry is one catalog record. Path is the stable identity: dot-separated and
// unique across the catalog. Renaming a path is a breaking change for any
// tooling that stored it.
type Entry struct {
	Kind          Kind       `json:"kind" yaml:"kind"`
	Name          string     `json:"name" yaml:"name"`
	Path          string     `json:"path" yaml:"path"`
	Description   string     `json:"description,omitempty" yaml:"description,omitempty"`
	Properties    []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods       []Method   `json:"methods,omitempty" yaml:"methods,omitempty"`
	ConfigMapKeys []Param    `json:"configMapKeys,omitempty" yaml:"configMapKeys,omitempty"`
	Parent        string     `json:"parent,omitempty" yaml:"parent,omitempty"`
	Example       string     `json:"example,omitempty" yaml:"example,omitempty"`

	// ElementType names the entry yielded by a quoted bracket index on this
	// entry ("collection["key"]"), for string-keyed collection types.
	ElementType string `json:"elementType,omitempty" yaml:"elementType,omitempty"`
	// ElementKeys lists the well-known keys of a string-keyed collection,
	// used for bracket-key completion.
	ElementKeys []string `json:"elementKeys,omitempty" yaml:"elementKeys,omitempty"`
}

// Registry is the immutable capability catalog plus its derived indices.
type Registry struct {
	byPath map[string]*Entry
	byName map[string][]string // short name -> paths (many-to-many)
	byKind map[Kind][]string
	sealed bool
	notes  []string
}

// newRegistry returns an empty, unsealed registry.
func newRegistry() *Registry {
	return &Registry{
		byPath: make(map[string]*Entry),
		byName: make(map[string][]string),
		byKind: make(map[Kind][]string),
	}
}

// Register adds an entry under its path. Duplicate paths are rejected: the
// first registration wins and the collision is recorded as a build note for
// the validator to surface. Registration after Seal is likewise a no-op
// recorded as a note. Never panics.
func (r *Registry) Register(e *Entry) {
	if e == nil || e.Path == "" {
		r.notes = append(r.notes, "rejected entry with empty path")
		return
	}
	if r.sealed {
		r.notes = append(r.notes, "rejected registration after seal: "+e.Path)
		return
	}
	if _, exists := r.byPath[e.Path]; exists {
		r.notes = append(r.notes, "duplicate path rejected: "+e.Path)
		return
	}
	r.byPath[e.Path] = e
	r.byName[e.Name] = append(r.byName[e.Name], e.Path)
	r.byKind[e.Kind] = append(r.byKind[e.Kind], e.Path)
}

// Seal marks the registry read-only. Derived indices may be cached
// indefinitely by consumers once Seal has been called.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// BuildNotes returns any anomalies recorded during construction (duplicate
// paths, post-seal registrations). Empty on a clean build.
func (r *Registry) BuildNotes() []string {
	out := make([]string, len(r.notes))
	copy(out, r.notes)
	return out
}

// LookupPath returns the entry registered under the given fully-qualified
// path, or nil.
func (r *Registry) LookupPath(path string) *Entry {
	return r.byPath[path]
}

// LookupByName returns all entries sharing the given short name, in
// registration order. Multiple entries may share a name (a builder method
// "add" vs a namespace method "add").
func (r *Registry) LookupByName(name string) []*Entry {
	paths := r.byName[name]
	out := make([]*Entry, 0, len(paths))
	for _, p := range paths {
		if e := r.byPath[p]; e != nil {
			out = append(out, e)
		}
	}
	return out
}

// EntriesByKind returns the paths of all entries of the given kind, sorted.
func (r *Registry) EntriesByKind(kind Kind) []string {
	paths := r.byKind[kind]
	out := make([]string, len(paths))
	copy(out, paths)
	sort.Strings(out)
	return out
}

// All returns every entry, sorted by path.
func (r *Registry) All() []*Entry {
	paths := make([]string, 0, len(r.byPath))
	for p := range r.byPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	out := make([]*Entry, 0, len(paths))
	for _, p := range paths {
		out = append(out, r.byPath[p])
	}
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.byPath)
}

// ConfigMapFor returns the config-map schema entry for a callable at fnPath,
// or nil. Schemas are registered under "<fn path>.options".
func (r *Registry) ConfigMapFor(fnPath string) *Entry {
	e := r.byPath[fnPath+".options"]
	if e == nil || e.Kind != KindConfigMap {
		return nil
	}
	return e
}

// ResolveType resolves a type annotation to a catalog entry by name. Union
// annotations resolve to their first non-primitive alternative. Returns nil
// for primitives and unknown names; callers degrade to "unknown type" rather
// than failing.
func (r *Registry) ResolveType(annotation string) *Entry {
	for _, alt := range splitUnion(annotation) {
		if IsPrimitive(alt) {
			continue
		}
		for _, e := range r.LookupByName(alt) {
			if e.Kind == KindType {
				return e
			}
		}
	}
	return nil
}

// splitUnion splits a "float | Signal" style annotation into its
// alternatives, trimming whitespace.
func splitUnion(annotation string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(annotation); i++ {
		if i == len(annotation) || annotation[i] == '|' {
			alt := trim(annotation[start:i])
			if alt != "" {
				out = append(out, alt)
			}
			start = i + 1
		}
	}
	return out
}

func trim(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}

// Build constructs the catalog from the built-in entry groups and seals it.
// Pure and deterministic: two calls yield registries with identical entry
// sets and indices.
func Build() *Registry {
	r := newRegistry()
	registerNamespaces(r)
	registerSignalTypes(r)
	registerEntityTypes(r)
	registerConfigMaps(r)
	registerLifecycle(r)
	registerHelpers(r)
	r.Seal()
	return r
}

// BuildUnsealed constructs the catalog without sealing, so that extension
// entries can be merged in before use. Callers must Seal before handing the
// registry to the engine.
func BuildUnsealed() *Registry {
	r := newRegistry()
	registerNamespaces(r)
	registerSignalTypes(r)
	registerEntityTypes(r)
	registerConfigMaps(r)
	registerLifecycle(r)
	registerHelpers(r)
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide catalog, built lazily on first use.
// Only composition boundaries (the LSP server, CLI commands) should call
// this; engine code takes an explicit *Registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = Build()
	})
	return defaultReg
}
