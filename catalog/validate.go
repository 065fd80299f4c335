package catalog

import (
	"fmt"
	"strings"
)

// Severity ranks a validation issue. Validation is a dev-time aid: it never
// blocks a build and never panics.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
	SeverityInfo  Severity = "info"
)

// ValidationIssue is a single finding from Validate, with the path of the
// offending entry and a human-readable message.
type ValidationIssue struct {
	Path     string
	Severity Severity
	Message  string
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s: [%s] %s", i.Path, i.Severity, i.Message)
}

// Validate cross-checks the catalog: every type reference on a property,
// method, or config-map key must resolve to a known entry or a primitive,
// every config-map must declare at least one key, and entries should carry
// descriptions. Build notes (duplicate paths, post-seal registrations) are
// surfaced as errors.
func (r *Registry) Validate() []ValidationIssue {
	var issues []ValidationIssue

	for _, note := range r.notes {
		issues = append(issues, ValidationIssue{Severity: SeverityError, Message: note})
	}

	for _, e := range r.All() {
		issues = append(issues, r.validateEntry(e)...)
	}
	return issues
}

func (r *Registry) validateEntry(e *Entry) []ValidationIssue {
	var issues []ValidationIssue

	add := func(sev Severity, format string, args ...any) {
		issues = append(issues, ValidationIssue{
			Path:     e.Path,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	if e.Description == "" {
		add(SeverityInfo, "entry has no description")
	}
	if e.Name == "" {
		add(SeverityError, "entry has no short name")
	}
	if e.Parent != "" && r.LookupPath(e.Parent) == nil {
		add(SeverityWarn, "parent %q does not resolve to an entry", e.Parent)
	}

	for _, p := range e.Properties {
		if !r.typeResolves(p.Type) {
			add(SeverityWarn, "property %q has unresolved type %q", p.Name, p.Type)
		}
	}

	for _, m := range e.Methods {
		if m.Returns != "" && !r.typeResolves(m.Returns) {
			add(SeverityWarn, "method %q has unresolved return type %q", m.Name, m.Returns)
		}
		if m.ChainsTo != "" && !r.typeResolves(m.ChainsTo) {
			add(SeverityWarn, "method %q chains to unresolved type %q", m.Name, m.ChainsTo)
		}
		for _, p := range m.Params {
			if p.Type == "config-map" {
				continue
			}
			if !r.typeResolves(p.Type) {
				add(SeverityWarn, "method %q parameter %q has unresolved type %q", m.Name, p.Name, p.Type)
			}
		}
	}

	if e.Kind == KindConfigMap {
		if len(e.ConfigMapKeys) == 0 {
			add(SeverityError, "config-map declares no keys")
		}
		fnPath := strings.TrimSuffix(e.Path, ".options")
		if fnPath == e.Path {
			add(SeverityWarn, "config-map path does not end in .options; ConfigMapFor will not find it")
		}
	}

	if e.ElementType != "" && !r.typeResolves(e.ElementType) {
		add(SeverityWarn, "element type %q does not resolve", e.ElementType)
	}

	return issues
}

// typeResolves reports whether every alternative of a (possibly union) type
// annotation names a primitive or a known entry.
func (r *Registry) typeResolves(annotation string) bool {
	alts := splitUnion(annotation)
	if len(alts) == 0 {
		return false
	}
	for _, alt := range alts {
		if IsPrimitive(alt) {
			continue
		}
		if len(r.LookupByName(alt)) == 0 {
			return false
		}
	}
	return true
}
