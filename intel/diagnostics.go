package intel

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rewbs/octoseq-intel/catalog"
)

// DiagnosticSeverity mirrors the advisory levels diagnostics can carry.
// Lints here are never errors: nothing the engine reports blocks the script.
type DiagnosticSeverity string

const (
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityInfo    DiagnosticSeverity = "info"
)

// Location is a zero-based line and column within the document.
type Location struct {
	Line   int
	Column int
}

// Diagnostic is one advisory lint finding.
type Diagnostic struct {
	Severity    DiagnosticSeverity
	Message     string
	Location    Location
	Length      int // length of the flagged token
	Suggestions []string
}

// configCallRe matches `fn.path(#{` so the key region of the literal can be
// checked against the function's declared schema.
var configCallRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_.]*)\s*\(\s*#\{`)

// memberCallRe matches `ident.member(` for member-existence checks against
// the resolved root.
var memberCallRe = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\.([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

// RunDiagnostics scans the whole document for advisory lints: unknown keys
// inside config-map call arguments, and unknown members invoked on roots
// that resolve. The result is never nil. Never panics.
func (e *Engine) RunDiagnostics(full string) (out []Diagnostic) {
	out = []Diagnostic{}
	defer func() {
		if recover() != nil {
			out = []Diagnostic{}
		}
	}()

	locals := e.InferLocals(full)
	out = append(out, e.lintConfigKeys(full)...)
	out = append(out, e.lintMemberCalls(full, locals)...)
	return out
}

// lintConfigKeys flags keys in `fn(#{ ... })` literals that the function's
// schema does not declare.
func (e *Engine) lintConfigKeys(full string) []Diagnostic {
	var out []Diagnostic
	for _, m := range configCallRe.FindAllStringSubmatchIndex(full, -1) {
		fnPath := full[m[2]:m[3]]
		schema := e.reg.ConfigMapFor(fnPath)
		if schema == nil {
			continue
		}
		known := make([]string, 0, len(schema.ConfigMapKeys))
		for _, k := range schema.ConfigMapKeys {
			known = append(known, k.Name)
		}

		body, bodyStart := configLiteralBody(full, m[1])
		for _, km := range configKeyRe.FindAllStringSubmatchIndex(body, -1) {
			key := body[km[2]:km[3]]
			if containsString(known, key) {
				continue
			}
			at := bodyStart + km[2]
			out = append(out, Diagnostic{
				Severity:    SeverityWarning,
				Message:     fmt.Sprintf("unknown option %q for %s", key, fnPath),
				Location:    locationAt(full, at),
				Length:      len(key),
				Suggestions: nearMisses(key, known, 2, 3),
			})
		}
	}
	return out
}

// configLiteralBody returns the text between the `#{` at end and its
// matching `}` (or end of document when unterminated), plus the body's
// offset.
func configLiteralBody(full string, end int) (string, int) {
	depth := 1
	i := end
	for i < len(full) && depth > 0 {
		switch full[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '"', '\'':
			q := full[i]
			i++
			for i < len(full) && full[i] != q {
				if full[i] == '\\' {
					i++
				}
				i++
			}
		}
		i++
	}
	stop := i
	if depth == 0 {
		stop = i - 1
	}
	return full[end:stop], end
}

// lintMemberCalls flags `ident.member(` where ident resolves to a catalog
// entry that declares neither the member method nor property. Unresolvable
// roots are skipped: the engine only reports what it positively knows.
func (e *Engine) lintMemberCalls(full string, locals map[string]string) []Diagnostic {
	var out []Diagnostic
	for _, m := range memberCallRe.FindAllStringSubmatchIndex(full, -1) {
		root := full[m[2]:m[3]]
		member := full[m[4]:m[5]]
		if root == "let" {
			continue
		}

		res := e.ResolveChainSegments([]ChainSegment{{Kind: SegmentIdent, Name: root}}, locals)
		if !res.Success || res.Entry == nil {
			continue
		}
		ent := res.Entry
		if entryHasMember(ent, member) || e.reg.LookupPath(ent.Path+"."+member) != nil {
			continue
		}

		candidates := append(memberNames(ent), childEntryNames(e.reg, ent)...)
		sev := SeverityWarning
		if len(ent.Methods) == 0 && len(ent.Properties) == 0 {
			sev = SeverityInfo
		}
		out = append(out, Diagnostic{
			Severity:    sev,
			Message:     fmt.Sprintf("%s has no member %q", ent.Name, member),
			Location:    locationAt(full, m[4]),
			Length:      len(member),
			Suggestions: nearMisses(member, candidates, 2, 3),
		})
	}
	return out
}

func entryHasMember(ent *catalog.Entry, name string) bool {
	for _, p := range ent.Properties {
		if p.Name == name {
			return true
		}
	}
	for i := range ent.Methods {
		if ent.Methods[i].Name == name {
			return true
		}
	}
	return false
}

func memberNames(ent *catalog.Entry) []string {
	seen := map[string]bool{}
	var names []string
	for _, p := range ent.Properties {
		if !seen[p.Name] {
			seen[p.Name] = true
			names = append(names, p.Name)
		}
	}
	for i := range ent.Methods {
		n := ent.Methods[i].Name
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	return names
}

func childEntryNames(reg *catalog.Registry, ent *catalog.Entry) []string {
	prefix := ent.Path + "."
	var names []string
	for _, other := range reg.All() {
		rest, ok := strings.CutPrefix(other.Path, prefix)
		if !ok || strings.Contains(rest, ".") || other.Kind == catalog.KindConfigMap {
			continue
		}
		names = append(names, rest)
	}
	return names
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// locationAt converts a byte offset into a zero-based line/column pair.
func locationAt(text string, offset int) Location {
	line, col := 0, 0
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return Location{Line: line, Column: col}
}
