package intel

import (
	"sort"
	"strings"

	"github.com/rewbs/octoseq-intel/catalog"
)

// CompletionKind classifies a suggestion for the host editor's item icons.
type CompletionKind string

const (
	CompletionNamespace CompletionKind = "namespace"
	CompletionProperty  CompletionKind = "property"
	CompletionMethod    CompletionKind = "method"
	CompletionKey       CompletionKind = "key"
	CompletionValue     CompletionKind = "value"
	CompletionLifecycle CompletionKind = "lifecycle"
	CompletionHelper    CompletionKind = "helper"
	CompletionLocal     CompletionKind = "local"
)

// Completion is one editor-neutral suggestion. InsertText defaults to Label
// when empty.
type Completion struct {
	Label         string
	Kind          CompletionKind
	Detail        string
	Documentation string
	InsertText    string
}

// Complete produces the suggestion list for the cursor position. before is
// the document text truncated at the cursor; full is the whole document
// (used for local-variable inference). Never panics; returns an empty slice
// when there is nothing to offer.
func (e *Engine) Complete(before, full string) (items []Completion) {
	defer func() {
		if recover() != nil {
			items = []Completion{}
		}
	}()

	ctx := GetCursorContext(before)
	locals := e.InferLocals(full)

	switch ctx.Kind {
	case KindTopLevel:
		return e.globalCompletions(ctx.Prefix, locals)
	case KindAfterDot:
		return e.memberCompletions(ctx.Chain, locals)
	case KindInConfigMap:
		return e.configMapCompletions(ctx)
	case KindInBracketKey:
		return e.bracketKeyCompletions(ctx, locals)
	case KindInCall:
		// Typing an argument expression: bare identifiers are plausible.
		return e.globalCompletions("", locals)
	default:
		// In-string and unknown contexts suppress completion.
		return []Completion{}
	}
}

// globalCompletions offers namespace, builder, lifecycle, and helper names
// plus in-scope locals, filtered by prefix.
func (e *Engine) globalCompletions(prefix string, locals map[string]string) []Completion {
	items := []Completion{}

	add := func(kind CompletionKind, paths []string) {
		for _, p := range paths {
			ent := e.reg.LookupPath(p)
			if ent == nil || !hasPrefixFold(ent.Name, prefix) {
				continue
			}
			items = append(items, Completion{
				Label:         ent.Name,
				Kind:          kind,
				Detail:        string(ent.Kind),
				Documentation: ent.Description,
			})
		}
	}

	add(CompletionNamespace, e.reg.EntriesByKind(catalog.KindNamespace))
	add(CompletionNamespace, e.reg.EntriesByKind(catalog.KindBuilder))
	add(CompletionLifecycle, e.reg.EntriesByKind(catalog.KindLifecycle))
	add(CompletionHelper, e.reg.EntriesByKind(catalog.KindHelper))

	names := make([]string, 0, len(locals))
	for name := range locals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !hasPrefixFold(name, prefix) {
			continue
		}
		items = append(items, Completion{
			Label:  name,
			Kind:   CompletionLocal,
			Detail: locals[name],
		})
	}
	return items
}

// memberCompletions resolves the chain and offers the resulting entry's
// properties, grouped method overloads, and nested namespace children. When
// the chain does not resolve, a curated union of common entity members keeps
// completion useful after an any-typed or unknown root.
func (e *Engine) memberCompletions(chain []ChainSegment, locals map[string]string) []Completion {
	res := e.ResolveChainSegments(chain, locals)
	if !res.Success || res.Entry == nil {
		return e.commonMemberFallback()
	}
	return e.entryMembers(res.Entry)
}

func (e *Engine) entryMembers(ent *catalog.Entry) []Completion {
	items := []Completion{}

	for _, p := range ent.Properties {
		items = append(items, Completion{
			Label:         p.Name,
			Kind:          CompletionProperty,
			Detail:        p.Type,
			Documentation: p.Description,
		})
	}

	// Group overloads: one suggestion per method name.
	seen := map[string]int{}
	for i := range ent.Methods {
		m := &ent.Methods[i]
		if idx, ok := seen[m.Name]; ok {
			items[idx].Detail = "multiple overloads"
			continue
		}
		items = append(items, Completion{
			Label:         m.Name,
			Kind:          CompletionMethod,
			Detail:        methodSignature(m),
			Documentation: m.Description,
		})
		seen[m.Name] = len(items) - 1
	}

	// Nested entries reachable by one more path step, excluding config-map
	// schemas which are call metadata rather than members.
	prefix := ent.Path + "."
	for _, child := range e.reg.All() {
		if child.Kind == catalog.KindConfigMap {
			continue
		}
		rest, ok := strings.CutPrefix(child.Path, prefix)
		if !ok || strings.Contains(rest, ".") {
			continue
		}
		items = append(items, Completion{
			Label:         child.Name,
			Kind:          CompletionNamespace,
			Detail:        string(child.Kind),
			Documentation: child.Description,
		})
	}
	return items
}

// commonMemberFallback offers the union of members shared by every entity
// type, so typing after an unresolvable root still yields plausible
// suggestions.
func (e *Engine) commonMemberFallback() []Completion {
	items := []Completion{}
	seen := map[string]bool{}
	for _, path := range e.reg.EntriesByKind(catalog.KindType) {
		ent := e.reg.LookupPath(path)
		if ent == nil || !strings.HasSuffix(ent.Name, "Entity") {
			continue
		}
		for _, p := range ent.Properties {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			items = append(items, Completion{
				Label:         p.Name,
				Kind:          CompletionProperty,
				Detail:        p.Type,
				Documentation: p.Description,
			})
		}
		for i := range ent.Methods {
			m := &ent.Methods[i]
			if seen[m.Name] {
				continue
			}
			seen[m.Name] = true
			items = append(items, Completion{
				Label:         m.Name,
				Kind:          CompletionMethod,
				Detail:        methodSignature(m),
				Documentation: m.Description,
			})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Label < items[j].Label })
	return items
}

// configMapCompletions offers schema keys not yet present, or enum/bool
// value suggestions when the cursor is in value position.
func (e *Engine) configMapCompletions(ctx CursorContext) []Completion {
	schema := e.reg.ConfigMapFor(ctx.ConfigMapFunction)
	if schema == nil {
		return []Completion{}
	}

	if ctx.InValue {
		return e.configValueCompletions(schema, ctx)
	}

	present := map[string]bool{}
	for _, k := range ctx.ExistingKeys {
		present[k] = true
	}

	items := []Completion{}
	for _, key := range schema.ConfigMapKeys {
		if present[key.Name] || !hasPrefixFold(key.Name, ctx.PartialKey) {
			continue
		}
		items = append(items, Completion{
			Label:         key.Name,
			Kind:          CompletionKey,
			Detail:        paramDetail(key),
			Documentation: key.Description,
			InsertText:    key.Name + ": ",
		})
	}
	return items
}

// configValueCompletions suggests enum members or booleans for the key the
// cursor's value belongs to (the last key typed before the cursor).
func (e *Engine) configValueCompletions(schema *catalog.Entry, ctx CursorContext) []Completion {
	if len(ctx.ExistingKeys) == 0 {
		return []Completion{}
	}
	active := ctx.ExistingKeys[len(ctx.ExistingKeys)-1]

	for _, key := range schema.ConfigMapKeys {
		if key.Name != active {
			continue
		}
		items := []Completion{}
		for _, v := range key.Enum {
			items = append(items, Completion{
				Label:      v,
				Kind:       CompletionValue,
				Detail:     "string",
				InsertText: `"` + v + `"`,
			})
		}
		if len(items) == 0 && key.Type == "bool" {
			items = append(items,
				Completion{Label: "true", Kind: CompletionValue, Detail: "bool"},
				Completion{Label: "false", Kind: CompletionValue, Detail: "bool"},
			)
		}
		return items
	}
	return []Completion{}
}

// bracketKeyCompletions offers the declared keys of a string-keyed
// collection, matched case-insensitively against the partial key.
func (e *Engine) bracketKeyCompletions(ctx CursorContext, locals map[string]string) []Completion {
	res := e.ResolveChainSegments(ctx.Chain, locals)
	if !res.Success || res.Entry == nil || len(res.Entry.ElementKeys) == 0 {
		return []Completion{}
	}

	partial := strings.TrimSpace(ctx.PartialKey)
	items := []Completion{}
	for _, key := range res.Entry.ElementKeys {
		if partial != "" && !hasPrefixFold(key, partial) {
			continue
		}
		insert := key
		if !ctx.QuoteOpen {
			insert = `"` + key + `"]`
		}
		items = append(items, Completion{
			Label:      key,
			Kind:       CompletionKey,
			Detail:     res.Entry.ElementType,
			InsertText: insert,
		})
	}
	return items
}
