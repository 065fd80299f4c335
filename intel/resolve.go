package intel

import (
	"fmt"

	"github.com/rewbs/octoseq-intel/catalog"
)

// Engine resolves cursor contexts against an injected, read-only catalog.
// Construct one per registry; it is safe for concurrent use.
type Engine struct {
	reg *catalog.Registry
}

// New returns an engine bound to the given catalog.
func New(reg *catalog.Registry) *Engine {
	return &Engine{reg: reg}
}

// Registry returns the catalog the engine was constructed with.
func (e *Engine) Registry() *catalog.Registry {
	return e.reg
}

// ChainResolution is the terminal state of walking a chain. Failure is a
// value, never an error or panic: Err carries a human-readable reason and is
// consumed by providers to trigger fallback behavior, not shown to users.
type ChainResolution struct {
	Success  bool
	Entry    *catalog.Entry    // the resolved entry (type of the final segment)
	Property *catalog.Property // set when the final segment landed on a property
	Method   *catalog.Method   // set when the final segment landed on a method
	NextType string            // declared type annotation of the final member, if any
	Err      string
}

func failure(format string, args ...any) ChainResolution {
	return ChainResolution{Err: fmt.Sprintf(format, args...)}
}

// ResolveChainSegments walks segments root-to-leaf against the catalog,
// optionally seeded with locally inferred variable types (name -> type name).
// Deterministic: duplicate member names resolve to the first declaration.
// Never panics.
func (e *Engine) ResolveChainSegments(segments []ChainSegment, locals map[string]string) (res ChainResolution) {
	defer func() {
		if recover() != nil {
			res = failure("internal resolution failure")
		}
	}()

	if len(segments) == 0 {
		return failure("empty chain")
	}

	cur, res := e.resolveRoot(segments[0], locals)
	if cur == nil {
		return res
	}
	if len(segments) == 1 && res.Success {
		res.Entry = cur
		return res
	}

	for i := 1; i < len(segments); i++ {
		seg := segments[i]
		final := i == len(segments)-1

		if seg.Kind == SegmentIndex {
			next := e.resolveElement(cur)
			if next == nil {
				return failure("cannot index %s with a string key", cur.Name)
			}
			cur = next
			continue
		}

		next, memberRes, ok := e.resolveMember(cur, seg.Name)
		if !ok {
			return failure("unknown member: %s on %s", seg.Name, cur.Name)
		}
		if next == nil {
			// Terminal property/method whose type has no entry.
			return memberRes
		}
		cur = next
		if final {
			memberRes.Entry = cur
			return memberRes
		}
	}

	return ChainResolution{Success: true, Entry: cur}
}

// resolveRoot resolves the first chain segment: a local variable's inferred
// type, a direct path, or a by-name lookup, in that order. A call at the
// root chains through the callee's yield type, since helpers and lifecycle
// hooks are entries carrying a self-named method.
func (e *Engine) resolveRoot(root ChainSegment, locals map[string]string) (*catalog.Entry, ChainResolution) {
	if root.Kind == SegmentIndex {
		return nil, failure("chain cannot start with an index")
	}

	var ent *catalog.Entry
	if typeName, ok := locals[root.Name]; ok {
		ent = e.reg.ResolveType(typeName)
		if ent == nil {
			// Locals can also alias non-type entries (a namespace, a builder).
			if matches := e.reg.LookupByName(typeName); len(matches) > 0 {
				ent = matches[0]
			}
		}
		if ent == nil {
			return nil, failure("local %q has unresolvable type %q", root.Name, typeName)
		}
	} else if ent = e.reg.LookupPath(root.Name); ent == nil {
		if matches := e.reg.LookupByName(root.Name); len(matches) > 0 {
			ent = matches[0]
		}
	}
	if ent == nil {
		return nil, failure("unknown identifier: %s", root.Name)
	}

	if root.Kind == SegmentCall {
		if next, res, ok := e.resolveMember(ent, root.Name); ok {
			return next, res
		}
	}
	return ent, ChainResolution{}
}

// resolveElement applies the string-keyed collection rule: indexing a
// collection entry substitutes its fixed element type.
func (e *Engine) resolveElement(cur *catalog.Entry) *catalog.Entry {
	if cur.ElementType == "" {
		return nil
	}
	return e.reg.ResolveType(cur.ElementType)
}

// resolveMember resolves one named segment on cur. Returns the next entry to
// walk into, a partial resolution describing the member, and whether the
// member exists at all. A nil next entry with ok=true means the member is
// terminal: its declared type does not resolve to an entry, so the walk
// stops on the member itself.
func (e *Engine) resolveMember(cur *catalog.Entry, name string) (*catalog.Entry, ChainResolution, bool) {
	for i := range cur.Properties {
		p := &cur.Properties[i]
		if p.Name != name {
			continue
		}
		res := ChainResolution{Success: true, Entry: cur, Property: p, NextType: p.Type}
		return e.reg.ResolveType(p.Type), res, true
	}

	for i := range cur.Methods {
		m := &cur.Methods[i]
		if m.Name != name {
			continue
		}
		// First declared overload wins; argument-count disambiguation is a
		// provider concern.
		yield := m.ChainsTo
		if yield == "" {
			yield = m.Returns
		}
		res := ChainResolution{Success: true, Entry: cur, Method: m, NextType: yield}
		return e.reg.ResolveType(yield), res, true
	}

	// Nested entry reachable by extending the current path, for dotted
	// sub-namespaces.
	if nested := e.reg.LookupPath(cur.Path + "." + name); nested != nil {
		return nested, ChainResolution{Success: true, Entry: nested}, true
	}

	return nil, ChainResolution{}, false
}
