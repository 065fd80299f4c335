package intel

import (
	"github.com/rewbs/octoseq-intel/catalog"
)

// ParamInfo is one parameter of a signature overload.
type ParamInfo struct {
	Label         string
	Documentation string
}

// Signature is one callable overload presented by signature help.
type Signature struct {
	Label         string
	Documentation string
	Params        []ParamInfo
}

// SignatureInfo is the full signature-help response: every known overload of
// the enclosing call, the one best matching the argument count, and the
// parameter under the cursor.
type SignatureInfo struct {
	Signatures      []Signature
	ActiveSignature int
	ActiveParameter int
}

// SignatureHelp reports the overloads of the call the cursor sits inside,
// or nil when the cursor is not within a call or the callee is unknown.
// Never panics.
func (e *Engine) SignatureHelp(before, full string) (info *SignatureInfo) {
	defer func() {
		if recover() != nil {
			info = nil
		}
	}()

	ctx := GetCursorContext(before)
	var (
		chain  []ChainSegment
		argIdx int
	)
	switch ctx.Kind {
	case KindInCall:
		chain = ctx.Chain
		argIdx = ctx.ActiveParameter
	case KindInConfigMap:
		// A config map literal is still an argument of its function.
		chain = ParseChainBefore(ctx.ConfigMapFunction + ".")
		argIdx = 0
	default:
		return nil
	}
	if len(chain) == 0 {
		return nil
	}

	methods := e.candidateOverloads(chain, e.InferLocals(full))
	if len(methods) == 0 {
		return nil
	}

	sigs := make([]Signature, 0, len(methods))
	for _, m := range methods {
		sig := Signature{
			Label:         methodSignature(m),
			Documentation: m.Description,
		}
		for _, p := range m.Params {
			sig.Params = append(sig.Params, ParamInfo{
				Label:         paramLabel(p),
				Documentation: paramDetail(p),
			})
		}
		sigs = append(sigs, sig)
	}

	active := pickOverload(methods, argIdx)
	param := argIdx
	if n := len(methods[active].Params); n > 0 && param >= n {
		param = n - 1
	} else if n == 0 {
		param = 0
	}
	return &SignatureInfo{
		Signatures:      sigs,
		ActiveSignature: active,
		ActiveParameter: param,
	}
}

// candidateOverloads collects every method matching the callee chain. For a
// bare name that is a helper or lifecycle entry the entry's own methods are
// the overloads; for a dotted chain the owner is resolved first.
func (e *Engine) candidateOverloads(chain []ChainSegment, locals map[string]string) []*catalog.Method {
	name := chain[len(chain)-1].Name

	if len(chain) == 1 {
		if ent := e.reg.LookupPath(name); ent != nil {
			return methodsNamed(ent, name)
		}
		for _, ent := range e.reg.LookupByName(name) {
			if ms := methodsNamed(ent, name); len(ms) > 0 {
				return ms
			}
		}
		return nil
	}

	owner := chain[:len(chain)-1]
	res := e.ResolveChainSegments(owner, locals)
	if !res.Success || res.Entry == nil {
		return nil
	}
	if ms := methodsNamed(res.Entry, name); len(ms) > 0 {
		return ms
	}
	// Builder-style entries nested under a namespace (e.g. line.strip) keep
	// their callable form on the nested entry itself.
	if nested := e.reg.LookupPath(res.Entry.Path + "." + name); nested != nil {
		return methodsNamed(nested, name)
	}
	return nil
}

func methodsNamed(ent *catalog.Entry, name string) []*catalog.Method {
	var out []*catalog.Method
	for i := range ent.Methods {
		if ent.Methods[i].Name == name {
			out = append(out, &ent.Methods[i])
		}
	}
	return out
}

// pickOverload selects the first overload whose parameter list covers the
// argument index, falling back to the last one.
func pickOverload(methods []*catalog.Method, argIdx int) int {
	for i, m := range methods {
		if argIdx < len(m.Params) {
			return i
		}
	}
	return len(methods) - 1
}
