package intel

import (
	"fmt"
	"strings"

	"github.com/rewbs/octoseq-intel/catalog"
)

// HoverInfo is the documentation shown for the token under the cursor.
type HoverInfo struct {
	Title         string // qualified name, e.g. "fx.bloom" or "Signal.smooth"
	Signature     string // rendered signature for callables
	Detail        string // type or kind information
	Documentation string
}

// Markdown renders the hover as the markdown block handed to the host
// editor.
func (h *HoverInfo) Markdown() string {
	var sb strings.Builder
	sb.WriteString("**")
	sb.WriteString(h.Title)
	sb.WriteString("**")
	if h.Detail != "" {
		sb.WriteString(" — ")
		sb.WriteString(h.Detail)
	}
	sb.WriteString("\n\n")
	if h.Signature != "" {
		sb.WriteString("`")
		sb.WriteString(h.Signature)
		sb.WriteString("`\n\n")
	}
	if h.Documentation != "" {
		sb.WriteString(h.Documentation)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Hover resolves the token under the cursor, preferentially as: a config-map
// key documented by its function's schema, a global entry, a resolved chain
// member, a locally inferred variable, or any method sharing the name
// anywhere in the catalog. Returns nil when there is nothing to show. Never
// panics.
func (e *Engine) Hover(before, full string) (info *HoverInfo) {
	defer func() {
		if recover() != nil {
			info = nil
		}
	}()

	word, wordStart := wordAt(before, full)
	if word == "" {
		return nil
	}
	head := full[:wordStart]

	if h := e.hoverConfigKey(head, word); h != nil {
		return h
	}
	if h := e.hoverGlobal(head, word); h != nil {
		return h
	}
	if h := e.hoverChainMember(head, word, e.InferLocals(full)); h != nil {
		return h
	}
	if h := e.hoverLocal(word, e.InferLocals(full)); h != nil {
		return h
	}
	return e.hoverAnyMethod(word)
}

// wordAt joins the identifier run ending at the cursor with the run starting
// at it, returning the whole word and its start offset in full.
func wordAt(before, full string) (string, int) {
	tail, start := trailingIdent(before)
	end := len(before)
	for end < len(full) && isIdentByte(full[end]) {
		end++
	}
	word := tail + full[len(before):end]
	if word == "" || !isIdentStart(word[0]) {
		return "", 0
	}
	return word, start
}

// hoverConfigKey documents word as a key of the config map the cursor sits
// in.
func (e *Engine) hoverConfigKey(head, word string) *HoverInfo {
	ctx := GetCursorContext(head)
	if ctx.Kind != KindInConfigMap {
		return nil
	}
	schema := e.reg.ConfigMapFor(ctx.ConfigMapFunction)
	if schema == nil {
		return nil
	}
	for _, key := range schema.ConfigMapKeys {
		if key.Name == word {
			return &HoverInfo{
				Title:         ctx.ConfigMapFunction + " · " + key.Name,
				Detail:        paramDetail(key),
				Documentation: key.Description,
			}
		}
	}
	return nil
}

// hoverGlobal documents word as a top-level catalog entry. Only applies when
// the word is not preceded by a dot (a member position).
func (e *Engine) hoverGlobal(head, word string) *HoverInfo {
	trimmed := trimTrailingSpace(head)
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '.' {
		return nil
	}
	var ent *catalog.Entry
	if ent = e.reg.LookupPath(word); ent == nil {
		for _, m := range e.reg.LookupByName(word) {
			if m.Path == m.Name { // top-level entries only
				ent = m
				break
			}
		}
	}
	if ent == nil {
		return nil
	}
	h := &HoverInfo{
		Title:         ent.Path,
		Detail:        string(ent.Kind),
		Documentation: ent.Description,
	}
	if len(ent.Methods) == 1 && (ent.Kind == catalog.KindHelper || ent.Kind == catalog.KindLifecycle) {
		h.Signature = methodSignature(&ent.Methods[0])
	}
	if ent.Example != "" {
		h.Documentation += "\n\n```oseq\n" + ent.Example + "\n```"
	}
	return h
}

// hoverChainMember documents word as a member of the chain preceding it.
func (e *Engine) hoverChainMember(head, word string, locals map[string]string) *HoverInfo {
	trimmed := trimTrailingSpace(head)
	if len(trimmed) == 0 || trimmed[len(trimmed)-1] != '.' {
		return nil
	}
	chain := ParseChainBefore(trimmed)
	if len(chain) == 0 {
		return nil
	}
	res := e.ResolveChainSegments(chain, locals)
	if !res.Success || res.Entry == nil {
		return nil
	}
	owner := res.Entry

	for _, p := range owner.Properties {
		if p.Name == word {
			return &HoverInfo{
				Title:         owner.Name + "." + p.Name,
				Detail:        p.Type,
				Documentation: p.Description,
			}
		}
	}
	for i := range owner.Methods {
		m := &owner.Methods[i]
		if m.Name == word {
			return &HoverInfo{
				Title:         owner.Name + "." + m.Name,
				Signature:     methodSignature(m),
				Documentation: m.Description,
			}
		}
	}
	if nested := e.reg.LookupPath(owner.Path + "." + word); nested != nil {
		return &HoverInfo{
			Title:         nested.Path,
			Detail:        string(nested.Kind),
			Documentation: nested.Description,
		}
	}
	return nil
}

// hoverLocal reports a locally declared variable and its inferred type.
func (e *Engine) hoverLocal(word string, locals map[string]string) *HoverInfo {
	typeName, ok := locals[word]
	if !ok {
		return nil
	}
	return &HoverInfo{
		Title:         word,
		Detail:        "local · " + typeName,
		Documentation: fmt.Sprintf("Local variable of inferred type %s.", typeName),
	}
}

// hoverAnyMethod is the last resort: any method sharing the word's name
// anywhere in the catalog, listing every overload location.
func (e *Engine) hoverAnyMethod(word string) *HoverInfo {
	var sigs []string
	var doc string
	for _, ent := range e.reg.All() {
		for i := range ent.Methods {
			m := &ent.Methods[i]
			if m.Name != word {
				continue
			}
			sigs = append(sigs, ent.Name+"."+methodSignature(m))
			if doc == "" {
				doc = m.Description
			}
		}
	}
	if len(sigs) == 0 {
		return nil
	}
	return &HoverInfo{
		Title:         word,
		Signature:     strings.Join(sigs, "\n"),
		Documentation: doc,
	}
}
