package intel

import (
	"regexp"
	"strings"
)

var letRe = regexp.MustCompile(`(?m)^[ \t]*let[ \t]+([A-Za-z_][A-Za-z0-9_]*)[ \t]*=`)

// InferLocals builds a name -> type-name mapping for every `let` declaration
// in the document whose initializer resolves as an access chain. One forward
// pass, in document order: an initializer may reference locals declared
// above it but never below (no forward references, no re-entrancy). The
// mapping seeds after-dot resolution so chains rooted in a local variable
// complete like chains rooted in a global. Never panics.
func (e *Engine) InferLocals(fullText string) (locals map[string]string) {
	locals = make(map[string]string)
	defer func() {
		if recover() != nil {
			locals = map[string]string{}
		}
	}()

	for _, m := range letRe.FindAllStringSubmatchIndex(fullText, -1) {
		name := fullText[m[2]:m[3]]
		expr := extractInitializer(fullText[m[1]:])
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		// Reuse the chain parser by appending a synthetic trailing dot.
		segs := ParseChainBefore(expr + ".")
		if len(segs) == 0 {
			continue
		}
		res := e.ResolveChainSegments(segs, locals)
		if !res.Success || res.Entry == nil {
			continue
		}
		typeName := res.Entry.Name
		if res.NextType != "" && e.reg.ResolveType(res.NextType) == nil {
			// The initializer ends on a member yielding a primitive; record
			// the primitive so later chains rooted here fail to resolve
			// rather than landing on the owner entry's members.
			typeName = res.NextType
		}
		locals[name] = typeName
	}
	return locals
}

// extractInitializer returns the expression text from the start of text up
// to the first ';' or newline at zero nesting, tracking paren, bracket, and
// brace depth and string-literal state.
func extractInitializer(text string) string {
	depth := 0
	var quote byte
	for i := 0; i < len(text); i++ {
		b := text[i]
		if quote != 0 {
			switch b {
			case '\\':
				i++
			case quote:
				if i+1 < len(text) && text[i+1] == quote {
					i++
					continue
				}
				quote = 0
			}
			continue
		}
		switch {
		case isQuote(b):
			quote = b
		case b == '(' || b == '[' || b == '{':
			depth++
		case b == ')' || b == ']' || b == '}':
			if depth > 0 {
				depth--
			}
		case (b == ';' || b == '\n') && depth == 0:
			return text[:i]
		}
	}
	return text
}
