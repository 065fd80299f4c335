package intel

import "strings"

// SegmentKind tags one unit of an access chain.
type SegmentKind string

const (
	SegmentIdent SegmentKind = "ident"
	SegmentCall  SegmentKind = "call"
	SegmentIndex SegmentKind = "index"
)

// ChainSegment is one unit of a dotted/bracketed access path, ordered
// root-to-leaf. For ident and call segments Name is the identifier; for
// index segments Name is the unquoted string key.
type ChainSegment struct {
	Kind SegmentKind
	Name string
}

// ParseChainBefore parses the access chain that precedes the trailing dot of
// text. The trimmed text must end in '.'; otherwise no chain is returned.
// Used by after-dot detection and (with a synthetic trailing dot) by
// local-variable inference.
func ParseChainBefore(text string) []ChainSegment {
	trimmed := trimTrailingSpace(text)
	if len(trimmed) == 0 || trimmed[len(trimmed)-1] != '.' {
		return nil
	}
	return parseChainEnding(trimmed[:len(trimmed)-1])
}

// parseChainEnding parses the access chain that ends exactly at the end of
// text, walking right-to-left: a closing-paren call, a closing-bracket string
// index, or a bare identifier, continuing across intervening dots and
// stopping at any other character. Best-effort: on any malformed step the
// segments recovered so far are discarded and nil is returned, letting the
// caller fall through to another context.
func parseChainEnding(text string) []ChainSegment {
	var rev []ChainSegment // leaf-to-root
	i := len(text)

	for i > 0 {
		var seg ChainSegment
		var start int
		switch b := text[i-1]; {
		case b == ']':
			open := matchingOpenBracket(text, i-1)
			if open < 0 {
				return nil
			}
			key, ok := unquoteKey(text[open+1 : i-1])
			if !ok {
				return nil
			}
			seg = ChainSegment{Kind: SegmentIndex, Name: key}
			start = open

		case b == ')':
			open := matchingOpenParen(text, i-1)
			if open < 0 {
				return nil
			}
			nameEnd := len(trimTrailingSpace(text[:open]))
			name, nameStart := trailingIdent(text[:nameEnd])
			if name == "" {
				return nil
			}
			seg = ChainSegment{Kind: SegmentCall, Name: name}
			start = nameStart

		case isIdentByte(b):
			name, nameStart := trailingIdent(text[:i])
			if name == "" || !isIdentStart(name[0]) {
				return nil
			}
			seg = ChainSegment{Kind: SegmentIdent, Name: name}
			start = nameStart

		default:
			// Chain starts after this character.
			i = -1
		}
		if i < 0 {
			break
		}

		rev = append(rev, seg)
		i = start
		if i == 0 {
			break
		}

		// An index attaches directly to whatever precedes its bracket;
		// ident and call segments continue only across a dot.
		if seg.Kind == SegmentIndex {
			continue
		}
		if text[i-1] == '.' {
			i--
			continue
		}
		break
	}

	if len(rev) == 0 {
		return nil
	}
	segs := make([]ChainSegment, len(rev))
	for j, s := range rev {
		segs[len(rev)-1-j] = s
	}
	return segs
}

// unquoteKey extracts the string value of a bracket index: a quoted literal,
// with doubled or backslash-escaped quote characters unescaped. Returns
// false when the content is not a complete quoted string.
func unquoteKey(content string) (string, bool) {
	content = strings.TrimSpace(content)
	if len(content) < 2 || !isQuote(content[0]) || content[len(content)-1] != content[0] {
		return "", false
	}
	quote := content[0]
	body := content[1 : len(content)-1]
	var sb strings.Builder
	for i := 0; i < len(body); i++ {
		b := body[i]
		switch {
		case b == '\\' && i+1 < len(body):
			i++
			sb.WriteByte(body[i])
		case b == quote && i+1 < len(body) && body[i+1] == quote:
			i++
			sb.WriteByte(quote)
		case b == quote:
			// Stray unescaped quote inside the body: malformed.
			return "", false
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String(), true
}

// SynthesizeChain renders segments back to source form. Calls are rendered
// with empty argument lists; index keys are double-quoted with internal
// quotes escaped. Re-parsing the result reproduces the same segments.
func SynthesizeChain(segs []ChainSegment) string {
	var sb strings.Builder
	for i, s := range segs {
		switch s.Kind {
		case SegmentIndex:
			sb.WriteString(`["`)
			sb.WriteString(strings.ReplaceAll(s.Name, `"`, `\"`))
			sb.WriteString(`"]`)
		case SegmentCall:
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.Name)
			sb.WriteString("()")
		default:
			if i > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s.Name)
		}
	}
	return sb.String()
}
