package intel

import (
	"regexp"
	"strings"
)

// ContextKind classifies the syntactic situation the cursor sits in.
type ContextKind string

const (
	KindTopLevel     ContextKind = "top-level"
	KindAfterDot     ContextKind = "after-dot"
	KindInCall       ContextKind = "in-call"
	KindInConfigMap  ContextKind = "in-config-map"
	KindInBracketKey ContextKind = "in-bracket-key"
	KindInString     ContextKind = "in-string"
	KindUnknown      ContextKind = "unknown"
)

// CursorContext is the detector's output. Only the fields relevant to Kind
// are populated.
type CursorContext struct {
	Kind ContextKind

	// Chain is the access chain: for after-dot the segments before the
	// trailing dot; for in-call the callee including the method segment; for
	// in-bracket-key the segments before the open bracket.
	Chain []ChainSegment

	// In-call fields.
	Method          string
	ActiveParameter int

	// In-config-map fields.
	ConfigMapFunction string // dotted callee, e.g. "fx.bloom"
	ExistingKeys      []string
	InValue           bool // cursor sits in value position

	// PartialKey is the key text typed so far (config-map key position or
	// bracket-key contexts).
	PartialKey string

	// QuoteOpen reports whether a bracket-key quote is already open.
	QuoteOpen bool

	// Prefix is the trailing identifier run for top-level filtering.
	Prefix string
}

// GetCursorContext classifies the cursor position given the document text
// truncated at the cursor. The detectors run in precedence order; the first
// match wins. Never panics: catastrophic failures degrade to KindUnknown.
func GetCursorContext(textBeforeCursor string) (ctx CursorContext) {
	defer func() {
		if recover() != nil {
			ctx = CursorContext{Kind: KindUnknown}
		}
	}()

	if c, ok := detectBracketKey(textBeforeCursor); ok {
		return c
	}
	if c, ok := detectConfigMap(textBeforeCursor); ok {
		return c
	}
	if c, ok := detectCall(textBeforeCursor); ok {
		return c
	}
	if c, ok := detectAfterDot(textBeforeCursor); ok {
		return c
	}
	if c, ok := detectString(textBeforeCursor); ok {
		return c
	}
	return detectTopLevel(textBeforeCursor)
}

// isKeyByte reports whether b may appear in a partial bracket key. Keys are
// looser than identifiers: spaces and dashes occur in band and stem names.
func isKeyByte(b byte) bool {
	return isIdentByte(b) || b == ' ' || b == '-'
}

// detectBracketKey matches an open, unterminated string-index pattern:
// chain[ or chain["partial. Used for named-band and named-stem lookups.
func detectBracketKey(text string) (CursorContext, bool) {
	j := len(text)
	for j > 0 && isKeyByte(text[j-1]) {
		j--
	}
	partial := text[j:]

	quoteOpen := false
	if j > 0 && isQuote(text[j-1]) {
		quoteOpen = true
		j--
	} else if partial != "" {
		// Unquoted content before the cursor is a numeric or expression
		// index, not a string key.
		return CursorContext{}, false
	}
	if j == 0 || text[j-1] != '[' {
		return CursorContext{}, false
	}

	chain := parseChainEnding(text[:j-1])
	if len(chain) == 0 {
		return CursorContext{}, false
	}
	return CursorContext{
		Kind:       KindInBracketKey,
		Chain:      chain,
		PartialKey: partial,
		QuoteOpen:  quoteOpen,
	}, true
}

var configKeyRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*:`)

// detectConfigMap matches a cursor inside an unterminated structured literal
// passed to a call: the name( ... #{ pattern. Backward scan tracks brace
// depth only (string contents skipped); the nearest unbalanced '{' preceded
// by '#' wins. A forward scan then collects already-typed keys and decides
// key/value position.
func detectConfigMap(text string) (CursorContext, bool) {
	s := newBackwardScanner(text)
	for {
		ev, ok := s.next()
		if !ok {
			return CursorContext{}, false
		}
		if ev.inString || !ev.unmatchedOpen || ev.b != '{' {
			continue
		}
		if ev.idx == 0 || text[ev.idx-1] != '#' {
			// A block brace; keep looking for a literal marker further out.
			continue
		}
		fn, fnOK := callTargetBefore(text, ev.idx-1)
		if !fnOK {
			return CursorContext{}, false
		}
		return analyzeConfigMapRegion(text[ev.idx+1:], fn), true
	}
}

// callTargetBefore returns the dotted callee name whose open paren
// immediately precedes position idx (skipping whitespace), e.g. "fx.bloom"
// for `fx.bloom( #{`.
func callTargetBefore(text string, idx int) (string, bool) {
	i := idx
	for i > 0 && isSpaceByte(text[i-1]) {
		i--
	}
	if i == 0 || text[i-1] != '(' {
		return "", false
	}
	i--
	for i > 0 && isSpaceByte(text[i-1]) {
		i--
	}
	end := i
	for i > 0 && (isIdentByte(text[i-1]) || text[i-1] == '.') {
		i--
	}
	name := text[i:end]
	if name == "" || name[0] == '.' || name[len(name)-1] == '.' {
		return "", false
	}
	return name, true
}

// analyzeConfigMapRegion inspects the text between the #{ opener and the
// cursor: which keys are already present, and whether the cursor sits in key
// or value position.
func analyzeConfigMapRegion(region, fn string) CursorContext {
	ctx := CursorContext{
		Kind:              KindInConfigMap,
		ConfigMapFunction: fn,
	}
	for _, m := range configKeyRe.FindAllStringSubmatch(region, -1) {
		ctx.ExistingKeys = append(ctx.ExistingKeys, m[1])
	}

	// Value position: a ':' after the last separator.
	lastSep := strings.LastIndexByte(region, ',')
	if strings.Contains(region[lastSep+1:], ":") {
		ctx.InValue = true
	} else {
		ctx.PartialKey, _ = trailingIdent(region)
	}
	return ctx
}

// detectCall finds the innermost open call enclosing the cursor by scanning
// backward, counting unmatched closing parens and top-level commas while
// respecting nested parens, brackets, braces, and string literals. Grouping
// parens (no callee name) are stepped over, resetting the comma count.
func detectCall(text string) (CursorContext, bool) {
	// The cursor may sit inside an unterminated string argument; scanning
	// backward from there would count the literal's contents as plain bytes.
	// The whole partial literal is one argument, so start at its opener.
	if open, _, start := openQuote(text); open {
		text = text[:start]
	}
	s := newBackwardScanner(text)
	commas := 0
	for {
		ev, ok := s.next()
		if !ok {
			return CursorContext{}, false
		}
		if ev.inString {
			continue
		}
		if ev.b == ',' && s.atTopLevel() {
			commas++
			continue
		}
		if !ev.unmatchedOpen {
			continue
		}
		if ev.b != '(' {
			// Inside an open bracket or brace: commas counted so far belong
			// to it, not to an enclosing call.
			commas = 0
			continue
		}
		chain := parseChainEnding(text[:ev.idx])
		if len(chain) == 0 || chain[len(chain)-1].Kind != SegmentIdent {
			// A grouping paren, not a call.
			commas = 0
			continue
		}
		return CursorContext{
			Kind:            KindInCall,
			Chain:           chain,
			Method:          chain[len(chain)-1].Name,
			ActiveParameter: commas,
		}, true
	}
}

// detectAfterDot matches text whose trimmed end is a dot, parsing the access
// chain that leads to it.
func detectAfterDot(text string) (CursorContext, bool) {
	trimmed := trimTrailingSpace(text)
	if len(trimmed) == 0 || trimmed[len(trimmed)-1] != '.' {
		return CursorContext{}, false
	}
	chain := ParseChainBefore(trimmed)
	if len(chain) == 0 {
		return CursorContext{}, false
	}
	return CursorContext{Kind: KindAfterDot, Chain: chain}, true
}

// detectString reports a cursor inside an unterminated string literal, which
// suppresses all other completions.
func detectString(text string) (CursorContext, bool) {
	open, _, _ := openQuote(text)
	if !open {
		return CursorContext{}, false
	}
	return CursorContext{Kind: KindInString}, true
}

// detectTopLevel is the fallback: the trailing identifier run becomes the
// completion filter prefix.
func detectTopLevel(text string) CursorContext {
	prefix, _ := trailingIdent(text)
	return CursorContext{Kind: KindTopLevel, Prefix: prefix}
}
