// Package intel is the code-intelligence engine for oseq scripts: cursor
// context detection, access-chain resolution against the capability catalog,
// and the completion/hover/signature/diagnostic providers built on them.
//
// Everything here operates on raw, possibly mid-edit script text. No function
// in this package panics on malformed input; exported entry points recover
// and degrade to empty results.
package intel

// Low-level text scanning shared by every context detector. All the
// quote/escape edge cases live here so the detectors never maintain their own
// ad hoc depth counters.

// isIdentByte reports whether b can appear in an identifier.
func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// isIdentStart reports whether b can start an identifier.
func isIdentStart(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// trailingIdent returns the identifier-character run at the end of text and
// the index where it starts.
func trailingIdent(text string) (string, int) {
	i := len(text)
	for i > 0 && isIdentByte(text[i-1]) {
		i--
	}
	return text[i:], i
}

// trimTrailingSpace returns text without trailing whitespace.
func trimTrailingSpace(text string) string {
	i := len(text)
	for i > 0 && isSpaceByte(text[i-1]) {
		i--
	}
	return text[:i]
}

// openQuote scans text forward with a string-state machine and reports
// whether the end of text sits inside an unterminated string literal, which
// quote character opened it, and the opener's index. Backslash escapes and
// doubled quote characters inside a literal are handled.
func openQuote(text string) (bool, byte, int) {
	var open bool
	var quote byte
	start := -1
	for i := 0; i < len(text); i++ {
		b := text[i]
		if !open {
			if isQuote(b) {
				open = true
				quote = b
				start = i
			}
			continue
		}
		switch b {
		case '\\':
			i++ // skip escaped char
		case quote:
			// A doubled quote is an escaped quote, not a terminator.
			if i+1 < len(text) && text[i+1] == quote {
				i++
				continue
			}
			open = false
		}
	}
	if !open {
		return false, 0, -1
	}
	return true, quote, start
}

// stringStartBackward returns the index of the quote that opens the string
// literal whose closing quote sits at closeIdx, scanning backward. Doubled
// quote characters are treated as escapes. Returns -1 when no opener is
// found (unterminated or malformed input).
func stringStartBackward(text string, closeIdx int) int {
	if closeIdx < 0 || closeIdx >= len(text) || !isQuote(text[closeIdx]) {
		return -1
	}
	quote := text[closeIdx]
	for i := closeIdx - 1; i >= 0; i-- {
		if text[i] != quote {
			continue
		}
		// A preceding identical quote means a doubled pair; skip both.
		if i > 0 && text[i-1] == quote {
			i--
			continue
		}
		// A preceding backslash means an escaped quote inside the literal.
		if i > 0 && text[i-1] == '\\' {
			continue
		}
		return i
	}
	return -1
}

// matchingOpenDelim returns the index of the open delimiter matching the
// close delimiter at closeIdx, scanning backward with depth counting and
// skipping string literals. Returns -1 when unmatched.
func matchingOpenDelim(text string, closeIdx int, open, close byte) int {
	if closeIdx < 0 || closeIdx >= len(text) || text[closeIdx] != close {
		return -1
	}
	depth := 0
	for i := closeIdx; i >= 0; i-- {
		b := text[i]
		if isQuote(b) {
			start := stringStartBackward(text, i)
			if start < 0 {
				// Unterminated string while scanning backward; give up on
				// this delimiter rather than miscounting inside the literal.
				return -1
			}
			i = start
			continue
		}
		switch b {
		case close:
			depth++
		case open:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// matchingOpenParen returns the index of the '(' matching the ')' at
// closeIdx, or -1.
func matchingOpenParen(text string, closeIdx int) int {
	return matchingOpenDelim(text, closeIdx, '(', ')')
}

// matchingOpenBracket returns the index of the '[' matching the ']' at
// closeIdx, or -1.
func matchingOpenBracket(text string, closeIdx int) int {
	return matchingOpenDelim(text, closeIdx, '[', ']')
}

// backwardScanner walks text right-to-left while tracking paren, bracket,
// and brace nesting relative to the cursor, skipping string literals whole.
// Nesting counters hold the number of closers seen that are still waiting
// for their opener; an opener arriving while its counter is zero is an
// unmatched opener enclosing the cursor.
type backwardScanner struct {
	text    string
	paren   int
	bracket int
	brace   int

	pos int // position of the byte next() will consume
}

// scanEvent is one consumed byte with its position and classification.
type scanEvent struct {
	b   byte
	idx int
	// unmatchedOpen is set when b is '(', '[' or '{' with no corresponding
	// closer between it and the cursor: the cursor is inside it.
	unmatchedOpen bool
	// inString is set when b is a quote byte; the scanner has already
	// skipped the whole literal.
	inString bool
}

func newBackwardScanner(text string) *backwardScanner {
	return &backwardScanner{text: text, pos: len(text) - 1}
}

// atTopLevel reports whether the last consumed position is nested inside a
// delimiter that closes between it and the cursor.
func (s *backwardScanner) atTopLevel() bool {
	return s.paren == 0 && s.bracket == 0 && s.brace == 0
}

// next consumes one byte (or one whole string literal) moving leftward.
// Returns false when the start of text is reached.
func (s *backwardScanner) next() (scanEvent, bool) {
	if s.pos < 0 {
		return scanEvent{}, false
	}
	idx := s.pos
	b := s.text[idx]

	if isQuote(b) {
		start := stringStartBackward(s.text, idx)
		if start < 0 {
			// Unterminated string: treat this quote as its own opener and
			// continue before it. Mid-edit input lands here constantly.
			s.pos = idx - 1
		} else {
			s.pos = start - 1
		}
		return scanEvent{b: b, idx: idx, inString: true}, true
	}

	s.pos = idx - 1
	ev := scanEvent{b: b, idx: idx}
	switch b {
	case ')':
		s.paren++
	case ']':
		s.bracket++
	case '}':
		s.brace++
	case '(':
		if s.paren == 0 {
			ev.unmatchedOpen = true
		} else {
			s.paren--
		}
	case '[':
		if s.bracket == 0 {
			ev.unmatchedOpen = true
		} else {
			s.bracket--
		}
	case '{':
		if s.brace == 0 {
			ev.unmatchedOpen = true
		} else {
			s.brace--
		}
	}
	return ev, true
}
