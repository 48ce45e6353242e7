// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// ParseInlines parses buf as a run of inline markdown and returns the
// head of the resulting node list (nil for an empty or all-consumed
// input). refs is consulted for reference-link resolution; pass nil to
// forbid reference resolution, as the display label of a link or image
// is itself reparsed (§4.5).
//
// ParseInlines uses DefaultScanners for the external lexical constructs
// (autolinks, raw HTML, link URLs/titles, entities). Use
// ParseInlinesWithScanners to supply a different implementation.
func ParseInlines(buf View, refs ReferenceMap) *Inline {
	return ParseInlinesWithScanners(buf, refs, DefaultScanners{})
}

// ParseInlinesWithScanners is ParseInlines with an explicit Scanners
// collaborator.
func ParseInlinesWithScanners(buf View, refs ReferenceMap, scanners Scanners) *Inline {
	s := newSubject(buf, refs, scanners)
	var head, tail *Inline
	var delims []*delimiter

	for !s.eof() {
		c := s.peek()
		var n *Inline
		switch {
		case c == '\n':
			n = s.handleNewline()
		case c == '`':
			n = s.handleBackticks()
		case c == '\\':
			n = s.handleBackslash()
		case c == '&':
			n = s.handleEntity()
		case c == '<':
			n = s.handlePointyBrace()
		case c == '*':
			n = s.handleDelimiterRun(c, &delims)
		case c == '_':
			prev := s.prevByte()
			if isAlnumByte(prev) || prev == '_' {
				n = s.handleTextRun()
			} else {
				n = s.handleDelimiterRun(c, &delims)
			}
		case c == '[':
			n = s.handleLeftBracket()
		case c == '!':
			n = s.handleBang()
		default:
			n = s.handleTextRun()
		}
		appendInline(&head, &tail, n)
	}

	resolveEmphasis(&head, delims)
	return head
}

var specialBytes = [256]bool{
	'\n': true, '\\': true, '`': true, '&': true, '_': true, '*': true,
	'[': true, ']': true, '<': true, '!': true,
}

// handleTextRun implements the dispatcher's default case: a maximal run
// of non-special bytes becomes one str node. If the run ends at a
// newline, trailing spaces are trimmed (they belong to the line-break
// handler, which runs next).
//
// handleTextRun is also called with s.peek() itself special: an
// intraword '_' (§4.1's alnum-before check sends it here instead of
// handleDelimiterRun) and a stray ']' with no matching '[' (there is no
// explicit dispatch case for ']', so it falls to the default case). In
// both cases the byte under the cursor must still be consumed, or the
// caller never makes progress; mirror the original scanner's
// find_special_char, which always starts its lookahead at pos+1, by
// advancing unconditionally before checking specialBytes.
func (s *subject) handleTextRun() *Inline {
	start := s.pos
	s.advance(1)
	for !s.eof() && !specialBytes[s.peek()] {
		s.advance(1)
	}
	end := s.pos
	if end < len(s.buf) && s.buf[end] == '\n' {
		for end > start && s.buf[end-1] == ' ' {
			end--
		}
	}
	return newText(s.buf[start:end])
}

// handleDelimiterRun implements the '*'/'_' branch of §4.1: measure the
// run, compute flanking, emit a placeholder text node, and record a
// delimiter entry for the post-pass in emphasis.go.
func (s *subject) handleDelimiterRun(c byte, delims *[]*delimiter) *Inline {
	start := s.pos
	for !s.eof() && s.peek() == c {
		s.advance(1)
	}
	n := s.pos - start
	before := s.byteAt(start - 1)
	after := s.byteAt(s.pos)
	node := newText(s.buf[start:s.pos])
	*delims = append(*delims, newDelimiter(node, c, n, before, after))
	return node
}

// handleBackslash implements §4.6's backslash-escape leaf.
func (s *subject) handleBackslash() *Inline {
	s.advance(1)
	if s.eof() {
		return newTextString("\\")
	}
	c := s.peek()
	if c == '\n' {
		s.advance(1)
		s.skipLeadingSpaceOnNextLine()
		return &Inline{Kind: KindLineBreak}
	}
	if isPunct(c) {
		s.advance(1)
		return newText(View(string(c)))
	}
	return newTextString("\\")
}

// handleEntity implements §4.6's entity leaf.
func (s *subject) handleEntity() *Inline {
	if n := s.scanners.ScanEntity([]byte(s.buf), s.pos); n > 0 {
		text := s.buf[s.pos : s.pos+n]
		s.advance(n)
		return &Inline{Kind: KindEntity, Text: text.Own()}
	}
	s.advance(1)
	return newTextString("&")
}

// handleNewline implements §4.6's newline leaf: two or more trailing
// spaces (already trimmed from the preceding text run by
// handleTextRun) make a hard line break, otherwise a soft break; either
// way, leading spaces on the following line are skipped.
func (s *subject) handleNewline() *Inline {
	hard := s.pos >= 2 && s.buf[s.pos-1] == ' ' && s.buf[s.pos-2] == ' '
	s.advance(1)
	s.skipLeadingSpaceOnNextLine()
	if hard {
		return &Inline{Kind: KindLineBreak}
	}
	return &Inline{Kind: KindSoftBreak}
}

func (s *subject) skipLeadingSpaceOnNextLine() {
	for !s.eof() && (s.peek() == ' ' || s.peek() == '\t') {
		s.advance(1)
	}
}

// handlePointyBrace implements §4.4: autolink URI, autolink email, raw
// HTML tag, or literal '<'.
func (s *subject) handlePointyBrace() *Inline {
	buf := []byte(s.buf)
	if n := s.scanners.ScanAutolinkURI(buf, s.pos); n > 0 {
		uri := string(s.buf[s.pos+1 : s.pos+n-1])
		s.advance(n)
		return &Inline{Kind: KindLink, Children: ParseInlinesWithScanners(View(uri), nil, s.scanners), URL: OwnedString(uri)}
	}
	if n := s.scanners.ScanAutolinkEmail(buf, s.pos); n > 0 {
		email := string(s.buf[s.pos+1 : s.pos+n-1])
		s.advance(n)
		return &Inline{Kind: KindLink, Children: ParseInlinesWithScanners(View(email), nil, s.scanners), URL: OwnedString("mailto:" + email)}
	}
	if n := s.scanners.ScanHTMLTag(buf, s.pos); n > 0 {
		text := s.buf[s.pos : s.pos+n]
		s.advance(n)
		return &Inline{Kind: KindRawHTML, Text: text.Own()}
	}
	s.advance(1)
	return newTextString("<")
}

// handleBang implements the '!' image dispatch: '!' followed by '[' is
// handled like handleLeftBracket with the resulting link retagged to an
// image; otherwise the '!' is a literal byte. handleLeftBracket's result
// only becomes an image when it actually produced a link — an unclosed
// bracket, a reference-link miss, or a literal '[' fallback all leave
// the '!' as ordinary text ahead of whatever was returned, the same way
// the original source prepends a literal "!" str node in that case.
func (s *subject) handleBang() *Inline {
	s.advance(1)
	if s.eof() || s.peek() != '[' {
		return newTextString("!")
	}
	n := s.handleLeftBracket()
	if n != nil && n.Kind == KindLink {
		n.Kind = KindImage
		return n
	}
	bang := newTextString("!")
	appendChain(bang, n)
	return bang
}
