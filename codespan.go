// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// handleBackticks implements §4.2: consume a maximal run of k backticks,
// scan forward for the next run of exactly k backticks (skipping runs of
// any other length), and on a match emit a code node from the content
// between the runs with its whitespace collapsed per collapseCodeSpanWhitespace.
// On no match, rewind and emit the opening run as a literal str.
func (s *subject) handleBackticks() *Inline {
	openStart := s.pos
	for !s.eof() && s.peek() == '`' {
		s.advance(1)
	}
	k := s.pos - openStart

	buf := string(s.buf)
	contentStart := s.pos
	p := s.pos
	for p < len(buf) {
		if buf[p] != '`' {
			p++
			continue
		}
		runStart := p
		for p < len(buf) && buf[p] == '`' {
			p++
		}
		if p-runStart == k {
			content := buf[contentStart:runStart]
			s.pos = p
			return &Inline{Kind: KindCode, Text: OwnedString(collapseCodeSpanWhitespace(content))}
		}
		// run of the wrong length: skip and keep scanning
	}

	// No matching close: rewind to just after the opening run and emit
	// it literally.
	s.pos = openStart + k
	return newText(s.buf[openStart : openStart+k])
}
