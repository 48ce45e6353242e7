// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// scanLinkLabelRaw scans a balanced "[...]" label starting at s[i] (which
// must be '['), honoring CommonMark's code-span and autolink/HTML
// precedence while counting bracket nesting. On success it returns the
// raw text between the brackets and the position just past the closing
// ']'. It takes no subject, since ParseReference needs it without a
// live nestLevel memo (reference definitions are parsed once, not
// repeatedly probed). scanners supplies the autolink/HTML-tag
// recognizers used to skip those spans as a unit.
func scanLinkLabelRaw(s string, i int, scanners Scanners) (string, int, bool) {
	text, _, end, ok := scanLinkLabelDepth(s, i, scanners)
	return text, end, ok
}

// scanBacktickRun, starting at a backtick, skips a complete code span as
// a single unit (opening run, content, matching closing run) and returns
// the position just past it. If there is no matching closing run, it
// returns false and the caller should treat the opening backticks as
// ordinary bytes for the purpose of bracket scanning.
func scanBacktickRun(s string, i int) (int, bool) {
	j := i
	for j < len(s) && s[j] == '`' {
		j++
	}
	k := j - i
	for p := j; p < len(s); {
		if s[p] != '`' {
			p++
			continue
		}
		q := p
		for q < len(s) && s[q] == '`' {
			q++
		}
		if q-p == k {
			return q, true
		}
		p = q
	}
	return i, false
}

// linkLabel is the subject-bound variant of scanLinkLabelRaw that
// implements the anti-quadratic nestLevel memoization described in
// §4.5/§9: after a failed scan that ran to EOF at nesting depth d, the
// next d calls on the same subject fail immediately.
func (s *subject) linkLabel() (string, bool) {
	if s.nestLevel > 0 {
		s.nestLevel--
		return "", false
	}
	text, depth, end, ok := scanLinkLabelDepth(string(s.buf), s.pos, s.scanners)
	if !ok {
		s.nestLevel = depth
		return "", false
	}
	s.pos = end
	return text, true
}

// scanLinkLabelDepth is scanLinkLabelRaw's sibling that also reports the
// bracket-nesting depth reached if the scan fails at EOF, which feeds
// subject.nestLevel.
func scanLinkLabelDepth(s string, i int, scanners Scanners) (text string, depth int, end int, ok bool) {
	if i >= len(s) || s[i] != '[' {
		return "", 0, i, false
	}
	start := i + 1
	j := start
	depth = 1
	for j < len(s) {
		switch s[j] {
		case '\\':
			if j+1 < len(s) && isPunct(s[j+1]) {
				j += 2
				continue
			}
			j++
		case '`':
			if n, ok := scanBacktickRun(s, j); ok {
				j = n
				continue
			}
			for j < len(s) && s[j] == '`' {
				j++
			}
		case '<':
			buf := []byte(s)
			if n := scanners.ScanAutolinkURI(buf, j); n > 0 {
				j += n
				continue
			}
			if n := scanners.ScanAutolinkEmail(buf, j); n > 0 {
				j += n
				continue
			}
			if n := scanners.ScanHTMLTag(buf, j); n > 0 {
				j += n
				continue
			}
			j++
		case '[':
			depth++
			j++
		case ']':
			depth--
			j++
			if depth == 0 {
				return s[start : j-1], 0, j, true
			}
		default:
			j++
		}
	}
	return "", depth, i, false
}

// handleLeftBracket implements §4.5: it is invoked with s.pos at '['. It
// always consumes at least the '[' and returns the node(s) to append;
// the '!' dispatch case (handleBang) retags a returned link as an image.
func (s *subject) handleLeftBracket() *Inline {
	startPos := s.pos
	label, ok := s.linkLabel()
	if !ok {
		s.pos = startPos + 1
		return newTextString("[")
	}
	endPos := s.pos // just past the closing ']'

	// Phase 2, step 1: explicit inline link.
	if n := s.tryExplicitLink(label, endPos); n != nil {
		return n
	}

	// Phase 2, step 2: reference link (full, or collapsed/shortcut).
	return s.tryReferenceLink(label, endPos)
}

func (s *subject) tryExplicitLink(label string, endPos int) *Inline {
	buf := string(s.buf)
	i := endPos
	if i >= len(buf) || buf[i] != '(' {
		return nil
	}
	i++
	i = skipSpace(buf, i)
	url, j, ok := scanLinkURLFacade(s.scanners, buf, i)
	if !ok {
		return nil
	}
	i = j
	beforeTitle := i
	title := ""
	k := skipSpace(buf, i)
	if k > beforeTitle {
		if t, end, ok := scanLinkTitleFacade(s.scanners, buf, k); ok {
			title = t
			i = end
		} else {
			i = beforeTitle
		}
	}
	i = skipSpace(buf, i)
	if i >= len(buf) || buf[i] != ')' {
		return nil
	}
	i++
	s.pos = i
	children := ParseInlinesWithScanners(View(label), nil, s.scanners)
	return &Inline{Kind: KindLink, Children: children, URL: OwnedString(cleanURL(url)), Title: OwnedString(cleanTitle(title))}
}

func (s *subject) tryReferenceLink(label string, endPos int) *Inline {
	buf := string(s.buf)
	i := skipSpace(buf, endPos)
	refLabel := label
	if i < len(buf) && buf[i] == '[' {
		if second, depth, end, ok := scanLinkLabelDepth(buf, i, s.scanners); ok {
			if second != "" {
				refLabel = second
			}
			i = end
		} else {
			s.nestLevel = depth
		}
	}

	if s.refs != nil {
		if ref, found := s.refs.lookup(refLabel); found {
			s.pos = i
			children := ParseInlinesWithScanners(View(label), nil, s.scanners)
			return &Inline{Kind: KindLink, Children: children, URL: ref.URL, Title: ref.Title}
		}
	}

	// Miss (or no refmap available): fall back to literal brackets around
	// the re-parsed label, leaving pos just past the original ']' — the
	// second label, if any, is not consumed on a miss.
	s.pos = endPos
	head := newTextString("[")
	appendChain(head, ParseInlinesWithScanners(View(label), s.refs, s.scanners))
	appendChain(head, newTextString("]"))
	return head
}

// scanLinkURLFacade recognizes a link destination through the injected
// Scanners collaborator (so a caller-supplied URL grammar is honored
// here too) and then strips the optional "<...>" wrapper to recover the
// raw destination text, the same text scanLinkURL itself would return.
func scanLinkURLFacade(scanners Scanners, s string, i int) (string, int, bool) {
	n := scanners.ScanLinkURL([]byte(s), i)
	if n == 0 {
		return "", i, false
	}
	end := i + n
	raw := s[i:end]
	if len(raw) > 0 && raw[0] == '<' {
		return raw[1 : len(raw)-1], end, true
	}
	return raw, end, true
}

// scanLinkTitleFacade is scanLinkURLFacade's counterpart for link titles:
// it recognizes the title through scanners, then strips its quote/paren
// delimiters to recover the raw title text.
func scanLinkTitleFacade(scanners Scanners, s string, i int) (string, int, bool) {
	n := scanners.ScanLinkTitle([]byte(s), i)
	if n == 0 {
		return "", i, false
	}
	end := i + n
	raw := s[i:end]
	if len(raw) < 2 {
		return "", i, false
	}
	return raw[1 : len(raw)-1], end, true
}

// appendChain appends the list rooted at n to the end of head's chain.
func appendChain(head *Inline, n *Inline) {
	if n == nil {
		return
	}
	end := head
	for end.Next != nil {
		end = end.Next
	}
	end.Next = n
}
