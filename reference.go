// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"strings"

	"golang.org/x/text/cases"
)

// A Reference is one parsed link reference definition: a normalized
// label mapped to a destination URL and an optional title.
type Reference struct {
	Label OwnedString
	URL   OwnedString
	Title OwnedString
}

// A ReferenceMap holds link reference definitions keyed by normalized
// label (see normalizeLabel). It is populated by ParseReference and
// queried during link resolution; insertion is first-writer-wins, so
// once a label has an entry, later definitions for the same label are
// silently ignored. Use NewReferenceMap to construct one; the nil map
// is valid for lookups (always misses) but not for inserts.
type ReferenceMap map[string]Reference

// NewReferenceMap returns an empty, ready-to-use ReferenceMap.
func NewReferenceMap() ReferenceMap {
	return make(ReferenceMap)
}

// lookup returns the reference stored for label's normalized form, if any.
func (m ReferenceMap) lookup(label string) (Reference, bool) {
	if m == nil {
		return Reference{}, false
	}
	r, ok := m[normalizeLabel(label)]
	return r, ok
}

// insert records label -> (url, title) unless label already has an entry.
// Reports whether the insertion happened. m must be non-nil.
func (m ReferenceMap) insert(label, url, title string) bool {
	key := normalizeLabel(label)
	if key == "" {
		return false
	}
	if _, ok := m[key]; ok {
		return false
	}
	m[key] = Reference{Label: OwnedString(key), URL: OwnedString(url), Title: OwnedString(title)}
	return true
}

var labelFold = cases.Fold()

// normalizeLabel case-folds label (Unicode case folding, via
// golang.org/x/text/cases), trims leading/trailing whitespace, and collapses every
// internal run of whitespace to a single space. The result is idempotent:
// normalizeLabel(normalizeLabel(x)) == normalizeLabel(x).
func normalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	label = labelFold.String(label)
	var b strings.Builder
	b.Grow(len(label))
	inSpace := false
	for _, r := range label {
		if isUnicodeSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// ParseReference attempts to parse one link reference definition at the
// start of buf, in the form:
//
//	[label]: destination "title"
//
// On success it inserts the definition into refs (unless the normalized
// label already has one) and returns the number of bytes consumed. On
// any failure it returns 0 and leaves refs unchanged.
//
// ParseReference uses DefaultScanners; use ParseReferenceWithScanners to
// supply a different implementation.
func ParseReference(buf View, refs ReferenceMap) int {
	return ParseReferenceWithScanners(buf, refs, DefaultScanners{})
}

// ParseReferenceWithScanners is ParseReference with an explicit Scanners
// collaborator, consulted for the same label/URL/title recognition the
// inline parser itself uses (§4.7 shares its grammar with §4.5).
func ParseReferenceWithScanners(buf View, refs ReferenceMap, scanners Scanners) int {
	if refs == nil {
		panic("markdown: nil ReferenceMap")
	}
	s := string(buf)
	if s == "" || s[0] != '[' {
		return 0
	}

	label, i, ok := scanLinkLabelRaw(s, 0, scanners)
	if !ok || strings.TrimSpace(label) == "" {
		return 0
	}
	if i >= len(s) || s[i] != ':' {
		return 0
	}
	i++
	i = skipSpaceAndAtMostOneNewline(s, i)

	url, j, ok := scanLinkURLFacade(scanners, s, i)
	if !ok || url == "" {
		return 0
	}
	i = j

	// Optional title: must be separated from the URL by whitespace
	// (including at most one newline) and must end the line cleanly; if
	// it doesn't, roll back and require the URL's own end-of-line.
	title := ""
	beforeTitle := i
	k := skipSpaceAndAtMostOneNewline(s, i)
	if t, end, ok := scanLinkTitleFacade(scanners, s, k); k > beforeTitle && ok {
		if rest := skipSpaceChars(s, end); rest == len(s) || s[rest] == '\n' {
			title, i = t, rest
		} else {
			i = beforeTitle
		}
	} else {
		i = beforeTitle
	}

	i = skipSpaceChars(s, i)
	if i < len(s) && s[i] != '\n' {
		return 0
	}
	if i < len(s) {
		i++ // consume the newline
	}

	// First wins: insert is a no-op if the label already has a definition,
	// but the bytes are still consumed either way.
	refs.insert(label, cleanURL(url), cleanTitle(title))
	return i
}

func skipSpaceAndAtMostOneNewline(s string, i int) int {
	j := skipSpaceChars(s, i)
	if j < len(s) && s[j] == '\n' {
		j++
		j = skipSpaceChars(s, j)
	}
	return j
}
