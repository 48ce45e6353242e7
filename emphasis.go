// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A delimiter records one run of '*' or '_' bytes discovered while
// scanning for the top-level list of nodes, so that emphasis/strong can
// be resolved in a second pass over the whole list (the canonical
// CommonMark delimiter-stack algorithm, preferred here over the source's
// imperative splicing per the design notes in the expanded
// specification, as long as the documented scenarios match byte-for-byte).
type delimiter struct {
	node              *Inline // the KindText placeholder holding the run's literal bytes
	char              byte
	length            int // delimiters not yet consumed by a match
	original          int // the run's original length, for the multiple-of-3 rule
	canOpen, canClose bool
	removed           bool // spliced out of the node chain entirely
}

// newDelimiter records a '*'/'_' run of length n at s.pos-n..s.pos (the
// caller has already appended its placeholder text node) and computes
// its flanking flags per §4.3: can_open requires the following byte to
// be non-whitespace, can_close requires the preceding byte to be
// non-whitespace, and '_' additionally forbids opening after an
// alphanumeric byte or closing before one (intra-word underscore is
// always literal).
func newDelimiter(node *Inline, c byte, n int, before, after byte) *delimiter {
	beforeSpace := before == 0 || isUnicodeSpace(rune(before))
	afterSpace := after == 0 || isUnicodeSpace(rune(after))

	canOpen := !afterSpace
	canClose := !beforeSpace
	if c == '_' {
		canOpen = canOpen && !isAlnumByte(before)
		canClose = canClose && !isAlnumByte(after)
	}
	return &delimiter{node: node, char: c, length: n, original: n, canOpen: canOpen, canClose: canClose}
}

// resolveEmphasis walks delims left to right; for every eligible closer
// it searches backward for the nearest compatible opener and wraps the
// nodes between them in an emph or strong node, trimming or removing the
// opener/closer placeholders as their delimiter counts are consumed.
// *headp is updated in place if the very first node is removed.
func resolveEmphasis(headp **Inline, delims []*delimiter) {
	prev := make(map[*Inline]*Inline, len(delims)*2)
	var p *Inline
	for n := *headp; n != nil; n = n.Next {
		prev[n] = p
		p = n
	}
	setNext := func(p, n *Inline) {
		if p == nil {
			*headp = n
		} else {
			p.Next = n
		}
		if n != nil {
			prev[n] = p
		}
	}

	for ci := range delims {
		closer := delims[ci]
		if closer.removed || !closer.canClose {
			continue
		}
		for closer.length > 0 {
			oi := -1
			for k := ci - 1; k >= 0; k-- {
				opener := delims[k]
				if opener.removed || opener.length == 0 || opener.char != closer.char || !opener.canOpen {
					continue
				}
				if (opener.canOpen && opener.canClose) || (closer.canOpen && closer.canClose) {
					sum := opener.original + closer.original
					if sum%3 == 0 && !(opener.original%3 == 0 && closer.original%3 == 0) {
						continue
					}
				}
				oi = k
				break
			}
			if oi < 0 {
				break
			}
			opener := delims[oi]

			// Per §4.3's n=3 rule, a delimiter run that still has all
			// three of its original delimiters on both sides defaults
			// to "strong wrapping emph": the innermost wrap consumes a
			// single delimiter from each side (emph), leaving exactly
			// two on each side for the next iteration of this same
			// while loop to wrap as the outer strong. Any other
			// combination of lengths >= 2 is consumed two at a time.
			use := 1
			kind := KindEmph
			switch {
			case opener.length == 3 && closer.length == 3:
				use = 1
			case opener.length >= 2 && closer.length >= 2:
				use = 2
				kind = KindStrong
			}

			O, C := opener.node, closer.node
			var start *Inline
			if O.Next != C {
				start = O.Next
				end := start
				for end.Next != C {
					end = end.Next
				}
				end.Next = nil
			}
			newNode := &Inline{Kind: kind, Children: start}

			O.Next = newNode
			prev[newNode] = O
			newNode.Next = C
			prev[C] = newNode

			opener.length -= use
			opener.node.Text = opener.node.Text[:len(opener.node.Text)-use]
			if opener.length == 0 {
				setNext(prev[O], newNode)
				opener.removed = true
			}

			closer.length -= use
			closer.node.Text = closer.node.Text[use:]
			if closer.length == 0 {
				nxt := C.Next
				newNode.Next = nxt
				if nxt != nil {
					prev[nxt] = newNode
				}
				closer.removed = true
			}
		}
	}
}
