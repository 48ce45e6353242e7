// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A Kind identifies which variant of Inline a node is. Inline is a
// tagged union rather than an interface hierarchy: every field that
// isn't relevant to Kind is left zero, and callers switch on Kind
// instead of doing type assertions.
type Kind int

const (
	// KindText is a run of literal text. Payload: Text.
	KindText Kind = iota
	// KindCode is a code span. Payload: Text (already whitespace-collapsed).
	KindCode
	// KindRawHTML is a raw HTML tag/comment/declaration span. Payload: Text.
	KindRawHTML
	// KindEntity is an entity reference, undecoded. Payload: Text.
	KindEntity
	// KindLineBreak is a hard line break (two-plus trailing spaces, or a
	// trailing backslash, before a newline). No payload.
	KindLineBreak
	// KindSoftBreak is a soft line break (bare newline). No payload.
	KindSoftBreak
	// KindEmph is emphasis. Payload: Children.
	KindEmph
	// KindStrong is strong emphasis. Payload: Children.
	KindStrong
	// KindLink is a link, explicit or resolved from a reference or
	// autolink. Payload: Children (the display label), URL, Title.
	KindLink
	// KindImage is an image; same payload shape as KindLink.
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCode:
		return "code"
	case KindRawHTML:
		return "raw_html"
	case KindEntity:
		return "entity"
	case KindLineBreak:
		return "linebreak"
	case KindSoftBreak:
		return "softbreak"
	case KindEmph:
		return "emph"
	case KindStrong:
		return "strong"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// An Inline is one node of the inline tree. Nodes are linked via Next
// into a singly-linked list, and a subtree is rooted by a head pointer
// (nil means "empty list"). Text/Code/RawHTML/Entity carry their payload
// as an OwnedString uniformly: by the time a node is constructed, any
// borrowed View has already been converted (normalized, unescaped, or
// simply copied out of the input) at the construction boundary, per the
// borrowed/owned split in chunk.go.
type Inline struct {
	Kind Kind
	Next *Inline

	Text OwnedString // KindText, KindCode, KindRawHTML, KindEntity

	Children *Inline // KindEmph, KindStrong, KindLink, KindImage (display label)
	URL      OwnedString
	Title    OwnedString
}

// newText builds a KindText node from a borrowed view, converting it to
// an owned string at construction time.
func newText(v View) *Inline {
	return &Inline{Kind: KindText, Text: v.Own()}
}

// newTextString builds a KindText node from an already-owned string.
func newTextString(s OwnedString) *Inline {
	return &Inline{Kind: KindText, Text: s}
}

// appendInline appends n (and its Next chain) to the list whose current
// tail is *tail, updating *tail to point at the new end. If *head is nil
// it is set to n as well. Handlers build lists this way rather than
// allocating a slice, matching the linked-list shape the tree exposes.
func appendInline(head, tail **Inline, n *Inline) {
	if n == nil {
		return
	}
	if *head == nil {
		*head = n
	} else {
		(*tail).Next = n
	}
	end := n
	for end.Next != nil {
		end = end.Next
	}
	*tail = end
}

// listLen counts the nodes in a list, not descending into Children.
func listLen(head *Inline) int {
	n := 0
	for x := head; x != nil; x = x.Next {
		n++
	}
	return n
}

// literalBytes reconstructs the literal source bytes a leaf node
// contributes, used by the property test for the "concatenating every
// leaf's literal bytes reconstructs the input" invariant.
func literalBytes(n *Inline) string {
	switch n.Kind {
	case KindText, KindCode, KindRawHTML, KindEntity:
		return string(n.Text)
	case KindLineBreak, KindSoftBreak:
		return ""
	default:
		return ""
	}
}
