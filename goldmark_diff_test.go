// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// coarseKind collapses both this package's Kind and goldmark's ast.Kind
// down to a small shared vocabulary, so the two trees can be compared
// without caring about cosmetic differences (e.g. this package folds
// autolinks into KindLink, while goldmark keeps a separate AutoLink
// node; both become "link" below).
type coarseKind string

const (
	ckText   coarseKind = "text"
	ckCode   coarseKind = "code"
	ckEmph   coarseKind = "emph"
	ckStrong coarseKind = "strong"
	ckLink   coarseKind = "link"
	ckImage  coarseKind = "image"
	ckBreak  coarseKind = "break"
	ckOther  coarseKind = "other"
)

func coarsenOwn(k Kind) coarseKind {
	switch k {
	case KindText, KindEntity:
		return ckText
	case KindCode:
		return ckCode
	case KindEmph:
		return ckEmph
	case KindStrong:
		return ckStrong
	case KindLink:
		return ckLink
	case KindImage:
		return ckImage
	case KindLineBreak, KindSoftBreak:
		return ckBreak
	default:
		return ckOther
	}
}

func ownShape(n *Inline) []coarseKind {
	var out []coarseKind
	for ; n != nil; n = n.Next {
		out = append(out, coarsenOwn(n.Kind))
	}
	return out
}

// goldmarkInlineShape parses src as a single-paragraph document with
// goldmark's default parser and returns the coarse kind sequence of the
// first paragraph's inline children, so it can be compared against
// ownShape(ParseInlines(...)) for the same text.
func goldmarkInlineShape(t *testing.T, src string) []coarseKind {
	t.Helper()
	doc := goldmark.New().Parser().Parse(text.NewReader([]byte(src)))
	var para ast.Node
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() == ast.KindParagraph {
			para = n
			break
		}
	}
	if para == nil {
		t.Fatalf("goldmark: no paragraph found parsing %q", src)
	}
	var out []coarseKind
	for n := para.FirstChild(); n != nil; n = n.NextSibling() {
		switch k := n.Kind(); {
		case k == ast.KindText:
			out = append(out, ckText)
		case k == ast.KindCodeSpan:
			out = append(out, ckCode)
		case k == ast.KindEmphasis:
			if n.(*ast.Emphasis).Level >= 2 {
				out = append(out, ckStrong)
			} else {
				out = append(out, ckEmph)
			}
		case k == ast.KindLink || k == ast.KindAutoLink:
			out = append(out, ckLink)
		case k == ast.KindImage:
			out = append(out, ckImage)
		default:
			out = append(out, ckOther)
		}
	}
	return out
}

// TestAgreesWithGoldmark differentially checks, for a battery of inputs
// where the two parsers are expected to agree on coarse tree shape, that
// this package's inline parser and goldmark's independently-written one
// reach the same structure. Constructs this package deliberately renders
// differently (autolinks folded into link nodes, hard/soft breaks
// collapsed to one "break" bucket) are pre-collapsed by coarsenOwn/
// goldmarkInlineShape above rather than skipped.
func TestAgreesWithGoldmark(t *testing.T) {
	cases := []string{
		"plain text",
		"*emph*",
		"**strong**",
		"`code span`",
		"a *b* c **d** e",
		"[text](/url)",
		"<http://example.com>",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			got := ownShape(ParseInlines(View(in), nil))
			want := goldmarkInlineShape(t, in)
			if len(got) != len(want) {
				t.Fatalf("shape length mismatch for %q:\n  own:      %v\n  goldmark: %v", in, got, want)
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("shape[%d] mismatch for %q:\n  own:      %v\n  goldmark: %v", i, in, got, want)
				}
			}
		})
	}
}
