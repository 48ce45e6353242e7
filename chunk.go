// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// A View is a borrowed byte range: a window into a caller-owned buffer.
// Its lifetime must not outlive the buffer it was sliced from. Views are
// what scanners and the dispatcher pass around while walking the input;
// they are never mutated and never retained past the call that produced
// the tree rooted at the Inline they end up inside.
type View string

// String returns the view's bytes as a string. Since a View already is a
// string under the hood, this is a no-op conversion kept for symmetry
// with OwnedString and for call sites that want to be explicit about
// crossing from "borrowed" to "used as a plain string".
func (v View) String() string {
	return string(v)
}

// Len reports the view's length in bytes.
func (v View) Len() int {
	return len(v)
}

// An OwnedString is a detached, heap-allocated string with no relationship
// to any input buffer: the result of normalization, case-folding, URL or
// title cleaning, whitespace collapsing, or unescaping. Once constructed
// it may be retained indefinitely.
//
// The distinction from View exists purely so that the type checker, not a
// runtime flag, keeps borrowed and owned strings from being confused at
// the boundary where nodes are constructed (see node.go).
type OwnedString string

// Own detaches v into a new OwnedString, copying nothing extra beyond what
// the Go string already guarantees (strings are immutable; the copy here
// is conceptual, marking the value as no longer tied to the source
// buffer's intended lifetime).
func (v View) Own() OwnedString {
	return OwnedString(v)
}
