// Copyright 2024-2026 The Typeset Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package typeset is a pretty-printing engine in the Wadler/Oppen tradition.
//
// Documents are assembled bottom-up from the constructors in this package
// into an immutable [Doc] tree, and rendered in a single greedy pass by
// [Print] or [ToString]. The engine makes line-break decisions to keep the
// output within a target line width.
//
// The main tool for smart line wrapping is [Group]. A group is rendered
// either flat, with every [BreakHint] inside it emitting its fallback
// document, or breaking, with every hint becoming a line break. Which way a
// group goes is decided when the renderer enters it, by comparing the
// group's cached flat width against the remaining room on the current line.
// The fit kinds ([FitGroups], [FitAll]) instead decide hint by hint, keeping
// as much content on each line as fits.
//
// Every composite node caches its flat and breaking widths at construction,
// so concatenation and group fit checks cost O(1) during rendering.
package typeset

import "github.com/typeset/typeset/internal/ext/unicodex"

const (
	docEmpty docKind = iota
	docGroupBreaker
	docText
	docBlank
	docBreakHint
	docHardline
	docIfBroken
	docIndent
	docGroup
	docConcat
)

// docKind is the kind of a document node.
type docKind byte

const (
	// Auto renders the group flat when its flat width fits on the current
	// line, and breaks every hint in the group otherwise.
	Auto GroupKind = iota
	// FitGroups decides at each break hint: the hint breaks only when the
	// hint's own flat width plus the flat width of the node after it would
	// overflow the line.
	FitGroups
	// FitAll is like FitGroups, but measures the node after the hint by its
	// breaking width.
	FitAll
)

// GroupKind selects how a [Group] decides which of its break hints become
// line breaks.
type GroupKind byte

// Doc is an immutable document.
//
// Documents are built bottom-up with the constructors in this package and
// never change afterwards; a Doc may be shared freely between concurrent
// renders. The zero value is [Empty].
type Doc struct {
	n *node
}

// node is one arm of the document algebra. Which fields are meaningful
// depends on kind; left doubles as the single child of BreakHint, Indent,
// and Group nodes.
type node struct {
	kind docKind

	text    string // docText
	count   int    // docBlank, docIndent
	phantom bool   // docHardline

	left  *node // docConcat left, docIfBroken broken arm, single child otherwise
	right *node // docConcat right, docIfBroken flat arm

	groupKind GroupKind

	// hasBreaker reports a GroupBreaker in this subtree that no Group inside
	// the subtree encloses. Concat and Indent propagate it; Group resets it.
	hasBreaker bool

	flatWidth     width
	breakingWidth width
}

var emptyNode = node{kind: docEmpty}

// ptr returns the underlying node, mapping the zero Doc to Empty.
func (d Doc) ptr() *node {
	if d.n == nil {
		return &emptyNode
	}
	return d.n
}

// Empty is the document that renders nothing and measures zero columns wide.
var Empty = Doc{}

// GroupBreaker renders nothing, but forces the group enclosing it into
// breaking mode. The effect stops at the nearest enclosing [Group]: a group
// absorbs any breakers inside it and does not look broken from outside.
var GroupBreaker = Doc{n: &node{kind: docGroupBreaker, hasBreaker: true}}

// Hardline is an unconditional line break. It breaks the line regardless of
// the enclosing group's mode, and it terminates width measurement: content
// concatenated after a hardline does not widen the line the hardline ended.
var Hardline = Doc{n: &node{
	kind:          docHardline,
	flatWidth:     withBreak(0),
	breakingWidth: withBreak(0),
}}

// PhantomHardline is [Hardline] for width purposes pretending not to exist:
// it still emits a newline when rendered, but measures as zero-width open
// content, so it neither truncates nor terminates the enclosing widths.
var PhantomHardline = Doc{n: &node{kind: docHardline, phantom: true}}

// Space is a single space.
var Space = Blank(1)

// Break is a bare break hint: a line break when the enclosing group breaks,
// and nothing at all when it stays flat.
var Break = BreakHint(Empty)

// BreakableSpace is a space that the enclosing group may turn into a line
// break.
var BreakableSpace = BreakHint(Space)

// Comma is the literal ",".
var Comma = Text(",")

// CommaBreakableSpace is ", " where the space is a break candidate.
var CommaBreakableSpace = Concat(Comma, BreakableSpace)

// TrailingComma renders "," in a broken group and nothing in a flat one.
var TrailingComma = IfBroken(Comma, Empty)

// Text returns a document that emits s literally.
//
// The width of s is measured in user-visible terminal columns with
// [unicodex.StringWidth]. s must not contain newlines; line breaks are
// documents ([Hardline], [BreakHint]), not text.
func Text(s string) Doc {
	return TextWidth(s, unicodex.StringWidth(s))
}

// TextWidth is [Text] with a caller-supplied column count, for content whose
// rendered width differs from its measured one, such as text carrying ANSI
// escape sequences.
func TextWidth(s string, columns int) Doc {
	w := withoutBreak(columns)
	return Doc{n: &node{
		kind:          docText,
		text:          s,
		flatWidth:     w,
		breakingWidth: w,
	}}
}

// Blank returns a document that emits count spaces. A negative count is
// treated as zero.
func Blank(count int) Doc {
	count = max(count, 0)
	w := withoutBreak(count)
	return Doc{n: &node{
		kind:          docBlank,
		count:         count,
		flatWidth:     w,
		breakingWidth: w,
	}}
}

// BreakHint marks a candidate break location. When the enclosing group
// breaks, the hint becomes a line break; when the group stays flat, doc is
// rendered instead.
func BreakHint(doc Doc) Doc {
	d := doc.ptr()
	return Doc{n: &node{
		kind:          docBreakHint,
		left:          d,
		flatWidth:     d.flatWidth,
		breakingWidth: withBreak(0),
	}}
}

// IfBroken renders broken if a break has been taken in the enclosing group
// by the time the renderer reaches this node, and flat otherwise.
//
// In an [Auto] group the answer is fixed when the group is entered, so every
// IfBroken in the group agrees, except that a [Hardline] rendered in a flat
// group marks it broken from that point on. In a fit group breaks are
// decided hint by hint, so an IfBroken placed before the first break taken
// still renders its flat arm.
func IfBroken(broken, flat Doc) Doc {
	b, f := broken.ptr(), flat.ptr()
	return Doc{n: &node{
		kind:          docIfBroken,
		left:          b,
		right:         f,
		flatWidth:     f.flatWidth,
		breakingWidth: b.breakingWidth,
	}}
}

// Indent is [IndentBy] with the default indentation of two columns.
func Indent(doc Doc) Doc {
	return IndentBy(2, doc)
}

// IndentBy deepens the indentation of every line break emitted while
// rendering doc by count columns.
//
// The indentation is pending until a break is actually taken in the
// enclosing group: content that renders flat is unaffected, and the first
// break inside doc commits the indentation for the rest of doc. Breaks after
// doc return to the enclosing depth.
// A negative count is treated as zero.
func IndentBy(count int, doc Doc) Doc {
	d := doc.ptr()
	return Doc{n: &node{
		kind:          docIndent,
		count:         max(count, 0),
		left:          d,
		hasBreaker:    d.hasBreaker,
		flatWidth:     d.flatWidth,
		breakingWidth: d.breakingWidth,
	}}
}

// Group wraps doc in an [Auto] group: rendered flat when the whole of doc
// fits on the current line, and breaking otherwise.
func Group(doc Doc) Doc {
	return newGroup(Auto, doc.ptr(), nil)
}

// GroupAs wraps doc in a group of the given kind.
func GroupAs(kind GroupKind, doc Doc) Doc {
	return newGroup(kind, doc.ptr(), nil)
}

// GroupWidth is [Group] with the group's measured width overridden.
//
// By default a group measures only as wide as its content leading up to the
// first hardline. Supplying printWidth replaces both cached widths with an
// open width of printWidth columns, so enclosing fit checks see the full
// intended extent; hardlines inside still emit real newlines.
func GroupWidth(printWidth int, doc Doc) Doc {
	return newGroup(Auto, doc.ptr(), &printWidth)
}

// GroupWidthAs combines [GroupWidth] and [GroupAs].
func GroupWidthAs(printWidth int, kind GroupKind, doc Doc) Doc {
	return newGroup(kind, doc.ptr(), &printWidth)
}

func newGroup(kind GroupKind, d *node, printWidth *int) Doc {
	n := &node{
		kind:          docGroup,
		groupKind:     kind,
		left:          d,
		flatWidth:     d.flatWidth,
		breakingWidth: d.breakingWidth,
	}
	if printWidth != nil {
		w := withoutBreak(max(*printWidth, 0))
		n.flatWidth = w
		n.breakingWidth = w
	}
	return Doc{n: n}
}

// Concat composes parts in sequence. With no arguments it returns [Empty];
// with one, that part unchanged.
func Concat(parts ...Doc) Doc {
	doc := Empty
	for i, part := range parts {
		if i == 0 {
			doc = part
			continue
		}
		doc = concat(doc, part)
	}
	return doc
}

// Then returns d followed by parts, for building documents left to right:
//
//	Text("foo").Then(BreakableSpace, Text("bar"))
func (d Doc) Then(parts ...Doc) Doc {
	doc := d
	for _, part := range parts {
		doc = concat(doc, part)
	}
	return doc
}

// concat builds the binary sequencing node.
//
// When either side carries a group breaker the enclosing group is certain to
// break, so the flat width is never consulted; it is cached equal to the
// breaking width.
func concat(left, right Doc) Doc {
	l, r := left.ptr(), right.ptr()
	n := &node{
		kind:          docConcat,
		left:          l,
		right:         r,
		hasBreaker:    l.hasBreaker || r.hasBreaker,
		breakingWidth: l.breakingWidth.add(r.breakingWidth),
	}
	if n.hasBreaker {
		n.flatWidth = n.breakingWidth
	} else {
		n.flatWidth = l.flatWidth.add(r.flatWidth)
	}
	return Doc{n: n}
}
