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

package typeset

import (
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	// LF ends every emitted line with "\n".
	LF EOL = iota
	// CRLF ends every emitted line with "\r\n".
	CRLF
)

// EOL selects the end-of-line sequence emitted for every line break.
type EOL byte

// String returns the byte sequence this EOL emits.
func (e EOL) String() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

const (
	modeFlat mode = iota
	modeBreaking
	modeFitFlat
	modeFitBreaking
)

// mode is the layout mode of a group scope. It decides how a break hint
// rendered in that scope is handled.
type mode byte

// groupScope is the mutable break state of the group being rendered.
//
// Scopes are passed by pointer so that mutations made while rendering the
// group's subtree, to broken and to the indent counters, are visible for the
// rest of the scope. Each nested group gets a fresh scope; only Indent
// restores state after recursion.
type groupScope struct {
	mode mode

	// globalIndent is the indentation committed by breaks taken so far,
	// including what was inherited from outer groups. localIndent is the
	// indentation accumulated from Indent nodes entered but not yet claimed
	// by a break; the first break taken in the scope folds it into
	// globalIndent, so later breaks in the same group continue at the same
	// depth.
	globalIndent int
	localIndent  int

	// broken records whether a break has been emitted in this scope. It
	// drives IfBroken and is discarded when the group is exited: an inner
	// group's break does not mark the outer group broken.
	broken bool
}

// printer is the state of one render pass.
type printer struct {
	out       errWriter
	eol       string
	lineWidth int

	// column is the current output column.
	column int

	// queued holds pending indentation for the line most recently started.
	// It is flushed only when content is about to be written, so a line that
	// receives no content before the next break stays truly empty and no
	// line ends in trailing indentation.
	queued string

	// k is the pending fit-mode lookahead: a one-shot continuation installed
	// by a break hint rendered in a fit scope and consumed by the very next
	// node the printer sees, whose cached widths settle whether the hint
	// breaks. At most one continuation is pending at a time.
	k func(next *node)
}

// Print renders doc, writing chunks of output to out in traversal order.
//
// Every line break emits eol. lineWidth is the target line width in columns;
// zero or negative means unbounded. The first write error aborts the
// traversal and is returned; doc is unaffected, and no render state survives
// the call.
func Print(out io.Writer, eol EOL, lineWidth int, doc Doc) error {
	if lineWidth <= 0 {
		lineWidth = math.MaxInt
	}
	p := &printer{
		out:       errWriter{w: out},
		eol:       eol.String(),
		lineWidth: lineWidth,
	}

	// The top level renders like a flat group of unbounded extent: break
	// hints outside any group emit their fallback documents.
	root := groupScope{mode: modeFlat}
	p.print(doc.ptr(), &root)

	// A fit-mode hint at the very end of the document has no successor to
	// measure against; settle it against zero-width content.
	if p.k != nil {
		k := p.k
		p.k = nil
		k(&emptyNode)
	}

	return p.out.err
}

// ToString renders doc into a string. See [Print].
func ToString(eol EOL, lineWidth int, doc Doc) string {
	var sb strings.Builder
	_ = Print(&sb, eol, lineWidth, doc) // strings.Builder does not fail
	return sb.String()
}

// print renders one node within the scope of group g.
func (p *printer) print(n *node, g *groupScope) {
	if p.out.err != nil {
		return
	}

	// A pending fit decision consumes whatever node the printer sees next:
	// the node's cached widths are exactly the lookahead the decision needs.
	// The node then renders normally.
	if k := p.k; k != nil {
		p.k = nil
		k(n)
	}

	switch n.kind {
	case docEmpty, docGroupBreaker:
		// No output.

	case docText:
		p.content(n.text, n.flatWidth.value)

	case docBlank:
		p.content(strings.Repeat(" ", n.count), n.count)

	case docConcat:
		p.print(n.left, g)
		p.print(n.right, g)

	case docIndent:
		savedGlobal, savedLocal := g.globalIndent, g.localIndent
		g.localIndent += n.count
		p.print(n.left, g)
		g.globalIndent, g.localIndent = savedGlobal, savedLocal

	case docHardline:
		// phantom affects only the widths cached at construction; at render
		// time every hardline emits a real newline.
		p.breakLine(g)

	case docIfBroken:
		if g.broken {
			p.print(n.left, g)
		} else {
			p.print(n.right, g)
		}

	case docBreakHint:
		p.breakHint(n, g)

	case docGroup:
		p.group(n, g)

	default:
		panic(fmt.Sprintf("typeset: unknown node kind %d", n.kind))
	}
}

// group enters a group node: computes its mode, creates a fresh scope, and
// renders the group's content in it.
func (p *printer) group(n *node, parent *groupScope) {
	scope := groupScope{globalIndent: parent.globalIndent}

	switch {
	case n.left.hasBreaker:
		scope.mode = modeBreaking
	case n.groupKind == FitGroups:
		scope.mode = modeFitFlat
	case n.groupKind == FitAll:
		scope.mode = modeFitBreaking
	case p.column+n.flatWidth.value > p.lineWidth:
		scope.mode = modeBreaking
	default:
		scope.mode = modeFlat
	}

	// A breaking group is broken from the start, so every IfBroken in the
	// scope sees the same answer. Fit scopes start unbroken; their hints
	// break one at a time.
	scope.broken = scope.mode == modeBreaking

	p.print(n.left, &scope)
}

// breakHint renders a candidate break location according to the scope mode.
func (p *printer) breakHint(n *node, g *groupScope) {
	switch g.mode {
	case modeFlat:
		p.print(n.left, g)

	case modeBreaking:
		p.breakLine(g)

	case modeFitFlat, modeFitBreaking:
		// Defer the decision until the next node is known: break only if the
		// hint plus that node would overflow the line. FitFlat measures the
		// next node flat, FitBreaking by its breaking width.
		fitBreaking := g.mode == modeFitBreaking
		p.k = func(next *node) {
			nextWidth := next.flatWidth
			if fitBreaking {
				nextWidth = next.breakingWidth
			}
			if p.column+n.flatWidth.value+nextWidth.value > p.lineWidth {
				p.breakLine(g)
			} else {
				p.print(n.left, g)
			}
		}

	default:
		panic(fmt.Sprintf("typeset: unknown scope mode %d", g.mode))
	}
}

// breakLine commits a line break in scope g. The first break taken in a
// scope claims the indentation pending from Indent nodes; the new line's
// indentation is queued rather than written, so it materialises only if the
// line receives content.
func (p *printer) breakLine(g *groupScope) {
	g.broken = true
	g.globalIndent += g.localIndent
	g.localIndent = 0

	p.out.writeString(p.eol)
	p.queued = strings.Repeat(" ", g.globalIndent)
	p.column = g.globalIndent
}

// content writes a chunk of visible output, flushing any queued indentation
// first and advancing the column by the chunk's cached width.
func (p *printer) content(s string, columns int) {
	if p.queued != "" {
		p.out.writeString(p.queued)
		p.queued = ""
	}
	p.out.writeString(s)
	p.column += columns
}

// errWriter latches the first write error and drops every write after it,
// letting the traversal unwind without threading errors through each node.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) writeString(s string) {
	if ew.err != nil || s == "" {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}
