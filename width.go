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

// width is the measured horizontal extent of a subdocument, in columns.
//
// A width is either open (terminated is false), meaning content concatenated
// to the right keeps widening the same line, or break-terminated (terminated
// is true), meaning the subdocument ends in a hardline and anything placed
// after it lands on a fresh line.
//
// Widths are computed once, when a node is constructed, and cached on the
// node. The renderer never re-measures.
type width struct {
	value      int
	terminated bool
}

// withoutBreak returns an open width of w columns.
func withoutBreak(w int) width {
	return width{value: w}
}

// withBreak returns a break-terminated width of w columns.
func withBreak(w int) width {
	return width{value: w, terminated: true}
}

// add combines two widths laid out side by side.
//
// A break-terminated left width absorbs the right entirely: whatever follows
// a hardline cannot widen the line the hardline ended. Otherwise the values
// accumulate and the right side decides whether the result is terminated.
func (w width) add(rhs width) width {
	if w.terminated {
		return w
	}
	return width{value: w.value + rhs.value, terminated: rhs.terminated}
}
