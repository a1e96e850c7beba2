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

// Package unicodex measures strings in user-visible terminal columns.
package unicodex

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the number of columns a tab character counts as.
const TabstopWidth = 4

// StringWidth returns the approximate width of text in terminal columns.
//
// Text is measured by grapheme cluster, so combining sequences count once
// and East Asian wide characters count twice. Tabs are given their maximum
// width of [TabstopWidth] columns: the measuring site does not know which
// column the text will land on, so it has to be pessimistic about tabstops.
func StringWidth(text string) int {
	// We can't just use uniseg.StringWidth on the whole text, because that
	// counts tabs as zero-width.
	var columns int
	var tabs int
	for chunk := range strings.SplitSeq(text, "\t") {
		columns += uniseg.StringWidth(chunk)
		tabs++
	}
	return columns + (tabs-1)*TabstopWidth
}
