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

package unicodex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		width int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"世界", 4},  // East Asian wide runes are two columns each.
		{"a\tb", 6},          // Tabs count as a full tabstop.
		{"\t", 4},
		{"\t\t", 8},
		{"é", 1}, // Combining sequences count once per cluster.
	}
	for _, tt := range tests {
		require.Equal(t, tt.width, StringWidth(tt.text), "StringWidth(%q)", tt.text)
	}
}
