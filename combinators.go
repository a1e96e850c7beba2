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

// Enclose wraps doc between the open and close delimiters and applies wrap
// to the result. The named bracket helpers below all use [Group] as wrap;
// pass a different wrap to change the grouping, or the identity to get bare
// delimiters.
func Enclose(wrap func(Doc) Doc, open, close string, doc Doc) Doc {
	return wrap(Concat(Text(open), doc, Text(close)))
}

// Parens wraps doc in "(" and ")" inside a [Group].
func Parens(doc Doc) Doc {
	return Enclose(Group, "(", ")", doc)
}

// Braces wraps doc in "{" and "}" inside a [Group].
func Braces(doc Doc) Doc {
	return Enclose(Group, "{", "}", doc)
}

// ListBrackets wraps doc in "[" and "]" inside a [Group].
func ListBrackets(doc Doc) Doc {
	return Enclose(Group, "[", "]", doc)
}

// ArrayBrackets wraps doc in "[>" and "]" inside a [Group].
func ArrayBrackets(doc Doc) Doc {
	return Enclose(Group, "[>", "]", doc)
}

// AngleBrackets wraps doc in "<" and ">" inside a [Group].
func AngleBrackets(doc Doc) Doc {
	return Enclose(Group, "<", ">", doc)
}

// DoubleQuotes wraps doc in double quotes, with no grouping of its own.
func DoubleQuotes(doc Doc) Doc {
	return Concat(Text(`"`), doc, Text(`"`))
}

// ConcatMap composes a document over items with distinct treatment of the
// first, middle, and last elements:
//
//	lead(items[0])
//	f(false, items[i]) followed by sep(items[i], items[i+1])   for each adjacent pair
//	f(true, last) followed by trail(last)
//
// An empty items yields [Empty].
func ConcatMap[T any](
	sep func(prev, next T) Doc,
	lead func(T) Doc,
	trail func(T) Doc,
	f func(final bool, item T) Doc,
	items []T,
) Doc {
	if len(items) == 0 {
		return Empty
	}

	doc := lead(items[0])
	for i, item := range items {
		if i == len(items)-1 {
			return doc.Then(f(true, item), trail(item))
		}
		doc = doc.Then(f(false, item), sep(item, items[i+1]))
	}

	// The loop always returns at the final element of a non-empty slice.
	panic("typeset: ConcatMap reached the end of a non-empty slice")
}
